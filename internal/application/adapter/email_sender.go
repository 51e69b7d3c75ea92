// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput is one outgoing message.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's message ID.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers transactional mail through an external provider.
type EmailSender interface {
	// Send delivers one message.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceService defines the interface for the external financial-advice
// relay. It is a single request/response call with no retry, streaming, or
// caching; its output is neither idempotent nor deterministic.
type AdviceService interface {
	// GetAdvice forwards a free-text question to the upstream language
	// model and returns its reply verbatim.
	GetAdvice(ctx context.Context, question string) (string, error)

	// IsAvailable checks if the advice relay is configured.
	IsAvailable() bool
}

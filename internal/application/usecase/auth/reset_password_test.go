package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

type fakeResetTokenService struct {
	token       *adapter.PasswordResetToken
	generateErr error
	validateErr error
	invalidated []string
}

func (f *fakeResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	f.token = &adapter.PasswordResetToken{
		Token:     "reset-token",
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return f.token, nil
}

func (f *fakeResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	if f.token == nil || f.token.Token != token {
		return nil, errors.New("token not found")
	}
	return f.token, nil
}

func (f *fakeResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}

type fakeEmailSender struct {
	sent    []adapter.SendEmailInput
	sendErr error
}

func (f *fakeEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ProviderID: "email-1"}, nil
}

func TestForgotPassword(t *testing.T) {
	const baseURL = "http://localhost:5173"

	t.Run("sends a reset link to an existing user", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.users["alice@example.com"] = entity.NewUser("alice@example.com", "Alice", "hashed:x")
		tokenService := &fakeResetTokenService{}
		sender := &fakeEmailSender{}
		uc := NewForgotPasswordUseCase(userRepo, tokenService, sender, baseURL)

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "alice@example.com"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("unexpected message: %q", output.Message)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		email := sender.sent[0]
		if email.To != "alice@example.com" {
			t.Errorf("expected email to the user, got %q", email.To)
		}
		wantLink := baseURL + "/reset-password?token=reset-token"
		if !strings.Contains(email.Text, wantLink) {
			t.Errorf("expected reset link %q in the email body, got %q", wantLink, email.Text)
		}
	})

	t.Run("unknown email gets the same success message without an email", func(t *testing.T) {
		sender := &fakeEmailSender{}
		uc := NewForgotPasswordUseCase(newFakeUserRepo(), &fakeResetTokenService{}, sender, baseURL)

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "nobody@example.com"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("expected the anti-enumeration message, got %q", output.Message)
		}
		if len(sender.sent) != 0 {
			t.Errorf("expected no email for an unknown address, got %d", len(sender.sent))
		}
	})

	t.Run("token generation failure still reports success", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.users["alice@example.com"] = entity.NewUser("alice@example.com", "Alice", "hashed:x")
		tokenService := &fakeResetTokenService{generateErr: errors.New("store down")}
		uc := NewForgotPasswordUseCase(userRepo, tokenService, &fakeEmailSender{}, baseURL)

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "alice@example.com"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("expected the anti-enumeration message, got %q", output.Message)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc := NewForgotPasswordUseCase(newFakeUserRepo(), &fakeResetTokenService{}, nil, baseURL)

		_, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "not-an-email"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEmail, authErr.Code)
		}
	})

	t.Run("works without a configured email sender", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.users["alice@example.com"] = entity.NewUser("alice@example.com", "Alice", "hashed:x")
		uc := NewForgotPasswordUseCase(userRepo, &fakeResetTokenService{}, nil, baseURL)

		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "alice@example.com"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("unexpected message: %q", output.Message)
		}
	})
}

func TestResetPassword(t *testing.T) {
	setup := func() (*ResetPasswordUseCase, *fakeUserRepo, *fakeResetTokenService) {
		userRepo := newFakeUserRepo()
		user := entity.NewUser("alice@example.com", "Alice", "hashed:OldPass123")
		userRepo.users[user.Email] = user

		tokenService := &fakeResetTokenService{token: &adapter.PasswordResetToken{
			Token:     "reset-token",
			UserID:    user.ID,
			Email:     user.Email,
			ExpiresAt: time.Now().Add(time.Hour),
		}}

		return NewResetPasswordUseCase(userRepo, &fakePasswordService{}, tokenService), userRepo, tokenService
	}

	t.Run("replaces the password and invalidates the token", func(t *testing.T) {
		uc, userRepo, tokenService := setup()

		output, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       "reset-token",
			NewPassword: "NewSecurePass456",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != "Password has been reset successfully" {
			t.Errorf("unexpected message: %q", output.Message)
		}
		if userRepo.users["alice@example.com"].PasswordHash != "hashed:NewSecurePass456" {
			t.Errorf("expected the new hash to be stored, got %q", userRepo.users["alice@example.com"].PasswordHash)
		}
		if len(tokenService.invalidated) != 1 || tokenService.invalidated[0] != "reset-token" {
			t.Errorf("expected the token to be invalidated, got %v", tokenService.invalidated)
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc, _, _ := setup()

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       "bogus-token",
			NewPassword: "NewSecurePass456",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidResetToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidResetToken, authErr.Code)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		uc, _, tokenService := setup()
		tokenService.token.ExpiresAt = time.Now().Add(-time.Minute)

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       "reset-token",
			NewPassword: "NewSecurePass456",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidResetToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidResetToken, authErr.Code)
		}
	})

	t.Run("rejects a weak replacement password", func(t *testing.T) {
		uc, userRepo, _ := setup()

		_, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       "reset-token",
			NewPassword: "short",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
		}
		if userRepo.users["alice@example.com"].PasswordHash != "hashed:OldPass123" {
			t.Error("expected the stored password to be untouched")
		}
	})
}

package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/integration/persistence/model"
)

type fakeTokenRepo struct {
	refreshTokens map[string]bool
	resetTokens   map[string]*model.PasswordResetTokenModel
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		refreshTokens: make(map[string]bool),
		resetTokens:   make(map[string]*model.PasswordResetTokenModel),
	}
}

func (f *fakeTokenRepo) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	f.refreshTokens[token] = true
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return f.refreshTokens[token], nil
}

func (f *fakeTokenRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.refreshTokens[token] = false
	return nil
}

func (f *fakeTokenRepo) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	f.resetTokens[token] = &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (f *fakeTokenRepo) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	m, ok := f.resetTokens[token]
	if !ok || m.Used {
		return nil, nil
	}
	return m, nil
}

func (f *fakeTokenRepo) InvalidatePasswordResetToken(ctx context.Context, token string) error {
	if m, ok := f.resetTokens[token]; ok {
		m.Used = true
	}
	return nil
}

const testSecret = "test-jwt-secret-key-for-testing-purposes"

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trips an access token", func(t *testing.T) {
		service := NewTokenService(testSecret, newFakeTokenRepo())

		pair, err := service.GenerateTokenPair(ctx, userID, "alice@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("expected email in claims, got %q", claims.Email)
		}
	})

	t.Run("access and refresh tokens are not interchangeable", func(t *testing.T) {
		service := NewTokenService(testSecret, newFakeTokenRepo())

		pair, err := service.GenerateTokenPair(ctx, userID, "alice@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to fail access validation")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected an access token to fail refresh validation")
		}
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		service := NewTokenService(testSecret, newFakeTokenRepo())
		other := NewTokenService("a-completely-different-secret-key", newFakeTokenRepo())

		pair, err := other.GenerateTokenPair(ctx, userID, "alice@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	t.Run("persists and invalidates the refresh token", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewTokenService(testSecret, repo)

		pair, err := service.GenerateTokenPair(ctx, userID, "alice@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil || !valid {
			t.Fatalf("expected a freshly issued refresh token to be valid, got %v %v", valid, err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err = service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected the token to be invalid after invalidation")
		}
	})
}

func TestPasswordResetTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("generates an opaque token with a one hour expiry", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewPasswordResetTokenService(repo)

		token, err := service.GenerateResetToken(ctx, userID, "alice@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token.Token) != 64 {
			t.Errorf("expected 32 random bytes hex encoded, got %d chars", len(token.Token))
		}
		if remaining := time.Until(token.ExpiresAt); remaining < 59*time.Minute || remaining > time.Hour {
			t.Errorf("expected roughly one hour of validity, got %s", remaining)
		}
		if _, ok := repo.resetTokens[token.Token]; !ok {
			t.Error("expected the token to be persisted")
		}
	})

	t.Run("validates and invalidates", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewPasswordResetTokenService(repo)

		generated, err := service.GenerateResetToken(ctx, userID, "alice@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		validated, err := service.ValidateResetToken(ctx, generated.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated.UserID != userID || validated.Email != "alice@example.com" {
			t.Errorf("unexpected claims: %+v", validated)
		}

		if err := service.InvalidateResetToken(ctx, generated.Token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateResetToken(ctx, generated.Token); err == nil {
			t.Error("expected a used token to fail validation")
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		service := NewPasswordResetTokenService(newFakeTokenRepo())

		if _, err := service.ValidateResetToken(ctx, "bogus"); err == nil {
			t.Error("expected an error for an unknown token")
		}
	})
}

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budget-questor/backend/internal/application/adapter"
	"github.com/budget-questor/backend/internal/domain/entity"
	domainerror "github.com/budget-questor/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users   map[string]*entity.User
	updated []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakePasswordService struct {
	weak bool
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if f.weak || len(password) < 8 {
		return errors.New("password too weak")
	}
	return nil
}

type fakeTokenService struct {
	generateErr   error
	validateErr   error
	invalidateErr error
	invalidated   []string
	revoked       map[string]bool
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &adapter.TokenPair{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &adapter.TokenClaims{UserID: uuid.New(), Email: "user@example.com"}, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	if f.invalidateErr != nil {
		return f.invalidateErr
	}
	f.invalidated = append(f.invalidated, token)
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	if f.revoked[token] {
		return false, nil
	}
	return true, nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("creates the user and issues tokens", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{})

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "SecurePass123",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		stored, ok := userRepo.users["alice@example.com"]
		if !ok {
			t.Fatal("expected the user to be stored")
		}
		if stored.PasswordHash != "hashed:SecurePass123" {
			t.Errorf("expected a hashed password, got %q", stored.PasswordHash)
		}
		if output.User.Email != "alice@example.com" || output.User.Name != "Alice" {
			t.Errorf("unexpected user: %+v", output.User)
		}
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, &fakeTokenService{})

		for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
			_, err := uc.Execute(context.Background(), RegisterUserInput{
				Email:    email,
				Name:     "Alice",
				Password: "SecurePass123",
			})

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError for %q, got %v", email, err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidEmail {
				t.Errorf("expected code %s for %q, got %s", domainerror.ErrCodeInvalidEmail, email, authErr.Code)
			}
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{weak: true}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "short",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.users["alice@example.com"] = entity.NewUser("alice@example.com", "Alice", "hashed:x")
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "alice@example.com",
			Name:     "Alice Again",
			Password: "SecurePass123",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, authErr.Code)
		}
	})
}

func TestLoginUser(t *testing.T) {
	setup := func() (*LoginUserUseCase, *fakeUserRepo) {
		userRepo := newFakeUserRepo()
		userRepo.users["alice@example.com"] = entity.NewUser("alice@example.com", "Alice", "hashed:SecurePass123")
		return NewLoginUserUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{}), userRepo
	}

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		uc, _ := setup()

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "alice@example.com",
			Password: "SecurePass123",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if output.User.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", output.User)
		}
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		uc, _ := setup()

		inputs := []LoginUserInput{
			{Email: "nobody@example.com", Password: "SecurePass123"},
			{Email: "alice@example.com", Password: "WrongPass456"},
		}

		for _, input := range inputs {
			_, err := uc.Execute(context.Background(), input)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError for %s, got %v", input.Email, err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
			}
			if authErr.Message != "invalid email or password" {
				t.Errorf("expected indistinguishable message, got %q", authErr.Message)
			}
		}
	})
}

func TestRefreshTokenRotation(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		tokenService := &fakeTokenService{revoked: map[string]bool{}}
		uc := NewRefreshTokenUseCase(tokenService)

		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "old-refresh"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a fresh token pair")
		}
		if len(tokenService.invalidated) != 1 || tokenService.invalidated[0] != "old-refresh" {
			t.Errorf("expected the old token to be invalidated, got %v", tokenService.invalidated)
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokenService := &fakeTokenService{revoked: map[string]bool{"revoked-refresh": true}}
		uc := NewRefreshTokenUseCase(tokenService)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "revoked-refresh"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidToken, authErr.Code)
		}
	})
}

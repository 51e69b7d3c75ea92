// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/budget-questor/backend/internal/application/adapter"
)

// LogoutUserUseCase revokes the session's refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute revokes the refresh token. Revocation failures are swallowed: a
// token that is already revoked or unknown reads the same to the caller as
// a successful revocation, so logout never fails.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, refreshToken string) {
	_ = uc.tokenService.InvalidateRefreshToken(ctx, refreshToken)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/library_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/platform/config"
	"github.com/SscSPs/library_management_app/internal/utils"
)

// tokenService signs access tokens with the configured secret.
type tokenService struct {
	BaseService
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.Now(), s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

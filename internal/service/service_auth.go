package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// authService issues and verifies the bearer tokens that scope records to a
// user. Accounts live elsewhere; the token subject is the user ID.
type authService struct {
	signer *utils.TokenSigner
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token parameters in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		signer: utils.NewTokenSigner(cfg.TokenIssuer, cfg.TokenSignKey, cfg.TokenDuration, nil),
		logger: logger,
	}
}

// CreateToken issues a signed JWT for userID.
//
// Returns ErrInvalidDataProvided for an empty userID, or a wrapped
// ErrTokenCreationFailed if signing fails.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := a.signer.Sign(userID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.logger.Debug().Str("func", "*authService.CreateToken").Str("user_id", userID).
		Time("expires_at", token.ExpiresAt.Time).Msg("token issued")
	return token, nil
}

// ParseToken maps every verification failure to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.signer.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

package service

import (
	"context"
	"time"

	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

// authService implements [AuthService] with HMAC-SHA256 signed JWT tokens.
type authService struct {
	signKey  string
	issuer   string
	duration time.Duration
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService] from the application token
// settings.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

// CreateToken issues a signed bearer token for the given user.
func (s *authService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateToken").Logger()

	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.signKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error generating token")
		return models.Token{}, err
	}

	return token, nil
}

// ParseToken verifies the token signature, issuer and expiry, and returns
// the user id from its subject claim. Every verification failure is reported
// as [ErrTokenIsExpiredOrInvalid] so callers cannot distinguish why a token
// was rejected.
func (s *authService) ParseToken(ctx context.Context, signedToken string) (int64, error) {
	log := logger.FromContext(ctx).With().Str("func", "ParseToken").Logger()

	token, err := utils.ValidateAndParseJWTToken(signedToken, s.signKey, s.issuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return token.UserID, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session *Session
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: session, logger: logger}
}

// Register creates the account on the server. The user still has to log in
// afterwards; the server does not issue a token on registration.
func (a *clientAuthService) Register(ctx context.Context, registration models.RegisterRequest) error {
	if _, err := a.adapter.Register(ctx, registration); err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

// Login exchanges the credentials for a bearer token, asks the server who
// the token belongs to, and stores the profile and token in the session.
func (a *clientAuthService) Login(ctx context.Context, email string, password string) (models.User, error) {
	token, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	user, err := a.adapter.GetCurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load profile after login: %w", err)
	}

	a.session.Set(user, token.AccessToken)
	a.logger.Info().Int64("user_id", user.UserID).Msg("logged in")

	return user, nil
}

// Logout clears the session and the adapter token.
func (a *clientAuthService) Logout() {
	a.session.Clear()
	a.adapter.SetToken("")
	a.logger.Info().Msg("logged out")
}

// CurrentUser returns the profile stored in the session.
func (a *clientAuthService) CurrentUser() (models.User, bool) {
	return a.session.User()
}

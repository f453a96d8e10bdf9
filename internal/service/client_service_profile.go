package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	session *Session
	logger  *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session *Session, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, session: session, logger: logger}
}

// Get fetches the logged-in user's profile from the server and refreshes the
// session copy.
func (p *clientProfileService) Get(ctx context.Context) (models.User, error) {
	user, ok := p.session.User()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	fresh, err := p.adapter.GetUser(ctx, user.UserID)
	if err != nil {
		return models.User{}, err
	}
	p.session.SetUser(fresh)

	return fresh, nil
}

// Update submits the profile changes and refreshes the session copy.
func (p *clientProfileService) Update(ctx context.Context, update models.UserUpdateRequest) (models.User, error) {
	user, ok := p.session.User()
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	updated, err := p.adapter.UpdateUser(ctx, user.UserID, update)
	if err != nil {
		return models.User{}, err
	}
	p.session.SetUser(updated)
	p.logger.Info().Int64("user_id", updated.UserID).Msg("profile updated")

	return updated, nil
}

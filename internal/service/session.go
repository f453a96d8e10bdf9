package service

import (
	"sync"

	"github.com/msagdeev/go-fit-tracker/models"
)

// Session is the client's in-memory authentication state: the logged-in
// user's profile and the bearer token issued for it. It is never persisted;
// closing the client ends the session.
type Session struct {
	mu    sync.RWMutex
	user  models.User
	token string
}

// NewSession returns an empty, logged-out session.
func NewSession() *Session {
	return &Session{}
}

// Set stores the logged-in user and token, replacing any previous session.
func (s *Session) Set(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

// SetUser replaces the stored profile, keeping the token. Used after a
// profile update.
func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User returns the stored profile and whether a user is logged in.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user.UserID != 0
}

// Token returns the stored bearer token, or an empty string when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear resets the session to the logged-out state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.User{}
	s.token = ""
}

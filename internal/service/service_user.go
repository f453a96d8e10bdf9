package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

// dummyPasswordHash is a valid bcrypt hash compared against when the email
// is unknown, so that path does the same amount of work as a real check.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements [UserService] on top of the user repository.
type userService struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{users: users, logger: logger}
}

// Register validates the registration payload, hashes the password and
// creates the account. Returns [ErrValidation] for bad input and
// [ErrEmailAlreadyExists] when the email is taken.
func (s *userService) Register(ctx context.Context, register models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "Register").Logger()

	if err := validateRegistration(register); err != nil {
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(register.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Name:         register.Name,
		Email:        strings.ToLower(strings.TrimSpace(register.Email)),
		PasswordHash: passwordHash,
		Height:       register.Height,
		Weight:       register.Weight,
		Goal:         register.Goal,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}
	log.Info().Int64("user_id", created.UserID).Msg("user registered")

	return created, nil
}

// Authenticate checks the email/password pair against the stored hash.
// An unknown email and a wrong password both return [ErrInvalidCredentials];
// the password is always checked so the two cases take comparable time.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "Authenticate").Logger()

	user, err := s.users.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn a hash comparison so unknown emails are not faster
			utils.CheckPassword(password, dummyPasswordHash)
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.UserID).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches one user profile. Returns [ErrUserNotFound] when the
// id does not match any account.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmail fetches one user profile by email. Returns
// [ErrUserNotFound] when no account has the given email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.users.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser overwrites the profile fields of an existing account. A
// non-empty password is re-hashed; an empty one keeps the stored hash.
// Returns [ErrUserNotFound], [ErrEmailAlreadyExists] or [ErrValidation].
func (s *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "UpdateUser").Logger()

	if err := validateProfileUpdate(update); err != nil {
		return models.User{}, err
	}

	current, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	passwordHash := current.PasswordHash
	if update.Password != "" {
		passwordHash, err = utils.HashPassword(update.Password)
		if err != nil {
			log.Err(err).Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
	}

	user := models.User{
		UserID:       userID,
		Name:         update.Name,
		Email:        strings.ToLower(strings.TrimSpace(update.Email)),
		PasswordHash: passwordHash,
		Height:       update.Height,
		Weight:       update.Weight,
		Goal:         update.Goal,
	}

	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, ErrUserNotFound
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}
	log.Info().Int64("user_id", userID).Msg("user profile updated")

	return updated, nil
}

func validateRegistration(register models.RegisterRequest) error {
	switch {
	case strings.TrimSpace(register.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case !isValidEmail(register.Email):
		return fmt.Errorf("%w: invalid email", ErrValidation)
	case register.Password == "":
		return fmt.Errorf("%w: password is required", ErrValidation)
	case register.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	case register.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}

	return nil
}

func validateProfileUpdate(update models.UserUpdateRequest) error {
	switch {
	case strings.TrimSpace(update.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case !isValidEmail(update.Email):
		return fmt.Errorf("%w: invalid email", ErrValidation)
	case update.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	case update.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}

	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	return strings.Contains(email[at+1:], ".")
}

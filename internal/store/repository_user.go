package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

// userRepository implements [UserRepository] on top of the shared SQL
// database handle.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// CreateUser inserts a new user record and returns it with the generated id
// and creation timestamp filled in. Returns [ErrEmailAlreadyExists] when the
// email is already registered.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateUser").Logger()

	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("name", "email", "password_hash", "height", "weight", "goal").
		Values(user.Name, user.Email, user.PasswordHash, user.Height, user.Weight, user.Goal).
		Suffix("RETURNING user_id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		if r.db.constraints.Classify(err) == ConstraintUnique {
			log.Warn().Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Msg("error executing sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByID fetches one user by primary key. Returns [ErrUserNotFound]
// when no user has the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "FindUserByID").Logger()

	query, args, err := r.db.Builder().
		Select("user_id", "name", "email", "password_hash", "height", "weight", "goal", "created_at").
		From(models.User{}.TableName()).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, log, query, args...)
}

// FindUserByEmail fetches one user by email. Returns [ErrUserNotFound] when
// no user has the given email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "FindUserByEmail").Logger()

	query, args, err := r.db.Builder().
		Select("user_id", "name", "email", "password_hash", "height", "weight", "goal", "created_at").
		From(models.User{}.TableName()).
		Where("email = ?", email).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, log, query, args...)
}

// UpdateUser overwrites the mutable fields of an existing user record and
// returns the stored row. Returns [ErrUserNotFound] when the id does not
// match any user and [ErrEmailAlreadyExists] when the new email is taken.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "UpdateUser").Logger()

	query, args, err := r.db.Builder().
		Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("height", user.Height).
		Set("weight", user.Weight).
		Set("goal", user.Goal).
		Where("user_id = ?", user.UserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Int64("user_id", user.UserID).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}
		if r.db.constraints.Classify(err) == ConstraintUnique {
			log.Warn().Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Msg("error executing sql query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) scanUser(ctx context.Context, log zerolog.Logger, query string, args ...any) (models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Height,
		&user.Weight,
		&user.Goal,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Msg("failed to scan row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

// progressRepository implements [ProgressRepository] on top of the shared
// SQL database handle.
type progressRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProgressRepository constructs a [ProgressRepository] backed by db.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return &progressRepository{db: db, logger: logger}
}

// CreateProgress inserts a progress check-in and returns it with the
// generated id. Returns [ErrForeignKeyViolation] when the referenced user
// does not exist.
func (r *progressRepository) CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateProgress").Logger()

	query, args, err := r.db.Builder().
		Insert(progress.TableName()).
		Columns("user_id", "date", "weight", "bmi", "calorie_intake").
		Values(progress.UserID, progress.Date, progress.Weight, progress.BMI, progress.CalorieIntake).
		Suffix("RETURNING progress_id").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.Progress{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&progress.ProgressID)
	if err != nil {
		if r.db.constraints.Classify(err) == ConstraintForeignKey {
			log.Warn().Int64("user_id", progress.UserID).Msg("referenced record does not exist")
			return models.Progress{}, ErrForeignKeyViolation
		}
		log.Err(err).Msg("error executing sql query")
		return models.Progress{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return progress, nil
}

// ListProgressForUser returns all progress check-ins of one user ordered by
// date and id.
func (r *progressRepository) ListProgressForUser(ctx context.Context, userID int64) ([]models.Progress, error) {
	log := logger.FromContext(ctx).With().Str("func", "ListProgressForUser").Logger()

	query, args, err := r.db.Builder().
		Select("progress_id", "user_id", "date", "weight", "bmi", "calorie_intake").
		From(models.Progress{}.TableName()).
		Where("user_id = ?", userID).
		OrderBy("date", "progress_id").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error executing sql query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		var progress models.Progress
		err = rows.Scan(
			&progress.ProgressID,
			&progress.UserID,
			&progress.Date,
			&progress.Weight,
			&progress.BMI,
			&progress.CalorieIntake,
		)
		if err != nil {
			log.Err(err).Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, progress)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("failed to scan rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

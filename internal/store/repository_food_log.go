package store

import (
	"context"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

// foodLogRepository implements [FoodLogRepository] on top of the shared SQL
// database handle.
type foodLogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFoodLogRepository constructs a [FoodLogRepository] backed by db.
func NewFoodLogRepository(db *DB, logger *logger.Logger) FoodLogRepository {
	return &foodLogRepository{db: db, logger: logger}
}

// CreateFoodLog inserts a food-intake record with its nutrition totals
// already computed and returns it with the generated id. Returns
// [ErrForeignKeyViolation] when the referenced user or food does not exist.
func (r *foodLogRepository) CreateFoodLog(ctx context.Context, foodLog models.FoodLog) (models.FoodLog, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateFoodLog").Logger()

	query, args, err := r.db.Builder().
		Insert(foodLog.TableName()).
		Columns("user_id", "food_id", "date", "quantity", "calories", "protein", "fat", "carbohydrates").
		Values(
			foodLog.UserID,
			foodLog.FoodID,
			foodLog.Date,
			foodLog.Quantity,
			foodLog.Calories,
			foodLog.Protein,
			foodLog.Fat,
			foodLog.Carbohydrates,
		).
		Suffix("RETURNING foodlog_id").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.FoodLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&foodLog.FoodLogID)
	if err != nil {
		if r.db.constraints.Classify(err) == ConstraintForeignKey {
			log.Warn().Int64("user_id", foodLog.UserID).Msg("referenced record does not exist")
			return models.FoodLog{}, ErrForeignKeyViolation
		}
		log.Err(err).Msg("error executing sql query")
		return models.FoodLog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foodLog, nil
}

// ListFoodLogsForUser returns all food-intake records of one user ordered by
// date and id, with the catalog food name joined in. The name is empty when
// the catalog entry has been removed.
func (r *foodLogRepository) ListFoodLogsForUser(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "ListFoodLogsForUser").Logger()

	query, args, err := r.db.Builder().
		Select(
			"fl.foodlog_id", "fl.user_id", "fl.food_id", "fl.date", "fl.quantity",
			"fl.calories", "fl.protein", "fl.fat", "fl.carbohydrates",
			"COALESCE(f.name, '') AS food_name",
		).
		From(models.FoodLog{}.TableName() + " AS fl").
		LeftJoin(models.Food{}.TableName() + " AS f ON f.food_id = fl.food_id").
		Where("fl.user_id = ?", userID).
		OrderBy("fl.date", "fl.foodlog_id").
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

	var entries []models.FoodLogEntry
	for rows.Next() {
		var entry models.FoodLogEntry
		err = rows.Scan(
			&entry.FoodLogID,
			&entry.UserID,
			&entry.FoodID,
			&entry.Date,
			&entry.Quantity,
			&entry.Calories,
			&entry.Protein,
			&entry.Fat,
			&entry.Carbohydrates,
			&entry.FoodName,
		)
		if err != nil {
			log.Err(err).Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("failed to scan rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

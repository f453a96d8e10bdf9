package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

// foodRepository implements [FoodRepository] on top of the shared SQL
// database handle.
type foodRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFoodRepository constructs a [FoodRepository] backed by db.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	return &foodRepository{db: db, logger: logger}
}

// ListFoods returns a page of the food catalog ordered by id. skip is the
// number of leading records to drop and limit caps the page size.
func (r *foodRepository) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	log := logger.FromContext(ctx).With().Str("func", "ListFoods").Logger()

	query, args, err := r.db.Builder().
		Select("food_id", "name", "calories", "protein", "fat", "carbohydrates").
		From(models.Food{}.TableName()).
		OrderBy("food_id").
		Offset(skip).
		Limit(limit).
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

	foods := make([]models.Food, 0, limit)
	for rows.Next() {
		var food models.Food
		err = rows.Scan(&food.FoodID, &food.Name, &food.Calories, &food.Protein, &food.Fat, &food.Carbohydrates)
		if err != nil {
			log.Err(err).Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, food)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("failed to scan rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}

// FindFoodByID fetches one catalog entry by primary key. Returns
// [ErrFoodNotFound] when no food has the given id.
func (r *foodRepository) FindFoodByID(ctx context.Context, foodID int64) (models.Food, error) {
	log := logger.FromContext(ctx).With().Str("func", "FindFoodByID").Logger()

	query, args, err := r.db.Builder().
		Select("food_id", "name", "calories", "protein", "fat", "carbohydrates").
		From(models.Food{}.TableName()).
		Where("food_id = ?", foodID).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var food models.Food
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&food.FoodID, &food.Name, &food.Calories, &food.Protein, &food.Fat, &food.Carbohydrates)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Food{}, ErrFoodNotFound
		}
		log.Err(err).Msg("failed to scan row")
		return models.Food{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return food, nil
}

// FoodExistsByName reports whether a catalog entry with the exact name is
// already present. Used to keep seeding idempotent.
func (r *foodRepository) FoodExistsByName(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx).With().Str("func", "FoodExistsByName").Logger()

	query, args, err := r.db.Builder().
		Select("1").
		From(models.Food{}.TableName()).
		Where("name = ?", name).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).Msg("failed to scan row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return true, nil
}

// CreateFood inserts a catalog entry and returns it with the generated id.
func (r *foodRepository) CreateFood(ctx context.Context, food models.Food) (models.Food, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateFood").Logger()

	query, args, err := r.db.Builder().
		Insert(food.TableName()).
		Columns("name", "calories", "protein", "fat", "carbohydrates").
		Values(food.Name, food.Calories, food.Protein, food.Fat, food.Carbohydrates).
		Suffix("RETURNING food_id").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&food.FoodID)
	if err != nil {
		log.Err(err).Msg("error executing sql query")
		return models.Food{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return food, nil
}

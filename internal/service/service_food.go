package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
	"github.com/msagdeev/go-fit-tracker/models"
)

// defaultFoodsLimit caps a catalog page when the caller does not specify a
// limit.
const defaultFoodsLimit = 100

// seedCatalog is the built-in food catalog inserted by SeedFoods. Calories
// are per unit; protein, fat and carbohydrates are grams per unit.
var seedCatalog = []models.Food{
	{Name: "Egg", Calories: 78, Protein: 6.3, Fat: 5.3, Carbohydrates: 0.6},
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, Carbohydrates: 0},
	{Name: "Apple", Calories: 95, Protein: 0.5, Fat: 0.3, Carbohydrates: 25},
	{Name: "Rice (Cooked)", Calories: 130, Protein: 2.7, Fat: 0.3, Carbohydrates: 28},
	{Name: "Broccoli", Calories: 55, Protein: 3.7, Fat: 0.6, Carbohydrates: 11.2},
	{Name: "Banana", Calories: 105, Protein: 1.3, Fat: 0.3, Carbohydrates: 27},
	{Name: "Salmon", Calories: 208, Protein: 20, Fat: 13, Carbohydrates: 0},
	{Name: "Almonds", Calories: 164, Protein: 6, Fat: 14, Carbohydrates: 6},
	{Name: "Milk (1 cup)", Calories: 103, Protein: 8, Fat: 2.4, Carbohydrates: 12},
	{Name: "Oats", Calories: 150, Protein: 5, Fat: 2.5, Carbohydrates: 27},
	{Name: "Beef (Ground, Lean)", Calories: 250, Protein: 26, Fat: 17, Carbohydrates: 0},
	{Name: "Sweet Potato", Calories: 86, Protein: 1.6, Fat: 0.1, Carbohydrates: 20},
	{Name: "Tofu", Calories: 76, Protein: 8, Fat: 4.8, Carbohydrates: 1.9},
	{Name: "Peanut Butter", Calories: 188, Protein: 8, Fat: 16, Carbohydrates: 6},
	{Name: "Greek Yogurt (Plain)", Calories: 100, Protein: 10, Fat: 0, Carbohydrates: 6},
	{Name: "Quinoa (Cooked)", Calories: 120, Protein: 4.1, Fat: 1.9, Carbohydrates: 21.3},
	{Name: "Avocado", Calories: 160, Protein: 2, Fat: 15, Carbohydrates: 9},
	{Name: "Carrot", Calories: 41, Protein: 0.9, Fat: 0.2, Carbohydrates: 10},
	{Name: "Orange", Calories: 62, Protein: 1.2, Fat: 0.2, Carbohydrates: 15.4},
	{Name: "Cottage Cheese", Calories: 98, Protein: 11, Fat: 4.3, Carbohydrates: 3.4},
	{Name: "Lentils (Cooked)", Calories: 116, Protein: 9, Fat: 0.4, Carbohydrates: 20},
	{Name: "Spinach", Calories: 23, Protein: 2.9, Fat: 0.4, Carbohydrates: 3.6},
	{Name: "Blueberries", Calories: 84, Protein: 1.1, Fat: 0.5, Carbohydrates: 21.5},
	{Name: "Whole Wheat Bread (1 slice)", Calories: 69, Protein: 3.6, Fat: 1.1, Carbohydrates: 12},
	{Name: "Cheddar Cheese", Calories: 113, Protein: 7, Fat: 9.3, Carbohydrates: 0.4},
	{Name: "Pumpkin Seeds", Calories: 151, Protein: 7, Fat: 13, Carbohydrates: 5},
	{Name: "Cucumber", Calories: 16, Protein: 0.7, Fat: 0.1, Carbohydrates: 3.6},
	{Name: "Shrimp", Calories: 99, Protein: 24, Fat: 0.3, Carbohydrates: 0.2},
	{Name: "Green Beans", Calories: 31, Protein: 1.8, Fat: 0.1, Carbohydrates: 7},
	{Name: "Pineapple", Calories: 82, Protein: 0.9, Fat: 0.2, Carbohydrates: 22},
}

// foodService implements [FoodService] on top of the food repository.
type foodService struct {
	foods  store.FoodRepository
	logger *logger.Logger
}

// NewFoodService constructs a [FoodService] backed by the given repository.
func NewFoodService(foods store.FoodRepository, logger *logger.Logger) FoodService {
	return &foodService{foods: foods, logger: logger}
}

// ListFoods returns one page of the catalog. A zero limit falls back to
// defaultFoodsLimit.
func (s *foodService) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	if limit == 0 {
		limit = defaultFoodsLimit
	}

	return s.foods.ListFoods(ctx, skip, limit)
}

// SeedFoods inserts every built-in catalog entry whose name is not already
// present and returns the number of entries created. Calling it repeatedly
// is safe: a fully seeded catalog yields zero inserts.
func (s *foodService) SeedFoods(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).With().Str("func", "SeedFoods").Logger()

	created := 0
	for _, food := range seedCatalog {
		exists, err := s.foods.FoodExistsByName(ctx, food.Name)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		if _, err = s.foods.CreateFood(ctx, food); err != nil {
			return created, err
		}
		created++
	}
	log.Info().Int("created", created).Msg("food catalog seeded")

	return created, nil
}

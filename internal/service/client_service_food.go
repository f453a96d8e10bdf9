package service

import (
	"context"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

type clientFoodService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientFoodService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientFoodService {
	return &clientFoodService{adapter: serverAdapter, logger: logger}
}

// List fetches one page of the shared food catalog.
func (f *clientFoodService) List(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	return f.adapter.ListFoods(ctx, skip, limit)
}

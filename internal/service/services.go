package service

import (
	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/store"
)

// Services bundles every server-side service behind its interface so the
// HTTP handlers receive one wired dependency.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	FoodService     FoodService
	FoodLogService  FoodLogService
	ProgressService ProgressService
}

// NewServices wires the service layer to the repositories and the token
// settings from cfg.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		FoodService:     NewFoodService(storages.FoodRepository, logger),
		FoodLogService:  NewFoodLogService(storages.FoodLogRepository, storages.UserRepository, storages.FoodRepository, logger),
		ProgressService: NewProgressService(storages.ProgressRepository, storages.UserRepository, logger),
	}
}

package store

import "github.com/msagdeev/go-fit-tracker/internal/logger"

// Storages bundles all repositories behind their interfaces so that the
// service layer receives one wired dependency.
type Storages struct {
	UserRepository     UserRepository
	FoodRepository     FoodRepository
	FoodLogRepository  FoodLogRepository
	ProgressRepository ProgressRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		FoodRepository:     NewFoodRepository(db, logger),
		FoodLogRepository:  NewFoodLogRepository(db, logger),
		ProgressRepository: NewProgressRepository(db, logger),
	}
}

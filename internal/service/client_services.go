package service

import (
	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
)

// ClientServices bundles the desktop client's services behind their
// interfaces. All of them share one [Session] and one [adapter.ServerAdapter].
type ClientServices struct {
	AuthService     ClientAuthService
	ProfileService  ClientProfileService
	FoodService     ClientFoodService
	FoodLogService  ClientFoodLogService
	ProgressService ClientProgressService
}

// NewClientServices wires the client service layer to the server adapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := NewSession()

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, session, logger),
		ProfileService:  NewClientProfileService(serverAdapter, session, logger),
		FoodService:     NewClientFoodService(serverAdapter, logger),
		FoodLogService:  NewClientFoodLogService(serverAdapter, session, logger),
		ProgressService: NewClientProgressService(serverAdapter, session, logger),
	}
}

// Package client assembles the desktop client: server adapter, client
// services and the terminal UI, plus the login/main-loop lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/adapter"
	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/tui"
)

// App owns the wired client components and drives the UI lifecycle.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client from its configuration: HTTP server adapter,
// client services sharing one session, and the terminal UI on top.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run executes the client lifecycle: the login flow first, then the
// logged-in main loop. Logging out returns to the login flow; quitting at
// any point exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Str("email", user.Email).Msg("user logged in")

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("user logged out")
	}
}

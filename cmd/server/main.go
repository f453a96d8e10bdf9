package main

import (
	"context"
	"fmt"

	"github.com/msagdeev/go-fit-tracker/internal/config"
	handlerhttp "github.com/msagdeev/go-fit-tracker/internal/handler/http"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/server"
	"github.com/msagdeev/go-fit-tracker/internal/service"
	"github.com/msagdeev/go-fit-tracker/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.Open(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	// make sure the food catalog is available before the first client connects
	if _, err = services.FoodService.SeedFoods(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding food catalog")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/handler"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/server"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
	"github.com/MKhiriev/go-post-hub/models"
	"github.com/MKhiriev/go-post-hub/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger(string(config.RoleUsers))
	cfg, err := config.GetStructuredConfig(config.RoleUsers)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx, migrations.ServiceUsers); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewUserStorages(db, log), cfg.App, utils.NewRealClock(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewUsersHandlers(services, validators.NewRequestValidator(), cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-hub/internal/adapter"
	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/handler"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/server"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
	"github.com/MKhiriev/go-post-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger(string(config.RoleGateway))
	cfg, err := config.GetStructuredConfig(config.RoleGateway)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	issuer, err := utils.NewTokenIssuer(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration, utils.NewRealClock())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token issuer")
	}

	users, err := adapter.NewUsersHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating users adapter")
	}

	conn, err := adapter.DialPosts(cfg.Adapter)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating posts adapter")
	}
	defer conn.Close()
	posts := adapter.NewPostsGRPCAdapter(conn, cfg.Adapter.RequestTimeout, log)

	handlers, err := handler.NewGatewayHandlers(users, posts, issuer, validators.NewRequestValidator(), log)
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

package service

import (
	"fmt"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// Services holds the services built on top of the repositories present in
// storages. A nil field means the binary does not serve that domain.
type Services struct {
	AuthService AuthService
	PostService PostService
}

func NewServices(storages *store.Storages, cfg config.App, clock utils.Clock, logger *logger.Logger) (*Services, error) {
	services := &Services{}

	if storages.UserRepository != nil {
		issuer, err := utils.NewTokenIssuer(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration, clock)
		if err != nil {
			return nil, fmt.Errorf("error creating token issuer: %w", err)
		}
		hasher := utils.NewPasswordHasher(cfg.PasswordHashCost)

		services.AuthService = NewAuthService(storages.UserRepository, issuer, hasher, clock, logger)
	}

	if storages.PostRepository != nil {
		services.PostService = NewPostService(storages.PostRepository, clock, logger)
	}

	return services, nil
}

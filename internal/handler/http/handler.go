package http

import (
	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// identityField is the external JSON name of the user's login,
	// either "login" or "username".
	identityField string

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.App, logger *logger.Logger) *Handler {
	identityField := cfg.IdentityField
	if identityField == "" {
		identityField = config.IdentityFieldLogin
	}

	logger.Info().Str("identity_field", identityField).Msg("http handler created")
	return &Handler{
		services:      services,
		validator:     validator,
		identityField: identityField,
		logger:        logger,
	}
}

package gateway

import (
	"github.com/MKhiriev/go-post-hub/internal/adapter"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

// TokenVerifier checks a bearer token and returns its subject.
// [utils.TokenIssuer] satisfies it.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Handler struct {
	users adapter.UsersAdapter
	posts adapter.PostsAdapter

	tokens    TokenVerifier
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(
	users adapter.UsersAdapter,
	posts adapter.PostsAdapter,
	tokens TokenVerifier,
	validator validators.Validator,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("gateway handler created")
	return &Handler{
		users:     users,
		posts:     posts,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

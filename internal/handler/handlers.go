package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-post-hub/internal/adapter"
	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/handler/gateway"
	"github.com/MKhiriev/go-post-hub/internal/handler/grpc"
	"github.com/MKhiriev/go-post-hub/internal/handler/http"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

// HTTPHandler builds the router of an HTTP transport.
type HTTPHandler interface {
	Init() *chi.Mux
}

// Handlers holds the transport handlers of one binary. A nil field means
// the binary does not serve that transport.
type Handlers struct {
	HTTP HTTPHandler
	GRPC *grpc.Handler
}

// NewUsersHandlers creates the HTTP handler of the users service.
func NewUsersHandlers(services *service.Services, validator validators.Validator, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating users handlers...")

	if services == nil || services.AuthService == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, validator, cfg, logger)}, nil
}

// NewPostsHandlers creates the gRPC handler of the posts service.
func NewPostsHandlers(services *service.Services, validator validators.Validator, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating posts handlers...")

	if services == nil || services.PostService == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{GRPC: grpc.NewHandler(services, validator, logger)}, nil
}

// NewGatewayHandlers creates the public HTTP handler of the gateway.
func NewGatewayHandlers(
	users adapter.UsersAdapter,
	posts adapter.PostsAdapter,
	tokens gateway.TokenVerifier,
	validator validators.Validator,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating gateway handlers...")

	if users == nil || posts == nil || tokens == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: gateway.NewHandler(users, posts, tokens, validator, logger)}, nil
}

package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/mock"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

func TestNewUsersHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{AuthService: mock.NewMockAuthService(ctrl)}

	h, err := NewUsersHandlers(services, validators.NewRequestValidator(), config.App{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.Nil(t, h.GRPC, "expected gRPC handler to be nil")
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewPostsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{PostService: mock.NewMockPostService(ctrl)}

	h, err := NewPostsHandlers(services, validators.NewRequestValidator(), logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
	assert.NotNil(t, h.GRPC, "expected gRPC handler to be initialised")
}

func TestNewGatewayHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	issuer, err := utils.NewTokenIssuer("secret", "post-hub", time.Minute, nil)
	require.NoError(t, err)

	h, err := NewGatewayHandlers(mock.NewMockUsersAdapter(ctrl), mock.NewMockPostsAdapter(ctrl), issuer,
		validators.NewRequestValidator(), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.GRPC)
}

func TestNewHandlers_MissingDependencies(t *testing.T) {
	v := validators.NewRequestValidator()

	_, err := NewUsersHandlers(&service.Services{}, v, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)

	_, err = NewPostsHandlers(nil, v, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)

	_, err = NewGatewayHandlers(nil, nil, nil, v, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

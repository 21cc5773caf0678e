package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

// internalMessage is the only text an Internal status ever carries.
const internalMessage = "internal server error"

var errorCodeMap = map[error]codes.Code{
	service.ErrPostNotFound:       codes.NotFound,
	service.ErrForbidden:          codes.PermissionDenied,
	validators.ErrInvalidInput:    codes.InvalidArgument,
	validators.ErrUnsupportedType: codes.InvalidArgument,
}

// toStatus converts a service error to a gRPC status. Unknown errors are
// logged and answered with a generic Internal status.
func toStatus(ctx context.Context, err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}

	logger.FromContext(ctx).Err(err).Str("func", "toStatus").Msg("internal error")
	return status.Error(codes.Internal, internalMessage)
}

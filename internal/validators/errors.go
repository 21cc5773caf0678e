package validators

import "errors"

var (
	// ErrInvalidInput wraps every validation failure; handlers map it to
	// 400 and gRPC servers to InvalidArgument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType is returned when the value is not a struct.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

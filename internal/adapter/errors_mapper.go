package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusNotFound:
		return &DownstreamError{Err: ErrUnauthorized, Detail: body}
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamFailure, resp.StatusCode(), body)
	}
}

func mapStatusError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	switch st.Code() {
	case codes.NotFound:
		return &DownstreamError{Err: ErrNotFound, Detail: st.Message()}
	case codes.PermissionDenied:
		return &DownstreamError{Err: ErrForbidden, Detail: st.Message()}
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s: %s", ErrUpstreamUnavailable, st.Code(), st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", ErrUpstreamFailure, st.Code(), st.Message())
	}
}

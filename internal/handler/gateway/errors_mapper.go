package gateway

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/adapter"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrInvalidParam:            http.StatusBadRequest,
	validators.ErrInvalidInput: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	utils.ErrInvalidToken:               http.StatusUnauthorized,
	adapter.ErrUnauthorized:             http.StatusUnauthorized,

	adapter.ErrForbidden: http.StatusForbidden,
	adapter.ErrNotFound:  http.StatusNotFound,
}

// statusFromError returns the HTTP status of err and the sentinel it matched.
// Unknown errors, unreachable services included, map to 500 with a nil
// sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers err as {"detail": ...}. Posts service denials carry the
// downstream detail, validation errors the field details, other client errors
// the sentinel text and server errors the generic status text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteError(w, status, "")
		return
	}

	log.Warn().Err(err).Int("status", status).Send()

	detail := target.Error()
	var downstream *adapter.DownstreamError
	switch {
	case errors.Is(err, validators.ErrInvalidInput), errors.Is(err, ErrInvalidParam):
		detail = err.Error()
	case errors.As(err, &downstream) && status != http.StatusUnauthorized && downstream.Detail != "":
		detail = downstream.Detail
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, status, detail)
}

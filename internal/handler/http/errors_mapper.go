package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrInvalidForm:             http.StatusBadRequest,
	validators.ErrInvalidInput: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	utils.ErrInvalidToken:               http.StatusUnauthorized,
	service.ErrNotAuthenticated:         http.StatusUnauthorized,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,

	service.ErrUserNotFound:   http.StatusNotFound,
	service.ErrDuplicateLogin: http.StatusConflict,
	service.ErrDuplicateEmail: http.StatusConflict,
}

// statusFromError returns the HTTP status of err and the sentinel it matched.
// Unknown errors map to 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers err as {"detail": ...}. Client errors carry the matched
// sentinel's text, validation errors the field details, everything else the
// generic status text.
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
	if errors.Is(err, validators.ErrInvalidInput) {
		detail = err.Error()
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, status, detail)
}

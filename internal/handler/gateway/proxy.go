package gateway

import (
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
)

// proxy relays the request to the users service and copies the answer back
// unchanged. A transport failure is answered with a generic 500.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.users.Forward(r.Context(), r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	for name, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err = w.Write(resp.Body); err != nil {
		log.Err(err).Msg("error writing proxied response")
	}
}

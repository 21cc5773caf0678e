package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

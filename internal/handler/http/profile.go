package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	login, ok := utils.GetLoginFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	user, err := h.services.AuthService.GetProfile(ctx, login)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, h.userView(user), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	login, ok := utils.GetLoginFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if err := h.validator.Validate(ctx, update); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, login, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("profile updated")
	if _, err = utils.WriteJSON(w, h.userView(user), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

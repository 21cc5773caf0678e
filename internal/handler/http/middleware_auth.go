package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It extracts the token from the "Authorization" header and resolves it with
// [service.AuthService.Authenticate]. On success the caller's login and id
// are stored in the request context under [utils.LoginCtxKey] and
// [utils.UserIDCtxKey]. A missing or malformed header, an invalid or expired
// token, and a token whose subject no longer exists are all answered with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", user.ID).Msg("caller authenticated")

		ctx = context.WithValue(ctx, utils.LoginCtxKey, user.Login)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

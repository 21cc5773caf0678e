package gateway

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// auth is an HTTP middleware that authenticates post routes.
//
// A missing or malformed "Authorization" header and a token failing local
// verification are answered with 401 before any downstream call. A valid
// token is then resolved to the caller's account through the users service;
// an account it no longer knows is answered with 401 as well. On success the
// caller's id, login and raw token are stored in the request context.
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

		subject, err := h.tokens.Verify(tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		caller, err := h.users.ResolveCaller(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Debug().Str("subject", subject).Int64("user_id", caller.ID).Msg("caller resolved")

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, caller.ID)
		ctx = context.WithValue(ctx, utils.LoginCtxKey, subject)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

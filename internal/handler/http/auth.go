package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

const formContentType = "application/x-www-form-urlencoded"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	newUser := models.NewUser{
		Login:    h.identity(req),
		Password: req.Password,
		Email:    req.Email,
	}
	if err := h.validator.Validate(ctx, newUser); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, newUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	if _, err = utils.WriteJSON(w, h.userView(user), http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// login accepts a JSON body with the configured identity field or an OAuth2
// password form with "username" and "password".
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var (
		creds models.Credentials
		err   error
	)
	if isForm(r) {
		creds, err = readFormCredentials(r)
	} else {
		creds, err = h.readJSONCredentials(r)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.issueToken(w, r, creds)
}

// token is the OAuth2 password grant endpoint; only form bodies are accepted.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if !isForm(r) {
		h.writeError(w, r, fmt.Errorf("%w: expected %s body", ErrInvalidForm, formContentType))
		return
	}

	creds, err := readFormCredentials(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.issueToken(w, r, creds)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, creds models.Credentials) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.validator.Validate(ctx, creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds.Login, creds.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("login", token.Subject).Time("expires_at", token.ExpiresAt).Msg("token issued")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	resp := models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) readJSONCredentials(r *http.Request) (models.Credentials, error) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return models.Credentials{Login: h.identity(req), Password: req.Password}, nil
}

func readFormCredentials(r *http.Request) (models.Credentials, error) {
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if grantType := r.PostForm.Get("grant_type"); grantType != "" && grantType != "password" {
		return models.Credentials{}, fmt.Errorf("%w: unsupported grant_type %q", ErrInvalidForm, grantType)
	}

	return models.Credentials{
		Login:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == formContentType
}

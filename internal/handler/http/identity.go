package http

import (
	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/models"
)

// credentialsRequest is the JSON body of /register and /login. Both
// identity spellings decode; only the configured one is read.
type credentialsRequest struct {
	Login    string `json:"login"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *Handler) identity(req credentialsRequest) string {
	if h.identityField == config.IdentityFieldUsername {
		return req.Username
	}
	return req.Login
}

// userResponse renames the login of the embedded user to the configured
// identity field. The outer fields shadow User.Login during encoding.
type userResponse struct {
	models.User

	Login    string `json:"login,omitempty"`
	Username string `json:"username,omitempty"`
}

func (h *Handler) userView(user models.User) userResponse {
	view := userResponse{User: user}
	if h.identityField == config.IdentityFieldUsername {
		view.Username = user.Login
	} else {
		view.Login = user.Login
	}
	return view
}

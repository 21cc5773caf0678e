package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Identity field names accepted by the users service.
const (
	IdentityFieldLogin    = "login"
	IdentityFieldUsername = "username"
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "post-hub",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: bcrypt.DefaultCost,
			IdentityField:    IdentityFieldLogin,
		},
		Server: Server{
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}

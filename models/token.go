package models

import "time"

// Token is a signed, time-limited bearer credential bound to a subject
// (the user's login). It is never persisted.
type Token struct {
	// Subject is the login the token was issued for.
	Subject string

	IssuedAt  time.Time
	ExpiresAt time.Time

	// SignedString is the compact JWS form sent to clients.
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenTypeBearer is the OAuth2 token type returned by the login endpoints.
const TokenTypeBearer = "bearer"

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

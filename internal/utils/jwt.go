package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-post-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by [TokenIssuer.Verify] for every kind of
// rejected token: bad signature, malformed, expired, wrong issuer or
// missing subject.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenIssuer signs and verifies HS256 bearer tokens bound to a login.
type TokenIssuer struct {
	signKey []byte
	issuer  string
	ttl     time.Duration
	clock   Clock
}

// NewTokenIssuer creates a TokenIssuer. All parameters are required.
func NewTokenIssuer(signKey, issuer string, ttl time.Duration, clock Clock) (*TokenIssuer, error) {
	if signKey == "" || issuer == "" || ttl <= 0 {
		return nil, errors.New("invalid params for token issuer")
	}
	if clock == nil {
		clock = NewRealClock()
	}

	return &TokenIssuer{
		signKey: []byte(signKey),
		issuer:  issuer,
		ttl:     ttl,
		clock:   clock,
	}, nil
}

// Issue creates a signed token for subject.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the login the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured ttl
func (i *TokenIssuer) Issue(subject string) (models.Token, error) {
	if subject == "" {
		return models.Token{}, errors.New("empty token subject")
	}

	now := i.clock.Now()
	expiresAt := now.Add(i.ttl)
	claims := &jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Subject:      subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
		SignedString: signed,
	}, nil
}

// Verify checks the signature, issuer and expiry of tokenString and returns
// its subject. Any failure is reported as [ErrInvalidToken].
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return i.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

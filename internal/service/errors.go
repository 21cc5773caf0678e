package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateLogin = errors.New("login is already taken")
	ErrDuplicateEmail = errors.New("email is already taken")

	ErrUserNotFound = errors.New("user not found")
	// ErrUserVanished is returned when a token subject no longer exists.
	ErrUserVanished = fmt.Errorf("user vanished: %w", ErrUserNotFound)

	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("forbidden")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

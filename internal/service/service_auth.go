package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and profile
// maintenance using a UserRepository for persistence, bcrypt for password
// hashing and a TokenIssuer for JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenIssuer signs and verifies access tokens. The subject is the login.
	tokenIssuer *utils.TokenIssuer

	hasher *utils.PasswordHasher

	// clock stamps created_at and updated_at.
	clock utils.Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, token issuer and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenIssuer *utils.TokenIssuer,
	hasher *utils.PasswordHasher,
	clock utils.Clock,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		hasher:         hasher,
		clock:          clock,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Login uniqueness is checked first, then email. The store constraints are
// mapped to the same errors, so a concurrent registration that wins the race
// still yields ErrDuplicateLogin or ErrDuplicateEmail.
func (a *authService) Register(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.ensureLoginFree(ctx, newUser.Login); err != nil {
		return models.User{}, err
	}
	if err := a.ensureEmailFree(ctx, newUser.Email, 0); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(newUser.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.clock.Now().UTC()
	user, err := a.userRepository.Create(ctx, models.User{
		Login:        newUser.Login,
		PasswordHash: hash,
		Email:        newUser.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("login", newUser.Login).Msg("user creation ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	log.Info().Int64("user_id", user.ID).Str("login", user.Login).Msg("user registered")
	return user, nil
}

// Login checks the credentials and issues a token bound to the login.
// Unknown logins and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, login, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("login", login).Msg("login attempt for unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by login failed")
		return models.Token{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokenIssuer.Issue(user.Login)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies token and resolves its subject. A token whose
// subject no longer exists is rejected like an invalid one.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	login, err := a.tokenIssuer.Verify(token)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.userRepository.FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("login", login).Msg("token subject does not exist")
		return models.User{}, ErrNotAuthenticated
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return user, nil
}

// GetProfile returns the account of login or ErrUserVanished.
func (a *authService) GetProfile(ctx context.Context, login string) (models.User, error) {
	user, err := a.userRepository.FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserVanished
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.GetProfile").Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the present fields of update to the account of
// login. The email is checked for uniqueness only when it changes.
func (a *authService) UpdateProfile(ctx context.Context, login string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := a.userRepository.FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if update.Email != nil {
		if *update.Email == current.Email {
			update.Email = nil
		} else if err = a.ensureEmailFree(ctx, *update.Email, current.ID); err != nil {
			return models.User{}, err
		}
	}

	updated, err := a.userRepository.Update(ctx, current.ID, update, a.clock.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Int64("user_id", current.ID).Msg("user update ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	return updated, nil
}

func (a *authService) ensureLoginFree(ctx context.Context, login string) error {
	_, err := a.userRepository.FindByLogin(ctx, login)
	switch {
	case err == nil:
		return ErrDuplicateLogin
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user search by login failed: %w", err)
	}
}

// ensureEmailFree fails when email belongs to a user other than ownerID.
func (a *authService) ensureEmailFree(ctx context.Context, email string, ownerID int64) error {
	user, err := a.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil && user.ID != ownerID:
		return ErrDuplicateEmail
	case err == nil, errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user search by email failed: %w", err)
	}
}

func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateLogin, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	default:
		return err
	}
}

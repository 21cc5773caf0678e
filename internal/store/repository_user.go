package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both postgres and sqlite connections.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns it with the store-assigned id.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, r.mapWriteError(err)
	}

	return created, nil
}

// FindByLogin returns the user with the given login or [ErrNoUserWasFound].
func (r *userRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findBy(ctx, "login", login)
}

// FindByEmail returns the user with the given email or [ErrNoUserWasFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, "email", email)
}

// Update applies the present fields of update to the user with id and
// refreshes updated_at. The login is never changed.
func (r *userRepository) Update(ctx context.Context, id int64, update models.UserUpdate, updatedAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, id, update, updatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("error updating user")
		return models.User{}, r.mapWriteError(err)
	}

	return updated, nil
}

func (r *userRepository) findBy(ctx context.Context, column string, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findBy").Str("column", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) mapWriteError(err error) error {
	if r.db.errorClassificator.Classify(err) != UniqueViolation {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch r.db.errorClassificator.ConstraintColumn(err) {
	case "email":
		return ErrEmailAlreadyExists
	default:
		return ErrLoginAlreadyExists
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		birthDate sql.Null[models.Date]
	)

	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Email,
		&user.FirstName, &user.LastName, &birthDate, &user.PhoneNumber,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if birthDate.Valid {
		user.BirthDate = &birthDate.V
	}

	return user, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts user and returns it with the store-assigned id.
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByLogin(ctx context.Context, login string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// Update applies the present fields of update and sets updated_at.
	Update(ctx context.Context, id int64, update models.UserUpdate, updatedAt time.Time) (models.User, error)
}

// PostRepository persists posts and their tags. Every method that touches
// more than one table runs in a single transaction.
type PostRepository interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Update(ctx context.Context, id int64, update models.PostUpdate, updatedAt time.Time) (models.Post, error)
	Delete(ctx context.Context, id int64) error
	ListByCreator(ctx context.Context, creatorID int64, limit, offset uint64) ([]models.Post, error)
	CountByCreator(ctx context.Context, creatorID int64) (int64, error)
}

// ErrorClassification is the dialect-neutral kind of a driver error.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated kind.
	Unclassified ErrorClassification = iota
	// UniqueViolation is a violated UNIQUE or PRIMARY KEY constraint.
	UniqueViolation
	// ForeignKeyViolation is a violated FOREIGN KEY constraint.
	ForeignKeyViolation
)

// ErrorClassificator maps driver errors of one SQL dialect to
// [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// ConstraintColumn names the column of a violated constraint, or "".
	ConstraintColumn(err error) string
}

package store

import "github.com/MKhiriev/go-post-hub/internal/logger"

// Storages groups the repositories a service binary is built from. Each
// binary owns one schema, so only the matching repository is set.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewUserStorages wires the repositories of the users service.
func NewUserStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{UserRepository: NewUserRepository(db, log)}
}

// NewPostStorages wires the repositories of the posts service.
func NewPostStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{PostRepository: NewPostRepository(db, log)}
}

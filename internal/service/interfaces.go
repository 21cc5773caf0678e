package service

import (
	"context"

	"github.com/MKhiriev/go-post-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns user accounts and the tokens issued for them.
type AuthService interface {
	Register(ctx context.Context, newUser models.NewUser) (models.User, error)
	Login(ctx context.Context, login, password string) (models.Token, error)
	// Authenticate verifies token and returns the user it was issued for.
	Authenticate(ctx context.Context, token string) (models.User, error)
	GetProfile(ctx context.Context, login string) (models.User, error)
	UpdateProfile(ctx context.Context, login string, update models.UserUpdate) (models.User, error)
}

// PostService owns posts and enforces their visibility and ownership rules.
type PostService interface {
	Create(ctx context.Context, newPost models.NewPost) (models.Post, error)
	Get(ctx context.Context, id, viewerID int64) (models.Post, error)
	Update(ctx context.Context, id, callerID int64, update models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, id, callerID int64) error
	List(ctx context.Context, creatorID int64, page, pageSize int) (models.PostPage, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the gateway's clients of the downstream services.
//
// [UsersAdapter] talks HTTP to the users service: it replays pass-through
// requests verbatim and resolves a bearer token to the caller's account.
// [PostsAdapter] calls the posts service over gRPC.
//
// Downstream failures are reported with the sentinel values defined in
// errors.go so that the gateway can map them to HTTP statuses with
// [errors.Is]. No adapter retries a call.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-post-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UsersAdapter defines the gateway's communication with the users service.
type UsersAdapter interface {
	// Forward replays the method, path, query, end-to-end headers and body
	// of r against the users service and returns the answer as received.
	// Transport failures are reported as [ErrUpstreamUnavailable].
	Forward(ctx context.Context, r *http.Request) (UpstreamResponse, error)

	// ResolveCaller returns the account the bearer token belongs to by
	// calling GET /users/me. A 401 or 404 answer is reported as
	// [ErrUnauthorized].
	ResolveCaller(ctx context.Context, token string) (models.User, error)
}

// PostsAdapter defines the gateway's communication with the posts service.
// A missing post is reported as [ErrNotFound], a denied access as
// [ErrForbidden]; both carry the downstream detail in a [DownstreamError].
type PostsAdapter interface {
	CreatePost(ctx context.Context, newPost models.NewPost) (models.Post, error)
	GetPost(ctx context.Context, id, viewerID int64) (models.Post, error)
	UpdatePost(ctx context.Context, id, callerID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id, callerID int64) error
	ListPosts(ctx context.Context, creatorID int64, page, pageSize int) (models.PostPage, error)
}

// UpstreamResponse is a downstream answer relayed to the client unchanged.
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
	"github.com/MKhiriev/go-post-hub/internal/service"
	"github.com/MKhiriev/go-post-hub/internal/validators"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.PostsServiceServer] on top of the post service.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	rpc.UnimplementedPostsServiceServer

	// services provides access to all application business operations.
	services *service.Services

	validator validators.Validator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// request validator and logger.
func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) CreatePost(ctx context.Context, in *rpc.CreatePostRequest) (*rpc.Post, error) {
	newPost := in.Model()
	if err := h.validator.Validate(ctx, newPost); err != nil {
		return nil, toStatus(ctx, err)
	}

	post, err := h.services.PostService.Create(ctx, newPost)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return rpc.PostFromModel(post), nil
}

func (h *Handler) GetPost(ctx context.Context, in *rpc.GetPostRequest) (*rpc.Post, error) {
	post, err := h.services.PostService.Get(ctx, in.ID, in.ViewerID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return rpc.PostFromModel(post), nil
}

func (h *Handler) UpdatePost(ctx context.Context, in *rpc.UpdatePostRequest) (*rpc.Post, error) {
	update := in.Model()
	if err := h.validator.Validate(ctx, update); err != nil {
		return nil, toStatus(ctx, err)
	}

	post, err := h.services.PostService.Update(ctx, in.ID, in.CallerID, update)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return rpc.PostFromModel(post), nil
}

func (h *Handler) DeletePost(ctx context.Context, in *rpc.DeletePostRequest) (*emptypb.Empty, error) {
	if err := h.services.PostService.Delete(ctx, in.ID, in.CallerID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &emptypb.Empty{}, nil
}

func (h *Handler) ListPosts(ctx context.Context, in *rpc.ListPostsRequest) (*rpc.ListPostsResponse, error) {
	page, err := h.services.PostService.List(ctx, in.CreatorID, int(in.Page), int(in.PageSize))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return rpc.PageFromModel(page), nil
}

package adapter

import (
	"context"
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

type postsGRPCAdapter struct {
	client  rpc.PostsServiceClient
	timeout time.Duration

	logger *logger.Logger
}

// DialPosts opens a client connection to the posts service. The connection
// is established lazily on the first call; the caller owns and closes it.
func DialPosts(adapterCfg config.Adapter) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(adapterCfg.PostsGRPCAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating posts service client: %w", err)
	}

	return conn, nil
}

// NewPostsGRPCAdapter constructs the gRPC implementation of [PostsAdapter]
// over conn. Every call is bounded by timeout.
func NewPostsGRPCAdapter(conn grpc.ClientConnInterface, timeout time.Duration, logger *logger.Logger) PostsAdapter {
	logger.Info().Dur("timeout", timeout).Msg("posts adapter created")
	return &postsGRPCAdapter{
		client:  rpc.NewPostsServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}
}

// callContext bounds ctx by the adapter timeout and forwards the trace id.
func (a *postsGRPCAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.TraceIDMetadataKey, traceID)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *postsGRPCAdapter) CreatePost(ctx context.Context, newPost models.NewPost) (models.Post, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.CreatePost(ctx, &rpc.CreatePostRequest{
		CreatorID:   newPost.CreatorID,
		Title:       newPost.Title,
		Description: newPost.Description,
		IsPrivate:   newPost.IsPrivate,
		Tags:        newPost.Tags,
	})
	if err != nil {
		return models.Post{}, mapStatusError(err)
	}

	return resp.Model(), nil
}

func (a *postsGRPCAdapter) GetPost(ctx context.Context, id, viewerID int64) (models.Post, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.GetPost(ctx, &rpc.GetPostRequest{ID: id, ViewerID: viewerID})
	if err != nil {
		return models.Post{}, mapStatusError(err)
	}

	return resp.Model(), nil
}

func (a *postsGRPCAdapter) UpdatePost(ctx context.Context, id, callerID int64, update models.PostUpdate) (models.Post, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.UpdatePost(ctx, &rpc.UpdatePostRequest{
		ID:          id,
		CallerID:    callerID,
		Title:       update.Title,
		Description: update.Description,
		IsPrivate:   update.IsPrivate,
		Tags:        update.Tags,
	})
	if err != nil {
		return models.Post{}, mapStatusError(err)
	}

	return resp.Model(), nil
}

func (a *postsGRPCAdapter) DeletePost(ctx context.Context, id, callerID int64) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := a.client.DeletePost(ctx, &rpc.DeletePostRequest{ID: id, CallerID: callerID}); err != nil {
		return mapStatusError(err)
	}

	return nil
}

func (a *postsGRPCAdapter) ListPosts(ctx context.Context, creatorID int64, page, pageSize int) (models.PostPage, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.ListPosts(ctx, &rpc.ListPostsRequest{
		CreatorID: creatorID,
		Page:      clampInt32(page),
		PageSize:  clampInt32(pageSize),
	})
	if err != nil {
		return models.PostPage{}, mapStatusError(err)
	}

	return resp.Model(), nil
}

// clampInt32 saturates v to the int32 range of the wire messages.
func clampInt32(v int) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

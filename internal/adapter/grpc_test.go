package adapter

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

// fakePostsServer answers with canned values and records what it saw.
type fakePostsServer struct {
	rpc.UnimplementedPostsServiceServer

	err   error
	delay time.Duration

	lastUpdate  *rpc.UpdatePostRequest
	lastList    *rpc.ListPostsRequest
	lastTraceID string
}

func (f *fakePostsServer) record(ctx context.Context) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(rpc.TraceIDMetadataKey); len(values) > 0 {
			f.lastTraceID = values[0]
		}
	}
}

func (f *fakePostsServer) CreatePost(ctx context.Context, in *rpc.CreatePostRequest) (*rpc.Post, error) {
	f.record(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.Post{
		ID: 1, Title: in.Title, CreatorID: in.CreatorID, Tags: in.Tags,
		CreatedAt: timestamppb.New(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
	}, nil
}

func (f *fakePostsServer) GetPost(ctx context.Context, in *rpc.GetPostRequest) (*rpc.Post, error) {
	f.record(ctx)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.Post{ID: in.ID, CreatorID: in.ViewerID}, nil
}

func (f *fakePostsServer) UpdatePost(ctx context.Context, in *rpc.UpdatePostRequest) (*rpc.Post, error) {
	f.record(ctx)
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.Post{ID: in.ID, CreatorID: in.CallerID}, nil
}

func (f *fakePostsServer) DeletePost(ctx context.Context, _ *rpc.DeletePostRequest) (*emptypb.Empty, error) {
	f.record(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakePostsServer) ListPosts(ctx context.Context, in *rpc.ListPostsRequest) (*rpc.ListPostsResponse, error) {
	f.record(ctx)
	f.lastList = in
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.ListPostsResponse{Posts: []*rpc.Post{}, Total: 0, Page: in.Page, PageSize: in.PageSize, TotalPages: 0}, nil
}

func newTestPostsAdapter(t *testing.T, fake *fakePostsServer, timeout time.Duration) PostsAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	rpc.RegisterPostsServiceServer(server, fake)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewPostsGRPCAdapter(conn, timeout, logger.Nop())
}

func TestPostsAdapter_CreateForwardsTraceID(t *testing.T) {
	fake := &fakePostsServer{}
	a := newTestPostsAdapter(t, fake, time.Second)

	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-9")
	post, err := a.CreatePost(ctx, models.NewPost{CreatorID: 5, Title: "t", Tags: []string{"go"}})

	require.NoError(t, err)
	assert.Equal(t, int64(5), post.CreatorID)
	assert.Equal(t, []string{"go"}, post.Tags)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), post.CreatedAt)
	assert.Equal(t, "trace-9", fake.lastTraceID)
}

func TestPostsAdapter_UpdateKeepsAbsentFields(t *testing.T) {
	fake := &fakePostsServer{}
	a := newTestPostsAdapter(t, fake, time.Second)

	title := "new"
	empty := []string{}
	_, err := a.UpdatePost(context.Background(), 3, 5, models.PostUpdate{Title: &title, Tags: &empty})

	require.NoError(t, err)
	require.NotNil(t, fake.lastUpdate)
	assert.Equal(t, "new", *fake.lastUpdate.Title)
	assert.Nil(t, fake.lastUpdate.Description)
	assert.Nil(t, fake.lastUpdate.IsPrivate)
	require.NotNil(t, fake.lastUpdate.Tags)
	assert.Empty(t, *fake.lastUpdate.Tags)
}

func TestPostsAdapter_ListPassesPaging(t *testing.T) {
	fake := &fakePostsServer{}
	a := newTestPostsAdapter(t, fake, time.Second)

	page, err := a.ListPosts(context.Background(), 5, 2, 20)

	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.lastList.Page)
	assert.Equal(t, int32(20), fake.lastList.PageSize)
	assert.Equal(t, int64(5), fake.lastList.CreatorID)
	assert.NotNil(t, page.Items)
}

func TestPostsAdapter_ListSaturatesPaging(t *testing.T) {
	fake := &fakePostsServer{}
	a := newTestPostsAdapter(t, fake, time.Second)

	_, err := a.ListPosts(context.Background(), 1, 4294967297, -4294967306)

	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), fake.lastList.Page)
	assert.Equal(t, int32(math.MinInt32), fake.lastList.PageSize)
}

func TestPostsAdapter_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		wantDetail string
	}{
		{name: "not found", err: status.Error(codes.NotFound, "post not found"), wantErr: ErrNotFound, wantDetail: "post not found"},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "forbidden"), wantErr: ErrForbidden, wantDetail: "forbidden"},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "title"), wantErr: ErrUpstreamFailure},
		{name: "internal", err: status.Error(codes.Internal, "internal server error"), wantErr: ErrUpstreamFailure},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), wantErr: ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestPostsAdapter(t, &fakePostsServer{err: tt.err}, time.Second)

			err := a.DeletePost(context.Background(), 1, 2)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantDetail != "" {
				var downstream *DownstreamError
				require.ErrorAs(t, err, &downstream)
				assert.Equal(t, tt.wantDetail, downstream.Detail)
			}
		})
	}
}

func TestPostsAdapter_Timeout(t *testing.T) {
	a := newTestPostsAdapter(t, &fakePostsServer{delay: time.Second}, 20*time.Millisecond)

	_, err := a.GetPost(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestDialPosts_Lazy(t *testing.T) {
	conn, err := DialPosts(config.Adapter{PostsGRPCAddress: "127.0.0.1:1"})
	require.NoError(t, err)
	assert.NoError(t, conn.Close())
}

package rpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/MKhiriev/go-post-hub/models"
)

func TestCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestCodec_UpdatePresence(t *testing.T) {
	codec := wireCodec{}

	title := "new"
	data, err := codec.Marshal(&UpdatePostRequest{ID: 1, CallerID: 2, Title: &title})
	require.NoError(t, err)

	var onlyTitle UpdatePostRequest
	require.NoError(t, codec.Unmarshal(data, &onlyTitle))
	assert.Equal(t, int64(1), onlyTitle.ID)
	assert.Equal(t, int64(2), onlyTitle.CallerID)
	assert.Nil(t, onlyTitle.Tags)
	assert.Nil(t, onlyTitle.Description)
	assert.Nil(t, onlyTitle.IsPrivate)
	require.NotNil(t, onlyTitle.Title)
	assert.Equal(t, "new", *onlyTitle.Title)

	empty, public := "", false
	data, err = codec.Marshal(&UpdatePostRequest{ID: 1, Description: &empty, IsPrivate: &public, Tags: &[]string{}})
	require.NoError(t, err)

	var cleared UpdatePostRequest
	require.NoError(t, codec.Unmarshal(data, &cleared))
	require.NotNil(t, cleared.Description)
	assert.Empty(t, *cleared.Description)
	require.NotNil(t, cleared.IsPrivate)
	assert.False(t, *cleared.IsPrivate)
	require.NotNil(t, cleared.Tags)
	assert.Empty(t, *cleared.Tags)
}

func TestCodec_ProtobufWireFormat(t *testing.T) {
	codec := wireCodec{}
	created := time.Date(2026, 2, 3, 4, 5, 6, 7, time.UTC)

	data, err := codec.Marshal(&Post{ID: 3, Title: "t", Tags: []string{"a", "b"}, CreatedAt: timestamppb.New(created)})
	require.NoError(t, err)

	num, typ, n := protowire.ConsumeTag(data)
	require.Positive(t, n)
	assert.Equal(t, protowire.Number(1), num)
	assert.Equal(t, protowire.VarintType, typ)

	var back Post
	require.NoError(t, codec.Unmarshal(data, &back))
	assert.Equal(t, int64(3), back.ID)
	assert.Equal(t, "t", back.Title)
	assert.Equal(t, []string{"a", "b"}, back.Tags)
	assert.True(t, created.Equal(back.CreatedAt.AsTime()))
	assert.Nil(t, back.UpdatedAt)
}

func TestCodec_ListResponseAndNegativePaging(t *testing.T) {
	codec := wireCodec{}

	data, err := codec.Marshal(&ListPostsRequest{CreatorID: 4, Page: -3, PageSize: 20})
	require.NoError(t, err)
	var req ListPostsRequest
	require.NoError(t, codec.Unmarshal(data, &req))
	assert.Equal(t, ListPostsRequest{CreatorID: 4, Page: -3, PageSize: 20}, req)

	data, err = codec.Marshal(&ListPostsResponse{Posts: []*Post{{ID: 1}, {ID: 2, Title: "x"}}, Total: 12, Page: 2, PageSize: 10, TotalPages: 2})
	require.NoError(t, err)
	var resp ListPostsResponse
	require.NoError(t, codec.Unmarshal(data, &resp))
	require.Len(t, resp.Posts, 2)
	assert.Equal(t, int64(2), resp.Posts[1].ID)
	assert.Equal(t, "x", resp.Posts[1].Title)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, int32(2), resp.TotalPages)
}

func TestCodec_DelegatesProtoMessages(t *testing.T) {
	codec := wireCodec{}

	data, err := codec.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NoError(t, codec.Unmarshal(data, &emptypb.Empty{}))

	_, err = codec.Marshal(struct{}{})
	assert.Error(t, err)
	assert.Error(t, codec.Unmarshal([]byte{0xff}, &Post{}))
}

func TestPostConversion_KeepsTimestamps(t *testing.T) {
	created := time.Date(2026, 2, 3, 4, 5, 6, 7, time.UTC)
	post := models.Post{ID: 1, Title: "t", CreatorID: 9, CreatedAt: created, UpdatedAt: created.Add(time.Hour)}

	back := PostFromModel(post).Model()
	assert.True(t, created.Equal(back.CreatedAt))
	assert.True(t, created.Add(time.Hour).Equal(back.UpdatedAt))
	assert.Equal(t, []string{}, back.Tags)
	assert.Equal(t, int64(9), back.CreatorID)
}

type echoServer struct {
	UnimplementedPostsServiceServer
}

func (echoServer) GetPost(_ context.Context, in *GetPostRequest) (*Post, error) {
	return &Post{ID: in.ID, CreatorID: in.ViewerID, Tags: []string{"x"}}, nil
}

func (echoServer) DeletePost(context.Context, *DeletePostRequest) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func newBufconnClient(t *testing.T, srv PostsServiceServer, opts ...grpc.ServerOption) PostsServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(opts...)
	RegisterPostsServiceServer(server, srv)
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

	return NewPostsServiceClient(conn)
}

func TestClient_RoundTrip(t *testing.T) {
	var seenMethod string
	client := newBufconnClient(t, echoServer{}, grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			seenMethod = info.FullMethod
			return handler(ctx, req)
		}))
	ctx := context.Background()

	post, err := client.GetPost(ctx, &GetPostRequest{ID: 5, ViewerID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ID)
	assert.Equal(t, int64(7), post.CreatorID)
	assert.Equal(t, []string{"x"}, post.Tags)
	assert.Equal(t, PostsService_GetPost_FullMethodName, seenMethod)

	_, err = client.DeletePost(ctx, &DeletePostRequest{ID: 5, CallerID: 7})
	require.NoError(t, err)

	_, err = client.ListPosts(ctx, &ListPostsRequest{CreatorID: 7})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

// Package rpc defines the posts.v1.PostsService gRPC contract: message
// types, the service descriptor, and a typed client. Payloads use the
// protobuf wire format described in posts.proto.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "posts.v1.PostsService"

// TraceIDMetadataKey is the gRPC metadata twin of the X-Trace-ID header.
const TraceIDMetadataKey = "x-trace-id"

const (
	PostsService_CreatePost_FullMethodName = "/" + ServiceName + "/CreatePost"
	PostsService_GetPost_FullMethodName    = "/" + ServiceName + "/GetPost"
	PostsService_UpdatePost_FullMethodName = "/" + ServiceName + "/UpdatePost"
	PostsService_DeletePost_FullMethodName = "/" + ServiceName + "/DeletePost"
	PostsService_ListPosts_FullMethodName  = "/" + ServiceName + "/ListPosts"
)

// PostsServiceServer is the server API for the posts service.
type PostsServiceServer interface {
	CreatePost(context.Context, *CreatePostRequest) (*Post, error)
	GetPost(context.Context, *GetPostRequest) (*Post, error)
	UpdatePost(context.Context, *UpdatePostRequest) (*Post, error)
	DeletePost(context.Context, *DeletePostRequest) (*emptypb.Empty, error)
	ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error)
}

// UnimplementedPostsServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedPostsServiceServer struct{}

func (UnimplementedPostsServiceServer) CreatePost(context.Context, *CreatePostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePost not implemented")
}

func (UnimplementedPostsServiceServer) GetPost(context.Context, *GetPostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPost not implemented")
}

func (UnimplementedPostsServiceServer) UpdatePost(context.Context, *UpdatePostRequest) (*Post, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePost not implemented")
}

func (UnimplementedPostsServiceServer) DeletePost(context.Context, *DeletePostRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePost not implemented")
}

func (UnimplementedPostsServiceServer) ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPosts not implemented")
}

// RegisterPostsServiceServer registers srv on s.
func RegisterPostsServiceServer(s grpc.ServiceRegistrar, srv PostsServiceServer) {
	s.RegisterService(&PostsService_ServiceDesc, srv)
}

// PostsService_ServiceDesc is the grpc.ServiceDesc for the posts service.
var PostsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PostsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePost",
			Handler:    unaryHandler(PostsService_CreatePost_FullMethodName, PostsServiceServer.CreatePost),
		},
		{
			MethodName: "GetPost",
			Handler:    unaryHandler(PostsService_GetPost_FullMethodName, PostsServiceServer.GetPost),
		},
		{
			MethodName: "UpdatePost",
			Handler:    unaryHandler(PostsService_UpdatePost_FullMethodName, PostsServiceServer.UpdatePost),
		},
		{
			MethodName: "DeletePost",
			Handler:    unaryHandler(PostsService_DeletePost_FullMethodName, PostsServiceServer.DeletePost),
		},
		{
			MethodName: "ListPosts",
			Handler:    unaryHandler(PostsService_ListPosts_FullMethodName, PostsServiceServer.ListPosts),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "posts/v1/posts.proto",
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(PostsServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PostsServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PostsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PostsServiceClient is the client API for the posts service.
type PostsServiceClient interface {
	CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*Post, error)
	GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*Post, error)
	UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*Post, error)
	DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error)
}

type postsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPostsServiceClient returns a client that sends every call through the
// posts.v1 payload codec.
func NewPostsServiceClient(cc grpc.ClientConnInterface) PostsServiceClient {
	return &postsServiceClient{cc: cc}
}

func (c *postsServiceClient) CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*Post, error) {
	out := new(Post)
	if err := c.cc.Invoke(ctx, PostsService_CreatePost_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postsServiceClient) GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*Post, error) {
	out := new(Post)
	if err := c.cc.Invoke(ctx, PostsService_GetPost_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postsServiceClient) UpdatePost(ctx context.Context, in *UpdatePostRequest, opts ...grpc.CallOption) (*Post, error) {
	out := new(Post)
	if err := c.cc.Invoke(ctx, PostsService_UpdatePost_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postsServiceClient) DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, PostsService_DeletePost_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *postsServiceClient) ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error) {
	out := new(ListPostsResponse)
	if err := c.cc.Invoke(ctx, PostsService_ListPosts_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

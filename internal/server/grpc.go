package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/go-post-hub/internal/handler/grpc"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
)

type grpcServer struct {
	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...))
	rpc.RegisterPostsServiceServer(server, handler)

	return &grpcServer{
		server: server,
		logger: logger,
	}
}

// Serve blocks until the server is stopped.
func (g *grpcServer) Serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(lis)
}

// Shutdown waits for in-flight calls until ctx expires, then stops hard.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

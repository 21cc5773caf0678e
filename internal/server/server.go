package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/handler"
	"github.com/MKhiriev/go-post-hub/internal/logger"
)

// shutdownTimeout bounds the graceful stop of all transports.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	httpAddress string
	grpcAddress string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		httpAddress: cfg.HTTPAddress,
		grpcAddress: cfg.GRPCAddress,
		logger:      logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	// listen before serving so that a taken port fails fast
	var httpLis, grpcLis net.Listener
	var err error
	if s.httpServer != nil {
		if httpLis, err = net.Listen("tcp", s.httpAddress); err != nil {
			return fmt.Errorf("error listening on %s: %w", s.httpAddress, err)
		}
	}
	if s.gRPCServer != nil {
		if grpcLis, err = net.Listen("tcp", s.grpcAddress); err != nil {
			if httpLis != nil {
				_ = httpLis.Close()
			}
			return fmt.Errorf("error listening on %s: %w", s.grpcAddress, err)
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	// launch all created servers
	if s.httpServer != nil {
		g.Go(func() error { return s.httpServer.Serve(httpLis) })
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.Serve(grpcLis) })
	}

	// stop all servers once the context ends or one of them fails
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	// finish HTTP server
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

// Package grpc exposes the credential checks over gRPC as auth.AuthService.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/groupauth/internal/logging"
	pb "github.com/dmitrijs2005/groupauth/internal/proto"
	"github.com/dmitrijs2005/groupauth/internal/server/services"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
)

// GroupChecker is the part of services.GroupService the handlers call.
type GroupChecker interface {
	CheckGroup(ctx context.Context, name, phrase string) (*services.CheckResult, error)
	GeneratePhrase(ctx context.Context, name string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address    string
	groups     GroupChecker
	logger     logging.Logger
	maxWorkers int
	workers    *semaphore.Weighted

	shutdownTimeout time.Duration
}

// NewGRPCServer builds a server that runs at most maxWorkers handlers at once.
func NewGRPCServer(a string, l logging.Logger, gs GroupChecker, maxWorkers int) *GRPCServer {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		groups:     gs,
		maxWorkers: maxWorkers,
		workers:    semaphore.NewWeighted(int64(maxWorkers)),
	}
}

// SetShutdownTimeout bounds GracefulStop. After d the server is stopped hard.
// Zero waits for in-flight calls indefinitely.
func (s *GRPCServer) SetShutdownTimeout(d time.Duration) {
	s.shutdownTimeout = d
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(s.maxWorkers)),
		grpc.ChainUnaryInterceptor(
			s.requestIDInterceptor,
			s.loggingInterceptor,
			s.workerLimitInterceptor,
		),
	)
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully, letting in-flight calls finish.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "workers", s.maxWorkers)

	if err := srv.Serve(lis); err != nil {
		cancel()
		<-stopped
		return err
	}
	<-stopped
	return nil
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(context.Background(), "graceful stop timed out, closing connections", "timeout", s.shutdownTimeout)
		srv.Stop()
		<-done
	}
}

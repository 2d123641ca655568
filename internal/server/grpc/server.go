// Package grpc exposes the node's documents over gRPC as
// furball.docnet.v1.DocumentService, alongside the standard health service.
package grpc

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/furball-art/furball/internal/docnet"
	"github.com/furball-art/furball/internal/logging"
	"github.com/furball-art/furball/internal/server/documents"
)

type Option func(*GRPCServer)

func WithTokenValidity(d time.Duration) Option {
	return func(s *GRPCServer) { s.tokenValidity = d }
}

// WithClockSkew sets how far an authentication timestamp may be from now.
func WithClockSkew(d time.Duration) Option {
	return func(s *GRPCServer) { s.clockSkew = d }
}

func WithMaxMessageBytes(n int) Option {
	return func(s *GRPCServer) { s.maxMessageBytes = n }
}

type GRPCServer struct {
	docnet.UnimplementedDocumentServiceServer
	address         string
	docs            documents.Service
	logger          logging.Logger
	jwtSecret       []byte
	tokenValidity   time.Duration
	clockSkew       time.Duration
	maxMessageBytes int
	now             func() time.Time
	health          *health.Server
}

func NewGRPCServer(a string, l logging.Logger, docs documents.Service, secretKey string, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		docs:            docs,
		jwtSecret:       []byte(secretKey),
		tokenValidity:   15 * time.Minute,
		clockSkew:       2 * time.Minute,
		maxMessageBytes: 16 << 20,
		now:             time.Now,
		health:          health.NewServer(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newServer builds a grpc.Server with the document and health services
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxRecvMsgSize(s.maxMessageBytes),
		grpc.MaxSendMsgSize(s.maxMessageBytes),
	)

	docnet.RegisterDocumentServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(docnet.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Package server assembles the gRPC server: the forge and player services,
// the health service, and the logging and recovery interceptors
package server

import (
	"context"
	"log/slog"
	"runtime/debug"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/forge"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/player"

	// registers the json codec used by the forge services
	_ "github.com/KirkDiggler/forge-api/internal/pkg/jsoncodec"
)

// Config holds the services the server exposes
type Config struct {
	ForgeService  forge.Service
	PlayerService player.Service

	// Logger receives the request logs; slog.Default() when nil
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ForgeService == nil {
		vb.RequiredField("ForgeService")
	}
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}

	return vb.Build()
}

// Server is a configured gRPC server with its health service
type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

// New builds the gRPC server and registers every service on it
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	forgeHandler, err := v1alpha1.NewForgeHandler(&v1alpha1.ForgeHandlerConfig{ForgeService: cfg.ForgeService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create forge handler")
	}
	playerHandler, err := v1alpha1.NewPlayerHandler(&v1alpha1.PlayerHandlerConfig{PlayerService: cfg.PlayerService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player handler")
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic in grpc handler", "panic", p, "stack", string(debug.Stack()))
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterForgeServiceServer(srv, forgeHandler)
	v1alpha1.RegisterPlayerServiceServer(srv, playerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ForgeServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.PlayerServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return &Server{GRPC: srv, Health: healthServer}, nil
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

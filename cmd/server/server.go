package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/internal/clients/catalog"
	"github.com/KirkDiggler/forge-api/internal/config"
	"github.com/KirkDiggler/forge-api/internal/engine"
	"github.com/KirkDiggler/forge-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/forge-api/internal/logger"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/forge"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/player"
	"github.com/KirkDiggler/forge-api/internal/pkg/clock"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
	forgesession "github.com/KirkDiggler/forge-api/internal/repositories/forge_session"
	playerrepo "github.com/KirkDiggler/forge-api/internal/repositories/player"
	"github.com/KirkDiggler/forge-api/internal/server"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Forge API gRPC server. Settings come from FORGE_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, closer := logger.New(cfg.Log)
	defer func() {
		_ = closer.Close() // nolint:errcheck // nothing to do on shutdown
	}()
	slog.SetDefault(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	srv, cleanup, err := buildServer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.RedisAddr)
		if err := srv.GRPC.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		srv.Health.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GRPC.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.GRPC.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildServer wires redis, the repositories, the engine and the
// orchestrators behind the gRPC server
func buildServer(ctx context.Context, cfg *config.Config) (*server.Server, func(), error) {
	rdb, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DialTimeout: 5 * time.Second,
		MaxRetries:  3,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	cleanup := func() {
		_ = rdb.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	if err := redisclient.Ping(ctx, rdb, 5*time.Second); err != nil {
		cleanup()
		return nil, nil, err
	}

	clk := clock.New()
	players, err := playerrepo.NewRedisRepository(&playerrepo.Config{Client: rdb, Clock: clk})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	sessions, err := forgesession.NewRedisRepository(&forgesession.Config{Client: rdb, Clock: clk})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create forge session repository: %w", err)
	}

	cat, err := catalog.New(nil)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	adapterCfg := &rpgtoolkit.AdapterConfig{DiceRoller: dice.DefaultRoller}
	if cfg.RNGSeed != 0 {
		slog.Warn("using seeded randomness", "seed", cfg.RNGSeed)
		adapterCfg.Randomizer = engine.NewSeededRandomizer(cfg.RNGSeed)
	}
	eng, err := rpgtoolkit.NewAdapter(adapterCfg)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	equipIDs := idgen.NewUUID("eq")
	playerService, err := player.NewOrchestrator(&player.Config{
		PlayerRepo:           players,
		Catalog:              cat,
		Engine:               eng,
		MaterialIDGenerator:  idgen.NewUUID("mat"),
		EquipmentIDGenerator: equipIDs,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create player service: %w", err)
	}

	forgeService, err := forge.NewOrchestrator(&forge.Config{
		PlayerRepo:           players,
		SessionRepo:          sessions,
		Engine:               eng,
		EventBus:             events.NewBus(),
		SessionIDGenerator:   idgen.NewUUID("forge"),
		EquipmentIDGenerator: equipIDs,
		SessionTTL:           cfg.SessionTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create forge service: %w", err)
	}

	srv, err := server.New(&server.Config{
		ForgeService:  forgeService,
		PlayerService: playerService,
		Logger:        slog.Default(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create server: %w", err)
	}

	return srv, cleanup, nil
}

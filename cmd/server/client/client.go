// Package client provides test commands for the Forge API gRPC services
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/handlers/forge/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared by most commands
	playerID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Forge API",
	Long:  `Client commands allow you to play the forge by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player-id", "", "Player ID")

	// Player commands
	ClientCmd.AddCommand(createPlayerCmd)
	ClientCmd.AddCommand(getPlayerCmd)
	ClientCmd.AddCommand(buyMaterialCmd)
	ClientCmd.AddCommand(unlockTalentCmd)
	ClientCmd.AddCommand(sellEquipmentCmd)
	ClientCmd.AddCommand(claimLootCmd)

	// Forge commands
	ClientCmd.AddCommand(startForgeCmd)
	ClientCmd.AddCommand(getForgeCmd)
	ClientCmd.AddCommand(forgeActionCmd)
	ClientCmd.AddCommand(applyDebuffCmd)
	ClientCmd.AddCommand(completeForgeCmd)
	ClientCmd.AddCommand(abandonForgeCmd)
}

// clients bundles both service clients over one connection
type clients struct {
	forge  v1alpha1.ForgeServiceClient
	player v1alpha1.PlayerServiceClient
}

// connect dials the server and returns the clients, a request context and a
// cleanup func
func connect() (*clients, context.Context, func(), error) {
	if playerID == "" {
		return nil, nil, nil, fmt.Errorf("--player-id is required")
	}

	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	cleanup := func() {
		cancel()
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return &clients{
		forge:  v1alpha1.NewForgeServiceClient(conn),
		player: v1alpha1.NewPlayerServiceClient(conn),
	}, ctx, cleanup, nil
}

// describe turns a status error back into a readable error with its meta
func describe(action string, err error) error {
	back := errors.FromGRPCError(err)
	if meta := errors.GetMeta(back); len(meta) > 0 {
		return fmt.Errorf("failed to %s: %s %v", action, errors.GetMessage(back), meta)
	}
	return fmt.Errorf("failed to %s: %w", action, back)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

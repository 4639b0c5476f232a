// Package main is the entry point for the forge gRPC server and its test
// client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/forge-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "forge-api",
	Short: "Forge API gRPC Server",
	Long:  `Forge API serves the blacksmith forging minigame: players, the material shop, talents and forge sessions.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// Package client provides commands that play the game against a running server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/render"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	playerID   int64
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Play against a running server",
	Long:  `Client commands send one game action per invocation and print the rendered result.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().Int64Var(&playerID, "player", 1, "player id")

	// Character and world
	ClientCmd.AddCommand(profileCmd)
	ClientCmd.AddCommand(mapCmd)
	ClientCmd.AddCommand(travelCmd)
	ClientCmd.AddCommand(restCmd)

	// Shop
	ClientCmd.AddCommand(shopCmd)
	ClientCmd.AddCommand(buyCmd)
	ClientCmd.AddCommand(equipCmd)

	// Quests and story
	ClientCmd.AddCommand(questsCmd)
	ClientCmd.AddCommand(claimCmd)
	ClientCmd.AddCommand(storyCmd)
	ClientCmd.AddCommand(bossCmd)
	ClientCmd.AddCommand(leaderboardCmd)

	// Battle
	ClientCmd.AddCommand(fightCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(defendCmd)
	ClientCmd.AddCommand(castCmd)
	ClientCmd.AddCommand(potionCmd)
	ClientCmd.AddCommand(fleeCmd)
	ClientCmd.AddCommand(simulateCmd)
}

// createGameClient creates a game service client
func createGameClient() (v1alpha1.GameServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// call runs one request and prints its rendering. Declined actions are
// printed, not returned, so the exit status only reflects real failures.
func call[T any](cmd *cobra.Command, do func(context.Context, v1alpha1.GameServiceClient) (*T, error), show func(*T) string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := do(ctx, client)
	if err != nil {
		if errors.IsDeclined(err) {
			fmt.Fprintln(cmd.OutOrStdout(), render.Error(err))
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), show(resp))
	return nil
}

func degradedNote(degraded bool) string {
	if !degraded {
		return ""
	}
	return "\n" + render.Warning("progress could not be saved, it will be retried on your next action")
}

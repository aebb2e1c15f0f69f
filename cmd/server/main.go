// Package main is the entry point for the game server and its client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Richard10-cpu/termux-telegram-rpg/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg",
	Short: "Turn-based text RPG server",
	Long:  `rpg serves a turn-based text RPG over gRPC: battles, towns, quests and a story campaign.`,
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

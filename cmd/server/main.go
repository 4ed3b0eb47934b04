// Package main is the entry point for the character sheet server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "D&D 5e character sheet server",
	Long: `rpg-sheet stores D&D 5e characters, derives their sheets and walks them
through level ups over a gRPC interface.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(srdCmd)
}

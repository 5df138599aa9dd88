package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bybysker/goal-tracker/cmd/configure/commands"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "goal-tracker-configure",
		Short: "Operations tool for the Goal Tracker API",
		Long:  "CLI tool for verifying connectivity and inspecting stored data",
	}

	rootCmd.AddCommand(commands.NewTestCmd())
	rootCmd.AddCommand(commands.NewProfileCmd())
	rootCmd.AddCommand(commands.NewGoalsCmd())
	rootCmd.AddCommand(commands.NewIndexCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

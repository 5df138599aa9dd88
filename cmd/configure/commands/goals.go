package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bybysker/goal-tracker/internal/config"
	"github.com/bybysker/goal-tracker/internal/store/firestore"
)

// NewGoalsCmd creates the goals command
func NewGoalsCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List a user's goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			docStore, err := firestore.NewStore(ctx, cfg.FirestoreProjectID)
			if err != nil {
				return fmt.Errorf("failed to connect to Firestore: %w", err)
			}
			defer docStore.Close()

			goals, err := docStore.ListGoals(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to list goals: %w", err)
			}
			if len(goals) == 0 {
				fmt.Printf("No goals stored for user %s\n", userID)
				return nil
			}

			for _, g := range goals {
				fmt.Printf("%s  %s (deadline %s, progress %.0f%%)\n", g.ID, g.Name, g.Deadline, g.Progress)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to look up (required)")

	return cmd
}

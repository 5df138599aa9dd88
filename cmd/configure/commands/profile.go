package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bybysker/goal-tracker/internal/config"
	"github.com/bybysker/goal-tracker/internal/store/firestore"
)

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show a user's stored profile",
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

			profile, err := docStore.GetProfile(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to read profile: %w", err)
			}
			if profile == nil {
				fmt.Printf("No profile stored for user %s\n", userID)
				return nil
			}

			fmt.Printf("Summary:\n%s\n\nGrowth opportunities:\n%s\n", profile.Summary, profile.Opportunities)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to look up (required)")

	return cmd
}

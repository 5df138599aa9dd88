package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/config"
	"github.com/bybysker/goal-tracker/internal/ragindex"
)

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Ensure the vector index exists",
		Long:  "Create the serverless vector index if it does not already exist and print its host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.PineconeAPIKey == "" {
				return fmt.Errorf("PINECONE_API_KEY is not configured")
			}

			idx, err := ragindex.New(cfg.PineconeAPIKey, cfg.OpenAIKey, zap.NewNop())
			if err != nil {
				return fmt.Errorf("failed to create index client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			host, err := idx.EnsureIndex(ctx)
			if err != nil {
				return fmt.Errorf("failed to ensure index: %w", err)
			}

			fmt.Printf("✓ Index %s available at %s\n", ragindex.IndexName, host)
			return nil
		},
	}

	return cmd
}

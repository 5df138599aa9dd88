package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/config"
	"github.com/bybysker/goal-tracker/internal/services/llm"
)

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test LLM connectivity",
		Long:  "Issue a trivial completion to verify the OpenAI API key and model configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			client := llm.NewClientWithLogger(cfg.OpenAIKey, cfg.TextModel, cfg.StructuredModel, zap.NewNop(), false)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			fmt.Printf("Testing completion with model: %s\n", cfg.TextModel)
			text, err := client.Complete(ctx, "You are a connectivity probe.", "Reply with the single word OK.")
			if err != nil {
				return fmt.Errorf("completion failed: %w", err)
			}

			fmt.Printf("Response: %s\n", text)
			fmt.Println("✓ LLM connectivity test passed")
			return nil
		},
	}

	return cmd
}

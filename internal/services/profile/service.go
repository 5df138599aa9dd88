// Package profile turns raw questionnaire answers into a narrative user
// profile via one structured completion and persists it.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/prompts"
	"github.com/bybysker/goal-tracker/internal/services/llm"
	"github.com/bybysker/goal-tracker/internal/store"
)

// refinedProfileSchema constrains the refinement completion to the two
// narrative paragraphs.
var refinedProfileSchema = llm.ResponseSchema{
	Name:        "refined_profile",
	Description: "Personality summary and growth opportunities derived from questionnaire answers",
	Schema: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"profile_summary":      map[string]any{"type": "string"},
			"growth_opportunities": map[string]any{"type": "string"},
		},
		"required": []string{"profile_summary", "growth_opportunities"},
	},
}

// Service refines and persists user profiles.
type Service struct {
	completer llm.Completer
	profiles  store.ProfileStore
	logger    *zap.Logger
}

// New creates a profile service.
func New(completer llm.Completer, profiles store.ProfileStore, logger *zap.Logger) *Service {
	return &Service{completer: completer, profiles: profiles, logger: logger}
}

// Refine sends the raw questionnaire through one structured completion and
// returns the refined profile. No validation is performed on field lengths
// or content.
func (s *Service) Refine(ctx context.Context, raw models.RawProfile) (*models.RefinedProfile, error) {
	userPrompt := prompts.Render(prompts.ProfileUser, map[string]string{
		"RESPONSES": FormatResponses(raw),
	})

	payload, err := s.completer.CompleteStructured(ctx, prompts.ProfileSystem, userPrompt, refinedProfileSchema)
	if err != nil {
		return nil, fmt.Errorf("refine profile: %w", err)
	}

	var refined models.RefinedProfile
	if err := json.Unmarshal(payload, &refined); err != nil {
		return nil, &llm.SchemaError{Schema: refinedProfileSchema.Name, Err: err}
	}

	if s.logger != nil {
		s.logger.Info("profile_refined",
			zap.Int("summary_length", len(refined.ProfileSummary)),
			zap.Int("opportunities_length", len(refined.GrowthOpportunities)),
		)
	}

	return &refined, nil
}

// Save overwrites the user's profile document with the refined output
// (full replace, not merge).
func (s *Service) Save(ctx context.Context, userID string, refined *models.RefinedProfile) error {
	profile := &models.UserProfile{
		Summary:       refined.ProfileSummary,
		Opportunities: refined.GrowthOpportunities,
	}

	if err := s.profiles.SaveProfile(ctx, userID, profile); err != nil {
		return fmt.Errorf("save profile for user %s: %w", userID, err)
	}

	if s.logger != nil {
		s.logger.Info("profile_saved", zap.String("user_id", userID))
	}
	return nil
}

// FormatResponses renders the raw answers as the numbered list the
// refinement prompt expects.
func FormatResponses(raw models.RawProfile) string {
	return fmt.Sprintf(
		"1. Openness: %s\n2. Conscientiousness: %s\n3. Extraversion: %s\n4. Agreeableness: %s\n5. Neuroticism: %s\n6. Passions: %s\n7. Life Goals: %s",
		raw.Openness,
		raw.Conscientiousness,
		raw.Extraversion,
		raw.Agreeableness,
		raw.Neuroticism,
		raw.Passions,
		raw.LifeGoals,
	)
}

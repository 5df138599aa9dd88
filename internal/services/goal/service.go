// Package goal implements the goal-decomposition pipeline: SMART-goal
// refinement from a what/why/when triple, and plan generation that breaks
// a validated SMART goal into persisted milestones and scored tasks.
package goal

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/prompts"
	"github.com/bybysker/goal-tracker/internal/services/llm"
	"github.com/bybysker/goal-tracker/internal/store"
	"github.com/bybysker/goal-tracker/internal/validation"
)

// planSchema constrains the plan completion to the nested
// goal/milestones/tasks record the persistence step expects. Ids and
// back-references are deliberately absent; they are assigned after the
// call returns, never trusted from model output.
var planSchema = llm.ResponseSchema{
	Name:        "goal_plan",
	Description: "Work breakdown of a SMART goal into milestones and scored tasks",
	Schema: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"deadline":    map[string]any{"type": "string"},
			"milestones": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"deadline":    map[string]any{"type": "string"},
						"tasks": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":                 "object",
								"additionalProperties": false,
								"properties": map[string]any{
									"name":           map[string]any{"type": "string"},
									"description":    map[string]any{"type": "string"},
									"duration_hours": map[string]any{"type": "integer"},
									"simplicity":     map[string]any{"type": "integer"},
									"importance":     map[string]any{"type": "integer"},
									"urgency":        map[string]any{"type": "integer"},
								},
								"required": []string{"name", "description", "duration_hours", "simplicity", "importance", "urgency"},
							},
						},
					},
					"required": []string{"name", "description", "deadline", "tasks"},
				},
			},
		},
		"required": []string{"name", "description", "deadline", "milestones"},
	},
}

// planResponse mirrors planSchema for decoding.
type planResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Milestones  []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		Tasks       []struct {
			Name          string `json:"name"`
			Description   string `json:"description"`
			DurationHours int    `json:"duration_hours"`
			Simplicity    int    `json:"simplicity"`
			Importance    int    `json:"importance"`
			Urgency       int    `json:"urgency"`
		} `json:"tasks"`
	} `json:"milestones"`
}

// Service implements SMART-goal refinement and plan generation.
type Service struct {
	completer llm.Completer
	profiles  store.ProfileStore
	plans     store.PlanStore
	logger    *zap.Logger
}

// New creates a goal service.
func New(completer llm.Completer, profiles store.ProfileStore, plans store.PlanStore, logger *zap.Logger) *Service {
	return &Service{completer: completer, profiles: profiles, plans: plans, logger: logger}
}

// SmartGoal refines a what/why/when triple plus the user's stored profile
// into a single SMART-goal sentence. The result is not persisted; the
// caller round-trips the validated text into GeneratePlan later, and the
// service does not re-validate what comes back.
func (s *Service) SmartGoal(ctx context.Context, userID string, pre models.PreGoal) (string, error) {
	profileText, err := s.profileText(ctx, userID)
	if err != nil {
		return "", err
	}

	userPrompt := prompts.Render(prompts.SmartGoalUser, map[string]string{
		"WHAT":    pre.What,
		"WHY":     pre.Why,
		"WHEN":    pre.When,
		"PROFILE": profileText,
	})

	goalText, err := s.completer.Complete(ctx, prompts.SmartGoalSystem, userPrompt)
	if err != nil {
		return "", fmt.Errorf("refine smart goal: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("smart_goal_refined",
			zap.String("user_id", userID),
			zap.Int("goal_length", len(goalText)),
		)
	}

	return goalText, nil
}

// GeneratePlan breaks a validated SMART goal into a goal/milestone/task
// tree via one structured completion and persists it atomically. The ≤5
// milestone and ≤8 task limits are prompt instructions only: over-long
// model output is accepted, not truncated. All ids and back-references in
// the returned tree come from the store, not from the model.
func (s *Service) GeneratePlan(ctx context.Context, userID, validatedGoal string) (*models.Plan, error) {
	// The profile load is best effort: a missing profile yields empty
	// text, and a store failure must not block planning either.
	if _, err := s.profileText(ctx, userID); err != nil {
		if s.logger != nil {
			s.logger.Warn("profile_load_failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	userPrompt := prompts.Render(prompts.PlanUser, map[string]string{
		"SMART_GOAL": validatedGoal,
	})

	payload, err := s.completer.CompleteStructured(ctx, prompts.PlanSystem, userPrompt, planSchema)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	var resp planResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &llm.SchemaError{Schema: planSchema.Name, Err: err}
	}

	plan := &models.Plan{
		Goal: models.Goal{
			Name:        resp.Name,
			Description: resp.Description,
			Deadline:    resp.Deadline,
			Progress:    0,
		},
	}
	for _, ms := range resp.Milestones {
		pm := models.PlanMilestone{
			Milestone: models.Milestone{
				Name:        ms.Name,
				Description: ms.Description,
				Deadline:    ms.Deadline,
			},
		}
		for _, task := range ms.Tasks {
			pm.Tasks = append(pm.Tasks, models.Task{
				Name:          task.Name,
				Description:   task.Description,
				DurationHours: task.DurationHours,
				Simplicity:    task.Simplicity,
				Importance:    task.Importance,
				Urgency:       task.Urgency,
				Completed:     false,
			})
		}
		plan.Milestones = append(plan.Milestones, pm)
	}

	s.warnOnScoreViolations(userID, plan)

	stamped, err := s.plans.CreatePlan(ctx, userID, plan)
	if err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	if s.logger != nil {
		taskCount := 0
		for _, ms := range stamped.Milestones {
			taskCount += len(ms.Tasks)
		}
		s.logger.Info("plan_generated",
			zap.String("user_id", userID),
			zap.String("goal_id", stamped.Goal.ID),
			zap.Int("milestone_count", len(stamped.Milestones)),
			zap.Int("task_count", taskCount),
		)
	}

	return stamped, nil
}

// warnOnScoreViolations logs tasks whose scores fall outside the 1-5
// range the prompt asks for. The plan is persisted either way; the range
// is an instruction to the model, not a hard constraint.
func (s *Service) warnOnScoreViolations(userID string, plan *models.Plan) {
	if s.logger == nil {
		return
	}
	for _, pm := range plan.Milestones {
		for _, task := range pm.Tasks {
			for name, score := range map[string]int{
				"simplicity": task.Simplicity,
				"importance": task.Importance,
				"urgency":    task.Urgency,
			} {
				if err := validation.ValidateTaskScore(score); err != nil {
					s.logger.Warn("task_score_out_of_range",
						zap.String("user_id", userID),
						zap.String("task", task.Name),
						zap.String("score", name),
						zap.Int("value", score),
					)
				}
			}
		}
	}
}

// profileText loads the user's profile and renders it for prompt
// substitution. A missing profile yields empty text, not an error.
func (s *Service) profileText(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load profile for user %s: %w", userID, err)
	}
	if profile == nil {
		return "", nil
	}
	return fmt.Sprintf("Personality Summary:\n%s\n\nGrowth Opportunities:\n%s", profile.Summary, profile.Opportunities), nil
}

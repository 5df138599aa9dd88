package goal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/services/llm"
)

// fakeCompleter captures prompts and returns canned responses.
type fakeCompleter struct {
	completeText   string
	completeErr    error
	structuredJSON string
	structuredErr  error

	lastSystemPrompt string
	lastUserPrompt   string
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserPrompt = userPrompt
	return f.completeText, f.completeErr
}

func (f *fakeCompleter) CompleteStructured(_ context.Context, systemPrompt, userPrompt string, _ llm.ResponseSchema) (json.RawMessage, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserPrompt = userPrompt
	if f.structuredErr != nil {
		return nil, f.structuredErr
	}
	return json.RawMessage(f.structuredJSON), nil
}

// fakeProfileStore returns a fixed profile or error and counts reads.
type fakeProfileStore struct {
	profile  *models.UserProfile
	err      error
	getCalls int
}

func (f *fakeProfileStore) GetProfile(context.Context, string) (*models.UserProfile, error) {
	f.getCalls++
	return f.profile, f.err
}

func (f *fakeProfileStore) SaveProfile(_ context.Context, _ string, profile *models.UserProfile) error {
	f.profile = profile
	return nil
}

// fakePlanStore stamps ids the way the Firestore store does: generated
// ids for every document, back-references from the parents.
type fakePlanStore struct {
	createErr   error
	createCalls int
}

func (f *fakePlanStore) CreatePlan(_ context.Context, _ string, plan *models.Plan) (*models.Plan, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}

	stamped := &models.Plan{Goal: plan.Goal}
	stamped.Goal.ID = uuid.NewString()
	for _, pm := range plan.Milestones {
		milestone := pm.Milestone
		milestone.ID = uuid.NewString()
		milestone.GoalID = stamped.Goal.ID

		stampedMs := models.PlanMilestone{Milestone: milestone}
		for _, task := range pm.Tasks {
			task.ID = uuid.NewString()
			task.GoalID = stamped.Goal.ID
			task.MilestoneID = milestone.ID
			stampedMs.Tasks = append(stampedMs.Tasks, task)
		}
		stamped.Milestones = append(stamped.Milestones, stampedMs)
	}
	return stamped, nil
}

func (f *fakePlanStore) GetGoal(context.Context, string, string) (*models.Goal, error) {
	return nil, nil
}

func (f *fakePlanStore) ListGoals(context.Context, string) ([]*models.Goal, error) {
	return nil, nil
}

func planJSON(milestones, tasksPerMilestone int) string {
	var sb strings.Builder
	sb.WriteString(`{"name":"Run a marathon","description":"Train and race","deadline":"2026-12-01","milestones":[`)
	for m := 0; m < milestones; m++ {
		if m > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"name":"Milestone %d","description":"Phase %d","deadline":"2026-10-01","tasks":[`, m+1, m+1)
		for t := 0; t < tasksPerMilestone; t++ {
			if t > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, `{"name":"Task %d.%d","description":"Do it","duration_hours":4,"simplicity":3,"importance":5,"urgency":2}`, m+1, t+1)
		}
		sb.WriteString("]}")
	}
	sb.WriteString("]}")
	return sb.String()
}

func TestSmartGoal(t *testing.T) {
	t.Parallel()

	t.Run("empty profile substitutes pre-goal fields", func(t *testing.T) {
		t.Parallel()

		completer := &fakeCompleter{completeText: "Learn 20 songs on guitar within 3 months, practicing 30 minutes daily."}
		svc := New(completer, &fakeProfileStore{}, &fakePlanStore{}, nil)

		got, err := svc.SmartGoal(context.Background(), "u1", models.PreGoal{
			What: "Learn guitar",
			Why:  "hobby",
			When: "3 months",
		})
		if err != nil {
			t.Fatalf("SmartGoal() error = %v", err)
		}
		if got != completer.completeText {
			t.Errorf("SmartGoal() = %q, want raw completion text", got)
		}

		for _, want := range []string{"Learn guitar", "hobby", "3 months"} {
			if !strings.Contains(completer.lastUserPrompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
		if strings.Contains(completer.lastUserPrompt, "$WHAT") {
			t.Error("prompt still contains the $WHAT placeholder")
		}
	})

	t.Run("stored profile text is substituted", func(t *testing.T) {
		t.Parallel()

		completer := &fakeCompleter{completeText: "ok"}
		profiles := &fakeProfileStore{profile: &models.UserProfile{Summary: "Curious and organized", Opportunities: "Network more"}}
		svc := New(completer, profiles, &fakePlanStore{}, nil)

		if _, err := svc.SmartGoal(context.Background(), "u1", models.PreGoal{What: "w", Why: "y", When: "n"}); err != nil {
			t.Fatalf("SmartGoal() error = %v", err)
		}
		if !strings.Contains(completer.lastUserPrompt, "Curious and organized") {
			t.Error("prompt missing profile summary")
		}
		if !strings.Contains(completer.lastUserPrompt, "Network more") {
			t.Error("prompt missing growth opportunities")
		}
	})

	t.Run("completion failure propagates", func(t *testing.T) {
		t.Parallel()

		cause := &llm.CompletionError{Operation: "complete", Model: "m", Err: errors.New("boom")}
		svc := New(&fakeCompleter{completeErr: cause}, &fakeProfileStore{}, &fakePlanStore{}, nil)

		if _, err := svc.SmartGoal(context.Background(), "u1", models.PreGoal{}); !llm.IsCompletionError(err) {
			t.Errorf("expected CompletionError, got %v", err)
		}
	})

	t.Run("profile store failure propagates", func(t *testing.T) {
		t.Parallel()

		svc := New(&fakeCompleter{}, &fakeProfileStore{err: errors.New("unavailable")}, &fakePlanStore{}, nil)

		if _, err := svc.SmartGoal(context.Background(), "u1", models.PreGoal{}); err == nil {
			t.Error("expected error when profile load fails")
		}
	})
}

func TestGeneratePlan(t *testing.T) {
	t.Parallel()

	t.Run("returned tree is fully id-stamped", func(t *testing.T) {
		t.Parallel()

		completer := &fakeCompleter{structuredJSON: planJSON(3, 4)}
		svc := New(completer, &fakeProfileStore{}, &fakePlanStore{}, nil)

		plan, err := svc.GeneratePlan(context.Background(), "u1", "Run a marathon in under 4 hours within a year.")
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}

		if plan.Goal.ID == "" {
			t.Fatal("goal id not assigned")
		}
		if plan.Goal.Progress != 0 {
			t.Errorf("new goal progress = %v, want 0", plan.Goal.Progress)
		}
		if len(plan.Milestones) > models.MaxMilestonesPerGoal {
			t.Errorf("milestone count = %d, want <= %d", len(plan.Milestones), models.MaxMilestonesPerGoal)
		}
		for _, pm := range plan.Milestones {
			if pm.Milestone.ID == "" {
				t.Error("milestone id not assigned")
			}
			if pm.Milestone.GoalID != plan.Goal.ID {
				t.Errorf("milestone goal_id = %q, want %q", pm.Milestone.GoalID, plan.Goal.ID)
			}
			if len(pm.Tasks) > models.MaxTasksPerMilestone {
				t.Errorf("task count = %d, want <= %d", len(pm.Tasks), models.MaxTasksPerMilestone)
			}
			for _, task := range pm.Tasks {
				if task.ID == "" {
					t.Error("task id not assigned")
				}
				if task.GoalID != plan.Goal.ID {
					t.Errorf("task goal_id = %q, want %q", task.GoalID, plan.Goal.ID)
				}
				if task.MilestoneID != pm.Milestone.ID {
					t.Errorf("task milestone_id = %q, want %q", task.MilestoneID, pm.Milestone.ID)
				}
				if task.Completed {
					t.Error("new task marked completed")
				}
			}
		}
	})

	t.Run("consults the profile store before generating", func(t *testing.T) {
		t.Parallel()

		profiles := &fakeProfileStore{profile: &models.UserProfile{Summary: "S", Opportunities: "G"}}
		svc := New(&fakeCompleter{structuredJSON: planJSON(1, 1)}, profiles, &fakePlanStore{}, nil)

		if _, err := svc.GeneratePlan(context.Background(), "u1", "goal"); err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if profiles.getCalls == 0 {
			t.Error("profile store was never consulted")
		}
	})

	t.Run("profile store failure does not block planning", func(t *testing.T) {
		t.Parallel()

		profiles := &fakeProfileStore{err: errors.New("unavailable")}
		plans := &fakePlanStore{}
		svc := New(&fakeCompleter{structuredJSON: planJSON(2, 2)}, profiles, plans, nil)

		plan, err := svc.GeneratePlan(context.Background(), "u1", "goal")
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v, want best-effort success", err)
		}
		if plan.Goal.ID == "" {
			t.Error("plan not persisted after profile load failure")
		}
		if profiles.getCalls == 0 {
			t.Error("profile store was never consulted")
		}
	})

	t.Run("prompt carries the validated goal verbatim", func(t *testing.T) {
		t.Parallel()

		completer := &fakeCompleter{structuredJSON: planJSON(1, 1)}
		svc := New(completer, &fakeProfileStore{}, &fakePlanStore{}, nil)

		const goalText = "Launch a photography side business within six months."
		if _, err := svc.GeneratePlan(context.Background(), "u1", goalText); err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if !strings.Contains(completer.lastUserPrompt, goalText) {
			t.Error("prompt missing the validated goal text")
		}
		if strings.Contains(completer.lastUserPrompt, "$SMART_GOAL") {
			t.Error("prompt still contains the $SMART_GOAL placeholder")
		}
	})

	t.Run("over-limit model output is accepted as-is", func(t *testing.T) {
		t.Parallel()

		// 6 milestones exceeds the instruction limit of 5; the service
		// neither rejects nor truncates.
		completer := &fakeCompleter{structuredJSON: planJSON(6, 2)}
		svc := New(completer, &fakeProfileStore{}, &fakePlanStore{}, nil)

		plan, err := svc.GeneratePlan(context.Background(), "u1", "goal")
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if len(plan.Milestones) != 6 {
			t.Errorf("milestone count = %d, want 6 (permissive)", len(plan.Milestones))
		}
	})

	t.Run("completion failure aborts before persistence", func(t *testing.T) {
		t.Parallel()

		plans := &fakePlanStore{}
		cause := &llm.CompletionError{Operation: "complete_structured", Model: "m", Err: errors.New("boom")}
		svc := New(&fakeCompleter{structuredErr: cause}, &fakeProfileStore{}, plans, nil)

		if _, err := svc.GeneratePlan(context.Background(), "u1", "goal"); !llm.IsCompletionError(err) {
			t.Errorf("expected CompletionError, got %v", err)
		}
		if plans.createCalls != 0 {
			t.Errorf("store written %d times after a failed completion", plans.createCalls)
		}
	})

	t.Run("malformed structured output is a schema error", func(t *testing.T) {
		t.Parallel()

		completer := &fakeCompleter{structuredJSON: `{"milestones":"not an array"}`}
		svc := New(completer, &fakeProfileStore{}, &fakePlanStore{}, nil)

		if _, err := svc.GeneratePlan(context.Background(), "u1", "goal"); !llm.IsSchemaError(err) {
			t.Errorf("expected SchemaError, got %v", err)
		}
	})

	t.Run("out-of-range scores are logged but persisted", func(t *testing.T) {
		t.Parallel()

		const badScorePlan = `{"name":"G","description":"D","deadline":"2026-12-01","milestones":[` +
			`{"name":"M","description":"D","deadline":"2026-10-01","tasks":[` +
			`{"name":"T","description":"D","duration_hours":4,"simplicity":9,"importance":3,"urgency":2}]}]}`

		core, logs := observer.New(zapcore.WarnLevel)
		plans := &fakePlanStore{}
		svc := New(&fakeCompleter{structuredJSON: badScorePlan}, &fakeProfileStore{}, plans, zap.New(core))

		plan, err := svc.GeneratePlan(context.Background(), "u1", "goal")
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v, want permissive success", err)
		}
		if plan.Milestones[0].Tasks[0].Simplicity != 9 {
			t.Errorf("simplicity = %d, want 9 preserved", plan.Milestones[0].Tasks[0].Simplicity)
		}
		if plans.createCalls != 1 {
			t.Errorf("store written %d times, want 1", plans.createCalls)
		}
		if logs.FilterMessage("task_score_out_of_range").Len() == 0 {
			t.Error("expected a warning for the out-of-range score")
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		plans := &fakePlanStore{createErr: errors.New("write failed")}
		svc := New(&fakeCompleter{structuredJSON: planJSON(1, 1)}, &fakeProfileStore{}, plans, nil)

		if _, err := svc.GeneratePlan(context.Background(), "u1", "goal"); err == nil {
			t.Error("expected error when persistence fails")
		}
	})
}

package prompts

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Goal: $GOAL",
			vars:     map[string]string{"GOAL": "Learn guitar"},
			want:     "Goal: Learn guitar",
		},
		{
			name:     "every occurrence replaced",
			template: "$NAME likes $NAME",
			vars:     map[string]string{"NAME": "Ada"},
			want:     "Ada likes Ada",
		},
		{
			name:     "multiple placeholders",
			template: "What: $WHAT\nWhy: $WHY\nWhen: $WHEN",
			vars:     map[string]string{"WHAT": "Learn guitar", "WHY": "hobby", "WHEN": "3 months"},
			want:     "What: Learn guitar\nWhy: hobby\nWhen: 3 months",
		},
		{
			name:     "missing placeholder left in output",
			template: "Goal: $GOAL Profile: $PROFILE",
			vars:     map[string]string{"GOAL": "Run a 10k"},
			want:     "Goal: Run a 10k Profile: $PROFILE",
		},
		{
			name:     "unreferenced vars ignored",
			template: "Goal: $GOAL",
			vars:     map[string]string{"GOAL": "Run a 10k", "EXTRA": "unused"},
			want:     "Goal: Run a 10k",
		},
		{
			name:     "empty vars returns template unchanged",
			template: "Goal: $GOAL",
			vars:     nil,
			want:     "Goal: $GOAL",
		},
		{
			name:     "substituted value containing a token is not re-expanded",
			template: "A: $A B: $B",
			vars:     map[string]string{"A": "$B", "B": "beta"},
			want:     "A: $B B: beta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Render(tt.template, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSmartGoalPrompt(t *testing.T) {
	t.Parallel()

	got := Render(SmartGoalUser, map[string]string{
		"WHAT":    "Learn guitar",
		"WHY":     "hobby",
		"WHEN":    "3 months",
		"PROFILE": "",
	})

	for _, want := range []string{"Learn guitar", "hobby", "3 months"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
	for _, leftover := range []string{"$WHAT", "$WHY", "$WHEN", "$PROFILE"} {
		if strings.Contains(got, leftover) {
			t.Errorf("rendered prompt still contains %q", leftover)
		}
	}
}

package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/bybysker/goal-tracker/internal/models"
)

var (
	// Validate is a shared validator instance for request structs
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateTaskScore validates a task scoring value. The 1-5 range is a
// prompt instruction to the model, so callers treat violations as a
// signal to log, not a reason to reject.
func ValidateTaskScore(value int) error {
	if value < models.MinTaskScore || value > models.MaxTaskScore {
		return fmt.Errorf("invalid score: %d (must be between %d and %d)", value, models.MinTaskScore, models.MaxTaskScore)
	}
	return nil
}

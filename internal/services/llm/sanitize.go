package llm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPreviewLength is the maximum length for preview strings in debug logs.
const MaxPreviewLength = 200

// SanitizePreview creates a safe preview of a prompt or response for
// logging: valid UTF-8, no control characters, truncated.
func SanitizePreview(s string) string {
	if s == "" {
		return ""
	}

	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' || r == '\n' {
			builder.WriteRune(r)
		}
	}
	s = builder.String()

	if len(s) > MaxPreviewLength {
		s = s[:MaxPreviewLength] + "..."
	}
	return s
}

// SanitizeAPIKey redacts the middle of an API key for logging.
func SanitizeAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "[REDACTED]"
	}
	return apiKey[:4] + "[REDACTED]" + apiKey[len(apiKey)-4:]
}

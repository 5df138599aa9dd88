package prompts

import "strings"

// Render substitutes $NAME placeholders in a template with the given
// values. Replacement is literal substring replacement in a single pass:
// a substituted value that itself contains a placeholder token is left
// unexpanded. Placeholders without an entry in vars stay in the output,
// and entries without a matching placeholder are ignored.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "$"+name, value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString keeps the caller's casing; used for titles, topics and
// free-text prompts where lowercasing would mangle the content.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}

package gemini

import (
	"fmt"
	"strings"
)

// PlaceholderText substitutes for generated content whenever the service
// is unconfigured, unreachable, or returns a reply with no usable text.
const PlaceholderText = "This is placeholder content. Configure your Gemini API key to generate AI content."

// ExtractText turns an arbitrary generateContent reply into plain text.
// Reply shapes have not been stable across API versions, so extraction is
// a priority-ordered chain of optional lookups rather than typed access:
//
//  1. candidates[0].content.parts[*].text
//  2. candidates[0].text
//  3. candidates[0].content as a bare string
//  4. top-level text
//  5. the reply itself, when it is already a string or stringifies
//
// It never panics and never returns an empty result: when nothing in the
// reply is usable it falls back to PlaceholderText.
func ExtractText(reply any) string {
	if text := extractText(reply); text != "" {
		return text
	}
	return PlaceholderText
}

func extractText(reply any) string {
	if reply == nil {
		return ""
	}

	if candidates, ok := lookupSlice(reply, "candidates"); ok && len(candidates) > 0 {
		c0 := candidates[0]
		if content, ok := lookup(c0, "content"); ok {
			if parts, ok := lookupSlice(content, "parts"); ok {
				for _, part := range parts {
					if text, ok := lookupString(part, "text"); ok && strings.TrimSpace(text) != "" {
						return strings.TrimSpace(text)
					}
				}
			}
			if s, ok := content.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		if text, ok := lookupString(c0, "text"); ok && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}

	if text, ok := lookupString(reply, "text"); ok && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}

	switch v := reply.(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	}
	return ""
}

func lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case Reply:
		val, ok := m[key]
		return val, ok
	}
	return nil, false
}

func lookupSlice(v any, key string) ([]any, bool) {
	val, ok := lookup(v, key)
	if !ok {
		return nil, false
	}
	s, ok := val.([]any)
	return s, ok
}

func lookupString(v any, key string) (string, bool) {
	val, ok := lookup(v, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

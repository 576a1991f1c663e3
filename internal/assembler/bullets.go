package assembler

import (
	"strings"
)

// bulletMarkers is the set of characters that count as a leading bullet
// marker on a content line: bullet, hyphen, asterisk, en dash, em dash
// and the spaces between them.
const bulletMarkers = "•-*–— "

// StripBulletMarkers removes the entire leading run of bullet-marker
// characters from a line. Idempotent: a line without leading markers
// comes back unchanged.
func StripBulletMarkers(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, bulletMarkers))
}

// ContentLines decomposes stored section content into trimmed, non-empty
// lines. Stored content always splits on line breaks; blank lines carry
// no meaning in either document shape.
func ContentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

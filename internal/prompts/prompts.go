// Package prompts builds the instruction strings sent to the generation
// service. Builders are pure: same inputs, same prompt.
package prompts

import (
	"fmt"

	"github.com/docforge/docforge-backend/internal/types"
)

// Outline asks for an ordered list of titles, one per line, unnumbered.
// For slide decks the first entry must be an opening title slide and the
// last a closing thank-you slide; the exporter depends on that ordering.
func Outline(topic string, kind types.DocumentKind) string {
	if kind == types.KindSlideDeck {
		return fmt.Sprintf(`Create 8-12 PowerPoint slide titles for topic:

%s

Start with Title Slide, end with Thank You slide.
One title per line, no numbering.
`, topic)
	}
	return fmt.Sprintf(`Create 6-8 professional document section titles for topic:

%s

Return only titles, one per line, no numbering.
`, topic)
}

// Section asks for body content for one titled section, shaped for the
// document kind: prose for long-form, bullet lines for slides.
func Section(topic, sectionTitle string, kind types.DocumentKind) string {
	if kind == types.KindSlideDeck {
		return fmt.Sprintf(`Create 4-6 bullet points for a PowerPoint slide.

Topic: %s
Slide Title: %s

Format:
• Bullet point 1
• Bullet point 2
(1 sentence each)
`, topic, sectionTitle)
	}
	return fmt.Sprintf(`Write detailed, high-quality content (200-300 words) for a document section.

Topic: %s
Section Title: %s

Do NOT repeat the section title. Write only the content.
`, topic, sectionTitle)
}

// Refinement embeds the current content and the user's instruction. Slide
// content carries an extra rule so the bullet markers survive the rewrite.
func Refinement(currentContent, instruction string, kind types.DocumentKind) string {
	bulletRule := ""
	if kind == types.KindSlideDeck {
		bulletRule = "Keep bullet format with • symbols.\n"
	}
	return fmt.Sprintf(`Refine the following content based on user request.

Original content:
%s

User wants:
%s

%sReturn ONLY the refined text.
`, currentContent, instruction, bulletRule)
}

package prompts

import (
	"strings"
	"testing"

	"github.com/docforge/docforge-backend/internal/types"
)

func TestOutline_KindShapesThePrompt(t *testing.T) {
	topic := "renewable energy"

	longForm := Outline(topic, types.KindLongForm)
	if !strings.Contains(longForm, topic) {
		t.Fatalf("long-form outline prompt missing topic: %q", longForm)
	}
	if !strings.Contains(longForm, "section titles") {
		t.Fatalf("long-form outline prompt missing section wording: %q", longForm)
	}

	deck := Outline(topic, types.KindSlideDeck)
	if !strings.Contains(deck, "Title Slide") || !strings.Contains(deck, "Thank You") {
		t.Fatalf("slide-deck outline prompt missing opening/closing rule: %q", deck)
	}
}

func TestSection_SlideDeckAsksForBullets(t *testing.T) {
	prompt := Section("solar power", "Cost Trends", types.KindSlideDeck)
	if !strings.Contains(prompt, "bullet points") {
		t.Fatalf("slide section prompt missing bullet instruction: %q", prompt)
	}
	if !strings.Contains(prompt, "Cost Trends") {
		t.Fatalf("slide section prompt missing title: %q", prompt)
	}

	prose := Section("solar power", "Cost Trends", types.KindLongForm)
	if !strings.Contains(prose, "200-300 words") {
		t.Fatalf("long-form section prompt missing length rule: %q", prose)
	}
	if !strings.Contains(prose, "Do NOT repeat the section title") {
		t.Fatalf("long-form section prompt missing no-repeat rule: %q", prose)
	}
}

func TestRefinement_BulletRuleOnlyForSlideDecks(t *testing.T) {
	current := "• point one\n• point two"
	instruction := "make it shorter"

	deck := Refinement(current, instruction, types.KindSlideDeck)
	if !strings.Contains(deck, "Keep bullet format") {
		t.Fatalf("slide refinement prompt missing bullet rule: %q", deck)
	}
	if !strings.Contains(deck, current) || !strings.Contains(deck, instruction) {
		t.Fatalf("refinement prompt missing content or instruction: %q", deck)
	}

	doc := Refinement(current, instruction, types.KindLongForm)
	if strings.Contains(doc, "Keep bullet format") {
		t.Fatalf("long-form refinement prompt should not carry bullet rule: %q", doc)
	}
}

func TestPromptBuildersAreDeterministic(t *testing.T) {
	a := Section("topic", "title", types.KindLongForm)
	b := Section("topic", "title", types.KindLongForm)
	if a != b {
		t.Fatalf("same inputs produced different prompts")
	}
}

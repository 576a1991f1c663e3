package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/prompts"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/requestdata"
	"github.com/docforge/docforge-backend/internal/types"
)

const outlineTokenBudget = 200

// Fixed outlines substituted when the generation service is unavailable
// or returns nothing usable. The slide-deck list keeps the opening entry
// first and the thank-you entry last, the ordering the exporter assumes.
var (
	longFormFallbackOutline = []string{
		"Introduction", "Background", "Analysis", "Findings", "Discussion", "Conclusion",
	}
	slideDeckFallbackOutline = []string{
		"Title Slide", "Introduction", "Overview", "Main Points", "Analysis", "Results", "Conclusion", "Thank You",
	}
)

// OutlineService proposes an ordered list of section titles for a topic.
// Suggest has no error path: it always returns a usable outline, either
// generated or the fixed fallback for the kind.
type OutlineService interface {
	Suggest(ctx context.Context, topic string, kind types.DocumentKind) []string
}

type outlineService struct {
	log       *logger.Logger
	completer completer
}

func NewOutlineService(log *logger.Logger, ai AIClient, aiCallLogRepo repos.AICallLogRepo) OutlineService {
	serviceLog := log.With("service", "OutlineService")
	return &outlineService{
		log: serviceLog,
		completer: completer{
			log:           serviceLog,
			ai:            ai,
			aiCallLogRepo: aiCallLogRepo,
		},
	}
}

func (os *outlineService) Suggest(ctx context.Context, topic string, kind types.DocumentKind) []string {
	prompt := prompts.Outline(topic, kind)

	text := os.completer.complete(ctx, "outline", callerID(ctx), nil, prompt, gemini.GenerationConfig{
		MaxOutputTokens: outlineTokenBudget,
		Temperature:     0.2,
	})

	if text == gemini.PlaceholderText {
		return fallbackOutline(kind)
	}

	titles := splitTitles(text)
	if len(titles) == 0 {
		return fallbackOutline(kind)
	}
	return titles
}

func fallbackOutline(kind types.DocumentKind) []string {
	if kind == types.KindSlideDeck {
		return append([]string(nil), slideDeckFallbackOutline...)
	}
	return append([]string(nil), longFormFallbackOutline...)
}

// splitTitles turns generated outline text into one title per non-empty
// trimmed line.
func splitTitles(text string) []string {
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles
}

// callerID returns the authenticated user's id for audit rows, nil when
// the call happens outside a user context.
func callerID(ctx context.Context) *uuid.UUID {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil
	}
	id := rd.UserID
	return &id
}

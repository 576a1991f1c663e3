package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/prompts"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/types"
)

const (
	longFormSectionTokenBudget  = 600
	slideDeckSectionTokenBudget = 300
	sectionTemperature          = 0.2

	// GenerationFailedText is persisted for a section whose generation
	// path failed outright; batch runs continue past it.
	GenerationFailedText = "AI generation failed. Configure Gemini API properly."
)

// GenerationService writes first-draft content for sections. Individual
// section generation never returns an error: a broken generation path is
// worth a placeholder, not a failed batch.
type GenerationService interface {
	GenerateSection(ctx context.Context, topic, sectionTitle string, kind types.DocumentKind) string
	// GenerateForProject fills every section of the project in order,
	// persisting each result as soon as its call completes so a failure
	// on section k keeps sections 1..k-1. Returns the sections that were
	// actually updated.
	GenerateForProject(ctx context.Context, project *types.Project, sections []*types.Section) []*types.Section
	// GenerateProjectSections is the request-facing entry point: resolves
	// ownership, loads the ordered sections and runs the batch.
	GenerateProjectSections(ctx context.Context, projectID uuid.UUID) ([]*types.Section, error)
}

type generationService struct {
	log         *logger.Logger
	completer   completer
	projectRepo repos.ProjectRepo
	sectionRepo repos.SectionRepo
}

func NewGenerationService(
	log *logger.Logger,
	ai AIClient,
	projectRepo repos.ProjectRepo,
	sectionRepo repos.SectionRepo,
	aiCallLogRepo repos.AICallLogRepo,
) GenerationService {
	serviceLog := log.With("service", "GenerationService")
	return &generationService{
		log: serviceLog,
		completer: completer{
			log:           serviceLog,
			ai:            ai,
			aiCallLogRepo: aiCallLogRepo,
		},
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
	}
}

func (gs *generationService) GenerateSection(ctx context.Context, topic, sectionTitle string, kind types.DocumentKind) (content string) {
	// Generation must never surface a fault past this boundary; a panic
	// anywhere below degrades to the fixed failure text.
	defer func() {
		if r := recover(); r != nil {
			gs.log.Error("Section generation panicked", "recover", r)
			content = GenerationFailedText
		}
	}()

	prompt := prompts.Section(topic, sectionTitle, kind)
	budget := longFormSectionTokenBudget
	if kind == types.KindSlideDeck {
		budget = slideDeckSectionTokenBudget
	}

	return gs.completer.complete(ctx, "section", callerID(ctx), nil, prompt, gemini.GenerationConfig{
		MaxOutputTokens: budget,
		Temperature:     sectionTemperature,
	})
}

func (gs *generationService) GenerateForProject(ctx context.Context, project *types.Project, sections []*types.Section) []*types.Section {
	updated := make([]*types.Section, 0, len(sections))

	// Strictly sequential: generation calls within one batch are not
	// fanned out against the shared service rate limit.
	for _, section := range sections {
		content := gs.GenerateSection(ctx, project.Topic, section.Title, project.DocumentKind)

		if err := gs.sectionRepo.UpdateContent(ctx, nil, section.ID, content); err != nil {
			gs.log.Warn("Failed to persist generated section, continuing batch",
				"section_id", section.ID, "error", err)
			continue
		}
		section.Content = &content
		updated = append(updated, section)
	}

	if err := gs.projectRepo.Touch(ctx, nil, project.ID); err != nil {
		gs.log.Warn("Failed to touch project after generation", "project_id", project.ID, "error", err)
	}
	return updated
}

func (gs *generationService) GenerateProjectSections(ctx context.Context, projectID uuid.UUID) ([]*types.Section, error) {
	project, err := loadOwnedProject(ctx, gs.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	sections, err := gs.sectionRepo.ListByProjectID(ctx, nil, project.ID)
	if err != nil {
		return nil, err
	}
	return gs.GenerateForProject(ctx, project, sections), nil
}

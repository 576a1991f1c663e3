package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/normalization"
	"github.com/docforge/docforge-backend/internal/prompts"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/types"

	errs "github.com/docforge/docforge-backend/internal/pkg/errors"
)

const refinementTokenBudget = 400

// RefinementService rewrites existing section content against a user
// instruction. Failure is never destructive: when the generation call
// cannot produce a rewrite, the section keeps its previous content.
// Every invocation, successful or no-op, appends exactly one
// RefinementRecord whose previous/new pair brackets the call.
type RefinementService interface {
	RefineSection(ctx context.Context, sectionID uuid.UUID, instruction string) (string, error)
	// ListHistory returns the section's refinement records oldest first.
	ListHistory(ctx context.Context, sectionID uuid.UUID) ([]*types.RefinementRecord, error)
}

type refinementService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	completer            completer
	projectRepo          repos.ProjectRepo
	sectionRepo          repos.SectionRepo
	refinementRecordRepo repos.RefinementRecordRepo
}

func NewRefinementService(
	db *gorm.DB,
	log *logger.Logger,
	ai AIClient,
	projectRepo repos.ProjectRepo,
	sectionRepo repos.SectionRepo,
	refinementRecordRepo repos.RefinementRecordRepo,
	aiCallLogRepo repos.AICallLogRepo,
) RefinementService {
	serviceLog := log.With("service", "RefinementService")
	return &refinementService{
		db:  db,
		log: serviceLog,
		completer: completer{
			log:           serviceLog,
			ai:            ai,
			aiCallLogRepo: aiCallLogRepo,
		},
		projectRepo:          projectRepo,
		sectionRepo:          sectionRepo,
		refinementRecordRepo: refinementRecordRepo,
	}
}

func (rs *refinementService) RefineSection(ctx context.Context, sectionID uuid.UUID, instruction string) (string, error) {
	instruction = normalization.TrimInputString(instruction)
	if instruction == "" {
		return "", fmt.Errorf("%w: prompt is required", errs.ErrInvalidArgument)
	}

	section, project, err := loadOwnedSection(ctx, rs.sectionRepo, rs.projectRepo, sectionID)
	if err != nil {
		return "", err
	}

	previous := ""
	if section.Content != nil {
		previous = *section.Content
	}

	newContent := rs.refineContent(ctx, previous, instruction, project.DocumentKind, section.ID)

	record := &types.RefinementRecord{
		SectionID:       section.ID,
		Prompt:          instruction,
		PreviousContent: previous,
		NewContent:      newContent,
	}
	err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return rs.persistRefinement(ctx, tx, record, newContent)
	})
	if err != nil {
		return "", err
	}
	return newContent, nil
}

// persistRefinement appends the audit record and moves the section's live
// content to newContent. Both writes share one transaction; a failed
// record insert aborts the content update.
func (rs *refinementService) persistRefinement(ctx context.Context, tx *gorm.DB, record *types.RefinementRecord, newContent string) error {
	if _, err := rs.refinementRecordRepo.Create(ctx, tx, []*types.RefinementRecord{record}); err != nil {
		return fmt.Errorf("failed to record refinement: %w", err)
	}
	if err := rs.sectionRepo.UpdateContent(ctx, tx, record.SectionID, newContent); err != nil {
		return fmt.Errorf("failed to update section content: %w", err)
	}
	return nil
}

func (rs *refinementService) ListHistory(ctx context.Context, sectionID uuid.UUID) ([]*types.RefinementRecord, error) {
	section, _, err := loadOwnedSection(ctx, rs.sectionRepo, rs.projectRepo, sectionID)
	if err != nil {
		return nil, err
	}
	return rs.refinementRecordRepo.ListBySectionID(ctx, nil, section.ID)
}

// refineContent returns the rewritten text, or the previous content
// unchanged when the generation path fails in any way.
func (rs *refinementService) refineContent(ctx context.Context, previous, instruction string, kind types.DocumentKind, sectionID uuid.UUID) string {
	prompt := prompts.Refinement(previous, instruction, kind)

	text := rs.completer.complete(ctx, "refinement", callerID(ctx), &sectionID, prompt, gemini.GenerationConfig{
		MaxOutputTokens: refinementTokenBudget,
		Temperature:     sectionTemperature,
	})
	if text == gemini.PlaceholderText {
		return previous
	}
	return text
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/assembler"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/types"
)

// ExportResult is a fully assembled download: the bytes plus the
// metadata a handler needs to serve them as an attachment.
type ExportResult struct {
	FileName string
	MimeType string
	Data     []byte
}

type ExportService interface {
	// ExportProject assembles the caller's project into its binary
	// document form. Sections without content render with a stand-in
	// line; export never triggers generation.
	ExportProject(ctx context.Context, projectID uuid.UUID) (*ExportResult, error)
}

type exportService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	sectionRepo repos.SectionRepo
}

func NewExportService(log *logger.Logger, projectRepo repos.ProjectRepo, sectionRepo repos.SectionRepo) ExportService {
	serviceLog := log.With("service", "ExportService")
	return &exportService{
		log:         serviceLog,
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
	}
}

func (es *exportService) ExportProject(ctx context.Context, projectID uuid.UUID) (*ExportResult, error) {
	project, err := loadOwnedProject(ctx, es.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	sections, err := es.sectionRepo.ListByProjectID(ctx, nil, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sections for export: %w", err)
	}

	var data []byte
	switch project.DocumentKind {
	case types.KindSlideDeck:
		data, err = assembler.RenderSlideDeck(project.Title, project.Topic, sections)
	default:
		data, err = assembler.RenderLongForm(project.Title, project.Topic, sections)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s document: %w", project.DocumentKind, err)
	}

	es.log.Info("exported project",
		"project_id", project.ID,
		"document_type", project.DocumentKind,
		"sections", len(sections),
		"bytes", len(data))

	return &ExportResult{
		FileName: fmt.Sprintf("%s.%s", project.Title, project.DocumentKind.Extension()),
		MimeType: project.DocumentKind.MimeType(),
		Data:     data,
	}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/normalization"
	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/requestdata"
	"github.com/docforge/docforge-backend/internal/types"

	errs "github.com/docforge/docforge-backend/internal/pkg/errors"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]*types.Project, error)
	// CreateProject creates the project and one section per outline
	// entry, order indexes 0..N-1 in outline order.
	CreateProject(ctx context.Context, kind types.DocumentKind, title, topic string, outline []string) (*types.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GetProjectSections(ctx context.Context, projectID uuid.UUID) ([]*types.Section, error)
	UpdateSectionFeedback(ctx context.Context, sectionID uuid.UUID, liked *bool) error
	UpdateSectionComment(ctx context.Context, sectionID uuid.UUID, comment *string) error
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	sectionRepo repos.SectionRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo, sectionRepo repos.SectionRepo) ProjectService {
	serviceLog := log.With("service", "ProjectService")
	return &projectService{
		db:          db,
		log:         serviceLog,
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
	}
}

func (ps *projectService) ListProjects(ctx context.Context) ([]*types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	return ps.projectRepo.ListByUserID(ctx, nil, rd.UserID)
}

func (ps *projectService) CreateProject(ctx context.Context, kind types.DocumentKind, title, topic string, outline []string) (*types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	title = normalization.TrimInputString(title)
	topic = normalization.TrimInputString(topic)
	if title == "" || topic == "" {
		return nil, fmt.Errorf("%w: title and topic are required", errs.ErrInvalidArgument)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: invalid document type %q", errs.ErrInvalidArgument, kind)
	}

	project := &types.Project{
		UserID:       rd.UserID,
		DocumentKind: kind,
		Title:        title,
		Topic:        topic,
	}

	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project.ID = uuid.New()
		if _, err := ps.projectRepo.Create(ctx, tx, []*types.Project{project}); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		// Blank entries are dropped before indexing so order indexes
		// stay a contiguous 0..N-1 run.
		sections := make([]*types.Section, 0, len(outline))
		orderIndex := 0
		for _, sectionTitle := range outline {
			sectionTitle = normalization.TrimInputString(sectionTitle)
			if sectionTitle == "" {
				continue
			}
			sections = append(sections, &types.Section{
				ID:         uuid.New(),
				ProjectID:  project.ID,
				Title:      sectionTitle,
				OrderIndex: orderIndex,
			})
			orderIndex++
		}
		if _, err := ps.sectionRepo.Create(ctx, tx, sections); err != nil {
			return fmt.Errorf("failed to create sections: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (ps *projectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	project, err := loadOwnedProject(ctx, ps.projectRepo, projectID)
	if err != nil {
		return err
	}
	// Sections and refinement history go with it via FK cascade.
	return ps.projectRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{project.ID})
}

func (ps *projectService) GetProjectSections(ctx context.Context, projectID uuid.UUID) ([]*types.Section, error) {
	project, err := loadOwnedProject(ctx, ps.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return ps.sectionRepo.ListByProjectID(ctx, nil, project.ID)
}

func (ps *projectService) UpdateSectionFeedback(ctx context.Context, sectionID uuid.UUID, liked *bool) error {
	section, _, err := loadOwnedSection(ctx, ps.sectionRepo, ps.projectRepo, sectionID)
	if err != nil {
		return err
	}
	return ps.sectionRepo.UpdateLiked(ctx, nil, section.ID, liked)
}

func (ps *projectService) UpdateSectionComment(ctx context.Context, sectionID uuid.UUID, comment *string) error {
	section, _, err := loadOwnedSection(ctx, ps.sectionRepo, ps.projectRepo, sectionID)
	if err != nil {
		return err
	}
	return ps.sectionRepo.UpdateComment(ctx, nil, section.ID, comment)
}

package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/repos"
	"github.com/docforge/docforge-backend/internal/requestdata"
	"github.com/docforge/docforge-backend/internal/types"

	errs "github.com/docforge/docforge-backend/internal/pkg/errors"
)

// loadOwnedProject resolves a project id against the authenticated user.
// A project that exists but belongs to someone else reports ErrNotFound,
// indistinguishable from a missing row.
func loadOwnedProject(ctx context.Context, projectRepo repos.ProjectRepo, projectID uuid.UUID) (*types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	projects, err := projectRepo.GetByIDs(ctx, nil, []uuid.UUID{projectID})
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 || projects[0].UserID != rd.UserID {
		return nil, errs.ErrNotFound
	}
	return projects[0], nil
}

// loadOwnedSection resolves a section id through its parent project's
// ownership, returning both rows.
func loadOwnedSection(ctx context.Context, sectionRepo repos.SectionRepo, projectRepo repos.ProjectRepo, sectionID uuid.UUID) (*types.Section, *types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, nil, errs.ErrUnauthorized
	}
	sections, err := sectionRepo.GetByIDs(ctx, nil, []uuid.UUID{sectionID})
	if err != nil {
		return nil, nil, err
	}
	if len(sections) == 0 {
		return nil, nil, errs.ErrNotFound
	}
	section := sections[0]
	projects, err := projectRepo.GetByIDs(ctx, nil, []uuid.UUID{section.ProjectID})
	if err != nil {
		return nil, nil, err
	}
	if len(projects) == 0 || projects[0].UserID != rd.UserID {
		return nil, nil, errs.ErrNotFound
	}
	return section, projects[0], nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/types"

	errs "github.com/docforge/docforge-backend/internal/pkg/errors"
)

func newProjectFixture(t *testing.T) (ProjectService, *fakeProjectRepo, *fakeSectionRepo) {
	t.Helper()
	projectRepo := &fakeProjectRepo{projects: map[uuid.UUID]*types.Project{}}
	sectionRepo := &fakeSectionRepo{failContentFor: map[uuid.UUID]bool{}}
	return NewProjectService(nil, newTestLogger(t), projectRepo, sectionRepo), projectRepo, sectionRepo
}

func TestListProjects_RequiresAuth(t *testing.T) {
	svc, _, _ := newProjectFixture(t)

	_, err := svc.ListProjects(context.Background())
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListProjects_ReturnsOnlyOwnersProjects(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	owner := uuid.New()
	seedProject(projectRepo, sectionRepo, owner, types.KindLongForm, "One")
	seedProject(projectRepo, sectionRepo, uuid.New(), types.KindLongForm, "Other")

	projects, err := svc.ListProjects(authedContext(owner))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].UserID != owner {
		t.Fatalf("expected exactly the owner's project, got %d", len(projects))
	}
}

func TestDeleteProject_ForeignProjectIsNotFound(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	project, _ := seedProject(projectRepo, sectionRepo, uuid.New(), types.KindLongForm, "One")

	err := svc.DeleteProject(authedContext(uuid.New()), project.ID)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, ok := projectRepo.projects[project.ID]; !ok {
		t.Fatalf("foreign project must not be deleted")
	}
}

func TestDeleteProject_RemovesOwnedProject(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	owner := uuid.New()
	project, _ := seedProject(projectRepo, sectionRepo, owner, types.KindLongForm, "One")

	if err := svc.DeleteProject(authedContext(owner), project.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := projectRepo.projects[project.ID]; ok {
		t.Fatalf("project not deleted")
	}
}

func TestUpdateSectionFeedback_StoresLiked(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	owner := uuid.New()
	_, sections := seedProject(projectRepo, sectionRepo, owner, types.KindLongForm, "One")

	liked := true
	if err := svc.UpdateSectionFeedback(authedContext(owner), sections[0].ID, &liked); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sections[0].Liked == nil || !*sections[0].Liked {
		t.Fatalf("liked flag not stored")
	}

	// Clearing feedback is allowed.
	if err := svc.UpdateSectionFeedback(authedContext(owner), sections[0].ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sections[0].Liked != nil {
		t.Fatalf("liked flag not cleared")
	}
}

func TestUpdateSectionComment_StoresComment(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	owner := uuid.New()
	_, sections := seedProject(projectRepo, sectionRepo, owner, types.KindLongForm, "One")

	comment := "needs more numbers"
	if err := svc.UpdateSectionComment(authedContext(owner), sections[0].ID, &comment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sections[0].Comment == nil || *sections[0].Comment != comment {
		t.Fatalf("comment not stored")
	}
}

func TestUpdateSectionFeedback_ForeignSectionIsNotFound(t *testing.T) {
	svc, projectRepo, sectionRepo := newProjectFixture(t)
	_, sections := seedProject(projectRepo, sectionRepo, uuid.New(), types.KindLongForm, "One")

	liked := true
	err := svc.UpdateSectionFeedback(authedContext(uuid.New()), sections[0].ID, &liked)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/types"
)

func newGenerationFixture(t *testing.T, ai AIClient) (*generationService, *fakeProjectRepo, *fakeSectionRepo) {
	t.Helper()
	projectRepo := &fakeProjectRepo{projects: map[uuid.UUID]*types.Project{}}
	sectionRepo := &fakeSectionRepo{failContentFor: map[uuid.UUID]bool{}}
	svc := NewGenerationService(newTestLogger(t), ai, projectRepo, sectionRepo, &fakeAICallLogRepo{})
	return svc.(*generationService), projectRepo, sectionRepo
}

func seedProject(projectRepo *fakeProjectRepo, sectionRepo *fakeSectionRepo, userID uuid.UUID, kind types.DocumentKind, titles ...string) (*types.Project, []*types.Section) {
	project := &types.Project{
		ID:           uuid.New(),
		UserID:       userID,
		DocumentKind: kind,
		Title:        "Quarterly Report",
		Topic:        "renewable energy",
	}
	projectRepo.projects[project.ID] = project

	sections := make([]*types.Section, 0, len(titles))
	for i, title := range titles {
		sections = append(sections, &types.Section{
			ID:         uuid.New(),
			ProjectID:  project.ID,
			Title:      title,
			OrderIndex: i,
		})
	}
	sectionRepo.sections = append(sectionRepo.sections, sections...)
	return project, sections
}

func TestGenerateSection_ReturnsGeneratedText(t *testing.T) {
	ai := &fakeAIClient{reply: textReply("generated body")}
	svc, _, _ := newGenerationFixture(t, ai)

	got := svc.GenerateSection(context.Background(), "topic", "Introduction", types.KindLongForm)
	if got != "generated body" {
		t.Fatalf("expected generated text, got %q", got)
	}
}

func TestGenerateSection_NilClientYieldsPlaceholder(t *testing.T) {
	svc, _, _ := newGenerationFixture(t, nil)

	got := svc.GenerateSection(context.Background(), "topic", "Introduction", types.KindLongForm)
	if got != gemini.PlaceholderText {
		t.Fatalf("expected placeholder text, got %q", got)
	}
}

func TestGenerateSection_ClientErrorYieldsPlaceholder(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("quota exhausted")}
	svc, _, _ := newGenerationFixture(t, ai)

	got := svc.GenerateSection(context.Background(), "topic", "Introduction", types.KindSlideDeck)
	if got != gemini.PlaceholderText {
		t.Fatalf("expected placeholder text, got %q", got)
	}
}

func TestGenerateForProject_PersistsEachSectionAndTouchesProject(t *testing.T) {
	ai := &fakeAIClient{reply: textReply("body")}
	svc, projectRepo, sectionRepo := newGenerationFixture(t, ai)
	project, sections := seedProject(projectRepo, sectionRepo, uuid.New(), types.KindLongForm, "One", "Two", "Three")

	updated := svc.GenerateForProject(context.Background(), project, sections)
	if len(updated) != 3 {
		t.Fatalf("expected 3 updated sections, got %d", len(updated))
	}
	for _, s := range updated {
		if s.Content == nil || *s.Content != "body" {
			t.Fatalf("section %s content not persisted in memory", s.Title)
		}
	}
	if len(sectionRepo.contentWrites) != 3 {
		t.Fatalf("expected 3 content writes, got %d", len(sectionRepo.contentWrites))
	}
	if len(projectRepo.touched) != 1 || projectRepo.touched[0] != project.ID {
		t.Fatalf("expected project touched once, got %v", projectRepo.touched)
	}
	// One generation call per section, in order.
	if len(ai.prompts) != 3 {
		t.Fatalf("expected 3 generation calls, got %d", len(ai.prompts))
	}
}

func TestGenerateForProject_FailedPersistSkipsSectionAndContinues(t *testing.T) {
	ai := &fakeAIClient{reply: textReply("body")}
	svc, projectRepo, sectionRepo := newGenerationFixture(t, ai)
	project, sections := seedProject(projectRepo, sectionRepo, uuid.New(), types.KindLongForm, "One", "Two", "Three")
	sectionRepo.failContentFor[sections[1].ID] = true

	updated := svc.GenerateForProject(context.Background(), project, sections)
	if len(updated) != 2 {
		t.Fatalf("expected 2 updated sections, got %d", len(updated))
	}
	if updated[0].ID != sections[0].ID || updated[1].ID != sections[2].ID {
		t.Fatalf("wrong sections reported as updated")
	}
	if sections[1].Content != nil {
		t.Fatalf("failed section must keep nil content")
	}
	if len(projectRepo.touched) != 1 {
		t.Fatalf("batch must still touch the project")
	}
}

func TestGenerateProjectSections_RejectsForeignProject(t *testing.T) {
	ai := &fakeAIClient{reply: textReply("body")}
	svc, projectRepo, sectionRepo := newGenerationFixture(t, ai)
	owner := uuid.New()
	project, _ := seedProject(projectRepo, sectionRepo, owner, types.KindLongForm, "One")

	_, err := svc.GenerateProjectSections(authedContext(uuid.New()), project.ID)
	if err == nil {
		t.Fatalf("expected error for project owned by someone else")
	}
}

func TestGenerateProjectSections_GeneratesOwnersSections(t *testing.T) {
	ai := &fakeAIClient{reply: textReply("body")}
	svc, projectRepo, sectionRepo := newGenerationFixture(t, ai)
	owner := uuid.New()
	project, _ := seedProject(projectRepo, sectionRepo, owner, types.KindSlideDeck, "Title Slide", "Overview")

	updated, err := svc.GenerateProjectSections(authedContext(owner), project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected both sections generated, got %d", len(updated))
	}
}

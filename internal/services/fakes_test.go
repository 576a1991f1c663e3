package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docforge/docforge-backend/internal/clients/gemini"
	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/requestdata"
	"github.com/docforge/docforge-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func authedContext(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: userID,
	})
}

func textReply(text string) gemini.Reply {
	return gemini.Reply{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
}

type fakeAIClient struct {
	reply   gemini.Reply
	err     error
	prompts []string
}

func (f *fakeAIClient) GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (gemini.Reply, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeAIClient) Model() string {
	return "fake-model"
}

type fakeAICallLogRepo struct {
	logs []*types.AICallLog
}

func (f *fakeAICallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
	f.logs = append(f.logs, logs...)
	return logs, nil
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*types.Project
	touched  []uuid.UUID
}

func (f *fakeProjectRepo) Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error) {
	for _, p := range projects {
		f.projects[p.ID] = p
	}
	return projects, nil
}

func (f *fakeProjectRepo) GetByIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.Project, error) {
	var out []*types.Project
	for _, id := range projectIDs {
		if p, ok := f.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error) {
	var out []*types.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Touch(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
	f.touched = append(f.touched, projectID)
	return nil
}

func (f *fakeProjectRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) error {
	for _, id := range projectIDs {
		delete(f.projects, id)
	}
	return nil
}

type fakeSectionRepo struct {
	sections       []*types.Section
	contentWrites  []uuid.UUID
	failContentFor map[uuid.UUID]bool
}

func (f *fakeSectionRepo) Create(ctx context.Context, tx *gorm.DB, sections []*types.Section) ([]*types.Section, error) {
	f.sections = append(f.sections, sections...)
	return sections, nil
}

func (f *fakeSectionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, sectionIDs []uuid.UUID) ([]*types.Section, error) {
	var out []*types.Section
	for _, id := range sectionIDs {
		for _, s := range f.sections {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeSectionRepo) ListByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Section, error) {
	var out []*types.Section
	for _, s := range f.sections {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSectionRepo) UpdateContent(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, content string) error {
	if f.failContentFor[sectionID] {
		return fmt.Errorf("simulated write failure")
	}
	f.contentWrites = append(f.contentWrites, sectionID)
	for _, s := range f.sections {
		if s.ID == sectionID {
			c := content
			s.Content = &c
		}
	}
	return nil
}

func (f *fakeSectionRepo) UpdateLiked(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, liked *bool) error {
	for _, s := range f.sections {
		if s.ID == sectionID {
			s.Liked = liked
		}
	}
	return nil
}

func (f *fakeSectionRepo) UpdateComment(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, comment *string) error {
	for _, s := range f.sections {
		if s.ID == sectionID {
			s.Comment = comment
		}
	}
	return nil
}

type fakeRefinementRecordRepo struct {
	records    []*types.RefinementRecord
	failCreate bool
}

func (f *fakeRefinementRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.RefinementRecord) ([]*types.RefinementRecord, error) {
	if f.failCreate {
		return nil, fmt.Errorf("simulated insert failure")
	}
	f.records = append(f.records, records...)
	return records, nil
}

func (f *fakeRefinementRecordRepo) ListBySectionID(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID) ([]*types.RefinementRecord, error) {
	var out []*types.RefinementRecord
	for _, r := range f.records {
		if r.SectionID == sectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

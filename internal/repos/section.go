package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/types"
)

type SectionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sections []*types.Section) ([]*types.Section, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, sectionIDs []uuid.UUID) ([]*types.Section, error)
	// ListByProjectID returns the project's sections ordered by
	// order_index ascending, the order every consumer depends on.
	ListByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Section, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, content string) error
	UpdateLiked(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, liked *bool) error
	UpdateComment(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, comment *string) error
}

type sectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSectionRepo(db *gorm.DB, baseLog *logger.Logger) SectionRepo {
	repoLog := baseLog.With("repo", "SectionRepo")
	return &sectionRepo{db: db, log: repoLog}
}

func (sr *sectionRepo) Create(ctx context.Context, tx *gorm.DB, sections []*types.Section) ([]*types.Section, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(sections) == 0 {
		return []*types.Section{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (sr *sectionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, sectionIDs []uuid.UUID) ([]*types.Section, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Section
	if len(sectionIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", sectionIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *sectionRepo) ListByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Section, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Section
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *sectionRepo) UpdateContent(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, content string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Section{}).
		Where("id = ?", sectionID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": gorm.Expr("now()"),
		}).Error
}

func (sr *sectionRepo) UpdateLiked(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, liked *bool) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Section{}).
		Where("id = ?", sectionID).
		Updates(map[string]interface{}{
			"liked":      liked,
			"updated_at": gorm.Expr("now()"),
		}).Error
}

func (sr *sectionRepo) UpdateComment(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID, comment *string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Section{}).
		Where("id = ?", sectionID).
		Updates(map[string]interface{}{
			"comment":    comment,
			"updated_at": gorm.Expr("now()"),
		}).Error
}

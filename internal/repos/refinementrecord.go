package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docforge/docforge-backend/internal/logger"
	"github.com/docforge/docforge-backend/internal/types"
)

// RefinementRecordRepo is append-only: records are never updated and only
// disappear through the project delete cascade.
type RefinementRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.RefinementRecord) ([]*types.RefinementRecord, error)
	ListBySectionID(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID) ([]*types.RefinementRecord, error)
}

type refinementRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRefinementRecordRepo(db *gorm.DB, baseLog *logger.Logger) RefinementRecordRepo {
	repoLog := baseLog.With("repo", "RefinementRecordRepo")
	return &refinementRecordRepo{db: db, log: repoLog}
}

func (rr *refinementRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.RefinementRecord) ([]*types.RefinementRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(records) == 0 {
		return []*types.RefinementRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (rr *refinementRecordRepo) ListBySectionID(ctx context.Context, tx *gorm.DB, sectionID uuid.UUID) ([]*types.RefinementRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.RefinementRecord
	if err := transaction.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

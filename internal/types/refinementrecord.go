package types

import (
	"time"

	"github.com/google/uuid"
)

// RefinementRecord is an append-only audit entry: one row per refinement
// invocation. PreviousContent always equals the section content
// immediately before the call, NewContent the content immediately after,
// so the full edit chain can be replayed from the log.
type RefinementRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SectionID       uuid.UUID `gorm:"type:uuid;not null;index;column:section_id" json:"section_id"`
	Prompt          string    `gorm:"not null;column:prompt" json:"prompt"`
	PreviousContent string    `gorm:"column:previous_content" json:"previous_content"`
	NewContent      string    `gorm:"column:new_content" json:"new_content"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (RefinementRecord) TableName() string {
	return "refinement_history"
}

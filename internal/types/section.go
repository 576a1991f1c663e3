package types

import (
	"time"

	"github.com/google/uuid"
)

// Section is one titled content block. Content stays nil until first
// generation. OrderIndex values within a project form a contiguous
// zero-based sequence; for slide decks index 0 is the opening entry and
// the exporter renders its own title slide in that position.
type Section struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index;column:project_id" json:"project_id"`
	Title      string    `gorm:"not null;column:title" json:"title"`
	Content    *string   `gorm:"column:content" json:"content"`
	OrderIndex int       `gorm:"not null;column:order_index" json:"order_index"`
	Liked      *bool     `gorm:"column:liked" json:"liked"`
	Comment    *string   `gorm:"column:comment" json:"comment"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Section) TableName() string {
	return "section"
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// DocumentKind selects the prompt shape, content shape and export
// container for a project. The wire value doubles as the file extension.
type DocumentKind string

const (
	KindLongForm  DocumentKind = "docx"
	KindSlideDeck DocumentKind = "pptx"
)

func (k DocumentKind) Valid() bool {
	return k == KindLongForm || k == KindSlideDeck
}

func (k DocumentKind) Extension() string {
	return string(k)
}

func (k DocumentKind) MimeType() string {
	if k == KindSlideDeck {
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Project is the root aggregate: a topic plus a fixed document kind.
// Both are immutable after creation; only sections change.
type Project struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	DocumentKind DocumentKind `gorm:"not null;column:document_type" json:"document_type"`
	Title        string       `gorm:"not null;column:title" json:"title"`
	Topic        string       `gorm:"not null;column:topic" json:"topic"`
	CreatedAt    time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (Project) TableName() string {
	return "project"
}

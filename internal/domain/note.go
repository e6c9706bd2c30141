package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note is a free-form operator remark scoped to a month. Notes are
// append-only and hard-deleted by id; they are never overwritten.
type Note struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MonthKey  string         `gorm:"size:7;not null;index" json:"month_key"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"timestamp"`
}

func (Note) TableName() string { return "note" }

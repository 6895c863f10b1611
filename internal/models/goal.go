package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Title        string         `json:"title" gorm:"not null"`
	Category     Category       `json:"category" gorm:"not null;index"`
	TargetCount  int            `json:"targetCount" gorm:"not null;default:0"`
	CurrentCount int            `json:"currentCount" gorm:"not null;default:0"`
	Description  *string        `json:"description"`
	Deadline     *string        `json:"deadline" gorm:"size:10"`
	IsCompleted  bool           `json:"isCompleted" gorm:"default:false"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Goal DTOs
type CreateGoalRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	TargetCount int     `json:"targetCount"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
}

// UpdateGoalRequest carries two shapes: IsCompleted alone (completion
// toggle, no other field touched) or a full-field update.
type UpdateGoalRequest struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	TargetCount  *int    `json:"targetCount"`
	CurrentCount *int    `json:"currentCount"`
	Description  *string `json:"description"`
	Deadline     *string `json:"deadline"`
	IsCompleted  *bool   `json:"isCompleted"`
}

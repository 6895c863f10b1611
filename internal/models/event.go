package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event dates and times are stored as ISO strings ("2006-01-02",
// "15:04"), so range filters and (date, start_time) ordering are plain
// lexicographic comparisons on both sqlite and postgres.
type Event struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	GoalID      *uuid.UUID     `json:"goalId" gorm:"type:uuid"`
	Title       string         `json:"title" gorm:"not null"`
	EventDate   string         `json:"eventDate" gorm:"size:10;not null;index"`
	StartTime   string         `json:"startTime" gorm:"size:8;not null"`
	EndTime     *string        `json:"endTime" gorm:"size:8"`
	EventType   *string        `json:"eventType"` // canonical category or null
	Location    *string        `json:"location"`
	Notes       *string        `json:"notes"`
	IsCompleted bool           `json:"isCompleted" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Contacts []Contact `json:"contacts,omitempty" gorm:"many2many:contact_events"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ContactEvent is the contact<->event association table. Rows are fully
// replaced on event update, never diffed.
type ContactEvent struct {
	EventID   uuid.UUID `json:"eventId" gorm:"type:uuid;primaryKey"`
	ContactID uuid.UUID `json:"contactId" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactEvent) TableName() string {
	return "contact_events"
}

// EventRequest covers both create and update.
type EventRequest struct {
	Title     string      `json:"title"`
	EventDate string      `json:"eventDate"`
	StartTime string      `json:"startTime"`
	EndTime   *string     `json:"endTime"`
	EventType *string     `json:"eventType"`
	Location  *string     `json:"location"`
	Notes     *string     `json:"notes"`
	GoalID    *uuid.UUID  `json:"goalId"`
	Contacts  []uuid.UUID `json:"contacts"`
}

type MoveEventRequest struct {
	NewDate string `json:"newDate"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const PlaceholderPhoto = "https://via.placeholder.com/150"

type Contact struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	FirstName     string         `json:"firstName" gorm:"not null"`
	LastName      string         `json:"lastName" gorm:"not null"`
	Phone         *string        `json:"phone"`
	Email         *string        `json:"email"`
	StreetAddress *string        `json:"streetAddress"`
	City          *string        `json:"city"`
	State         *string        `json:"state"`
	ZipCode       *string        `json:"zipCode"`
	Photo         string         `json:"photo" gorm:"not null"`
	IsFavorite    bool           `json:"isFavorite" gorm:"default:false"`
	Notes         *string        `json:"notes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	Events []Event `json:"events,omitempty" gorm:"many2many:contact_events"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Photo == "" {
		c.Photo = PlaceholderPhoto
	}
	return nil
}

// ContactRequest covers both create and update; all optional fields keep
// their null when the submitted value is empty.
type ContactRequest struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	Photo         *string `json:"photo"`
	Notes         *string `json:"notes"`
}

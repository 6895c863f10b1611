package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
)

func isValidDate(date string) bool {
	return dateRe.MatchString(date)
}

func isValidTime(t string) bool {
	return timeRe.MatchString(t)
}

// validateEventRequest checks the shared create/update fields and returns
// the normalized event type (nil for an uncategorized event).
func validateEventRequest(req *models.EventRequest) (*string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, validationErrorf("Title is required")
	}
	if !isValidDate(req.EventDate) {
		return nil, validationErrorf("Invalid date format")
	}
	if !isValidTime(req.StartTime) {
		return nil, validationErrorf("Invalid start time format")
	}
	if req.EndTime != nil && *req.EndTime != "" {
		if !isValidTime(*req.EndTime) {
			return nil, validationErrorf("Invalid end time format")
		}
		if req.StartTime > *req.EndTime {
			return nil, validationErrorf("End time must be after start time")
		}
	}

	if req.EventType == nil || strings.TrimSpace(*req.EventType) == "" {
		return nil, nil
	}
	category, ok := models.NormalizeCategory(*req.EventType)
	if !ok {
		return nil, validationErrorf("Invalid event type. Must be: Spiritual, Social, Intellectual, Physical, or Romantic")
	}
	normalized := string(category)
	return &normalized, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func findEvent(db *gorm.DB, userID, eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := db.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ownedContacts resolves the submitted contact id list against the user's
// own roster. Ids pointing at other users' contacts are dropped.
func ownedContacts(tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) ([]models.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contacts []models.Contact
	err := tx.Where("user_id = ? AND id IN ?", userID, ids).Find(&contacts).Error
	return contacts, err
}

// CreateEvent inserts the event, links the submitted contacts, and runs
// the goal sync rule when the event carries a type. The three steps are
// one transaction: either everything lands or nothing does.
func CreateEvent(db *gorm.DB, userID uuid.UUID, req models.EventRequest) (*models.Event, error) {
	eventType, err := validateEventRequest(&req)
	if err != nil {
		return nil, err
	}

	if req.GoalID != nil {
		if _, err := findGoal(db, userID, *req.GoalID); err != nil {
			return nil, err
		}
	}

	var endTime *string
	if req.EndTime != nil && *req.EndTime != "" {
		endTime = req.EndTime
	}

	event := models.Event{
		UserID:    userID,
		GoalID:    req.GoalID,
		Title:     strings.TrimSpace(req.Title),
		EventDate: req.EventDate,
		StartTime: req.StartTime,
		EndTime:   endTime,
		EventType: eventType,
		Location:  trimOrNil(req.Location),
		Notes:     trimOrNil(req.Notes),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		contacts, err := ownedContacts(tx, userID, req.Contacts)
		if err != nil {
			return err
		}
		if len(contacts) > 0 {
			if err := tx.Model(&event).Association("Contacts").Append(contacts); err != nil {
				return err
			}
		}

		if eventType != nil {
			if _, err := SyncEventToGoals(tx, userID, models.Category(*eventType)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetEvent returns the event together with its linked contact ids, for
// filling an edit form.
func GetEvent(db *gorm.DB, userID, eventID uuid.UUID) (*models.Event, []uuid.UUID, error) {
	event, err := findEvent(db, userID, eventID)
	if err != nil {
		return nil, nil, err
	}

	var links []models.ContactEvent
	if err := db.Where("event_id = ?", event.ID).Find(&links).Error; err != nil {
		return nil, nil, err
	}
	contactIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		contactIDs = append(contactIDs, link.ContactID)
	}
	return event, contactIDs, nil
}

// UpdateEvent rewrites every field and fully replaces the contact
// associations with the submitted set. A changed event type does NOT
// re-run the goal sync rule; only creation logs progress.
func UpdateEvent(db *gorm.DB, userID, eventID uuid.UUID, req models.EventRequest) (*models.Event, error) {
	event, err := findEvent(db, userID, eventID)
	if err != nil {
		return nil, err
	}

	eventType, err := validateEventRequest(&req)
	if err != nil {
		return nil, err
	}

	if req.GoalID != nil {
		if _, err := findGoal(db, userID, *req.GoalID); err != nil {
			return nil, err
		}
	}

	var endTime *string
	if req.EndTime != nil && *req.EndTime != "" {
		endTime = req.EndTime
	}

	event.GoalID = req.GoalID
	event.Title = strings.TrimSpace(req.Title)
	event.EventDate = req.EventDate
	event.StartTime = req.StartTime
	event.EndTime = endTime
	event.EventType = eventType
	event.Location = trimOrNil(req.Location)
	event.Notes = trimOrNil(req.Notes)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(event).Error; err != nil {
			return err
		}

		contacts, err := ownedContacts(tx, userID, req.Contacts)
		if err != nil {
			return err
		}
		return tx.Model(event).Association("Contacts").Replace(contacts)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes the event and its contact links. Goal increments
// from the event's creation are deliberately left in place.
func DeleteEvent(db *gorm.DB, userID, eventID uuid.UUID) error {
	event, err := findEvent(db, userID, eventID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.ContactEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(event).Error
	})
}

// MoveEvent changes only the date (drag-and-drop on the calendar grid).
func MoveEvent(db *gorm.DB, userID, eventID uuid.UUID, newDate string) (*models.Event, error) {
	if !isValidDate(newDate) {
		return nil, validationErrorf("Invalid date format")
	}

	event, err := findEvent(db, userID, eventID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(event).Update("event_date", newDate).Error; err != nil {
		return nil, err
	}
	event.EventDate = newDate
	return event, nil
}

func CompleteEvent(db *gorm.DB, userID, eventID uuid.UUID) (*models.Event, error) {
	event, err := findEvent(db, userID, eventID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(event).Update("is_completed", true).Error; err != nil {
		return nil, err
	}
	event.IsCompleted = true
	return event, nil
}

package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	ContactFilterAll       = "all"
	ContactFilterFavorites = "favorites"
	ContactFilterRecent    = "recent"
)

// ContactWithCount is a roster entry with the number of events the
// contact is linked to.
type ContactWithCount struct {
	models.Contact
	EventCount int64 `json:"eventCount"`
}

func validateContactRequest(req *models.ContactRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return validationErrorf("First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return validationErrorf("Last name is required")
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !emailRe.MatchString(email) {
			return validationErrorf("Invalid email format")
		}
	}
	return nil
}

func findContact(db *gorm.DB, userID, contactID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := db.Where("id = ? AND user_id = ?", contactID, userID).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts returns the roster with per-contact event counts.
// Search matches name, email, and phone case-insensitively. The
// "recent" filter keeps the 10 newest; "favorites" is applied after the
// alphabetical load so the order stays by name.
func ListContacts(db *gorm.DB, userID uuid.UUID, search, filter string) ([]ContactWithCount, error) {
	query := db.Where("user_id = ?", userID)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ? OR LOWER(COALESCE(phone, '')) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter == ContactFilterRecent {
		query = query.Order("created_at DESC").Limit(10)
	} else {
		query = query.Order("last_name, first_name")
	}

	var contacts []models.Contact
	if err := query.Find(&contacts).Error; err != nil {
		return nil, err
	}

	if filter == ContactFilterFavorites {
		favorites := contacts[:0]
		for _, c := range contacts {
			if c.IsFavorite {
				favorites = append(favorites, c)
			}
		}
		contacts = favorites
	}

	counts, err := contactEventCounts(db, contacts)
	if err != nil {
		return nil, err
	}

	result := make([]ContactWithCount, len(contacts))
	for i, c := range contacts {
		result[i] = ContactWithCount{Contact: c, EventCount: counts[c.ID]}
	}
	return result, nil
}

func contactEventCounts(db *gorm.DB, contacts []models.Contact) (map[uuid.UUID]int64, error) {
	countMap := make(map[uuid.UUID]int64, len(contacts))
	if len(contacts) == 0 {
		return countMap, nil
	}

	ids := make([]uuid.UUID, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}

	type countResult struct {
		ContactID uuid.UUID
		Count     int64
	}
	var counts []countResult
	err := db.Model(&models.ContactEvent{}).
		Select("contact_id, COUNT(*) as count").
		Where("contact_id IN ?", ids).
		Group("contact_id").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}

	for _, cr := range counts {
		countMap[cr.ContactID] = cr.Count
	}
	return countMap, nil
}

func CreateContact(db *gorm.DB, userID uuid.UUID, req models.ContactRequest) (*models.Contact, error) {
	if err := validateContactRequest(&req); err != nil {
		return nil, err
	}

	contact := models.Contact{
		UserID:        userID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Phone:         trimOrNil(req.Phone),
		Email:         trimOrNil(req.Email),
		StreetAddress: trimOrNil(req.StreetAddress),
		City:          trimOrNil(req.City),
		State:         trimOrNil(req.State),
		ZipCode:       trimOrNil(req.ZipCode),
		Notes:         trimOrNil(req.Notes),
	}
	if req.Photo != nil && *req.Photo != "" {
		contact.Photo = *req.Photo
	}

	if err := db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetContact returns the contact plus its events, newest first.
func GetContact(db *gorm.DB, userID, contactID uuid.UUID) (*models.Contact, []models.Event, error) {
	contact, err := findContact(db, userID, contactID)
	if err != nil {
		return nil, nil, err
	}

	var events []models.Event
	err = db.Joins("JOIN contact_events ON contact_events.event_id = events.id").
		Where("contact_events.contact_id = ? AND events.user_id = ?", contactID, userID).
		Order("event_date DESC, start_time DESC").
		Find(&events).Error
	if err != nil {
		return nil, nil, err
	}
	return contact, events, nil
}

// UpdateContact rewrites the contact's fields. The stored photo is kept
// unless a new path is submitted.
func UpdateContact(db *gorm.DB, userID, contactID uuid.UUID, req models.ContactRequest) (*models.Contact, error) {
	contact, err := findContact(db, userID, contactID)
	if err != nil {
		return nil, err
	}

	if err := validateContactRequest(&req); err != nil {
		return nil, err
	}

	contact.FirstName = strings.TrimSpace(req.FirstName)
	contact.LastName = strings.TrimSpace(req.LastName)
	contact.Phone = trimOrNil(req.Phone)
	contact.Email = trimOrNil(req.Email)
	contact.StreetAddress = trimOrNil(req.StreetAddress)
	contact.City = trimOrNil(req.City)
	contact.State = trimOrNil(req.State)
	contact.ZipCode = trimOrNil(req.ZipCode)
	contact.Notes = trimOrNil(req.Notes)
	if req.Photo != nil && *req.Photo != "" {
		contact.Photo = *req.Photo
	}

	if err := db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// ToggleFavorite flips the favorite flag and reports the new value.
func ToggleFavorite(db *gorm.DB, userID, contactID uuid.UUID) (bool, error) {
	contact, err := findContact(db, userID, contactID)
	if err != nil {
		return false, err
	}

	contact.IsFavorite = !contact.IsFavorite
	if err := db.Model(contact).Update("is_favorite", contact.IsFavorite).Error; err != nil {
		return false, err
	}
	return contact.IsFavorite, nil
}

// DeleteContact removes the contact and every event association it holds.
func DeleteContact(db *gorm.DB, userID, contactID uuid.UUID) error {
	contact, err := findContact(db, userID, contactID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.ContactEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(contact).Error
	})
}

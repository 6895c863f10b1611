package services

import (
	"testing"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContactValidation(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	var ve *ValidationError

	_, err := CreateContact(db, userID, models.ContactRequest{FirstName: "", LastName: "Doe"})
	require.ErrorAs(t, err, &ve)

	_, err = CreateContact(db, userID, models.ContactRequest{FirstName: "Jane", LastName: " "})
	require.ErrorAs(t, err, &ve)

	_, err = CreateContact(db, userID, models.ContactRequest{
		FirstName: "Jane", LastName: "Doe", Email: strPtr("not-an-email"),
	})
	require.ErrorAs(t, err, &ve)
}

func TestCreateContactDefaultsPhoto(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	contact, err := CreateContact(db, userID, models.ContactRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderPhoto, contact.Photo)
}

func TestListContactsSortedWithEventCounts(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	zoe := seedContact(t, db, userID, "Zoe", "Young")
	amy := seedContact(t, db, userID, "Amy", "Adams")

	req := eventRequest("Lunch", "2024-06-01", "12:00")
	req.Contacts = []uuid.UUID{amy.ID}
	_, err := CreateEvent(db, userID, req)
	require.NoError(t, err)

	req = eventRequest("Dinner", "2024-06-02", "18:00")
	req.Contacts = []uuid.UUID{amy.ID}
	_, err = CreateEvent(db, userID, req)
	require.NoError(t, err)

	contacts, err := ListContacts(db, userID, "", ContactFilterAll)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, amy.ID, contacts[0].ID)
	assert.Equal(t, int64(2), contacts[0].EventCount)
	assert.Equal(t, zoe.ID, contacts[1].ID)
	assert.Equal(t, int64(0), contacts[1].EventCount)
}

func TestListContactsSearch(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	jane := models.ContactRequest{FirstName: "Jane", LastName: "Doe", Email: strPtr("jane@example.com")}
	_, err := CreateContact(db, userID, jane)
	require.NoError(t, err)

	john := models.ContactRequest{FirstName: "John", LastName: "Smith", Phone: strPtr("555-1234")}
	_, err = CreateContact(db, userID, john)
	require.NoError(t, err)

	// Full-name match, case-insensitive
	contacts, err := ListContacts(db, userID, "jane doe", ContactFilterAll)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane", contacts[0].FirstName)

	// Email match
	contacts, err = ListContacts(db, userID, "EXAMPLE.COM", ContactFilterAll)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	// Phone match
	contacts, err = ListContacts(db, userID, "555", ContactFilterAll)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John", contacts[0].FirstName)
}

func TestListContactsFavoritesFilter(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	seedContact(t, db, userID, "Jane", "Doe")
	john := seedContact(t, db, userID, "John", "Smith")

	_, err := ToggleFavorite(db, userID, john.ID)
	require.NoError(t, err)

	contacts, err := ListContacts(db, userID, "", ContactFilterFavorites)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John", contacts[0].FirstName)
}

func TestToggleFavoriteFlips(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")
	contact := seedContact(t, db, userID, "Jane", "Doe")

	fav, err := ToggleFavorite(db, userID, contact.ID)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = ToggleFavorite(db, userID, contact.ID)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestGetContactWithEvents(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")
	contact := seedContact(t, db, userID, "Jane", "Doe")

	req := eventRequest("Older", "2024-06-01", "12:00")
	req.Contacts = []uuid.UUID{contact.ID}
	_, err := CreateEvent(db, userID, req)
	require.NoError(t, err)

	req = eventRequest("Newer", "2024-06-10", "12:00")
	req.Contacts = []uuid.UUID{contact.ID}
	_, err = CreateEvent(db, userID, req)
	require.NoError(t, err)

	got, events, err := GetContact(db, userID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, got.ID)

	// Newest first
	require.Len(t, events, 2)
	assert.Equal(t, "Newer", events[0].Title)
	assert.Equal(t, "Older", events[1].Title)
}

func TestUpdateContactKeepsPhotoUnlessReplaced(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	photo := "/uploads/contacts/abc.jpg"
	contact, err := CreateContact(db, userID, models.ContactRequest{
		FirstName: "Jane", LastName: "Doe", Photo: &photo,
	})
	require.NoError(t, err)

	updated, err := UpdateContact(db, userID, contact.ID, models.ContactRequest{
		FirstName: "Janet", LastName: "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, photo, updated.Photo)
}

func TestDeleteContactRemovesAssociations(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")
	contact := seedContact(t, db, userID, "Jane", "Doe")

	req := eventRequest("Lunch", "2024-06-01", "12:00")
	req.Contacts = []uuid.UUID{contact.ID}
	event, err := CreateEvent(db, userID, req)
	require.NoError(t, err)

	require.NoError(t, DeleteContact(db, userID, contact.ID))

	// The event survives but its link to the contact is gone
	got, _, err := GetEvent(db, userID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Title)
	assert.Empty(t, linkedContactIDs(t, db, event.ID))
}

func TestContactNotFoundForOtherUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	contact := seedContact(t, db, alice, "Jane", "Doe")

	_, _, err := GetContact(db, bob, contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ToggleFavorite(db, bob, contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = DeleteContact(db, bob, contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

package services

import (
	"testing"
	"time"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindowFromWednesday(t *testing.T) {
	// 2024-06-05 is a Wednesday
	r := WeekWindow(2024, 6, 5)
	assert.Equal(t, "2024-06-02", r.Start) // preceding Sunday
	assert.Equal(t, "2024-06-08", r.End)   // following Saturday
}

func TestWeekWindowFromSundayAndSaturday(t *testing.T) {
	// A Sunday anchors its own week
	r := WeekWindow(2024, 6, 2)
	assert.Equal(t, "2024-06-02", r.Start)
	assert.Equal(t, "2024-06-08", r.End)

	// A Saturday closes it
	r = WeekWindow(2024, 6, 8)
	assert.Equal(t, "2024-06-02", r.Start)
	assert.Equal(t, "2024-06-08", r.End)
}

func TestWeekWindowCrossesMonthBoundary(t *testing.T) {
	// 2024-07-02 is a Tuesday; its week starts in June
	r := WeekWindow(2024, 7, 2)
	assert.Equal(t, "2024-06-30", r.Start)
	assert.Equal(t, "2024-07-06", r.End)
}

func TestMonthWindow(t *testing.T) {
	assert.Equal(t, DateRange{Start: "2024-06-01", End: "2024-06-30"}, MonthWindow(2024, 6))
	assert.Equal(t, DateRange{Start: "2024-02-01", End: "2024-02-29"}, MonthWindow(2024, 2))
	assert.Equal(t, DateRange{Start: "2023-02-01", End: "2023-02-28"}, MonthWindow(2023, 2))
	assert.Equal(t, DateRange{Start: "2024-12-01", End: "2024-12-31"}, MonthWindow(2024, 12))
}

func TestMonthViewFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	// Out-of-month noise
	_, err := CreateEvent(db, userID, eventRequest("May event", "2024-05-31", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("July event", "2024-07-01", "09:00"))
	require.NoError(t, err)

	// June events inserted out of order
	_, err = CreateEvent(db, userID, eventRequest("Late June", "2024-06-20", "10:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Mid June PM", "2024-06-10", "14:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Mid June AM", "2024-06-10", "08:00"))
	require.NoError(t, err)

	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewMonth, Year: 2024, Month: 6, Day: 1})
	require.NoError(t, err)

	require.Len(t, view.Events, 3)
	assert.Equal(t, "Mid June AM", view.Events[0].Title)
	assert.Equal(t, "Mid June PM", view.Events[1].Title)
	assert.Equal(t, "Late June", view.Events[2].Title)
	assert.Equal(t, DateRange{Start: "2024-06-01", End: "2024-06-30"}, view.DateRange)
}

func TestWeekViewFiltersInclusive(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	_, err := CreateEvent(db, userID, eventRequest("Before", "2024-06-01", "09:00")) // Saturday before
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Sunday", "2024-06-02", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Saturday", "2024-06-08", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("After", "2024-06-09", "09:00")) // next Sunday
	require.NoError(t, err)

	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewWeek, Year: 2024, Month: 6, Day: 5})
	require.NoError(t, err)

	require.Len(t, view.Events, 2)
	assert.Equal(t, "Sunday", view.Events[0].Title)
	assert.Equal(t, "Saturday", view.Events[1].Title)
}

func TestDayViewExactMatch(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	_, err := CreateEvent(db, userID, eventRequest("Target", "2024-06-05", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Other", "2024-06-06", "09:00"))
	require.NoError(t, err)

	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewDay, Year: 2024, Month: 6, Day: 5})
	require.NoError(t, err)

	require.Len(t, view.Events, 1)
	assert.Equal(t, "Target", view.Events[0].Title)
	assert.Equal(t, DateRange{Start: "2024-06-05", End: "2024-06-05"}, view.DateRange)
}

func TestCalendarEventsCarryContacts(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	jane := seedContact(t, db, userID, "Jane", "Doe")

	req := eventRequest("With contact", "2024-06-05", "09:00")
	req.Contacts = []uuid.UUID{jane.ID}
	_, err := CreateEvent(db, userID, req)
	require.NoError(t, err)

	_, err = CreateEvent(db, userID, eventRequest("Without contact", "2024-06-06", "09:00"))
	require.NoError(t, err)

	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewMonth, Year: 2024, Month: 6, Day: 1})
	require.NoError(t, err)
	require.Len(t, view.Events, 2)

	withContact := view.Events[0]
	require.Len(t, withContact.Contacts, 1)
	assert.Equal(t, jane.ID, withContact.Contacts[0].ContactID)
	assert.Equal(t, "Jane", withContact.Contacts[0].FirstName)
	assert.Equal(t, "Doe", withContact.Contacts[0].LastName)

	// Empty list, not null
	assert.NotNil(t, view.Events[1].Contacts)
	assert.Empty(t, view.Events[1].Contacts)
}

func TestTodayEventsAlwaysIncluded(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	today := time.Now().Format("2006-01-02")
	_, err := CreateEvent(db, userID, eventRequest("Today", today, "09:00"))
	require.NoError(t, err)

	// Request a window far away from today
	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewMonth, Year: 1999, Month: 1, Day: 1})
	require.NoError(t, err)

	assert.Empty(t, view.Events)
	require.Len(t, view.TodayEvents, 1)
	assert.Equal(t, "Today", view.TodayEvents[0].Title)
}

func TestCalendarCompanionLists(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	seedContact(t, db, userID, "Zoe", "Young")
	seedContact(t, db, userID, "Amy", "Adams")
	seedContact(t, db, userID, "Ben", "Adams")

	seedGoal(t, db, userID, models.CategorySocial, 3, 0, false)
	seedGoal(t, db, userID, models.CategoryPhysical, 2, 2, true) // completed, excluded

	view, err := BuildCalendarView(db, userID, CalendarQuery{View: ViewMonth, Year: 2024, Month: 6, Day: 1})
	require.NoError(t, err)

	// Roster sorted by last name then first name
	require.Len(t, view.Contacts, 3)
	assert.Equal(t, "Amy", view.Contacts[0].FirstName)
	assert.Equal(t, "Ben", view.Contacts[1].FirstName)
	assert.Equal(t, "Zoe", view.Contacts[2].FirstName)

	// Only incomplete goals offered for selection
	require.Len(t, view.Goals, 1)
	assert.Equal(t, models.CategorySocial, view.Goals[0].Category)
}

func TestCalendarScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := CreateEvent(db, bob, eventRequest("Bob's event", "2024-06-05", "09:00"))
	require.NoError(t, err)

	view, err := BuildCalendarView(db, alice, CalendarQuery{View: ViewMonth, Year: 2024, Month: 6, Day: 1})
	require.NoError(t, err)
	assert.Empty(t, view.Events)
}

func TestEventsInRange(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, "alice")

	_, err := CreateEvent(db, userID, eventRequest("In", "2024-06-05", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Edge", "2024-06-10", "09:00"))
	require.NoError(t, err)
	_, err = CreateEvent(db, userID, eventRequest("Out", "2024-06-11", "09:00"))
	require.NoError(t, err)

	events, err := EventsInRange(db, userID, "2024-06-05", "2024-06-10")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "In", events[0].Title)
	assert.Equal(t, "Edge", events[1].Title)

	var ve *ValidationError
	_, err = EventsInRange(db, userID, "bad", "2024-06-10")
	require.ErrorAs(t, err, &ve)
}

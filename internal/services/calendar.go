package services

import (
	"fmt"
	"time"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ViewMonth = "month"
	ViewWeek  = "week"
	ViewDay   = "day"
)

// ContactRef is the reduced contact shape attached to calendar events and
// used for the roster side list.
type ContactRef struct {
	ContactID uuid.UUID `json:"contact_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// EventView is an event annotated with its linked contacts. The Contacts
// field shadows the model's association slice so the JSON always carries
// the reduced shape, and an empty list rather than null.
type EventView struct {
	models.Event
	Contacts []ContactRef `json:"contacts"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalendarQuery struct {
	View  string
	Year  int
	Month int
	Day   int
}

// CalendarView is everything the calendar page needs in one shot: the
// requested window's events, today's events regardless of the window,
// and the companion lists for the contact and goal selectors.
type CalendarView struct {
	View        string        `json:"view"`
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	Day         int           `json:"day"`
	DateRange   DateRange     `json:"dateRange"`
	Events      []EventView   `json:"events"`
	TodayEvents []EventView   `json:"todayEvents"`
	Contacts    []ContactRef  `json:"contacts"`
	Goals       []models.Goal `json:"goals"`
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekWindow returns the Sunday-to-Saturday range containing the given
// date. Weeks start on Sunday: start = date - date.Weekday().
func WeekWindow(year, month, day int) DateRange {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	start := t.AddDate(0, 0, -int(t.Weekday()))
	return DateRange{
		Start: formatDate(start),
		End:   formatDate(start.AddDate(0, 0, 6)),
	}
}

// MonthWindow returns the first and last day of the given month. A range
// query over it is equivalent to matching the date's year and month
// components, and the same statement works on sqlite and postgres.
func MonthWindow(year, month int) DateRange {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: formatDate(first),
		End:   formatDate(first.AddDate(0, 1, -1)),
	}
}

func dayRange(year, month, day int) DateRange {
	d := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	return DateRange{Start: d, End: d}
}

// eventsBetween loads the user's events in [start, end] inclusive,
// ordered by date then start time, each with its contacts attached.
func eventsBetween(db *gorm.DB, userID uuid.UUID, r DateRange) ([]EventView, error) {
	var events []models.Event
	err := db.Where("user_id = ? AND event_date >= ? AND event_date <= ?", userID, r.Start, r.End).
		Order("event_date, start_time").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return attachContacts(db, events)
}

// attachContacts batch-loads the association rows and contacts for a page
// of events. Events with no linked contacts get an empty list, not null.
func attachContacts(db *gorm.DB, events []models.Event) ([]EventView, error) {
	views := make([]EventView, len(events))
	for i := range events {
		views[i] = EventView{Event: events[i], Contacts: []ContactRef{}}
	}
	if len(events) == 0 {
		return views, nil
	}

	eventIDs := make([]uuid.UUID, len(events))
	for i := range events {
		eventIDs[i] = events[i].ID
	}

	var links []models.ContactEvent
	if err := db.Where("event_id IN ?", eventIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return views, nil
	}

	contactIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		contactIDs = append(contactIDs, link.ContactID)
	}

	var contacts []models.Contact
	if err := db.Where("id IN ?", contactIDs).Order("last_name, first_name").Find(&contacts).Error; err != nil {
		return nil, err
	}
	refs := make(map[uuid.UUID]ContactRef, len(contacts))
	for _, c := range contacts {
		refs[c.ID] = ContactRef{ContactID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
	}

	linked := make(map[uuid.UUID][]ContactRef, len(events))
	for _, c := range contacts {
		for _, link := range links {
			if link.ContactID == c.ID {
				linked[link.EventID] = append(linked[link.EventID], refs[c.ID])
			}
		}
	}

	for i := range views {
		if l, ok := linked[views[i].Event.ID]; ok {
			views[i].Contacts = l
		}
	}
	return views, nil
}

// ContactRoster returns the user's full contact list reduced to ids and
// names, sorted by last name then first name.
func ContactRoster(db *gorm.DB, userID uuid.UUID) ([]ContactRef, error) {
	var roster []ContactRef
	err := db.Model(&models.Contact{}).
		Select("id AS contact_id, first_name, last_name").
		Where("user_id = ?", userID).
		Order("last_name, first_name").
		Scan(&roster).Error
	if roster == nil {
		roster = []ContactRef{}
	}
	return roster, err
}

// BuildCalendarView assembles the month, week, or day view. Zero query
// fields default to the server's current date, and month is the default
// view.
func BuildCalendarView(db *gorm.DB, userID uuid.UUID, q CalendarQuery) (*CalendarView, error) {
	now := time.Now()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Day == 0 {
		q.Day = now.Day()
	}

	var window DateRange
	switch q.View {
	case ViewWeek:
		window = WeekWindow(q.Year, q.Month, q.Day)
	case ViewDay:
		window = dayRange(q.Year, q.Month, q.Day)
	default:
		q.View = ViewMonth
		window = MonthWindow(q.Year, q.Month)
	}

	events, err := eventsBetween(db, userID, window)
	if err != nil {
		return nil, err
	}

	today := formatDate(now)
	todayEvents, err := eventsBetween(db, userID, DateRange{Start: today, End: today})
	if err != nil {
		return nil, err
	}

	roster, err := ContactRoster(db, userID)
	if err != nil {
		return nil, err
	}

	goals, err := ListOpenGoals(db, userID)
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		View:        q.View,
		Year:        q.Year,
		Month:       q.Month,
		Day:         q.Day,
		DateRange:   window,
		Events:      events,
		TodayEvents: todayEvents,
		Contacts:    roster,
		Goals:       goals,
	}, nil
}

// EventsInRange serves the raw range API: [start, end] inclusive, same
// ordering and contact annotation as the calendar views.
func EventsInRange(db *gorm.DB, userID uuid.UUID, start, end string) ([]EventView, error) {
	if !isValidDate(start) || !isValidDate(end) {
		return nil, validationErrorf("Invalid date format")
	}
	return eventsBetween(db, userID, DateRange{Start: start, End: end})
}

package handlers

import (
	"github.com/JacobDishman/IS-403-Project/internal/database"
	"github.com/JacobDishman/IS-403-Project/internal/middleware"
	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/JacobDishman/IS-403-Project/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCalendar serves the month/week/day calendar view, defaulting to the
// current month.
func GetCalendar(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	query := services.CalendarQuery{
		View:  c.Query("view", services.ViewMonth),
		Year:  c.QueryInt("year"),
		Month: c.QueryInt("month"),
		Day:   c.QueryInt("day"),
	}

	view, err := services.BuildCalendarView(database.DB, userID, query)
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(view)
}

// GetEventsInRange serves the raw date-range API used by the calendar
// frontend.
func GetEventsInRange(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	events, err := services.EventsInRange(database.DB, userID, c.Query("start"), c.Query("end"))
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(fiber.Map{"events": events})
}

func CreateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := services.CreateEvent(database.DB, userID, req)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func GetEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, contactIDs, err := services.GetEvent(database.DB, userID, eventID)
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(fiber.Map{
		"event":       event,
		"contact_ids": contactIDs,
	})
}

func UpdateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := services.UpdateEvent(database.DB, userID, eventID, req)
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	if err := services.DeleteEvent(database.DB, userID, eventID); err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

// MoveEvent updates only the event date (drag-and-drop).
func MoveEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var req models.MoveEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := services.MoveEvent(database.DB, userID, eventID, req.NewDate)
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

func CompleteEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := services.CompleteEvent(database.DB, userID, eventID)
	if err != nil {
		return serviceError(c, err, "Event not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

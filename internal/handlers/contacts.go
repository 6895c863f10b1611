package handlers

import (
	"github.com/JacobDishman/IS-403-Project/internal/database"
	"github.com/JacobDishman/IS-403-Project/internal/middleware"
	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/JacobDishman/IS-403-Project/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListContacts(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	search := c.Query("search")
	filter := c.Query("filter", services.ContactFilterAll)

	contacts, err := services.ListContacts(database.DB, userID, search, filter)
	if err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.JSON(fiber.Map{
		"contacts": contacts,
		"search":   search,
		"filter":   filter,
	})
}

func CreateContact(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	contact, err := services.CreateContact(database.DB, userID, req)
	if err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.Status(fiber.StatusCreated).JSON(contact)
}

func GetContact(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid contact ID",
		})
	}

	contact, events, err := services.GetContact(database.DB, userID, contactID)
	if err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.JSON(fiber.Map{
		"contact": contact,
		"events":  events,
	})
}

func UpdateContact(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid contact ID",
		})
	}

	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	contact, err := services.UpdateContact(database.DB, userID, contactID, req)
	if err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.JSON(contact)
}

func ToggleContactFavorite(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid contact ID",
		})
	}

	isFavorite, err := services.ToggleFavorite(database.DB, userID, contactID)
	if err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"is_favorite": isFavorite,
	})
}

func DeleteContact(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid contact ID",
		})
	}

	if err := services.DeleteContact(database.DB, userID, contactID); err != nil {
		return serviceError(c, err, "Contact not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

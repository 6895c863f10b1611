package handlers

import (
	"github.com/JacobDishman/IS-403-Project/internal/database"
	"github.com/JacobDishman/IS-403-Project/internal/middleware"
	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/JacobDishman/IS-403-Project/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	goals, err := services.ListGoals(database.DB, userID)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.JSON(fiber.Map{"goals": goals})
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := services.CreateGoal(database.DB, userID, req)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// UpdateGoal handles both shapes of the update body: a completion toggle
// (isCompleted alone) or a full-field update.
func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Completion-only toggle
	if req.IsCompleted != nil && req.Title == nil {
		goal, err := services.SetGoalCompletion(database.DB, userID, goalID, *req.IsCompleted)
		if err != nil {
			return serviceError(c, err, "Goal not found")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"goal":    goal,
		})
	}

	goal, err := services.UpdateGoal(database.DB, userID, goalID, req)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.JSON(goal)
}

func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := services.DeleteGoal(database.DB, userID, goalID); err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

func IncrementGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	progress, err := services.IncrementGoal(database.DB, userID, goalID)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"current_count": progress.CurrentCount,
		"target_count":  progress.TargetCount,
		"is_completed":  progress.IsCompleted,
	})
}

func DecrementGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	progress, err := services.DecrementGoal(database.DB, userID, goalID)
	if err != nil {
		return serviceError(c, err, "Goal not found")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"current_count": progress.CurrentCount,
		"target_count":  progress.TargetCount,
		"is_completed":  progress.IsCompleted,
	})
}

package routes

import (
	"github.com/JacobDishman/IS-403-Project/internal/handlers"
	"github.com/JacobDishman/IS-403-Project/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)
	protected.Put("/me/password", handlers.ChangePassword)
	protected.Put("/me/photo", handlers.SetProfilePhoto)

	contacts := protected.Group("/contacts")
	contacts.Get("/", handlers.ListContacts)
	contacts.Post("/", handlers.CreateContact)
	contacts.Get("/:id", handlers.GetContact)
	contacts.Put("/:id", handlers.UpdateContact)
	contacts.Post("/:id/favorite", handlers.ToggleContactFavorite)
	contacts.Delete("/:id", handlers.DeleteContact)

	calendar := protected.Group("/calendar")
	calendar.Get("/", handlers.GetCalendar)
	calendar.Get("/range", handlers.GetEventsInRange)

	events := protected.Group("/events")
	events.Post("/", handlers.CreateEvent)
	events.Get("/:id", handlers.GetEvent)
	events.Put("/:id", handlers.UpdateEvent)
	events.Delete("/:id", handlers.DeleteEvent)
	events.Post("/:id/move", handlers.MoveEvent)
	events.Post("/:id/complete", handlers.CompleteEvent)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.ListGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Delete("/:id", handlers.DeleteGoal)
	goals.Post("/:id/increment", handlers.IncrementGoal)
	goals.Post("/:id/decrement", handlers.DecrementGoal)

	protected.Post("/upload/:kind", handlers.UploadPhoto)
}

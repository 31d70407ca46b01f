package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.Protected(), middleware.TokenActive())

	api.Post("/users/profile", handlers.UpdateProfile)
	api.Get("/certificates/me", handlers.GetMyCertificates)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api")

	reviews := api.Group("/reviews", middleware.Protected(), middleware.TokenActive())
	reviews.Post("", handlers.CreateReview)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "ok"})
	})

	api.Get("/storage/*", handlers.ServeStorageFile)

	api.Get("/categories", handlers.GetCategories)

	skills := api.Group("/skills")
	skills.Get("", handlers.GetSkills)
	// Registered before /:id so "search" is not captured as an id.
	skills.Get("/search", handlers.SearchSkills)
	skills.Get("/user/:userId", handlers.GetUserSkills)
	skills.Get("/:id", handlers.GetSkill)

	api.Get("/users/:id", handlers.GetUser)

	reviews := api.Group("/reviews")
	reviews.Get("/skill/:skillId", handlers.GetSkillReviews)
	reviews.Get("/user/:userId", handlers.GetUserReviews)
}

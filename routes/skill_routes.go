package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func SkillRoutes(app *fiber.App) {
	api := app.Group("/api")

	skills := api.Group("/skills", middleware.Protected(), middleware.TokenActive())
	skills.Post("", middleware.TeacherRequired(), handlers.CreateSkill)
	skills.Put("/:id", handlers.UpdateSkill)
	skills.Delete("/:id", handlers.DeleteSkill)
}

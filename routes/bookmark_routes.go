package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func BookmarkRoutes(app *fiber.App) {
	api := app.Group("/api")

	bookmarks := api.Group("/bookmarks", middleware.Protected(), middleware.TokenActive())
	bookmarks.Post("", handlers.AddBookmark)
	bookmarks.Get("", handlers.GetBookmarks)
	bookmarks.Get("/check/:skillId", handlers.CheckBookmark)
	bookmarks.Delete("/:skillId", handlers.RemoveBookmark)
}

package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api")

	messages := api.Group("/messages", middleware.Protected(), middleware.TokenActive())
	messages.Post("", handlers.SendMessage)
	messages.Get("/unread", handlers.GetUnreadMessages)
	messages.Get("/exchange/:exchangeId", handlers.GetExchangeMessages)
	messages.Post("/read-all", handlers.MarkAllMessagesAsRead)
	messages.Post("/:messageId/read", handlers.MarkMessageAsRead)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}

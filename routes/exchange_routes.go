package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func ExchangeRoutes(app *fiber.App) {
	api := app.Group("/api")

	exchanges := api.Group("/exchanges", middleware.Protected(), middleware.TokenActive())
	exchanges.Post("", handlers.CreateExchange)
	exchanges.Get("", handlers.GetMyExchanges)
	exchanges.Get("/:id", handlers.GetExchange)
	exchanges.Post("/:id/accept", handlers.AcceptExchange)
	exchanges.Post("/:id/complete", handlers.CompleteExchange)
	exchanges.Post("/:id/cancel", handlers.CancelExchange)
}

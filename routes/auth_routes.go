package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mwangiben/skill_share/handlers"
	"github.com/mwangiben/skill_share/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Hour,
	}), handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	api.Post("/forgot-password", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Hour,
	}), handlers.ForgotPassword)
	api.Post("/reset-password", handlers.ResetPassword)

	api.Get("/email/verify/:id/:hash", handlers.VerifyEmail)
	api.Post("/email/resend", limiter.New(limiter.Config{
		Max:        6,
		Expiration: time.Minute,
	}), handlers.ResendVerification)

	protected := api.Group("/auth", middleware.Protected(), middleware.TokenActive())
	protected.Post("/logout", handlers.LogoutUser)
	protected.Get("/me", handlers.Me)
	protected.Get("/profile", handlers.Me)
}

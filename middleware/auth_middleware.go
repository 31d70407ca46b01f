package middleware

import (
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"success": false, "message": "Unauthenticated"})
}

// TokenActive rejects tokens whose revocation row is gone, i.e. tokens
// invalidated by logout. Runs after Protected.
func TokenActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		jti, _ := claims["jti"].(string)

		var count int64
		database.DB.Model(&models.AccessToken{}).Where("jti = ?", jti).Count(&count)
		if count == 0 {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"success": false, "message": "Unauthenticated"})
		}
		return c.Next()
	}
}

// TeacherRequired gates skill management to users who may teach.
func TeacherRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)

		if role != "teacher" && role != "both" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Only teachers can perform this action",
			})
		}
		return c.Next()
	}
}

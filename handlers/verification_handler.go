package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/utils"
)

// VerifyEmail is the stateless verification endpoint behind the emailed
// link. The hash segment must equal sha1(user.email); no per-user secret and
// no expiry, matching the link format the clients already hold.
func VerifyEmail(c *fiber.Ctx) error {
	id := c.Params("id")
	hash := c.Params("hash")

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found."})
	}

	expected := emailVerificationHash(user.Email)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(hash)) != 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid or expired verification link."})
	}

	if user.HasVerifiedEmail() {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Email already verified.",
			"data": fiber.Map{
				"verified": true,
				"email":    user.Email,
			},
		})
	}

	now := time.Now()
	user.EmailVerifiedAt = &now
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Verification failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Email verified successfully! You can now log in.",
		"data": fiber.Map{
			"verified": true,
			"email":    user.Email,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func ResendVerification(c *fiber.Ctx) error {
	var req ResendVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No user found with this email."})
	}

	if user.HasVerifiedEmail() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Email already verified."})
	}

	queueVerificationEmail(&user)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification email sent! Check your inbox.",
		"data":    fiber.Map{"email": user.Email},
	})
}

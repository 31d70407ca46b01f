package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/notifications"
	"github.com/mwangiben/skill_share/utils"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 24 * time.Hour

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token                string `json:"token" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
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
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No account found with this email address."})
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate reset token"})
	}

	tokenHash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate reset token"})
	}

	// One outstanding token per email.
	database.DB.Where("email = ?", user.Email).Delete(&models.PasswordResetToken{})
	record := models.PasswordResetToken{Email: user.Email, TokenHash: string(tokenHash)}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to send reset link: " + err.Error()})
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		config.Config("FRONTEND_URL"), token, url.QueryEscape(user.Email))

	notifications.Enqueue(notifications.Email{
		ToName:  user.Name,
		ToEmail: user.Email,
		Subject: "Reset Password - Skill Share",
		HTML: fmt.Sprintf(
			"<h1>Password Reset</h1><p>Click the link below to reset your password. This link is valid for 24 hours.</p><p><a href='%s'>Reset Password</a></p><p>If you did not request a password reset, no further action is required.</p>",
			resetURL,
		),
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset link sent to your email. Please check your inbox.",
		"data":    fiber.Map{"email": user.Email},
	})
}

func ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
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

	var record models.PasswordResetToken
	if err := database.DB.Where("email = ?", req.Email).First(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid or expired reset token. Please request a new password reset link."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.TokenHash), []byte(req.Token)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid reset token."})
	}

	if time.Since(record.CreatedAt) > resetTokenTTL {
		database.DB.Delete(&record)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Reset token has expired. Please request a new password reset link."})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No account found with this email address."})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to hash new password"})
	}

	user.Password = string(hashedPassword)
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to reset password: " + err.Error()})
	}

	// Token is single use.
	database.DB.Delete(&record)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully! You can now log in with your new password.",
		"data":    fiber.Map{"email": user.Email},
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/utils"
)

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User retrieved successfully",
		"data": fiber.Map{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"role":          user.Role,
			"status":        user.Status,
			"bio":           user.Bio,
			"avatar_url":    user.AvatarURL,
			"rating":        user.Rating,
			"total_reviews": user.TotalReviews,
			"created_at":    user.CreatedAt,
		},
	})
}

type UpdateProfileRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=2,max=255"`
	Bio  *string `json:"bio" form:"bio" validate:"omitempty,max=500"`
}

// UpdateProfile edits the caller's name/bio and optionally replaces their
// avatar (multipart field "avatar").
func UpdateProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", authUserID(c)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		if user.AvatarURL != nil {
			DeleteStoredFile(*user.AvatarURL)
		}
		avatarURL, err := SaveUpload(c, file, "avatars")
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed",
				"errors":  map[string][]string{"avatar": {err.Error()}},
			})
		}
		user.AvatarURL = &avatarURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to update profile: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

func GetMyCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.DB.
		Preload("Skill").
		Where("learner_id = ?", authUserID(c)).
		Order("created_at desc").
		Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve certificates: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Certificates retrieved successfully",
		"data":    certificates,
	})
}

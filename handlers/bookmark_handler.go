package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/utils"
)

type AddBookmarkRequest struct {
	SkillID uint `json:"skill_id" validate:"required"`
}

// AddBookmark is idempotent: bookmarking an already-bookmarked skill
// returns the existing row with 200 instead of erroring.
func AddBookmark(c *fiber.Ctx) error {
	userID := authUserID(c)

	var req AddBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation error",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	var skillCount int64
	database.DB.Model(&models.Skill{}).Where("id = ?", req.SkillID).Count(&skillCount)
	if skillCount == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation error",
			"errors":  map[string][]string{"skill_id": {"The selected skill_id is invalid"}},
		})
	}

	var existing models.Bookmark
	if err := database.DB.Where("user_id = ? AND skill_id = ?", userID, req.SkillID).First(&existing).Error; err == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Skill already bookmarked",
			"data": fiber.Map{
				"bookmark_id": existing.ID,
				"skill_id":    existing.SkillID,
				"created_at":  existing.CreatedAt,
			},
		})
	}

	bookmark := models.Bookmark{UserID: userID, SkillID: req.SkillID}
	if err := database.DB.Create(&bookmark).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to add bookmark: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Skill bookmarked successfully",
		"data": fiber.Map{
			"bookmark_id": bookmark.ID,
			"skill_id":    bookmark.SkillID,
			"created_at":  bookmark.CreatedAt,
		},
	})
}

func RemoveBookmark(c *fiber.Ctx) error {
	result := database.DB.
		Where("user_id = ? AND skill_id = ?", authUserID(c), c.Params("skillId")).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to remove bookmark"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Bookmark not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Bookmark removed successfully",
	})
}

func GetBookmarks(c *fiber.Ctx) error {
	var bookmarks []models.Bookmark
	if err := database.DB.
		Preload("Skill.Category").
		Preload("Skill.Teacher").
		Where("user_id = ?", authUserID(c)).
		Find(&bookmarks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch bookmarks"})
	}

	skills := make([]models.Skill, 0, len(bookmarks))
	for _, b := range bookmarks {
		skills = append(skills, b.Skill)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    skills,
		"count":   len(bookmarks),
	})
}

func CheckBookmark(c *fiber.Ctx) error {
	skillID, _ := c.ParamsInt("skillId")

	var count int64
	if err := database.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND skill_id = ?", authUserID(c), skillID).
		Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check bookmark status"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"is_bookmarked": count > 0,
		"skill_id":      skillID,
	})
}

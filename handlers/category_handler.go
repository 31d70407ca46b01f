package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Order("id asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve categories: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

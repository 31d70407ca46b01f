package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/utils"
	"gorm.io/gorm"
)

type SkillRequest struct {
	CategoryID  uint   `json:"category_id" form:"category_id" validate:"required"`
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
	Level       string `json:"level" form:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration    string `json:"duration" form:"duration" validate:"required"`
	MaxStudents int    `json:"max_students" form:"max_students" validate:"required,gte=1"`
}

func GetSkills(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	offset := (page - 1) * perPage

	var total int64
	database.DB.Model(&models.Skill{}).Count(&total)

	var skills []models.Skill
	if err := database.DB.
		Preload("Teacher").
		Preload("Category").
		Order("created_at desc").
		Limit(perPage).
		Offset(offset).
		Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve skills: " + err.Error()})
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skills retrieved successfully",
		"data":    skills,
		"pagination": fiber.Map{
			"total":        total,
			"per_page":     perPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	})
}

func SearchSkills(c *fiber.Ctx) error {
	query := c.Query("q", "")
	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	if len(query) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Search query must be at least 2 characters"})
	}

	pattern := "%" + query + "%"
	var skills []models.Skill
	if err := database.DB.
		Preload("Teacher").
		Preload("Category").
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to search skills: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skills search completed",
		"data":    skills,
	})
}

func GetUserSkills(c *fiber.Ctx) error {
	userID := c.Params("userId")
	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	var skills []models.Skill
	if err := database.DB.
		Preload("Category").
		Where("teacher_id = ?", userID).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve user skills: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User skills retrieved successfully",
		"data":    skills,
	})
}

func GetSkill(c *fiber.Ctx) error {
	var skill models.Skill
	err := database.DB.
		Preload("Teacher").
		Preload("Category").
		First(&skill, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Skill not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve skill: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skill retrieved successfully",
		"data":    skill,
	})
}

func CreateSkill(c *fiber.Ctx) error {
	var req SkillRequest
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

	var category models.Category
	if err := database.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"category_id": {"The selected category_id is invalid"}},
		})
	}

	skill := models.Skill{
		TeacherID:   authUserID(c),
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
		Duration:    req.Duration,
		MaxStudents: req.MaxStudents,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		imageURL, err := SaveUpload(c, file, "skills")
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed",
				"errors":  map[string][]string{"image": {err.Error()}},
			})
		}
		skill.ImageURL = &imageURL
	}

	if err := database.DB.Create(&skill).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to create skill: " + err.Error()})
	}

	database.DB.Preload("Teacher").Preload("Category").First(&skill, "id = ?", skill.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Skill created successfully",
		"data":    skill,
	})
}

func UpdateSkill(c *fiber.Ctx) error {
	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Skill not found"})
	}

	if skill.TeacherID != authUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	var req SkillRequest
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

	if file, err := c.FormFile("image"); err == nil && file != nil {
		if skill.ImageURL != nil {
			DeleteStoredFile(*skill.ImageURL)
		}
		imageURL, err := SaveUpload(c, file, "skills")
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed",
				"errors":  map[string][]string{"image": {err.Error()}},
			})
		}
		skill.ImageURL = &imageURL
	}

	skill.CategoryID = req.CategoryID
	skill.Title = req.Title
	skill.Description = req.Description
	skill.Level = req.Level
	skill.Duration = req.Duration
	skill.MaxStudents = req.MaxStudents

	if err := database.DB.Save(&skill).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to update skill: " + err.Error()})
	}

	database.DB.Preload("Teacher").Preload("Category").First(&skill, "id = ?", skill.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skill updated successfully",
		"data":    skill,
	})
}

func DeleteSkill(c *fiber.Ctx) error {
	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Skill not found"})
	}

	if skill.TeacherID != authUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	if skill.ImageURL != nil {
		DeleteStoredFile(*skill.ImageURL)
	}

	if err := database.DB.Delete(&skill).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to delete skill: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skill deleted successfully",
	})
}

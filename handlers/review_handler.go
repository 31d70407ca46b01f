package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/services"
	"github.com/mwangiben/skill_share/utils"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	ExchangeID *uint   `json:"exchange_id"`
	SkillID    uint    `json:"skill_id" validate:"required"`
	RevieweeID *uint   `json:"reviewee_id"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
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

	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", req.SkillID).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"skill_id": {"The selected skill_id is invalid"}},
		})
	}

	review := models.Review{
		ExchangeID: req.ExchangeID,
		SkillID:    skill.ID,
		ReviewerID: authUserID(c),
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	// Insert and recompute inside one transaction so a concurrent review
	// cannot publish an average missing this row. The reviewee is optional;
	// a skill-only review leaves every user aggregate untouched.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		if err := services.RecomputeSkillRating(tx, skill.ID); err != nil {
			return err
		}
		if req.RevieweeID != nil {
			return services.RecomputeUserRating(tx, *req.RevieweeID)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to create review: " + err.Error()})
	}

	database.DB.Preload("Reviewer").Preload("Reviewee").Preload("Skill").First(&review, "id = ?", review.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review created successfully",
		"data":    review,
	})
}

func GetSkillReviews(c *fiber.Ctx) error {
	var skill models.Skill
	err := database.DB.First(&skill, "id = ?", c.Params("skillId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Skill not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve reviews: " + err.Error()})
	}

	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int64
	database.DB.Model(&models.Review{}).Where("skill_id = ?", skill.ID).Count(&total)

	var reviews []models.Review
	if err := database.DB.
		Preload("Reviewer").
		Preload("Reviewee").
		Where("skill_id = ?", skill.ID).
		Order("created_at desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve reviews: " + err.Error()})
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Skill reviews retrieved successfully",
		"data":    reviews,
		"pagination": fiber.Map{
			"total":        total,
			"per_page":     perPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	})
}

func GetUserReviews(c *fiber.Ctx) error {
	var user models.User
	err := database.DB.First(&user, "id = ?", c.Params("userId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve reviews: " + err.Error()})
	}

	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int64
	database.DB.Model(&models.Review{}).Where("reviewee_id = ?", user.ID).Count(&total)

	var reviews []models.Review
	if err := database.DB.
		Preload("Reviewer").
		Preload("Skill").
		Where("reviewee_id = ?", user.ID).
		Order("created_at desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve reviews: " + err.Error()})
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User reviews retrieved successfully",
		"data":    reviews,
		"pagination": fiber.Map{
			"total":        total,
			"per_page":     perPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	})
}

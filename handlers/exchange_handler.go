package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/notifications"
	"github.com/mwangiben/skill_share/services"
	"github.com/mwangiben/skill_share/utils"
	"gorm.io/gorm"
)

type CreateExchangeRequest struct {
	SkillID   uint    `json:"skill_id" validate:"required"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	Notes     *string `json:"notes"`
}

// parseExchangeDate accepts RFC3339 timestamps or plain dates.
func parseExchangeDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func CreateExchange(c *fiber.Ctx) error {
	var req CreateExchangeRequest
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

	startDate, err := parseExchangeDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"start_date": {"The start_date is not a valid date"}},
		})
	}
	endDate, err := parseExchangeDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"end_date": {"The end_date is not a valid date"}},
		})
	}

	// Rejected before any row is written.
	if !endDate.After(startDate) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"end_date": {"End date must be after start date"}},
		})
	}

	var skill models.Skill
	if err := database.DB.Preload("Teacher").First(&skill, "id = ?", req.SkillID).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"skill_id": {"The selected skill_id is invalid"}},
		})
	}

	exchange := models.Exchange{
		SkillID:   skill.ID,
		LearnerID: authUserID(c),
		TeacherID: skill.TeacherID,
		Status:    models.ExchangePending,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	}
	if err := database.DB.Create(&exchange).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to create exchange: " + err.Error()})
	}

	database.DB.Preload("Skill").Preload("Learner").Preload("Teacher").First(&exchange, "id = ?", exchange.ID)

	// The exchange persists whether or not the mail goes out.
	exchangeURL := fmt.Sprintf("%s/exchanges/%d", config.Config("FRONTEND_URL"), exchange.ID)
	notifications.Enqueue(notifications.Email{
		ToName:  skill.Teacher.Name,
		ToEmail: skill.Teacher.Email,
		Subject: "New Exchange Request - " + skill.Title,
		HTML: fmt.Sprintf(
			"<h1>New Exchange Request</h1><p>Hello %s!</p><p>%s has requested a skill exchange for <b>%s</b>.</p><p><a href='%s'>View Exchange</a></p>",
			skill.Teacher.Name, exchange.Learner.Name, skill.Title, exchangeURL,
		),
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Exchange created successfully",
		"data":    exchange,
	})
}

func GetMyExchanges(c *fiber.Ctx) error {
	userID := authUserID(c)
	perPage, _ := strconv.Atoi(c.Query("per_page", "15"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	offset := (page - 1) * perPage

	var learnerTotal, teacherTotal int64
	database.DB.Model(&models.Exchange{}).Where("learner_id = ?", userID).Count(&learnerTotal)
	database.DB.Model(&models.Exchange{}).Where("teacher_id = ?", userID).Count(&teacherTotal)

	var learnerExchanges []models.Exchange
	if err := database.DB.
		Preload("Skill").
		Preload("Teacher").
		Where("learner_id = ?", userID).
		Order("created_at desc").
		Limit(perPage).
		Offset(offset).
		Find(&learnerExchanges).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve exchanges: " + err.Error()})
	}

	var teacherExchanges []models.Exchange
	if err := database.DB.
		Preload("Skill").
		Preload("Learner").
		Where("teacher_id = ?", userID).
		Order("created_at desc").
		Limit(perPage).
		Offset(offset).
		Find(&teacherExchanges).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve exchanges: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Exchanges retrieved successfully",
		"data": fiber.Map{
			"learner_exchanges": learnerExchanges,
			"teacher_exchanges": teacherExchanges,
		},
		"pagination": fiber.Map{
			"learner_total": learnerTotal,
			"teacher_total": teacherTotal,
		},
	})
}

func GetExchange(c *fiber.Ctx) error {
	var exchange models.Exchange
	err := database.DB.
		Preload("Skill").
		Preload("Learner").
		Preload("Teacher").
		First(&exchange, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exchange not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve exchange: " + err.Error()})
	}

	if !exchange.IsParticipant(authUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Exchange retrieved successfully",
		"data":    exchange,
	})
}

func AcceptExchange(c *fiber.Ctx) error {
	var exchange models.Exchange
	if err := database.DB.First(&exchange, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exchange not found"})
	}

	if exchange.TeacherID != authUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Only teacher can accept exchange"})
	}
	if exchange.Status != models.ExchangePending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only pending exchanges can be accepted"})
	}

	exchange.Status = models.ExchangeAccepted
	if err := database.DB.Save(&exchange).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to accept exchange: " + err.Error()})
	}

	database.DB.Preload("Skill").Preload("Learner").Preload("Teacher").First(&exchange, "id = ?", exchange.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Exchange accepted successfully",
		"data":    exchange,
	})
}

func CompleteExchange(c *fiber.Ctx) error {
	var exchange models.Exchange
	if err := database.DB.First(&exchange, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exchange not found"})
	}

	if exchange.TeacherID != authUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Only teacher can complete exchange"})
	}
	if exchange.Status != models.ExchangeAccepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only accepted exchanges can be completed"})
	}

	exchange.Status = models.ExchangeCompleted
	if err := database.DB.Save(&exchange).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to complete exchange: " + err.Error()})
	}

	database.DB.Preload("Skill").Preload("Learner").Preload("Teacher").First(&exchange, "id = ?", exchange.ID)

	go services.CheckAndGenerateCertificate(exchange)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Exchange completed successfully",
		"data":    exchange,
	})
}

func CancelExchange(c *fiber.Ctx) error {
	var exchange models.Exchange
	if err := database.DB.First(&exchange, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exchange not found"})
	}

	if !exchange.IsParticipant(authUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}
	if exchange.IsTerminal() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Completed or cancelled exchanges cannot be cancelled"})
	}

	exchange.Status = models.ExchangeCancelled
	if err := database.DB.Save(&exchange).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to cancel exchange: " + err.Error()})
	}

	database.DB.Preload("Skill").Preload("Learner").Preload("Teacher").First(&exchange, "id = ?", exchange.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Exchange cancelled successfully",
		"data":    exchange,
	})
}

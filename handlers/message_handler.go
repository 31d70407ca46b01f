package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/notifications"
	"github.com/mwangiben/skill_share/utils"
	"github.com/mwangiben/skill_share/websocket"
	"gorm.io/gorm"
)

type SendMessageRequest struct {
	ExchangeID uint   `json:"exchange_id" validate:"required"`
	ReceiverID *uint  `json:"receiver_id"`
	Content    string `json:"content" validate:"required,min=1"`
}

func SendMessage(c *fiber.Ctx) error {
	senderID := authUserID(c)

	var req SendMessageRequest
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

	var exchange models.Exchange
	if err := database.DB.First(&exchange, "id = ?", req.ExchangeID).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"exchange_id": {"The selected exchange_id is invalid"}},
		})
	}

	if !exchange.IsParticipant(senderID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	// Without an explicit receiver, the message goes to the other
	// participant of the exchange.
	receiverID := exchange.OtherParticipant(senderID)
	if req.ReceiverID != nil {
		receiverID = *req.ReceiverID
	}

	message := models.Message{
		ExchangeID: exchange.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
		IsRead:     false,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to send message: " + err.Error()})
	}

	database.DB.Preload("Sender").Preload("Receiver").First(&message, "id = ?", message.ID)

	notifications.Enqueue(notifications.Email{
		ToName:  message.Receiver.Name,
		ToEmail: message.Receiver.Email,
		Subject: "New Message - Skill Share",
		HTML: fmt.Sprintf(
			"<h1>New Message</h1><p>Hello %s!</p><p>%s sent you a new message about your skill exchange.</p>",
			message.Receiver.Name, message.Sender.Name,
		),
	})

	websocket.Push(&message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
		"data":    message,
	})
}

func GetExchangeMessages(c *fiber.Ctx) error {
	var exchange models.Exchange
	err := database.DB.First(&exchange, "id = ?", c.Params("exchangeId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exchange not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve messages: " + err.Error()})
	}

	if !exchange.IsParticipant(authUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var total int64
	database.DB.Model(&models.Message{}).Where("exchange_id = ?", exchange.ID).Count(&total)

	var messages []models.Message
	if err := database.DB.
		Preload("Sender").
		Preload("Receiver").
		Where("exchange_id = ?", exchange.ID).
		Order("created_at desc").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve messages: " + err.Error()})
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Messages retrieved successfully",
		"data":    messages,
		"pagination": fiber.Map{
			"total":        total,
			"per_page":     perPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	})
}

// MarkMessageAsRead is idempotent; only the receiver may call it.
func MarkMessageAsRead(c *fiber.Ctx) error {
	var message models.Message
	if err := database.DB.First(&message, "id = ?", c.Params("messageId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Message not found"})
	}

	if message.ReceiverID != authUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
	}

	if !message.IsRead {
		message.IsRead = true
		if err := database.DB.Save(&message).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to mark message as read: " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message marked as read",
		"data":    message,
	})
}

func MarkAllMessagesAsRead(c *fiber.Ctx) error {
	result := database.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", authUserID(c), false).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to mark messages as read: " + result.Error.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All messages marked as read",
		"count":   result.RowsAffected,
	})
}

func GetUnreadMessages(c *fiber.Ctx) error {
	var messages []models.Message
	if err := database.DB.
		Preload("Sender").
		Preload("Exchange").
		Where("receiver_id = ? AND is_read = ?", authUserID(c), false).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to retrieve unread messages: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Unread messages retrieved successfully",
		"data":    messages,
		"count":   len(messages),
	})
}

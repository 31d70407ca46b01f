package handlers

import (
	"errors"
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/websocket"
)

// ServeWs upgrades an authenticated client to a realtime connection. The
// first frame must be {"type":"auth","token":"<jwt>"}; subsequent frames
// are MessagePayload objects persisted and relayed through the hub.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		log.Printf("WebSocket auth failed: %v", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}
	userID := uint(rawID)

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var msg websocket.MessagePayload
		if err := c.ReadJSON(&msg); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %d: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %d: %v", userID, err)
			}
			break
		}

		var exchange models.Exchange
		if err := database.DB.First(&exchange, "id = ?", msg.ExchangeID).Error; err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Invalid exchange ID"})
			continue
		}
		if !exchange.IsParticipant(userID) {
			_ = c.WriteJSON(fiber.Map{"error": "Unauthorized"})
			continue
		}

		dbMessage := models.Message{
			ExchangeID: exchange.ID,
			SenderID:   userID,
			ReceiverID: exchange.OtherParticipant(userID),
			Content:    msg.Content,
		}
		if err := database.DB.Create(&dbMessage).Error; err != nil {
			log.Printf("Failed to save message for client %d: %v", userID, err)
			_ = c.WriteJSON(fiber.Map{"error": "Failed to save message"})
			continue
		}
		database.DB.Preload("Sender").Preload("Receiver").First(&dbMessage, "id = ?", dbMessage.ID)
		websocket.Push(&dbMessage)
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

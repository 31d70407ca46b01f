package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/mwangiben/skill_share/models"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
}

type MessagePayload struct {
	ExchangeID uint   `json:"exchange_id"`
	Content    string `json:"content"`
}

var clients = make(map[uint]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %d", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %d", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			deliver(message)
		}
	}
}

// deliver writes the message to the receiver's connection if they are
// online. Offline receivers rely on the unread endpoints instead.
func deliver(message *models.Message) {
	clientsMu.RLock()
	conn, ok := clients[message.ReceiverID]
	clientsMu.RUnlock()
	if !ok {
		return
	}
	if err := conn.WriteJSON(message); err != nil {
		log.Printf("Error sending message to client %d: %v", message.ReceiverID, err)
		conn.Close()
		clientsMu.Lock()
		if cur, ok := clients[message.ReceiverID]; ok && cur == conn {
			delete(clients, message.ReceiverID)
		}
		clientsMu.Unlock()
	}
}

// Push hands a persisted message to the hub without blocking the caller
// when no client is draining the Broadcast channel.
func Push(message *models.Message) {
	select {
	case Broadcast <- message:
	default:
		go func() { Broadcast <- message }()
	}
}

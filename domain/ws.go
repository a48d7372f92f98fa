package domain

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type WebSocketErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// Client is one gateway connection. ID doubles as the session-scoped player id.
type Client struct {
	ID        string
	AccountID string
	Name      string
	RoomID    string
	Send      chan []byte
	Conn      *websocket.Conn
	WriteLock sync.Mutex
	Done      chan struct{}
	mu        sync.RWMutex
}

func (c *Client) CurrentRoom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RoomID
}

func (c *Client) SetRoom(roomID string) {
	c.mu.Lock()
	c.RoomID = roomID
	c.mu.Unlock()
}

package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"duel-service/domain"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// lobby is the index key for connections that are not seated in a room.
const lobby = ""

// MessageHandler receives every frame a client sends and the client's
// disconnect. Frames from one client are handled in order.
type MessageHandler interface {
	HandleMessage(ctx context.Context, client *domain.Client, payload []byte)
	HandleDisconnect(ctx context.Context, client *domain.Client)
}

type Hub struct {
	clients map[string]*domain.Client
	// rooms indexes connections by the room they are seated in.
	rooms map[string]map[string]*domain.Client

	register   chan *domain.Client
	unregister chan *domain.Client
	ctx        context.Context

	mutex   sync.RWMutex
	handler MessageHandler
	log     *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*domain.Client),
		rooms:      map[string]map[string]*domain.Client{lobby: {}},
		register:   make(chan *domain.Client),
		unregister: make(chan *domain.Client, 64),
		ctx:        context.Background(),
		log:        zap.L().Named("hub"),
	}
}

// SetHandler must be called before Run.
func (h *Hub) SetHandler(handler MessageHandler) {
	h.handler = handler
}

func (h *Hub) Run(ctx context.Context) {
	h.ctx = ctx
	go func() {
		for {
			select {
			case client := <-h.register:
				h.registerClient(client)
				go h.readPump(client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.unregisterClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Serve registers the connection and blocks until it is gone.
func (h *Hub) Serve(client *domain.Client) {
	client.Done = make(chan struct{})
	if client.Send == nil {
		client.Send = make(chan []byte, sendBuffer)
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		return
	}
	select {
	case <-client.Done:
	case <-h.ctx.Done():
	}
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client.ID] = client
	h.indexLocked(client, client.CurrentRoom())
	h.log.Debug("client registered",
		zap.String("client_id", client.ID),
		zap.String("account_id", client.AccountID),
		zap.Int("connected", len(h.clients)),
	)
}

func (h *Hub) unregisterClient(client *domain.Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client.ID]; !ok {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client.ID)
	h.unindexLocked(client)
	close(client.Send)
	close(client.Done)
	h.mutex.Unlock()

	h.log.Debug("client unregistered", zap.String("client_id", client.ID), zap.String("room_id", client.CurrentRoom()))
	if h.handler != nil {
		go h.handler.HandleDisconnect(context.Background(), client)
	}
}

func (h *Hub) indexLocked(client *domain.Client, roomID string) {
	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*domain.Client)
		h.rooms[roomID] = members
	}
	members[client.ID] = client
}

func (h *Hub) unindexLocked(client *domain.Client) {
	roomID := client.CurrentRoom()
	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(members, client.ID)
	if len(members) == 0 && roomID != lobby {
		delete(h.rooms, roomID)
	}
}

// AttachRoom moves a connection from wherever it is into roomID.
func (h *Hub) AttachRoom(client *domain.Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		client.SetRoom(roomID)
		return
	}
	h.unindexLocked(client)
	client.SetRoom(roomID)
	h.indexLocked(client, roomID)
}

// DetachRoom moves a connection back to the lobby.
func (h *Hub) DetachRoom(client *domain.Client) {
	h.AttachRoom(client, lobby)
}

func (h *Hub) dissolve(roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	members, ok := h.rooms[roomID]
	if !ok || roomID == lobby {
		return
	}
	delete(h.rooms, roomID)
	for _, c := range members {
		c.SetRoom(lobby)
		h.indexLocked(c, lobby)
	}
}

func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.UnregisterClient(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("client read error", zap.String("client_id", client.ID), zap.Error(err))
			}
			return
		}
		if h.handler != nil {
			h.handler.HandleMessage(h.ctx, client, payload)
		}
	}
}

func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				client.WriteLock.Unlock()
				return
			}
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				h.log.Debug("websocket write error", zap.String("client_id", client.ID), zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// SendToClient queues e for one connection. A full buffer drops the message.
func (h *Hub) SendToClient(client *domain.Client, e domain.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", e.Type, err)
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if _, ok := h.clients[client.ID]; !ok {
		return fmt.Errorf("client %s is not connected", client.ID)
	}
	select {
	case client.Send <- b:
		return nil
	default:
		return fmt.Errorf("client %s send buffer is full", client.ID)
	}
}

func (h *Hub) broadcast(roomID string, e domain.Event) {
	b, err := json.Marshal(e)
	if err != nil {
		h.log.Error("failed to marshal event", zap.String("type", e.Type), zap.Error(err))
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for _, c := range h.rooms[roomID] {
		select {
		case c.Send <- b:
		default:
			h.log.Warn("send buffer full, dropping message", zap.String("client_id", c.ID), zap.String("type", e.Type))
		}
	}
}

func (h *Hub) BroadcastRoom(roomID string, e domain.Event) {
	if roomID == lobby {
		return
	}
	h.broadcast(roomID, e)
	if e.Type == domain.EventRoomRemoved {
		h.dissolve(roomID)
	}
}

// SendToPlayer reaches a member of roomID, or the same player while still in
// the lobby so fee notices sent before the seat is attached are not lost.
func (h *Hub) SendToPlayer(roomID, playerID string, e domain.Event) {
	h.mutex.RLock()
	c, ok := h.rooms[roomID][playerID]
	if !ok {
		c, ok = h.rooms[lobby][playerID]
	}
	h.mutex.RUnlock()
	if !ok {
		return
	}
	if err := h.SendToClient(c, e); err != nil {
		h.log.Debug("direct send failed", zap.String("client_id", playerID), zap.Error(err))
	}
}

// BroadcastLobby reaches every connection not seated in a room.
func (h *Hub) BroadcastLobby(e domain.Event) {
	h.broadcast(lobby, e)
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) RoomClientCount(roomID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[roomID])
}

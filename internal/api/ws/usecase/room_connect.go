package wsUsecase

import (
	"context"

	"duel-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type RoomConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, accountID, name string)
}

type roomConnectUseCase struct {
	hub Hub
}

func NewRoomConnectUseCase(hub Hub) RoomConnectUseCase {
	return &roomConnectUseCase{hub: hub}
}

// Execute blocks for the lifetime of the connection. Every connection gets a
// fresh player id; the account id is what the ledger sees.
func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, accountID, name string) {
	client := &domain.Client{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      name,
		Conn:      c,
		Send:      make(chan []byte, 256),
	}
	u.hub.Serve(client)
}

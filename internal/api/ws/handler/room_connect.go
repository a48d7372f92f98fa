package wsHandler

import (
	"context"

	"duel-service/domain"
	wsUsecase "duel-service/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WebSocketRoomHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type WebSocketRoomRequest struct{}

func NewWebSocketRoomHandler(usecase wsUsecase.RoomConnectUseCase) *WebSocketRoomHandler {
	return &WebSocketRoomHandler{usecase: usecase}
}

func (h *WebSocketRoomHandler) sendErrorAndClose(conn *websocket.Conn, msg string, code int) {
	errorMessage := domain.WebSocketErrorMessage{
		Type:    domain.EventError,
		Message: msg,
		Code:    code,
	}
	if err := conn.WriteJSON(errorMessage); err != nil {
		zap.L().Debug("failed to send error message to client", zap.Error(err))
	}
	conn.Close()
}

// HandleWS accepts the identity from gateway headers, falling back to query
// parameters for browser clients that cannot set headers.
func (h *WebSocketRoomHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *WebSocketRoomRequest) {
	accountID := c.Headers("X-User-ID")
	if accountID == "" {
		accountID = c.Query("user_id")
	}
	if accountID == "" {
		h.sendErrorAndClose(c, domain.ErrUnauthorized.Error(), fiber.StatusUnauthorized)
		return
	}

	name := c.Headers("X-User-Name")
	if name == "" {
		name = c.Query("name")
	}
	if name == "" {
		name = "Player-" + accountID[:min(6, len(accountID))]
	}

	h.usecase.Execute(c, ctx, accountID, name)
}

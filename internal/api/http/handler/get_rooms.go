package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomsRequest struct{}

type GetRoomsResponse struct {
	Rooms []domain.RoomSummary `json:"rooms"`
}

type GetRoomsHandler struct {
	usecase httpUsecase.GetRoomsUseCase
}

func NewGetRoomsHandler(usecase httpUsecase.GetRoomsUseCase) *GetRoomsHandler {
	return &GetRoomsHandler{usecase: usecase}
}

func (h *GetRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomsRequest) (*GetRoomsResponse, int, error) {
	rooms, status, err := h.usecase.List(ctx)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomsResponse{Rooms: rooms}, status, nil
}

type GetRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
}

type GetRoomResponse struct {
	Room domain.RoomSnapshot `json:"room"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomsUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomsUseCase) *GetRoomHandler {
	return &GetRoomHandler{usecase: usecase}
}

func (h *GetRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomRequest) (*GetRoomResponse, int, error) {
	room, status, err := h.usecase.Get(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomResponse{Room: room}, status, nil
}

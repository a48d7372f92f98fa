package wsUsecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"duel-service/domain"
	"duel-service/internal/api/game"
	httpUsecase "duel-service/internal/api/http/usecase"
	"duel-service/internal/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("too many answers, slow down")

type envelope struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type Pong struct {
	Time time.Time `json:"time"`
}

type LeftRoom struct {
	RoomID string `json:"roomId"`
}

type LeaderboardList struct {
	Players []game.PlayerStats `json:"players"`
}

type GatewayConfig struct {
	AnswersPerSecond float64
	AnswerBurst      int
}

// SessionGateway turns typed client events into registry calls. It is the
// hub's MessageHandler.
type SessionGateway struct {
	engine   Engine
	hub      Hub
	rankings Rankings
	cfg      GatewayConfig
	now    func() time.Time

	limiters sync.Map
	log      *zap.Logger
}

func NewSessionGateway(engine Engine, hub Hub, rankings Rankings, cfg GatewayConfig) *SessionGateway {
	if cfg.AnswersPerSecond <= 0 {
		cfg.AnswersPerSecond = 2
	}
	if cfg.AnswerBurst <= 0 {
		cfg.AnswerBurst = 4
	}
	return &SessionGateway{
		engine:   engine,
		hub:      hub,
		rankings: rankings,
		cfg:      cfg,
		now:      time.Now,
		log:      zap.L().Named("gateway"),
	}
}

func (g *SessionGateway) HandleMessage(ctx context.Context, client *domain.Client, payload []byte) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		g.fail(client, fmt.Errorf("%w: malformed message", domain.ErrInvalidInput))
		return
	}

	var err error
	switch env.Type {
	case domain.EventCreateRoom:
		err = g.createRoom(ctx, client, env.Content)
	case domain.EventJoinRoom:
		err = g.joinRoom(ctx, client, env.Content)
	case domain.EventStartGame:
		err = g.startGame(ctx, client, env.Content)
	case domain.EventSubmitAnswer:
		err = g.submitAnswer(ctx, client, env.Content)
	case domain.EventLeaveRoom:
		err = g.leaveRoom(ctx, client, env.Content)
	case domain.EventGetRooms:
		g.reply(client, domain.EventRoomsList, domain.RoomsList{Rooms: g.engine.ListJoinable()})
	case domain.EventGetLeaderboard:
		err = g.leaderboard(client, env.Content)
	case domain.EventPing:
		g.reply(client, domain.EventPong, Pong{Time: g.now()})
	default:
		err = fmt.Errorf("%w: unknown event %q", domain.ErrInvalidInput, env.Type)
	}
	if err != nil {
		g.fail(client, err)
	}
}

// HandleDisconnect treats a dropped socket as leave_room.
func (g *SessionGateway) HandleDisconnect(ctx context.Context, client *domain.Client) {
	g.limiters.Delete(client.ID)
	roomID := client.CurrentRoom()
	if roomID == "" {
		return
	}
	if err := g.engine.LeaveRoom(ctx, roomID, client.ID); err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
		g.log.Warn("leave on disconnect failed", zap.String("room_id", roomID), zap.String("client_id", client.ID), zap.Error(err))
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var req T
	if len(raw) == 0 {
		return req, fmt.Errorf("%w: missing content", domain.ErrInvalidInput)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := handler.Validate(req); err != nil {
		return req, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return req, nil
}

// seated checks that the request targets the room this connection sits in.
func seated(client *domain.Client, roomID string) error {
	if cur := client.CurrentRoom(); cur == "" || cur != roomID {
		return fmt.Errorf("%w: not seated in room %s", domain.ErrPlayerNotFound, roomID)
	}
	return nil
}

func (g *SessionGateway) createRoom(ctx context.Context, client *domain.Client, raw json.RawMessage) error {
	req, err := decode[domain.CreateRoomRequest](raw)
	if err != nil {
		return err
	}
	if client.CurrentRoom() != "" {
		return domain.ErrAlreadyInRoom
	}
	room, err := g.engine.CreateRoom(ctx, game.CreateRoomInput{
		Name:          req.Name,
		EntryFee:      req.EntryFee,
		HostAccountID: client.AccountID,
		HostPlayerID:  client.ID,
		HostName:      client.Name,
	})
	if err != nil {
		return err
	}
	g.hub.AttachRoom(client, room.ID)
	g.reply(client, domain.EventRoomCreated, domain.RoomCreated{RoomID: room.ID, Room: room})
	return nil
}

func (g *SessionGateway) joinRoom(ctx context.Context, client *domain.Client, raw json.RawMessage) error {
	req, err := decode[domain.JoinRoomRequest](raw)
	if err != nil {
		return err
	}
	if client.CurrentRoom() != "" {
		return domain.ErrAlreadyInRoom
	}
	room, err := g.engine.JoinRoom(ctx, req.RoomID, game.JoinInput{
		AccountID: client.AccountID,
		PlayerID:  client.ID,
		Name:      client.Name,
	})
	if err != nil {
		return err
	}
	g.hub.AttachRoom(client, room.ID)
	g.reply(client, domain.EventRoomJoined, domain.RoomPayload{Room: room})
	return nil
}

func (g *SessionGateway) startGame(ctx context.Context, client *domain.Client, raw json.RawMessage) error {
	req, err := decode[domain.StartGameRequest](raw)
	if err != nil {
		return err
	}
	if err := seated(client, req.RoomID); err != nil {
		return err
	}
	_, err = g.engine.StartGame(ctx, req.RoomID, client.ID)
	return err
}

// submitAnswer relies on the registry to push answer_result to this player.
func (g *SessionGateway) submitAnswer(ctx context.Context, client *domain.Client, raw json.RawMessage) error {
	req, err := decode[domain.SubmitAnswerRequest](raw)
	if err != nil {
		return err
	}
	if err := seated(client, req.RoomID); err != nil {
		return err
	}
	if !g.limiter(client.ID).Allow() {
		return errRateLimited
	}
	_, err = g.engine.SubmitAnswer(ctx, req.RoomID, client.ID, req.Answer)
	return err
}

func (g *SessionGateway) leaveRoom(ctx context.Context, client *domain.Client, raw json.RawMessage) error {
	req, err := decode[domain.LeaveRoomRequest](raw)
	if err != nil {
		return err
	}
	if err := seated(client, req.RoomID); err != nil {
		return err
	}
	if err := g.engine.LeaveRoom(ctx, req.RoomID, client.ID); err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
		return err
	}
	g.hub.DetachRoom(client)
	g.reply(client, domain.EventLeftRoom, LeftRoom{RoomID: req.RoomID})
	g.reply(client, domain.EventRoomsList, domain.RoomsList{Rooms: g.engine.ListJoinable()})
	return nil
}

// leaderboard accepts an empty content and defaults to the top ten.
func (g *SessionGateway) leaderboard(client *domain.Client, raw json.RawMessage) error {
	limit := 10
	if len(raw) > 0 && string(raw) != "null" {
		req, err := decode[domain.GetLeaderboardRequest](raw)
		if err != nil {
			return err
		}
		if req.Limit > 0 {
			limit = req.Limit
		}
	}
	g.reply(client, domain.EventLeaderboard, LeaderboardList{Players: g.rankings.Top(limit)})
	return nil
}

func (g *SessionGateway) limiter(clientID string) *rate.Limiter {
	if l, ok := g.limiters.Load(clientID); ok {
		return l.(*rate.Limiter)
	}
	l, _ := g.limiters.LoadOrStore(clientID, rate.NewLimiter(rate.Limit(g.cfg.AnswersPerSecond), g.cfg.AnswerBurst))
	return l.(*rate.Limiter)
}

func (g *SessionGateway) reply(client *domain.Client, eventType string, content any) {
	if err := g.hub.SendToClient(client, domain.NewEvent(eventType, content)); err != nil {
		g.log.Debug("reply dropped", zap.String("client_id", client.ID), zap.String("type", eventType), zap.Error(err))
	}
}

func (g *SessionGateway) fail(client *domain.Client, err error) {
	code := httpUsecase.StatusFor(err)
	if errors.Is(err, errRateLimited) {
		code = fiber.StatusTooManyRequests
	}
	g.log.Debug("event rejected", zap.String("client_id", client.ID), zap.Int("code", code), zap.Error(err))
	g.reply(client, domain.EventError, domain.ErrorPayload{Reason: err.Error(), Code: code})
}

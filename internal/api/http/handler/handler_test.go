package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"duel-service/domain"
	"duel-service/internal/api/game"
	httpUsecase "duel-service/internal/api/http/usecase"
	fiberAdapter "duel-service/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	httpUsecase.RoomEngine
	created  []game.CreateRoomInput
	audited  []int
	attempts []domain.AnswerRecord
	err      error
}

func (e *fakeEngine) RoundAttempts(_ string, round int) ([]domain.AnswerRecord, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.audited = append(e.audited, round)
	return e.attempts, nil
}

func (e *fakeEngine) CreateRoom(_ context.Context, in game.CreateRoomInput) (domain.RoomSnapshot, error) {
	if e.err != nil {
		return domain.RoomSnapshot{}, e.err
	}
	e.created = append(e.created, in)
	return domain.RoomSnapshot{ID: "room-1", Name: in.Name, EntryFee: in.EntryFee, PrizePool: in.EntryFee}, nil
}

type fakeBalances map[string]int64

func (b fakeBalances) BalanceOf(_ context.Context, accountID string) (int64, error) {
	return b[accountID], nil
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestCreateRoom(t *testing.T) {
	engine := &fakeEngine{}
	app := fiber.New()
	app.Post("/rooms", fiberAdapter.HandleWithFiber[CreateRoomRequest, CreateRoomResponse](
		NewCreateRoomHandler(httpUsecase.NewCreateRoomUseCase(engine))))
	ana := map[string]string{"X-User-ID": "acc-ana", "X-User-Name": "ana"}

	// Given a valid body from an identified caller
	status, body := do(t, app, "POST", "/rooms", `{"name":"friday","entryFee":1000}`, ana)

	// Then the room is created with the caller as host
	require.Equal(t, fiber.StatusCreated, status)
	require.Equal(t, "room-1", body["roomId"])
	require.Equal(t, []game.CreateRoomInput{{Name: "friday", EntryFee: 1000, HostAccountID: "acc-ana", HostPlayerID: "acc-ana", HostName: "ana"}}, engine.created)

	// A missing fee fails validation before the engine is called
	status, _ = do(t, app, "POST", "/rooms", `{"name":"friday"}`, ana)
	require.Equal(t, fiber.StatusBadRequest, status)

	// An anonymous request is rejected
	status, _ = do(t, app, "POST", "/rooms", `{"entryFee":1000}`, nil)
	require.Equal(t, fiber.StatusUnauthorized, status)

	// Engine errors map to their status
	engine.err = domain.ErrInsufficientFunds
	status, body = do(t, app, "POST", "/rooms", `{"entryFee":1000}`, ana)
	require.Equal(t, fiber.StatusPaymentRequired, status)
	require.Contains(t, body["error"], "insufficient")
	require.Len(t, engine.created, 1)
}

func TestRoundAttempts(t *testing.T) {
	engine := &fakeEngine{attempts: []domain.AnswerRecord{{
		PlayerID: "acc-ana",
		Round:    2,
		Attempts: []domain.Attempt{{Raw: "music houze", Normalized: "music houze", Expired: true}},
	}}}
	app := fiber.New()
	app.Get("/rooms/:room_id/rounds/:round/attempts", fiberAdapter.HandleWithFiber[RoundAttemptsRequest, RoundAttemptsResponse](
		NewRoundAttemptsHandler(httpUsecase.NewRoundAttemptsUseCase(engine))))
	roomID := "5f0c2a52-9a3e-4c58-9d0b-7f6c1c3b2a10"

	// Given a played round
	status, body := do(t, app, "GET", "/rooms/"+roomID+"/rounds/2/attempts", "", nil)

	// Then its records come back including the late attempt
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, roomID, body["roomId"])
	require.EqualValues(t, 2, body["round"])
	records := body["records"].([]any)
	require.Len(t, records, 1)
	rec := records[0].(map[string]any)
	require.Equal(t, "acc-ana", rec["playerId"])
	require.Equal(t, true, rec["attempts"].([]any)[0].(map[string]any)["expired"])
	require.Equal(t, []int{2}, engine.audited)

	// A round below one fails validation before the engine is called
	status, _ = do(t, app, "GET", "/rooms/"+roomID+"/rounds/0/attempts", "", nil)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Len(t, engine.audited, 1)

	// Unplayed rounds map to bad request
	engine.err = domain.ErrInvalidInput
	status, _ = do(t, app, "GET", "/rooms/"+roomID+"/rounds/4/attempts", "", nil)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestBalance(t *testing.T) {
	stats := httpUsecase.NewStatsUseCase(game.NewLeaderboard(), fakeBalances{"acc-ana": 4200})
	app := fiber.New()
	app.Get("/balance", fiberAdapter.HandleWithFiber[BalanceRequest, BalanceResponse](NewBalanceHandler(stats)))

	status, body := do(t, app, "GET", "/balance", "", map[string]string{"X-User-ID": "acc-ana"})

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "acc-ana", body["accountId"])
	require.EqualValues(t, 4200, body["balance"])
}

func TestCaller_DefaultsName(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, name, err := caller(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"id": id, "name": name})
	})

	_, body := do(t, app, "GET", "/", "", map[string]string{"X-User-ID": "0123456789"})

	require.Equal(t, "Player-012345", body["name"])
}

package bootstrap

import (
	"time"

	"duel-service/config"
	"duel-service/domain"
	"duel-service/internal/api/game"
	httpHandler "duel-service/internal/api/http/handler"
	wsHandler "duel-service/internal/api/ws/handler"
	"duel-service/internal/handler"
	"duel-service/internal/middleware"
	"duel-service/internal/server"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)
	startGameHandler := httpHandlers["start-game"].(*httpHandler.StartGameHandler)
	submitAnswerHandler := httpHandlers["submit-answer"].(*httpHandler.SubmitAnswerHandler)
	getRoomsHandler := httpHandlers["get-rooms"].(*httpHandler.GetRoomsHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	endRoundHandler := httpHandlers["end-round"].(*httpHandler.EndRoundHandler)
	leaderboardHandler := httpHandlers["leaderboard"].(*httpHandler.LeaderboardHandler)
	historyHandler := httpHandlers["history"].(*httpHandler.HistoryHandler)
	balanceHandler := httpHandlers["balance"].(*httpHandler.BalanceHandler)
	summaryHandler := httpHandlers["stats"].(*httpHandler.SummaryHandler)
	unresolvedHandler := httpHandlers["unresolved"].(*httpHandler.UnresolvedPayoutsHandler)
	attemptsHandler := httpHandlers["attempts"].(*httpHandler.RoundAttemptsHandler)

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerMinute: config.RateLimit.RequestsPerMinute,
		Burst:             config.RateLimit.Burst,
	})

	app.Use(limiter.Middleware())
	app.Post("/rooms", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	app.Get("/rooms", handler.HandleWithFiber[httpHandler.GetRoomsRequest, httpHandler.GetRoomsResponse](getRoomsHandler))
	app.Get("/rooms/:room_id", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))
	app.Post("/rooms/:room_id/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	app.Post("/rooms/:room_id/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))
	app.Post("/rooms/:room_id/start", handler.HandleWithFiber[httpHandler.StartGameRequest, httpHandler.StartGameResponse](startGameHandler))
	app.Post("/rooms/:room_id/answer", handler.HandleWithFiber[httpHandler.SubmitAnswerRequest, domain.AnswerResult](submitAnswerHandler))
	app.Get("/leaderboard", handler.HandleWithFiber[httpHandler.LeaderboardRequest, httpHandler.LeaderboardResponse](leaderboardHandler))
	app.Get("/history", handler.HandleWithFiber[httpHandler.HistoryRequest, httpHandler.HistoryResponse](historyHandler))
	app.Get("/stats", handler.HandleWithFiber[httpHandler.SummaryRequest, game.Summary](summaryHandler))
	app.Get("/balance", handler.HandleWithFiber[httpHandler.BalanceRequest, httpHandler.BalanceResponse](balanceHandler))

	admin := app.Group("/admin", middleware.AdminOnly(config.Server.AdminToken))
	admin.Post("/rooms/:room_id/end-round", handler.HandleWithFiber[httpHandler.EndRoundRequest, game.RoundOutcome](endRoundHandler))
	admin.Get("/rooms/:room_id/rounds/:round/attempts", handler.HandleWithFiber[httpHandler.RoundAttemptsRequest, httpHandler.RoundAttemptsResponse](attemptsHandler))
	admin.Get("/payouts/unresolved", handler.HandleWithFiber[httpHandler.UnresolvedPayoutsRequest, httpHandler.UnresolvedPayoutsResponse](unresolvedHandler))

	wsRoute := app.Group("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	roomConnectHandler := wsHandlers["room-connect"].(*wsHandler.WebSocketRoomHandler)
	wsRoute.Get("/", handler.HandleWithFiberWS[wsHandler.WebSocketRoomRequest](roomConnectHandler))

	return app
}

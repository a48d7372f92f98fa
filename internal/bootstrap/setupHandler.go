package bootstrap

import (
	"duel-service/config"
	"duel-service/internal/api/game"
	httpHandler "duel-service/internal/api/http/handler"
	httpUsecase "duel-service/internal/api/http/usecase"
	wsHandler "duel-service/internal/api/ws/handler"
	wsUsecase "duel-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(registry *game.Registry, leaderboard *game.Leaderboard, ledger Ledger, unresolved httpUsecase.UnresolvedReader) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(registry)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(registry)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(registry)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(registry)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	submitAnswerUseCase := httpUsecase.NewSubmitAnswerUseCase(registry)
	submitAnswerHandler := httpHandler.NewSubmitAnswerHandler(submitAnswerUseCase)

	getRoomsUseCase := httpUsecase.NewGetRoomsUseCase(registry)
	getRoomsHandler := httpHandler.NewGetRoomsHandler(getRoomsUseCase)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomsUseCase)

	endRoundUseCase := httpUsecase.NewEndRoundUseCase(registry)
	endRoundHandler := httpHandler.NewEndRoundHandler(endRoundUseCase)

	roundAttemptsUseCase := httpUsecase.NewRoundAttemptsUseCase(registry)
	roundAttemptsHandler := httpHandler.NewRoundAttemptsHandler(roundAttemptsUseCase)

	statsUseCase := httpUsecase.NewStatsUseCase(leaderboard, ledger)

	unresolvedUseCase := httpUsecase.NewUnresolvedPayoutsUseCase(unresolved)
	unresolvedHandler := httpHandler.NewUnresolvedPayoutsHandler(unresolvedUseCase)

	return map[string]interface{}{
		"create-room":   createRoomHandler,
		"join-room":     joinRoomHandler,
		"leave-room":    leaveRoomHandler,
		"start-game":    startGameHandler,
		"submit-answer": submitAnswerHandler,
		"get-rooms":     getRoomsHandler,
		"get-room":      getRoomHandler,
		"end-round":     endRoundHandler,
		"attempts":      roundAttemptsHandler,
		"leaderboard":   httpHandler.NewLeaderboardHandler(statsUseCase),
		"history":       httpHandler.NewHistoryHandler(statsUseCase),
		"balance":       httpHandler.NewBalanceHandler(statsUseCase),
		"stats":         httpHandler.NewSummaryHandler(statsUseCase),
		"unresolved":    unresolvedHandler,
	}
}

// SetupWSHandlers installs the session gateway as the hub's message handler.
func SetupWSHandlers(config config.Config, registry *game.Registry, leaderboard *game.Leaderboard, wsHub Hub) map[string]interface{} {
	gateway := wsUsecase.NewSessionGateway(registry, wsHub, leaderboard, wsUsecase.GatewayConfig{
		AnswersPerSecond: config.RateLimit.AnswersPerSecond,
		AnswerBurst:      config.RateLimit.AnswerBurst,
	})
	wsHub.SetHandler(gateway)

	roomConnect := wsUsecase.NewRoomConnectUseCase(wsHub)
	roomConnectHandler := wsHandler.NewWebSocketRoomHandler(roomConnect)
	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}

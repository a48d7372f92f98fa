package initializer

import (
	gameHub "duel-service/internal/api/ws/hub"
)

// InitWebsocket builds the hub; the caller installs its handler and runs it.
func InitWebsocket() *gameHub.Hub {
	return gameHub.NewHub()
}

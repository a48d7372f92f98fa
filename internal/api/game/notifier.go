package game

import "duel-service/domain"

// Notifiers fans every event out to each notifier in order.
type Notifiers []Notifier

func (ns Notifiers) BroadcastRoom(roomID string, e domain.Event) {
	for _, n := range ns {
		n.BroadcastRoom(roomID, e)
	}
}

func (ns Notifiers) SendToPlayer(roomID, playerID string, e domain.Event) {
	for _, n := range ns {
		n.SendToPlayer(roomID, playerID, e)
	}
}

func (ns Notifiers) BroadcastLobby(e domain.Event) {
	for _, n := range ns {
		n.BroadcastLobby(e)
	}
}

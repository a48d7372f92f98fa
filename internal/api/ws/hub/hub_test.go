package hub

import (
	"encoding/json"
	"testing"

	"duel-service/domain"

	"github.com/stretchr/testify/require"
)

func connected(h *Hub, id string) *domain.Client {
	c := &domain.Client{ID: id, Send: make(chan []byte, 4), Done: make(chan struct{})}
	h.registerClient(c)
	return c
}

func drain(t *testing.T, c *domain.Client) []string {
	t.Helper()
	var types []string
	for {
		select {
		case b := <-c.Send:
			var e struct {
				Type string `json:"type"`
			}
			require.NoError(t, json.Unmarshal(b, &e))
			types = append(types, e.Type)
		default:
			return types
		}
	}
}

func TestBroadcastRoom_ReachesOnlySeatedClients(t *testing.T) {
	h := NewHub()
	ana, bo, cy := connected(h, "ana"), connected(h, "bo"), connected(h, "cy")
	h.AttachRoom(ana, "r1")
	h.AttachRoom(bo, "r1")

	h.BroadcastRoom("r1", domain.NewEvent(domain.EventRoomUpdated, nil))
	h.BroadcastLobby(domain.NewEvent(domain.EventRoomsList, nil))

	require.Equal(t, []string{domain.EventRoomUpdated}, drain(t, ana))
	require.Equal(t, []string{domain.EventRoomUpdated}, drain(t, bo))
	require.Equal(t, []string{domain.EventRoomsList}, drain(t, cy))
	require.Equal(t, 2, h.RoomClientCount("r1"))
}

func TestSendToPlayer(t *testing.T) {
	h := NewHub()
	ana, bo := connected(h, "ana"), connected(h, "bo")
	h.AttachRoom(ana, "r1")
	h.AttachRoom(bo, "r1")

	h.SendToPlayer("r1", "bo", domain.NewEvent(domain.EventAnswerResult, nil))
	h.SendToPlayer("r2", "ana", domain.NewEvent(domain.EventAnswerResult, nil))

	require.Empty(t, drain(t, ana))
	require.Equal(t, []string{domain.EventAnswerResult}, drain(t, bo))
}

func TestSendToPlayer_ReachesLobbyConnection(t *testing.T) {
	// Given a connection that has not been attached to its new room yet
	h := NewHub()
	ana := connected(h, "ana")

	// When the registry notifies it about the room it is joining
	h.SendToPlayer("r1", "ana", domain.NewEvent(domain.EventBalanceUpdated, nil))

	// Then the notice is delivered through the lobby index
	require.Equal(t, []string{domain.EventBalanceUpdated}, drain(t, ana))
}

func TestRoomRemoved_ReturnsClientsToLobby(t *testing.T) {
	h := NewHub()
	ana := connected(h, "ana")
	h.AttachRoom(ana, "r1")

	h.BroadcastRoom("r1", domain.NewEvent(domain.EventRoomRemoved, nil))

	require.Equal(t, []string{domain.EventRoomRemoved}, drain(t, ana))
	require.Empty(t, ana.CurrentRoom())
	require.Zero(t, h.RoomClientCount("r1"))
	require.Equal(t, 1, h.RoomClientCount(lobby))
}

func TestUnregister_ClosesChannelsOnce(t *testing.T) {
	h := NewHub()
	ana := connected(h, "ana")
	h.AttachRoom(ana, "r1")

	h.unregisterClient(ana)
	h.unregisterClient(ana)

	_, open := <-ana.Done
	require.False(t, open)
	require.Zero(t, h.ClientCount())
	require.Zero(t, h.RoomClientCount("r1"))
	require.Error(t, h.SendToClient(ana, domain.NewEvent(domain.EventPong, nil)))
}

func TestSendToClient_FullBufferIsReported(t *testing.T) {
	h := NewHub()
	ana := connected(h, "ana")
	for i := 0; i < cap(ana.Send); i++ {
		require.NoError(t, h.SendToClient(ana, domain.NewEvent(domain.EventPong, nil)))
	}

	require.Error(t, h.SendToClient(ana, domain.NewEvent(domain.EventPong, nil)))
}

func TestSendToPlayer_AnswerResultUsesCamelCaseKeys(t *testing.T) {
	h := NewHub()
	ana := connected(h, "ana")
	h.AttachRoom(ana, "r1")

	h.SendToPlayer("r1", "ana", domain.NewEvent(domain.EventAnswerResult, domain.AnswerResult{
		RoomID: "r1", PlayerID: "ana", Correct: true, Points: 10, Attempts: 1, FirstCorrect: true, CanonicalAnswer: "music house",
	}))

	var frame struct {
		Type    string         `json:"type"`
		Content map[string]any `json:"content"`
	}
	require.NoError(t, json.Unmarshal(<-ana.Send, &frame))
	require.Equal(t, domain.EventAnswerResult, frame.Type)
	for _, key := range []string{"correct", "points", "attempts", "canonicalAnswer", "isFirstCorrect", "yourAnswer", "roomId", "playerId"} {
		require.Contains(t, frame.Content, key)
	}
	require.Equal(t, "music house", frame.Content["canonicalAnswer"])
	require.NotContains(t, frame.Content, "canonical_answer")
}

package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/twisterdot/leaderboard/internal/score"
)

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(msg OutgoingMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// Hub tracks live leaderboard subscribers and fans out updates.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[*subscriber]struct{})}
}

func (h *Hub) add(s *subscriber) {
	h.mu.Lock()
	h.subscribers[s] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(s *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, s)
	h.mu.Unlock()
}

// BroadcastLeaderboard implements score.Notifier.
func (h *Hub) BroadcastLeaderboard(entries []score.LeaderboardEntry) {
	msg := OutgoingMessage{Type: "LEADERBOARD", Payload: entries}

	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		if err := s.send(msg); err != nil {
			log.Println("Error sending leaderboard update:", err)
		}
	}
}

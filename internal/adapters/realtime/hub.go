package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/workers"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type Client struct {
	conn *websocket.Conn

	// gorilla connections allow only one concurrent writer
	mu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

func (c *Client) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// Hub fans change events out to every connected websocket client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Publish(event domain.ChangeEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("[HUB] Failed to encode %s event: %v", event.Type, err)
		return
	}
	h.broadcast(msg)
}

func (h *Hub) Notify(_ context.Context, r workers.Reminder) error {
	h.Publish(domain.ChangeEvent{
		Type:    domain.EventReminder,
		Date:    r.Date,
		Goal:    r.Goal,
		Message: r.Message,
		At:      r.At,
	})
	return nil
}

// PublishGoal is meant to be subscribed to the goal service.
func (h *Hub) PublishGoal(goal int) {
	h.Publish(domain.ChangeEvent{
		Type: domain.EventGoalChanged,
		Goal: goal,
		At:   time.Now().UTC(),
	})
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			h.Unregister(c)
		}
	}
}

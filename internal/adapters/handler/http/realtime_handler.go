package http

import (
	"net/http"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *RealtimeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", h.Serve)
}

// Serve godoc
// @Summary      Live change feed (websocket)
// @Description  Pushes a JSON ChangeEvent after every drink, reset, goal or preference change, and on reminders.
// @Tags         realtime
// @Router       /ws [get]
func (h *RealtimeHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := realtime.NewClient(conn)
	h.hub.Register(client)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := client.Ping(); err != nil {
					h.hub.Unregister(client)
					return
				}
			case <-done:
				return
			}
		}
	}()

	// the read loop only exists to notice the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Unregister(client)
			return
		}
	}
}

package ws

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"speech-x-text/relay"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades /ws requests and runs one relay session per connection.
type Handler struct {
	log          *slog.Logger
	relay        *relay.Relay
	upgrader     websocket.Upgrader
	queueSize    int
	pingInterval time.Duration
}

func NewHandler(log *slog.Logger, relay *relay.Relay, queueSize int, pingInterval time.Duration) *Handler {
	return &Handler{
		log:   log,
		relay: relay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		queueSize:    queueSize,
		pingInterval: pingInterval,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}
	channel := NewChannel(conn, h.log)
	defer func() { _ = channel.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go channel.KeepAlive(ctx, h.pingInterval)

	session := relay.NewSession(uuid.NewString(), channel, h.relay, h.queueSize)
	if err = session.Run(ctx); err != nil && ctx.Err() == nil {
		h.log.Warn("Relay session ended", "session_id", session.ID(), "error", err)
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("GET /ws", h)
}

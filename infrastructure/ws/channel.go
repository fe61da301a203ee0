package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	EventChatMessage = "chat message"
	EventBotReply    = "bot reply"

	// MaxFrameBytes matches the usual socket.io buffer of 1 MB. A larger frame
	// closes the connection with 1009 (message too big).
	MaxFrameBytes = 1_000_000
	writeWait     = 5 * time.Second
)

// Envelope is the JSON frame exchanged on the relay socket.
type Envelope struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Channel adapts a websocket connection to relay.Channel.
// gorilla allows one concurrent writer, so replies and pings share writeMu.
type Channel struct {
	conn    *websocket.Conn
	log     *slog.Logger
	writeMu sync.Mutex
}

func NewChannel(conn *websocket.Conn, log *slog.Logger) *Channel {
	conn.SetReadLimit(MaxFrameBytes)
	return &Channel{conn: conn, log: log}
}

func (c *Channel) Receive(_ context.Context) (string, error) {
	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return "", io.EOF
			}
			return "", err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		text, ok := ParseFrame(data)
		if !ok {
			c.log.Debug("Ignoring relay event", "frame", string(data))
			continue
		}
		return text, nil
	}
}

func (c *Channel) Send(_ context.Context, reply string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(Envelope{Event: EventBotReply, Data: reply})
}

func (c *Channel) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Channel) Close() error {
	return c.conn.Close()
}

// KeepAlive pings every interval and expects a pong within two intervals,
// otherwise the pending read fails and the session ends.
func (c *Channel) KeepAlive(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	extend := func() error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * interval))
	}
	_ = extend()
	c.conn.SetPongHandler(func(string) error { return extend() })

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()
			if err != nil {
				c.log.Debug("Ping failed", "error", err)
				return
			}
		}
	}
}

// ParseFrame extracts chat text from a frame. JSON envelopes carrying
// another event are rejected; anything that is not an envelope is raw text.
func ParseFrame(data []byte) (string, bool) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Event != "" {
		if envelope.Event != EventChatMessage {
			return "", false
		}
		return envelope.Data, true
	}
	return string(data), true
}

package relay

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Channel is the bidirectional transport of one connected client.
// Receive returns the next chat text and io.EOF once the client is gone.
// Close must unblock a pending Receive.
type Channel interface {
	Receive(ctx context.Context) (string, error)
	Send(ctx context.Context, reply string) error
	RemoteAddr() string
	Close() error
}

// Session pairs a session id with a channel for the connection lifetime.
// Texts are queued by a reader and answered by a single worker, so replies
// leave in arrival order with at most one exchange in flight.
type Session struct {
	id        string
	channel   Channel
	relay     *Relay
	queueSize int
}

func NewSession(id string, channel Channel, relay *Relay, queueSize int) *Session {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Session{id: id, channel: channel, relay: relay, queueSize: queueSize}
}

func (s *Session) ID() string {
	return s.id
}

// Run blocks until the client disconnects, a reply cannot be delivered or
// ctx is cancelled. A clean disconnect returns nil.
func (s *Session) Run(ctx context.Context) error {
	log := s.relay.log.With("session_id", s.id)
	log.Info("Client connected", "remote_addr", s.channel.RemoteAddr())
	s.relay.monitor.SessionOpened()
	defer func() {
		s.relay.monitor.SessionClosed()
		log.Info("Client disconnected")
	}()

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() { _ = s.channel.Close() })
	defer stop()

	queue := make(chan string, s.queueSize)

	g.Go(func() error {
		defer close(queue)
		for {
			text, err := s.channel.Receive(gctx)
			if err != nil {
				if isDisconnect(err) {
					return nil
				}
				return err
			}
			text = strings.TrimSpace(text)
			if text == "" {
				log.Debug("Ignoring empty chat message")
				continue
			}
			select {
			case queue <- text:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		for text := range queue {
			reply := s.relay.Reply(gctx, s.id, text)
			if err := s.channel.Send(gctx, reply); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}

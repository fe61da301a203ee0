// Package relay forwards chat text from a connected client to the intent
// detector and sends the textual reply back on the same channel.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"speech-x-text/ai"
	"speech-x-text/domain"
	"speech-x-text/errors"
	"speech-x-text/observability"

	"google.golang.org/grpc/status"
)

// Relay turns one chat text into one reply. It never fails: upstream errors,
// timeouts and panics all become the apology reply.
type Relay struct {
	log      *slog.Logger
	detector ai.IntentDetector
	picker   ai.LanguagePicker
	timeout  time.Duration
	monitor  *observability.Monitor
}

func NewRelay(
	log *slog.Logger,
	detector ai.IntentDetector,
	picker ai.LanguagePicker,
	timeout time.Duration,
	monitor *observability.Monitor,
) *Relay {
	return &Relay{
		log:      log,
		detector: detector,
		picker:   picker,
		timeout:  timeout,
		monitor:  monitor,
	}
}

func (r *Relay) Reply(ctx context.Context, sessionID, text string) (reply string) {
	r.monitor.IncrRelayMessages()
	defer func() {
		if rec := recover(); rec != nil {
			r.fail(sessionID, fmt.Errorf("%w: %v", errors.ErrWorkerPanic, rec))
			reply = domain.ApologyReply
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.detector.DetectIntent(ctx, domain.IntentRequest{
		SessionID:    sessionID,
		Text:         text,
		LanguageCode: r.picker.Pick(text),
	})
	if err != nil {
		r.fail(sessionID, err)
		return domain.ApologyReply
	}

	r.log.Debug("Intent detected",
		"session_id", sessionID,
		"intent", result.Intent,
		"confidence", result.Confidence,
	)
	if strings.TrimSpace(result.FulfillmentText) == "" {
		return domain.NoReply
	}
	return result.FulfillmentText
}

func (r *Relay) fail(sessionID string, err error) {
	r.monitor.IncrRelayFailures()
	r.log.Error("Intent detection failed",
		"session_id", sessionID,
		"code", status.Code(err).String(),
		"error", err,
	)
}

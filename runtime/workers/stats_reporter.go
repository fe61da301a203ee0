package workers

import (
	"context"
	"log/slog"
	"time"

	"speech-x-text/contract"
	"speech-x-text/observability"
)

// NewStatsReporter logs the latest monitor snapshot every interval, and once
// more when the context ends.
func NewStatsReporter(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) contract.Worker {
	report := func() {
		stats := monitor.GetLatest()
		log.Info("Stats",
			"uptime", stats.Uptime,
			"active_sessions", stats.ActiveSessions,
			"relay_messages", stats.RelayMessages,
			"relay_failures", stats.RelayFailures,
			"tts_requests", stats.TTSRequests,
			"stt_requests", stats.STTRequests,
			"rss_bytes", stats.RSSBytes,
			"goroutines", stats.Goroutines,
		)
	}
	return contract.WorkerFunc(func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				report()
				return nil
			case <-ticker.C:
				report()
			}
		}
	})
}

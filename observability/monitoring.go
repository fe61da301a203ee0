package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stats is the snapshot served on /status.
type Stats struct {
	Service  string `json:"service"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Counters `json:"counters"`
	Process  `json:"process"`
}

type Counters struct {
	MessagesCreated uint64 `json:"messages_created"`
	RelayMessages   uint64 `json:"relay_messages"`
	RelayFailures   uint64 `json:"relay_failures"`
	TTSRequests     uint64 `json:"tts_requests"`
	TTSFailures     uint64 `json:"tts_failures"`
	TTSCacheHits    uint64 `json:"tts_cache_hits"`
	STTRequests     uint64 `json:"stt_requests"`
	STTFailures     uint64 `json:"stt_failures"`
	ActiveSessions  int64  `json:"active_sessions"`
}

type Process struct {
	PID        int32   `json:"pid"`
	Status     string  `json:"status,omitempty"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
}

// Monitor counts relay and endpoint activity. Counters are lock-free; the
// process sample is pushed by a background worker.
type Monitor struct {
	log       *slog.Logger
	service   string
	version   string
	startedAt time.Time
	cacheHits func() uint64

	messagesCreated atomic.Uint64
	relayMessages   atomic.Uint64
	relayFailures   atomic.Uint64
	ttsRequests     atomic.Uint64
	ttsFailures     atomic.Uint64
	sttRequests     atomic.Uint64
	sttFailures     atomic.Uint64
	activeSessions  atomic.Int64

	mu      sync.RWMutex
	process Process
}

func NewMonitor(log *slog.Logger, service, version string) *Monitor {
	return &Monitor{
		log:       log,
		service:   service,
		version:   version,
		startedAt: time.Now(),
		process:   Process{PID: int32(os.Getpid())},
	}
}

// WithCacheHits plugs the synthesis cache hit counter into the snapshot.
func (m *Monitor) WithCacheHits(hits func() uint64) *Monitor {
	m.cacheHits = hits
	return m
}

func (m *Monitor) IncrMessagesCreated() { m.messagesCreated.Add(1) }
func (m *Monitor) IncrRelayMessages()   { m.relayMessages.Add(1) }
func (m *Monitor) IncrRelayFailures()   { m.relayFailures.Add(1) }
func (m *Monitor) IncrTTSRequests()     { m.ttsRequests.Add(1) }
func (m *Monitor) IncrTTSFailures()     { m.ttsFailures.Add(1) }
func (m *Monitor) IncrSTTRequests()     { m.sttRequests.Add(1) }
func (m *Monitor) IncrSTTFailures()     { m.sttFailures.Add(1) }

func (m *Monitor) SessionOpened() { m.activeSessions.Add(1) }
func (m *Monitor) SessionClosed() { m.activeSessions.Add(-1) }

// UpdateProcess stores the latest process sample.
func (m *Monitor) UpdateProcess(sample Process) {
	m.mu.Lock()
	m.process = sample
	m.mu.Unlock()
}

func (m *Monitor) GetLatest() Stats {
	m.mu.RLock()
	proc := m.process
	m.mu.RUnlock()
	if proc.Goroutines == 0 {
		proc.Goroutines = runtime.NumGoroutine()
	}

	counters := Counters{
		MessagesCreated: m.messagesCreated.Load(),
		RelayMessages:   m.relayMessages.Load(),
		RelayFailures:   m.relayFailures.Load(),
		TTSRequests:     m.ttsRequests.Load(),
		TTSFailures:     m.ttsFailures.Load(),
		STTRequests:     m.sttRequests.Load(),
		STTFailures:     m.sttFailures.Load(),
		ActiveSessions:  m.activeSessions.Load(),
	}
	if m.cacheHits != nil {
		counters.TTSCacheHits = m.cacheHits()
	}

	return Stats{
		Service:  m.service,
		Version:  m.version,
		Uptime:   time.Since(m.startedAt).Round(time.Second).String(),
		Counters: counters,
		Process:  proc,
	}
}

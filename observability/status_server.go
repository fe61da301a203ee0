package observability

import (
	"encoding/json"
	"net/http"
)

// Register mounts /health and /status on mux.
func (m *Monitor) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", m.handleHealth)
	mux.HandleFunc("GET /status", m.handleStatus)
}

func (m *Monitor) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (m *Monitor) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m.GetLatest()); err != nil {
		m.log.Error("Failed to encode status", "error", err)
	}
}

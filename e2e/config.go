package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config drives the end-to-end suite.
type Config struct {
	// BaseURL points the suite at a running server. Left empty, the suite
	// serves the full router in process with scripted collaborators.
	BaseURL string `envconfig:"E2E_BASE_URL"`
	// DebugJSON prints every request and response body.
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// Colours turns on coloured step headers.
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// StepTimeout bounds each HTTP call and each WebSocket read.
	StepTimeout time.Duration `envconfig:"E2E_STEP_TIMEOUT" default:"5s"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"speech-x-text/ai"
	"speech-x-text/domain"
	"speech-x-text/infrastructure/http/server"
	"speech-x-text/infrastructure/ws"
	"speech-x-text/observability"
	"speech-x-text/relay"
	"speech-x-text/repositories"
	"speech-x-text/services"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config  *Config
	BaseURL string
	Client  *http.Client
	// InProcess is true when the suite runs its own server with scripted
	// collaborators, so exact replies can be asserted.
	InProcess bool
	server    *httptest.Server
}

// SetupSuite loads the environment configuration and starts a server when
// none is targeted.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.BaseURL = strings.TrimRight(s.Config.BaseURL, "/")
	if s.BaseURL == "" {
		s.server = httptest.NewServer(newInProcessRouter())
		s.BaseURL = s.server.URL
		s.InProcess = true
	}
	s.Client = &http.Client{Timeout: s.Config.StepTimeout, Transport: &loggingTransport{suite: s}}
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

// Step prints a colorized header so the scenario reads like a script in logs.
func (s *BaseHTTPSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

func (s *BaseHTTPSuite) Do(method, path, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.BaseURL+path, reader)
	s.Require().NoError(err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.Client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, payload
}

// WithRelay opens a relay socket for the duration of fn.
func (s *BaseHTTPSuite) WithRelay(name string, fn func(conn *websocket.Conn)) {
	s.Step(s.T(), name)
	wsURL := "ws" + strings.TrimPrefix(s.BaseURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err, "Failed to open relay socket at "+wsURL)
	defer func() { _ = conn.Close() }()
	fn(conn)
}

type loggingTransport struct {
	suite *BaseHTTPSuite
}

func (l *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := http.DefaultTransport.RoundTrip(req)
	t := l.suite.T()
	if err != nil {
		t.Logf("HTTP %s %s failed in %v: %v", req.Method, req.URL.Path, time.Since(start), err)
		return nil, err
	}
	t.Logf("HTTP %s %s [%d] in %v", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	if l.suite.Config.DebugJSON {
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}
		t.Logf("RESPONSE:\n%s", body)
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}
	return resp, nil
}

// EchoReply is what the in-process intent detector answers.
func EchoReply(text string) string {
	return "You said: " + text
}

type echoDetector struct{}

func (echoDetector) DetectIntent(_ context.Context, req domain.IntentRequest) (domain.IntentResult, error) {
	if req.Text == "fail" {
		return domain.IntentResult{}, fmt.Errorf("scripted failure")
	}
	return domain.IntentResult{FulfillmentText: EchoReply(req.Text), Intent: "echo", Confidence: 1}, nil
}

type toneSynthesizer struct{}

func (toneSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	return append([]byte{0xFF, 0xFB}, []byte(text)...), nil
}

type silentRecognizer struct{}

func (silentRecognizer) Recognize(context.Context, []byte) (string, error) {
	return "", nil
}

func newInProcessRouter() http.Handler {
	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	monitor := observability.NewMonitor(log, "speech-x-text", "e2e")
	repository := repositories.NewMessageRepository(log, repositories.DefaultLimit)
	picker := ai.NewLanguagePicker("en-US", false, nil)
	chatRelay := relay.NewRelay(log, echoDetector{}, picker, 5*time.Second, monitor)

	return server.NewRouter(log, nil,
		server.NewMessageServer(log, services.NewMessageService(repository), monitor),
		server.NewSpeechServer(log, toneSynthesizer{}, silentRecognizer{}, monitor, server.SpeechConfig{
			TTSTimeout:    5 * time.Second,
			STTTimeout:    5 * time.Second,
			MaxAudioBytes: 1 << 20,
		}),
		ws.NewHandler(log, chatRelay, 16, time.Minute),
		monitor,
	)
}

package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"speech-x-text/ai"
	"speech-x-text/errors"
	"speech-x-text/observability"
)

type ttsRequest struct {
	Text string `json:"text"`
}

type ttsResponse struct {
	AudioContent string `json:"audioContent"`
}

type sttResponse struct {
	Transcript string `json:"transcript"`
}

type SpeechConfig struct {
	TTSTimeout    time.Duration
	STTTimeout    time.Duration
	MaxAudioBytes int64
}

// SpeechServer converts text to audio and audio to text. It keeps no state
// between requests and never retries.
type SpeechServer struct {
	log         *slog.Logger
	synthesizer ai.Synthesizer
	recognizer  ai.Recognizer
	monitor     *observability.Monitor
	config      SpeechConfig
}

func NewSpeechServer(
	log *slog.Logger,
	synthesizer ai.Synthesizer,
	recognizer ai.Recognizer,
	monitor *observability.Monitor,
	config SpeechConfig,
) *SpeechServer {
	return &SpeechServer{
		log:         log,
		synthesizer: synthesizer,
		recognizer:  recognizer,
		monitor:     monitor,
		config:      config,
	}
}

func (s *SpeechServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/tts", s.synthesize)
	mux.HandleFunc("POST /api/stt", s.recognize)
}

// synthesize answers every failure, an empty text included, with the same
// opaque 500 and keeps the detail in the logs.
func (s *SpeechServer) synthesize(w http.ResponseWriter, r *http.Request) {
	s.monitor.IncrTTSRequests()

	var body ttsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBodyBytes)).Decode(&body); err != nil {
		s.ttsFailed(w, err)
		return
	}
	text := strings.TrimSpace(body.Text)
	if text == "" {
		s.ttsFailed(w, errors.ErrValidation)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.TTSTimeout)
	defer cancel()
	audio, err := s.synthesizer.Synthesize(ctx, text)
	if err != nil {
		s.ttsFailed(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, ttsResponse{AudioContent: base64.StdEncoding.EncodeToString(audio)})
}

func (s *SpeechServer) ttsFailed(w http.ResponseWriter, err error) {
	s.monitor.IncrTTSFailures()
	s.log.Error("Speech synthesis failed", "error", err)
	writeError(s.log, w, http.StatusInternalServerError, "TTS failed")
}

func (s *SpeechServer) recognize(w http.ResponseWriter, r *http.Request) {
	s.monitor.IncrSTTRequests()

	audio, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxAudioBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.ErrAudioTooLarge
		}
		s.sttFailed(w, err)
		return
	}
	if _, err = ai.DetectAudioFormat(audio); err != nil {
		s.sttFailed(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.STTTimeout)
	defer cancel()
	transcript, err := s.recognizer.Recognize(ctx, audio)
	if err != nil {
		s.sttFailed(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, sttResponse{Transcript: transcript})
}

func (s *SpeechServer) sttFailed(w http.ResponseWriter, err error) {
	s.monitor.IncrSTTFailures()
	status := errors.MapToHTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		writeError(s.log, w, status, errors.ErrEmptyAudio.Error())
	case http.StatusRequestEntityTooLarge:
		writeError(s.log, w, status, errors.ErrAudioTooLarge.Error())
	case http.StatusUnsupportedMediaType:
		writeError(s.log, w, status, errors.ErrUnsupportedAudio.Error())
	default:
		s.log.Error("Speech recognition failed", "error", err)
		writeError(s.log, w, http.StatusInternalServerError, "STT failed")
	}
}

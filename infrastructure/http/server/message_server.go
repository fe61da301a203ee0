package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"speech-x-text/domain"
	"speech-x-text/errors"
	"speech-x-text/observability"
	"speech-x-text/services"

	"github.com/samber/lo"
)

// CreatedAtLayout renders timestamps in UTC with millisecond precision.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

const maxMessageBodyBytes = 1 << 20

type MessageResponse struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type messageRequest struct {
	Text *string `json:"text"`
}

// MessageServer exposes the message store as a JSON CRUD API.
type MessageServer struct {
	log     *slog.Logger
	service services.IMessageService
	monitor *observability.Monitor
}

func NewMessageServer(log *slog.Logger, service services.IMessageService, monitor *observability.Monitor) *MessageServer {
	return &MessageServer{log: log, service: service, monitor: monitor}
}

func (s *MessageServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/messages", s.create)
	mux.HandleFunc("GET /api/messages", s.list)
	mux.HandleFunc("GET /api/messages/{id}", s.get)
	mux.HandleFunc("PUT /api/messages/{id}", s.update)
	mux.HandleFunc("DELETE /api/messages/{id}", s.delete)
	// Paths that cannot name a message, such as "/api/messages/" or "/api/messages/1/x".
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		mux.HandleFunc(method+" /api/messages/", s.unknown)
	}
}

func (s *MessageServer) unknown(w http.ResponseWriter, _ *http.Request) {
	s.fail(w, errors.ErrNotFound)
}

func (s *MessageServer) create(w http.ResponseWriter, r *http.Request) {
	text, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	message, err := s.service.Create(text)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.monitor.IncrMessagesCreated()
	writeJSON(s.log, w, http.StatusCreated, toMessageResponse(message))
}

func (s *MessageServer) list(w http.ResponseWriter, _ *http.Request) {
	messages, err := s.service.List()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, lo.Map(messages, func(item domain.Message, _ int) MessageResponse {
		return toMessageResponse(item)
	}))
}

func (s *MessageServer) get(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	message, err := s.service.Get(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, toMessageResponse(message))
}

func (s *MessageServer) update(w http.ResponseWriter, r *http.Request) {
	text, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		// Validation wins over existence, so an invalid id still reports the text first.
		if _, verr := services.ValidateText(text); verr != nil {
			s.fail(w, verr)
			return
		}
		s.fail(w, err)
		return
	}
	message, err := s.service.Update(id, text)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, toMessageResponse(message))
}

func (s *MessageServer) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	message, err := s.service.Delete(id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(s.log, w, http.StatusOK, toMessageResponse(message))
}

// decodeText reads {"text": ...}. A missing text decodes to "" and is left
// to validation; a malformed body or a non-string text is rejected here.
func (s *MessageServer) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body messageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBodyBytes)).Decode(&body); err != nil {
		s.log.Debug("Invalid message body", "error", err)
		writeError(s.log, w, http.StatusBadRequest, errors.ErrValidation.Error())
		return "", false
	}
	return lo.FromPtr(body.Text), true
}

func (s *MessageServer) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return 0, false
	}
	return id, true
}

func (s *MessageServer) fail(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		writeError(s.log, w, status, errors.ErrValidation.Error())
	case http.StatusNotFound:
		writeError(s.log, w, status, "Message not found")
	default:
		s.log.Error("Message request failed", "error", err)
		writeError(s.log, w, http.StatusInternalServerError, "internal error")
	}
}

// parseID accepts positive decimal ids only; anything else cannot name a message.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.ErrNotFound
	}
	return id, nil
}

func toMessageResponse(message domain.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt.UTC().Format(CreatedAtLayout),
	}
}

// ParseCreatedAt reads a timestamp rendered by the API.
func ParseCreatedAt(raw string) (time.Time, error) {
	return time.Parse(CreatedAtLayout, raw)
}

package e2e

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"speech-x-text/domain"
	"speech-x-text/infrastructure/http/server"
	"speech-x-text/infrastructure/ws"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testVoiceChatSuite struct {
	BaseHTTPSuite
}

func TestVoiceChatSuite(t *testing.T) {
	suite.Run(t, &testVoiceChatSuite{})
}

func (s *testVoiceChatSuite) TestMessageLifecycle() {
	var created server.MessageResponse

	s.Run("Step 1: Create a message", func() {
		s.Step(s.T(), "POST /api/messages")
		status, body := s.Do(http.MethodPost, "/api/messages", `{"text":"hello"}`)
		s.Require().Equal(http.StatusCreated, status)
		s.Require().NoError(json.Unmarshal(body, &created))
		s.Require().Positive(created.ID)
		s.Require().Equal("hello", created.Text)
		_, err := server.ParseCreatedAt(created.CreatedAt)
		s.Require().NoError(err)
	})

	s.Run("Step 2: Read it back", func() {
		s.Step(s.T(), "GET /api/messages/{id}")
		status, body := s.Do(http.MethodGet, fmt.Sprintf("/api/messages/%d", created.ID), "")
		s.Require().Equal(http.StatusOK, status)
		var fetched server.MessageResponse
		s.Require().NoError(json.Unmarshal(body, &fetched))
		s.Require().Equal(created, fetched)
	})

	s.Run("Step 3: Update then delete", func() {
		s.Step(s.T(), "PUT and DELETE /api/messages/{id}")
		path := fmt.Sprintf("/api/messages/%d", created.ID)
		status, _ := s.Do(http.MethodPut, path, `{"text":"hello again"}`)
		s.Require().Equal(http.StatusOK, status)
		status, _ = s.Do(http.MethodDelete, path, "")
		s.Require().Equal(http.StatusOK, status)
		status, body := s.Do(http.MethodGet, path, "")
		s.Require().Equal(http.StatusNotFound, status)
		s.Require().JSONEq(`{"error":"Message not found"}`, string(body))
	})
}

func (s *testVoiceChatSuite) TestStoreKeepsTheLatestTen() {
	var ids []int
	for i := 1; i <= 11; i++ {
		status, body := s.Do(http.MethodPost, "/api/messages", fmt.Sprintf(`{"text":"m%d"}`, i))
		s.Require().Equal(http.StatusCreated, status)
		var message server.MessageResponse
		s.Require().NoError(json.Unmarshal(body, &message))
		ids = append(ids, message.ID)
	}

	status, body := s.Do(http.MethodGet, "/api/messages", "")
	s.Require().Equal(http.StatusOK, status)
	var messages []server.MessageResponse
	s.Require().NoError(json.Unmarshal(body, &messages))

	s.Require().Len(messages, 10)
	s.Require().Equal(ids[1:], lo.Map(messages, func(m server.MessageResponse, _ int) int { return m.ID }))
	status, _ = s.Do(http.MethodGet, fmt.Sprintf("/api/messages/%d", ids[0]), "")
	s.Require().Equal(http.StatusNotFound, status)
}

func (s *testVoiceChatSuite) TestRelayReplies() {
	s.WithRelay("Chat message gets a bot reply", func(conn *websocket.Conn) {
		s.Require().NoError(conn.WriteJSON(ws.Envelope{Event: ws.EventChatMessage, Data: "hi"}))
		reply := s.readReply(conn)
		s.Require().Equal(ws.EventBotReply, reply.Event)
		s.Require().NotEmpty(reply.Data)
		if s.InProcess {
			s.Require().Equal(EchoReply("hi"), reply.Data)
		}
	})

	if !s.InProcess {
		return
	}
	s.WithRelay("Failure is contained to one message", func(conn *websocket.Conn) {
		s.Require().NoError(conn.WriteJSON(ws.Envelope{Event: ws.EventChatMessage, Data: "fail"}))
		s.Require().NoError(conn.WriteJSON(ws.Envelope{Event: ws.EventChatMessage, Data: "still there?"}))
		s.Require().Equal(domain.ApologyReply, s.readReply(conn).Data)
		s.Require().Equal(EchoReply("still there?"), s.readReply(conn).Data)
	})
}

func (s *testVoiceChatSuite) TestSynthesis() {
	s.Step(s.T(), "POST /api/tts")
	status, body := s.Do(http.MethodPost, "/api/tts", `{"text":"Hello there"}`)
	s.Require().Equal(http.StatusOK, status)

	var payload struct {
		AudioContent string `json:"audioContent"`
	}
	s.Require().NoError(json.Unmarshal(body, &payload))
	audio, err := base64.StdEncoding.DecodeString(payload.AudioContent)
	s.Require().NoError(err)
	s.Require().NotEmpty(audio)
}

func (s *testVoiceChatSuite) readReply(conn *websocket.Conn) ws.Envelope {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(s.Config.StepTimeout)))
	var envelope ws.Envelope
	s.Require().NoError(conn.ReadJSON(&envelope))
	return envelope
}

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speech-x-text/infrastructure/http/server"

	"github.com/stretchr/testify/require"
)

func TestFetchMessages(t *testing.T) {
	t.Run("should decode the message list", func(t *testing.T) {
		req := require.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.Equal("/api/messages", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":3,"text":"hello","createdAt":"2026-01-02T03:04:05.000Z"}]`))
		}))
		defer srv.Close()

		messages, err := fetchMessages(context.Background(), srv.Client(), srv.URL)

		req.NoError(err)
		req.Len(messages, 1)
		req.Equal(3, messages[0].ID)
		req.Equal("hello", messages[0].Text)
	})

	t.Run("should fail on an error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := fetchMessages(context.Background(), srv.Client(), srv.URL)

		require.ErrorContains(t, err, "500 Internal Server Error")
	})

	t.Run("should report the server error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Message not found"}`))
		}))
		defer srv.Close()

		_, err := fetchMessages(context.Background(), srv.Client(), srv.URL)

		require.ErrorContains(t, err, "404 Not Found: Message not found")
	})
}

func TestRenderMessages(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	renderMessages(&buf, []server.MessageResponse{
		{ID: 1, Text: "first", CreatedAt: "2026-01-02T03:04:05.000Z"},
		{ID: 2, Text: "second", CreatedAt: "not a date"},
	})

	req.Contains(buf.String(), "first")
	req.Contains(buf.String(), "second")
	req.Contains(buf.String(), "not a date")

	out := buf.String()
	req.Contains(out, "CREATED AT")
	req.Less(strings.Index(out, "TEXT"), strings.Index(out, "CREATED AT"))
	req.Less(strings.Index(out, "first"), strings.Index(out, "2026"))
}

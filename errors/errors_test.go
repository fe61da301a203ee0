package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"no error", nil, http.StatusOK},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("get 42: %w", ErrNotFound), http.StatusNotFound},
		{"empty audio", ErrEmptyAudio, http.StatusBadRequest},
		{"unsupported audio", ErrUnsupportedAudio, http.StatusUnsupportedMediaType},
		{"audio too large", ErrAudioTooLarge, http.StatusRequestEntityTooLarge},
		{"upstream", ErrUpstream, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, MapToHTTPStatus(tt.err))
		})
	}
}

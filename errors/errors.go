package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation       = fmt.Errorf("text is required")
	ErrNotFound         = fmt.Errorf("message not found")
	ErrUpstream         = fmt.Errorf("upstream service failure")
	ErrUnsupportedAudio = fmt.Errorf("unsupported audio type")
	ErrEmptyAudio       = fmt.Errorf("audio is required")
	ErrAudioTooLarge    = fmt.Errorf("audio is too large")
	ErrUnknownBackend   = fmt.Errorf("unknown store backend")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)

// MapToHTTPStatus picks the status code an HTTP handler answers with.
// Anything outside the known taxonomy is an internal error.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrValidation), stderrors.Is(err, ErrEmptyAudio):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrUnsupportedAudio):
		return http.StatusUnsupportedMediaType
	case stderrors.Is(err, ErrAudioTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

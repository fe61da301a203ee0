//go:generate go run go.uber.org/mock/mockgen -source=ai.go -destination=../mocks/mock_ai.go -package=mocks

// Package ai wraps the Google Cloud collaborators the voice chat relies on:
// Dialogflow for intent detection, Text-to-Speech and Speech-to-Text.
package ai

import (
	"context"
	"strings"

	"speech-x-text/domain"

	"google.golang.org/api/option"
)

type IntentDetector interface {
	DetectIntent(ctx context.Context, req domain.IntentRequest) (domain.IntentResult, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Recognizer interface {
	Recognize(ctx context.Context, audio []byte) (string, error)
}

// Credentials points the Google clients at a service account.
// Inline JSON wins over a file path; with neither, Application Default
// Credentials are used.
type Credentials struct {
	JSON string
	File string
}

func (c Credentials) ClientOptions() []option.ClientOption {
	switch {
	case strings.TrimSpace(c.JSON) != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(c.JSON))}
	case strings.TrimSpace(c.File) != "":
		return []option.ClientOption{option.WithCredentialsFile(c.File)}
	default:
		return nil
	}
}

// Source describes which credential source ClientOptions will use.
func (c Credentials) Source() string {
	switch {
	case strings.TrimSpace(c.JSON) != "":
		return "inline"
	case strings.TrimSpace(c.File) != "":
		return "file"
	default:
		return "adc"
	}
}

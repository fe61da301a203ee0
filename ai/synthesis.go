package ai

import (
	"context"
	"fmt"

	"speech-x-text/errors"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// VoiceConfig is the single voice every synthesis request uses.
type VoiceConfig struct {
	LanguageCode string
	Name         string
}

// GoogleSynthesizer produces MP3 audio with Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	client *texttospeech.Client
	voice  VoiceConfig
}

func NewGoogleSynthesizer(ctx context.Context, voice VoiceConfig, opts ...option.ClientOption) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{client: client, voice: voice}, nil
}

func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

func (g *GoogleSynthesizer) Voice() VoiceConfig {
	return g.voice
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.voice.LanguageCode,
			Name:         g.voice.Name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: synthesize speech: %w", errors.ErrUpstream, err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, fmt.Errorf("%w: synthesize speech returned no audio", errors.ErrUpstream)
	}
	return resp.GetAudioContent(), nil
}

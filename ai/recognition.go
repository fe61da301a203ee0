package ai

import (
	"context"
	"fmt"
	"strings"

	"speech-x-text/errors"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/api/option"
)

// opusSampleRate is what browsers record Opus at.
const opusSampleRate = 48000

// AudioFormat is the recognition setting matching an uploaded file.
type AudioFormat struct {
	MIME            string
	Encoding        speechpb.RecognitionConfig_AudioEncoding
	SampleRateHertz int32
}

// DetectAudioFormat sniffs the container from the first bytes of the audio.
// FLAC and WAV carry their sample rate in the header, so none is set.
func DetectAudioFormat(audio []byte) (AudioFormat, error) {
	if len(audio) == 0 {
		return AudioFormat{}, errors.ErrEmptyAudio
	}
	mtype := mimetype.Detect(audio)
	switch {
	case mtype.Is("audio/webm"):
		return AudioFormat{MIME: "audio/webm", Encoding: speechpb.RecognitionConfig_WEBM_OPUS, SampleRateHertz: opusSampleRate}, nil
	case mtype.Is("audio/ogg"):
		return AudioFormat{MIME: "audio/ogg", Encoding: speechpb.RecognitionConfig_OGG_OPUS, SampleRateHertz: opusSampleRate}, nil
	case mtype.Is("audio/flac"):
		return AudioFormat{MIME: "audio/flac", Encoding: speechpb.RecognitionConfig_FLAC}, nil
	case mtype.Is("audio/wav"):
		return AudioFormat{MIME: "audio/wav", Encoding: speechpb.RecognitionConfig_LINEAR16}, nil
	default:
		return AudioFormat{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedAudio, mtype.String())
	}
}

// GoogleRecognizer transcribes short clips with Google Cloud Speech-to-Text.
type GoogleRecognizer struct {
	client       *speech.Client
	languageCode string
}

func NewGoogleRecognizer(ctx context.Context, languageCode string, opts ...option.ClientOption) (*GoogleRecognizer, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleRecognizer{client: client, languageCode: languageCode}, nil
}

func (g *GoogleRecognizer) Close() error {
	return g.client.Close()
}

// Recognize joins the best alternative of every result.
func (g *GoogleRecognizer) Recognize(ctx context.Context, audio []byte) (string, error) {
	format, err := DetectAudioFormat(audio)
	if err != nil {
		return "", err
	}
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        format.Encoding,
			SampleRateHertz: format.SampleRateHertz,
			LanguageCode:    g.languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: recognize: %w", errors.ErrUpstream, err)
	}

	var parts []string
	for _, result := range resp.GetResults() {
		if alternatives := result.GetAlternatives(); len(alternatives) > 0 {
			parts = append(parts, strings.TrimSpace(alternatives[0].GetTranscript()))
		}
	}
	return strings.Join(parts, " "), nil
}

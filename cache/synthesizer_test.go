package cache

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"speech-x-text/ai"
	"speech-x-text/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var voice = ai.VoiceConfig{LanguageCode: "en-US", Name: "en-US-Wavenet-D"}

func TestCachedSynthesizer_Synthesize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	t.Run("should answer from the cache without synthesizing", func(t *testing.T) {
		req := require.New(t)
		synthesizer := mocks.NewMockSynthesizer(ctrl)
		audioCache := mocks.NewMockAudioCache(ctrl)
		cached := NewCachedSynthesizer(log, synthesizer, audioCache, voice)

		audioCache.EXPECT().Get(ctx, cached.Key("hello")).Return([]byte("mp3"), true, nil).Times(1)
		synthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any()).Times(0)

		audio, err := cached.Synthesize(ctx, "hello")

		req.NoError(err)
		req.Equal([]byte("mp3"), audio)
		req.Equal(uint64(1), cached.Hits())
	})

	t.Run("should synthesize and fill the cache on a miss", func(t *testing.T) {
		req := require.New(t)
		synthesizer := mocks.NewMockSynthesizer(ctrl)
		audioCache := mocks.NewMockAudioCache(ctrl)
		cached := NewCachedSynthesizer(log, synthesizer, audioCache, voice)
		key := cached.Key("hello")

		gomock.InOrder(
			audioCache.EXPECT().Get(ctx, key).Return(nil, false, nil),
			synthesizer.EXPECT().Synthesize(ctx, "hello").Return([]byte("fresh"), nil),
			audioCache.EXPECT().Set(ctx, key, []byte("fresh")).Return(nil),
		)

		audio, err := cached.Synthesize(ctx, "hello")

		req.NoError(err)
		req.Equal([]byte("fresh"), audio)
		req.Zero(cached.Hits())
	})

	t.Run("should bypass a broken cache", func(t *testing.T) {
		req := require.New(t)
		synthesizer := mocks.NewMockSynthesizer(ctrl)
		audioCache := mocks.NewMockAudioCache(ctrl)
		cached := NewCachedSynthesizer(log, synthesizer, audioCache, voice)

		audioCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, fmt.Errorf("connection reset"))
		synthesizer.EXPECT().Synthesize(ctx, "hello").Return([]byte("fresh"), nil)
		audioCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection reset"))

		audio, err := cached.Synthesize(ctx, "hello")

		req.NoError(err)
		req.Equal([]byte("fresh"), audio)
	})

	t.Run("should not cache a failed synthesis", func(t *testing.T) {
		synthesizer := mocks.NewMockSynthesizer(ctrl)
		audioCache := mocks.NewMockAudioCache(ctrl)
		cached := NewCachedSynthesizer(log, synthesizer, audioCache, voice)

		audioCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		synthesizer.EXPECT().Synthesize(ctx, "hello").Return(nil, fmt.Errorf("quota exceeded"))
		audioCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := cached.Synthesize(ctx, "hello")

		require.Error(t, err)
	})
}

func TestCachedSynthesizer_Key(t *testing.T) {
	req := require.New(t)
	cached := NewCachedSynthesizer(slog.Default(), nil, nil, voice)
	other := NewCachedSynthesizer(slog.Default(), nil, nil, ai.VoiceConfig{LanguageCode: "en-GB", Name: "en-GB-Wavenet-B"})

	req.Equal(cached.Key("hello"), cached.Key("hello"))
	req.NotEqual(cached.Key("hello"), cached.Key("hello!"))
	req.NotEqual(cached.Key("hello"), other.Key("hello"))
	req.Len(cached.Key("hello"), len("tts:")+64)
}

func TestNewRedisAudioCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisAudioCache(ctx, RedisOptions{Addr: "127.0.0.1:1", TTL: time.Minute})

	require.Error(t, err)
}

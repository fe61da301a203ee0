package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"speech-x-text/ai"
)

// CachedSynthesizer answers from the cache when it can and fills it
// after every successful synthesis. Cache failures are logged and skipped.
type CachedSynthesizer struct {
	next  ai.Synthesizer
	cache AudioCache
	voice ai.VoiceConfig
	log   *slog.Logger
	hits  atomic.Uint64
}

func NewCachedSynthesizer(log *slog.Logger, next ai.Synthesizer, cache AudioCache, voice ai.VoiceConfig) *CachedSynthesizer {
	return &CachedSynthesizer{next: next, cache: cache, voice: voice, log: log}
}

// Key scopes the entry to the voice so a voice change never serves stale audio.
func (c *CachedSynthesizer) Key(text string) string {
	sum := sha256.Sum256([]byte(c.voice.Name + "|" + c.voice.LanguageCode + "|" + text))
	return "tts:" + hex.EncodeToString(sum[:])
}

func (c *CachedSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	key := c.Key(text)
	audio, found, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn("Audio cache read failed", "key", key, "error", err)
	case found:
		c.hits.Add(1)
		return audio, nil
	}

	audio, err = c.next.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	if err = c.cache.Set(ctx, key, audio); err != nil {
		c.log.Warn("Audio cache write failed", "key", key, "error", err)
	}
	return audio, nil
}

func (c *CachedSynthesizer) Hits() uint64 {
	return c.hits.Load()
}

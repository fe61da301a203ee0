package main

import (
	"fmt"
	"time"

	"speech-x-text/ai"
	"speech-x-text/errors"
	"speech-x-text/repositories"
)

type Config struct {
	Host                  string        `env:"HOST"`
	Port                  int           `env:"PORT,default=8000"`
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
	MessageLimit          int           `env:"MESSAGE_LIMIT,default=10"`
	StoreBackend          string        `env:"STORE_BACKEND,default=memory"`
	GoogleProjectID       string        `env:"GOOGLE_PROJECT_ID,required=true"`
	GoogleCredentialsJSON string        `env:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string        `env:"GOOGLE_CREDENTIALS_FILE"`
	LanguageCode          string        `env:"LANGUAGE_CODE,default=en-US"`
	DetectLanguage        bool          `env:"DETECT_LANGUAGE,default=false"`
	SupportedLanguages    []string      `env:"SUPPORTED_LANGUAGES,default=en|fr|de|es"`
	IntentTimeout         time.Duration `env:"INTENT_TIMEOUT,default=10s"`
	SessionQueueSize      int           `env:"SESSION_QUEUE_SIZE,default=16"`
	PingInterval          time.Duration `env:"PING_INTERVAL,default=30s"`
	TTSVoice              string        `env:"TTS_VOICE,default=en-US-Wavenet-D"`
	TTSLanguageCode       string        `env:"TTS_LANGUAGE_CODE,default=en-US"`
	TTSTimeout            time.Duration `env:"TTS_TIMEOUT,default=10s"`
	STTLanguageCode       string        `env:"STT_LANGUAGE_CODE,default=en-US"`
	STTTimeout            time.Duration `env:"STT_TIMEOUT,default=15s"`
	MaxAudioBytes         int64         `env:"MAX_AUDIO_BYTES,default=10485760"`
	RedisAddr             string        `env:"REDIS_ADDR"`
	RedisPassword         string        `env:"REDIS_PASSWORD"`
	RedisDB               int           `env:"REDIS_DB,default=0"`
	TTSCacheTTL           time.Duration `env:"TTS_CACHE_TTL,default=24h"`
	StaticDirs            []string      `env:"STATIC_DIRS,default=public|assets"`
	MetricInterval        time.Duration `env:"METRIC_INTERVAL,default=5s"`
	StatsInterval         time.Duration `env:"STATS_INTERVAL,default=1m"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Credentials() ai.Credentials {
	return ai.Credentials{JSON: c.GoogleCredentialsJSON, File: c.GoogleCredentialsFile}
}

func (c Config) Voice() ai.VoiceConfig {
	return ai.VoiceConfig{LanguageCode: c.TTSLanguageCode, Name: c.TTSVoice}
}

// Validate rejects values that would only fail later, at request time.
func (c Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	case c.StoreBackend != repositories.BackendMemory && c.StoreBackend != repositories.BackendBadger:
		return fmt.Errorf("%w: STORE_BACKEND=%q", errors.ErrUnknownBackend, c.StoreBackend)
	case c.MessageLimit < 1:
		return fmt.Errorf("MESSAGE_LIMIT must be positive, got %d", c.MessageLimit)
	case c.SessionQueueSize < 1:
		return fmt.Errorf("SESSION_QUEUE_SIZE must be positive, got %d", c.SessionQueueSize)
	case c.MaxAudioBytes < 1:
		return fmt.Errorf("MAX_AUDIO_BYTES must be positive, got %d", c.MaxAudioBytes)
	case c.IntentTimeout <= 0, c.TTSTimeout <= 0, c.STTTimeout <= 0:
		return fmt.Errorf("collaborator timeouts must be positive")
	case c.PingInterval <= 0:
		return fmt.Errorf("PING_INTERVAL must be positive, got %s", c.PingInterval)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	case c.MetricInterval <= 0:
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	case c.StatsInterval <= 0:
		return fmt.Errorf("STATS_INTERVAL must be positive, got %s", c.StatsInterval)
	}
	return nil
}

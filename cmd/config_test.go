package main

import (
	"testing"
	"time"

	"speech-x-text/errors"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{"GOOGLE_PROJECT_ID": "voice-bot"}, &config)

	req.NoError(err)
	req.Equal(":8000", config.Address())
	req.Equal("INFO", config.LogLevel)
	req.Equal(10, config.MessageLimit)
	req.Equal("memory", config.StoreBackend)
	req.Equal("en-US", config.LanguageCode)
	req.False(config.DetectLanguage)
	req.Equal([]string{"en", "fr", "de", "es"}, config.SupportedLanguages)
	req.Equal(10*time.Second, config.IntentTimeout)
	req.Equal(16, config.SessionQueueSize)
	req.Equal(30*time.Second, config.PingInterval)
	req.Equal("en-US-Wavenet-D", config.Voice().Name)
	req.Equal("en-US", config.Voice().LanguageCode)
	req.Equal(15*time.Second, config.STTTimeout)
	req.Equal(int64(10485760), config.MaxAudioBytes)
	req.Empty(config.RedisAddr)
	req.Equal(24*time.Hour, config.TTSCacheTTL)
	req.Equal([]string{"public", "assets"}, config.StaticDirs)
	req.Equal(10*time.Second, config.ShutdownTimeout)
	req.Equal("adc", config.Credentials().Source())
	req.NoError(config.Validate())
}

func TestConfig_ProjectRequired(t *testing.T) {
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	require.Error(t, err)
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"GOOGLE_PROJECT_ID":       "voice-bot",
		"GOOGLE_CREDENTIALS_JSON": `{"type":"service_account"}`,
		"GOOGLE_CREDENTIALS_FILE": "/secrets/key.json",
		"HOST":                    "127.0.0.1",
		"PORT":                    "9000",
		"MESSAGE_LIMIT":           "3",
		"STORE_BACKEND":           "badger",
		"DETECT_LANGUAGE":         "true",
		"SUPPORTED_LANGUAGES":     "en|it",
		"INTENT_TIMEOUT":          "2s",
		"REDIS_ADDR":              "localhost:6379",
		"REDIS_DB":                "2",
	}, &config)

	req.NoError(err)
	req.Equal("127.0.0.1:9000", config.Address())
	req.Equal(3, config.MessageLimit)
	req.Equal("badger", config.StoreBackend)
	req.True(config.DetectLanguage)
	req.Equal([]string{"en", "it"}, config.SupportedLanguages)
	req.Equal(2*time.Second, config.IntentTimeout)
	req.Equal(2, config.RedisDB)
	req.Equal("inline", config.Credentials().Source())
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		var config Config
		require.NoError(t, env.Unmarshal(env.EnvSet{"GOOGLE_PROJECT_ID": "voice-bot"}, &config))
		return config
	}

	t.Run("should reject a zero message limit", func(t *testing.T) {
		config := base()
		config.MessageLimit = 0
		require.Error(t, config.Validate())
	})

	t.Run("should reject a zero queue", func(t *testing.T) {
		config := base()
		config.SessionQueueSize = 0
		require.Error(t, config.Validate())
	})

	t.Run("should reject a zero timeout", func(t *testing.T) {
		config := base()
		config.TTSTimeout = 0
		require.Error(t, config.Validate())
	})

	t.Run("should accept the defaults", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("should reject ports out of range", func(t *testing.T) {
		for _, port := range []int{0, -1, 70000} {
			config := base()
			config.Port = port
			require.Error(t, config.Validate(), "port %d", port)
		}
	})

	t.Run("should reject a zero ping interval", func(t *testing.T) {
		config := base()
		config.PingInterval = 0
		require.Error(t, config.Validate())
	})

	t.Run("should reject a zero shutdown timeout", func(t *testing.T) {
		config := base()
		config.ShutdownTimeout = 0
		require.Error(t, config.Validate())
	})

	t.Run("should reject an unknown store backend", func(t *testing.T) {
		config := base()
		config.StoreBackend = "bogus"
		require.ErrorIs(t, config.Validate(), errors.ErrUnknownBackend)
	})

	t.Run("should accept the badger backend", func(t *testing.T) {
		config := base()
		config.StoreBackend = "badger"
		require.NoError(t, config.Validate())
	})
}

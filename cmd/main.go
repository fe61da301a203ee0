package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speech-x-text/ai"
	"speech-x-text/cache"
	"speech-x-text/contract"
	"speech-x-text/infrastructure/http/server"
	"speech-x-text/infrastructure/ws"
	"speech-x-text/observability"
	"speech-x-text/relay"
	"speech-x-text/repositories"
	"speech-x-text/runtime/workers"
	"speech-x-text/services"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const serviceName = "speech-x-text"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component, serves HTTP until a signal arrives and lets the
// deferred closers release the Google clients and the store.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Message store
	repository, closeStore, err := repositories.Open(config.StoreBackend, log, config.MessageLimit)
	if err != nil {
		return fmt.Errorf("message store opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing message store...")
		_ = closeStore()
	}()

	// 4. Google collaborators
	credentials := config.Credentials()
	opts := credentials.ClientOptions()
	log.Info("Using Google credentials", "source", credentials.Source(), "project_id", config.GoogleProjectID)

	detector, err := ai.NewDialogflowDetector(ctx, log, config.GoogleProjectID, opts...)
	if err != nil {
		return err
	}
	defer closeQuietly(log, "dialogflow", detector.Close)

	googleSynthesizer, err := ai.NewGoogleSynthesizer(ctx, config.Voice(), opts...)
	if err != nil {
		return err
	}
	defer closeQuietly(log, "text-to-speech", googleSynthesizer.Close)

	recognizer, err := ai.NewGoogleRecognizer(ctx, config.STTLanguageCode, opts...)
	if err != nil {
		return err
	}
	defer closeQuietly(log, "speech-to-text", recognizer.Close)

	monitor := observability.NewMonitor(log, serviceName, version)

	// 5. Optional synthesis cache
	var synthesizer ai.Synthesizer = googleSynthesizer
	if config.RedisAddr != "" {
		audioCache, err := cache.NewRedisAudioCache(ctx, cache.RedisOptions{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
			TTL:      config.TTSCacheTTL,
		})
		if err != nil {
			return err
		}
		defer closeQuietly(log, "redis", audioCache.Close)
		cached := cache.NewCachedSynthesizer(log, googleSynthesizer, audioCache, googleSynthesizer.Voice())
		monitor.WithCacheHits(cached.Hits)
		synthesizer = cached
		log.Info("Synthesis cache enabled", "addr", config.RedisAddr, "ttl", config.TTSCacheTTL)
	}

	// 6. Relay & HTTP surface
	picker := ai.NewLanguagePicker(config.LanguageCode, config.DetectLanguage, config.SupportedLanguages)
	log.Info("Relay language", "picker", picker.String())
	chatRelay := relay.NewRelay(log, detector, picker, config.IntentTimeout, monitor)

	router := server.NewRouter(log, config.StaticDirs,
		server.NewMessageServer(log, services.NewMessageService(repository), monitor),
		server.NewSpeechServer(log, synthesizer, recognizer, monitor, server.SpeechConfig{
			TTSTimeout:    config.TTSTimeout,
			STTTimeout:    config.STTTimeout,
			MaxAudioBytes: config.MaxAudioBytes,
		}),
		ws.NewHandler(log, chatRelay, config.SessionQueueSize, config.PingInterval),
		monitor,
	)

	var supervisor contract.ISupervisor = workers.NewSupervisor(log)
	startWorkers(ctx, supervisor,
		workers.NewProcessSampler(log, monitor, config.MetricInterval),
		workers.NewStatsReporter(log, monitor, config.StatsInterval),
	)

	// Relay sessions hijack their connection, so Shutdown does not wait for
	// them; they end through the base context instead.
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server did not stop in time", "error", err)
	}
	supervisor.Stop()
	log.Info("Program stopped cleanly")
	return nil
}

// startWorkers runs the supervised background workers until ctx ends.
func startWorkers(ctx context.Context, supervisor contract.ISupervisor, worker ...contract.Worker) {
	go supervisor.Add(worker...).Run(ctx)
}

func closeQuietly(log *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("Failed to close client", "client", name, "error", err)
	}
}

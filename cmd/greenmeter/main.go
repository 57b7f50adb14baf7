package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"greenmeter/config"
	"greenmeter/internal/application"
	"greenmeter/internal/infra/api"
	"greenmeter/internal/infra/audio"
	"greenmeter/internal/infra/openai"
	"greenmeter/internal/infra/pushover"
	"greenmeter/internal/inventory"
	"greenmeter/internal/parse"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	var stt application.SpeechToText
	if cfg.OpenAI.APIKey != "" {
		stt = openai.NewWhisperClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Language)
	} else {
		logger.Warn("no openai api key configured, audio transcription disabled")
		stt = &application.NoopSTT{}
	}

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey)
	} else {
		notifier = &application.NoopNotifier{}
	}

	parser := parse.Parser{}
	store := inventory.NewStore()

	server := api.NewServer(
		cfg.Server.Addr,
		cfg.Server.AuthToken,
		cfg.Server.MaxUploadBytes,
		cfg.Server.RateLimit,
		stt,
		parser,
		store,
		notifier,
		logger,
	)

	if err := server.Start(ctx); err != nil {
		logger.Error("starting HTTP API", "error", err)
		os.Exit(1)
	}
	defer server.Stop()

	logger.Info("greenmeter voice service started",
		"addr", cfg.Server.Addr,
		"capture_source", cfg.Capture.Source,
	)

	if cfg.Capture.Source == "none" {
		<-ctx.Done()
		return
	}

	source := createCaptureSource(cfg.Capture, logger)
	intake := application.NewIntake(source, stt, parser, store, notifier, logger)

	if err := intake.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("intake error", "error", err)
		os.Exit(1)
	}
}

func createCaptureSource(cfg config.CaptureConfig, logger *slog.Logger) application.AudioSource {
	switch cfg.Source {
	case "microphone":
		return audio.NewMicrophoneSource(cfg.SampleRate, logger)
	case "file":
		return audio.NewFileSource(cfg.FileDir)
	default:
		logger.Warn("unknown capture source, using file", "source", cfg.Source)
		return audio.NewFileSource(cfg.FileDir)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

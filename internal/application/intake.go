package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"greenmeter/internal/domain"
)

// Intake drives a capture source through the voice-registration pipeline:
// next clip, transcribe, parse, register, notify.
type Intake struct {
	source   AudioSource
	stt      SpeechToText
	parser   DetailsParser
	registry DeviceRegistry
	notifier Notifier
	logger   *slog.Logger
}

func NewIntake(
	source AudioSource,
	stt SpeechToText,
	parser DetailsParser,
	registry DeviceRegistry,
	notifier Notifier,
	logger *slog.Logger,
) *Intake {
	return &Intake{
		source:   source,
		stt:      stt,
		parser:   parser,
		registry: registry,
		notifier: notifier,
		logger:   logger,
	}
}

func (in *Intake) Run(ctx context.Context) error {
	in.logger.Info("starting capture source", "source", in.source.Name())
	if err := in.source.Start(ctx); err != nil {
		return fmt.Errorf("starting capture source: %w", err)
	}
	defer in.source.Stop()

	in.logger.Info("intake ready, listening for descriptions")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := in.processOneClip(ctx); err != nil {
				in.logger.Error("processing clip", "error", err)
			}
		}
	}
}

func (in *Intake) processOneClip(ctx context.Context) error {
	clip, err := in.source.NextClip(ctx)
	if err != nil {
		return fmt.Errorf("getting audio: %w", err)
	}

	if len(clip) == 0 {
		return nil
	}

	var text string

	if direct, isText := isTextClip(clip); isText {
		in.logger.Info("received text description directly", "text", direct)
		text = direct
	} else {
		in.logger.Info("received audio", "bytes", len(clip))

		text, err = in.stt.Transcribe(ctx, clip)
		if err != nil {
			return fmt.Errorf("transcribing: %w", err)
		}

		in.logger.Info("transcribed", "text", text)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		in.logger.Warn("empty transcript, nothing to register")
		return nil
	}

	details := in.parser.Parse(text)
	device := in.registry.Add(details)

	in.logger.Info("registered device",
		"id", device.ID,
		"name", device.DisplayName(),
	)

	if err := in.notifier.Notify(ctx, fmt.Sprintf("Registered %s", device.DisplayName())); err != nil {
		in.logger.Error("notifying registration", "error", err)
	}

	return nil
}

func isTextClip(data []byte) (string, bool) {
	if len(data) > len(domain.TextClipPrefix) && string(data[:len(domain.TextClipPrefix)]) == domain.TextClipPrefix {
		return string(data[len(domain.TextClipPrefix):]), true
	}
	return "", false
}

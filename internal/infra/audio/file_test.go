package audio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"greenmeter/internal/infra/audio"
)

func TestFileSource_PicksUpNewFiles(t *testing.T) {
	tmpDir := t.TempDir()

	files := []struct {
		name    string
		content []byte
	}{
		{"description1.wav", []byte("RIFF....WAVEfmt description 1")},
		{"description2.wav", []byte("RIFF....WAVEfmt description 2")},
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, f.name), f.content, 0644); err != nil {
			t.Fatalf("writing test file: %v", err)
		}
	}

	source := audio.NewFileSource(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	for i := 0; i < len(files); i++ {
		clip, err := source.NextClip(ctx)
		if err != nil {
			t.Fatalf("reading clip %d: %v", i+1, err)
		}
		if len(clip) == 0 {
			t.Errorf("clip %d is empty", i+1)
		}
	}
}

func TestFileSource_IgnoresNonAudioFiles(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("not audio"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	source := audio.NewFileSource(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 1200*time.Millisecond)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	if clip, err := source.NextClip(ctx); err == nil {
		t.Errorf("got clip %q from a directory with no audio files", clip)
	}
}

func TestFileSource_DoesNotReplayProcessedFiles(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "description.wav")
	if err := os.WriteFile(path, []byte("RIFF....WAVEfmt once"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	source := audio.NewFileSource(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	if _, err := source.NextClip(ctx); err != nil {
		t.Fatalf("reading clip: %v", err)
	}

	if _, err := os.Stat(path + ".processed"); err != nil {
		t.Errorf("consumed file not renamed: %v", err)
	}

	shortCtx, shortCancel := context.WithTimeout(context.Background(), 1200*time.Millisecond)
	defer shortCancel()

	if clip, err := source.NextClip(shortCtx); err == nil {
		t.Errorf("replayed processed file: %q", clip)
	}
}

package openai_test

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenmeter/internal/infra/openai"
)

func TestWhisperClient_Transcribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			http.Error(w, "bad auth", http.StatusUnauthorized)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			http.Error(w, "expected multipart", http.StatusBadRequest)
			return
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			http.Error(w, "unexpected model "+got, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": "  LG fridge two star in the kitchen  "})
	}))
	defer server.Close()

	client := openai.NewWhisperClientWithURL("test-key", "", "en", server.URL)

	text, err := client.Transcribe(context.Background(), []byte("fake wav bytes"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	want := "LG fridge two star in the kitchen"
	if text != want {
		t.Errorf("transcript = %q, want %q", text, want)
	}
}

func TestWhisperClient_TranscribeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid file", http.StatusBadRequest)
	}))
	defer server.Close()

	client := openai.NewWhisperClientWithURL("test-key", "whisper-1", "en", server.URL)

	if _, err := client.Transcribe(context.Background(), []byte("junk")); err == nil {
		t.Fatal("expected error for API failure")
	}
}

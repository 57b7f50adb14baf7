// Package api exposes the voice-intake service over HTTP: parse text,
// transcribe uploaded audio, and register devices from spoken descriptions.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"greenmeter/internal/application"
	"greenmeter/internal/domain"
)

const transcriptionFailedMsg = "Transcription failed or empty audio"

type Server struct {
	addr      string
	authToken string
	maxUpload int64

	stt      application.SpeechToText
	parser   application.DetailsParser
	registry application.DeviceRegistry
	notifier application.Notifier
	logger   *slog.Logger

	mux         *http.ServeMux
	rateLimiter *RateLimiter
	server      *http.Server

	mu      sync.Mutex
	running bool
}

func NewServer(
	addr string,
	authToken string,
	maxUpload int64,
	rateLimit int,
	stt application.SpeechToText,
	parser application.DetailsParser,
	registry application.DeviceRegistry,
	notifier application.Notifier,
	logger *slog.Logger,
) *Server {
	s := &Server{
		addr:        addr,
		authToken:   authToken,
		maxUpload:   maxUpload,
		stt:         stt,
		parser:      parser,
		registry:    registry,
		notifier:    notifier,
		logger:      logger,
		mux:         http.NewServeMux(),
		rateLimiter: NewRateLimiter(rateLimit, time.Minute),
	}

	s.mux.HandleFunc("POST /parse", s.rateLimiter.Middleware(s.withAuth(s.handleParse)))
	s.mux.HandleFunc("POST /transcribe", s.rateLimiter.Middleware(s.withAuth(s.handleTranscribe)))
	s.mux.HandleFunc("POST /add-device-voice", s.rateLimiter.Middleware(s.withAuth(s.handleAddDeviceVoice)))
	s.mux.HandleFunc("GET /devices", s.withAuth(s.handleDevices))
	// No rate limiting or auth on health check
	s.mux.HandleFunc("GET /health", s.handleHealth)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info("HTTP API starting", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Warn("graceful shutdown failed, forcing close", "error", err)
			if err := s.server.Close(); err != nil {
				return fmt.Errorf("closing server: %w", err)
			}
		}
	}

	s.running = false
	return nil
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken != "" {
			token := r.Header.Get("X-Auth-Token")
			if token == "" {
				token = r.URL.Query().Get("token")
			}
			if token != s.authToken {
				s.logger.Warn("unauthorized request", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, 64*1024))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req parseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	details := s.parser.Parse(req.Text)
	s.writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	audio, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	text := s.transcribe(r.Context(), audio)
	if text == "" {
		s.writeJSON(w, http.StatusOK, map[string]string{"error": transcriptionFailedMsg})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleAddDeviceVoice(w http.ResponseWriter, r *http.Request) {
	audio, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	text := s.transcribe(r.Context(), audio)
	if text == "" {
		// Failed transcription still yields a complete, all-absent record.
		s.writeJSON(w, http.StatusOK, domain.DeviceDetails{})
		return
	}

	details := s.parser.Parse(text)
	device := s.registry.Add(details)

	s.logger.Info("registered device via voice",
		"id", device.ID,
		"name", device.DisplayName(),
	)

	if err := s.notifier.Notify(r.Context(), fmt.Sprintf("Registered %s", device.DisplayName())); err != nil {
		s.logger.Error("notifying registration", "error", err)
	}

	s.writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"devices": s.registry.Devices(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	status := "ok"
	statusCode := http.StatusOK
	if !running {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, `{"status":"%s","devices":%d}`, status, len(s.registry.Devices()))
}

// readUpload pulls the "file" part out of a multipart upload, enforcing the
// configured size limit. It writes the error response itself on failure.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing or oversized file upload", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("reading upload", "error", err)
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return nil, false
	}

	return data, true
}

// transcribe maps every failure mode to an empty transcript; the endpoints
// report "nothing heard" rather than surfacing transcriber errors.
func (s *Server) transcribe(ctx context.Context, audio []byte) string {
	if len(audio) == 0 {
		return ""
	}

	text, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		s.logger.Error("transcription failed", "error", err)
		return ""
	}

	return strings.TrimSpace(text)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// Package server provides the HTTP control surface for the Janken game.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayusman/janken/internal/app"
)

// Config holds the server configuration.
type Config struct {
	App       *app.App
	StaticDir string
	Logger    zerolog.Logger
}

// Server routes the browser UI's requests to the game: state polling, round
// start, difficulty changes, reset, and the camera stream. It owns no game
// state; every handler reads or mutates through the App's session and
// round controller.
type Server struct {
	config Config
	log    zerolog.Logger
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		log:    config.Logger,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.HandleFunc("/api/start", s.handleStart)
	s.mux.HandleFunc("/api/reset", s.handleReset)
	s.mux.HandleFunc("/api/difficulty/", s.handleDifficulty)

	if s.config.App != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))
		s.mux.HandleFunc("/api/frame", s.handleFrame)
		s.mux.Handle("/api/events", NewEventsHandler(s.statePayload, s.log))
	}

	if s.config.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// ServeHTTP implements http.Handler, applying CORS headers so the browser
// UI can run on a separate dev server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// statePayload assembles the full state document: round lifecycle, live
// gesture preview, debounced stable gesture, and the session status.
func (s *Server) statePayload() map[string]any {
	a := s.config.App
	round := a.Controller().State()
	preview := a.Preview()

	return map[string]any{
		"armed":           round.Armed,
		"countdown":       round.Countdown,
		"game_started":    round.GameStarted,
		"user_choice":     orNull(string(round.UserChoice)),
		"computer_choice": orNull(string(round.ComputerChoice)),
		"winner":          orNull(round.Winner),
		"gesture":         orNull(string(preview.Gesture)),
		"confidence":      preview.Confidence,
		"stable_gesture":  orNull(string(a.StableGesture())),
		"game_status":     a.Session().Status(),
	}
}

// orNull maps empty strings to JSON null so the UI can distinguish "no
// choice yet" from a choice named "".
func orNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"ok":     true,
		"uptime": time.Since(s.start).String(),
	}
	if s.config.App != nil {
		response["camera_open"] = s.config.App.Camera().IsOpen()
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.statePayload())
}

// handleStart arms the next round's countdown. GET is accepted alongside
// POST for easy testing from a browser address bar.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.App.Controller().Arm()
	s.log.Info().Msg("round armed")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.App.Session().Reset()
	s.config.App.Controller().Reset()
	s.log.Info().Msg("session reset")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleDifficulty handles /api/difficulty/{level}. Unknown levels return
// success=false and leave the current level active.
func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	level := strings.TrimPrefix(r.URL.Path, "/api/difficulty/")
	ok := s.config.App.Session().SetDifficulty(level)
	if !ok {
		s.log.Warn().Str("level", level).Msg("rejected difficulty")
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    ok,
		"difficulty": level,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

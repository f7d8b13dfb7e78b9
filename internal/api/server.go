// Package api provides the HTTP API for calendar queries.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
// See design doc Section 2.8.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/chaos"
	"github.com/talgya/saskan-astro/internal/moons"
	"github.com/talgya/saskan-astro/internal/sky"
	"github.com/talgya/saskan-astro/internal/solar"
	"github.com/talgya/saskan-astro/internal/translator"
	"github.com/talgya/saskan-astro/internal/wanderers"
)

// Server serves calendar translations over HTTP.
type Server struct {
	Chaos    *chaos.Store
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// Reseeding rewrites the chaos tables, so keep it slow.
	seedLimiter := NewRateLimiter(6, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only — anyone can ask what day it is).
	mux.HandleFunc("/api/v1/date", s.handleDate)
	mux.HandleFunc("/api/v1/fatunik", s.handleFatunik)
	mux.HandleFunc("/api/v1/terpin", s.handleTerpin)
	mux.HandleFunc("/api/v1/lunar", s.handleLunar)
	mux.HandleFunc("/api/v1/moons", s.handleMoons)
	mux.HandleFunc("/api/v1/wanderers", s.handleWanderers)
	mux.HandleFunc("/api/v1/sky", s.handleSky)
	mux.HandleFunc("/api/v1/chaos/events", s.handleChaosEvents)
	mux.HandleFunc("/api/v1/chaos/day", s.handleChaosDay)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/chaos/seed", s.adminOnly(RateLimitMiddleware(seedLimiter, s.handleChaosSeed)))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no SASKANCAL_ADMIN_KEY set)", http.StatusForbidden)
				return
			}

			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next(w, r)
	}
}

// dayParam reads the ?day= query parameter. The sanitizers downstream
// absorb out-of-range values, so only unparseable input is rejected.
func dayParam(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("day")
	if raw == "" {
		return 0, fmt.Errorf("missing day parameter")
	}
	day, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad day parameter %q", raw)
	}
	return day, nil
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hour := translator.DefaultHour
	if raw := r.URL.Query().Get("hour"); raw != "" {
		if h, err := strconv.ParseFloat(raw, 64); err == nil {
			hour = h
		}
	}

	report := translator.Translate(day, hour)
	s.applyChaos(&report)
	writeJSON(w, report)
}

// applyChaos overlays any stored perturbation for the day onto the Kanka
// entry of a translation. Missing store or rows leave the report as is.
func (s *Server) applyChaos(report *translator.Report) {
	if s.Chaos == nil {
		return
	}
	p, ok, err := s.Chaos.PerturbationForDay(int(report.Rosetta.Day))
	if err != nil {
		slog.Error("chaos lookup failed", "day", report.Rosetta.Day, "error", err)
		return
	}
	if !ok {
		return
	}

	kanka, exists := report.Moons.Moons["Kanka"]
	if !exists {
		return
	}
	kanka.PhaseOffset = p.Offset
	kanka.Phase = p.Phase
	report.Moons.Moons["Kanka"] = kanka
}

func (s *Server) handleFatunik(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, solar.Fatunik(day))
}

func (s *Server) handleTerpin(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, solar.Terpin(day))
}

func (s *Server) handleLunar(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]solar.LunarDate{
		"Lunar A": solar.LunarA(day),
		"Lunar B": solar.LunarB(day),
	})
}

func (s *Server) handleMoons(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := moons.Phases(day)
	writeJSON(w, map[string]any{
		"report": report,
		"counts": moons.CountPhases(report.Moons),
	})
}

func (s *Server) handleWanderers(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := wanderers.Report(day)
	writeJSON(w, map[string]any{
		"wanderers":         report,
		"visible_wanderers": wanderers.CountVisible(report),
	})
}

func (s *Server) handleSky(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	solarDay := solar.SolarDayFromPulse(float64(astro.PulsesFromAstroDay(astro.SanitizeAstroDay(day))))
	writeJSON(w, sky.StarContext(solarDay))
}

func (s *Server) handleChaosEvents(w http.ResponseWriter, r *http.Request) {
	if s.Chaos == nil {
		http.Error(w, "chaos store not configured", http.StatusServiceUnavailable)
		return
	}

	events, err := s.Chaos.Events()
	if err != nil {
		http.Error(w, "failed to load chaos events", http.StatusInternalServerError)
		return
	}
	seed, err := s.Chaos.Seed()
	if err != nil {
		http.Error(w, "failed to load chaos seed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"seed": seed, "events": events})
}

func (s *Server) handleChaosDay(w http.ResponseWriter, r *http.Request) {
	if s.Chaos == nil {
		http.Error(w, "chaos store not configured", http.StatusServiceUnavailable)
		return
	}

	day, err := dayParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, ok, err := s.Chaos.PerturbationForDay(int(astro.SanitizeAstroDay(day)))
	if err != nil {
		http.Error(w, "failed to load perturbation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"perturbed": ok, "perturbation": p})
}

// handleChaosSeed regenerates the chaos timeline from a new seed.
// POST /api/v1/chaos/seed with {"seed": 99, "max_turns": 3000}.
func (s *Server) handleChaosSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Chaos == nil {
		http.Error(w, "chaos store not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Seed     int64 `json:"seed"`
		MaxTurns int   `json:"max_turns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if req.MaxTurns <= 0 {
		req.MaxTurns = 3000
	}

	if err := chaos.SeedKankaChaos(s.Chaos, req.Seed, req.MaxTurns); err != nil {
		slog.Error("chaos seeding failed", "seed", req.Seed, "error", err)
		http.Error(w, "seeding failed", http.StatusInternalServerError)
		return
	}

	events, err := s.Chaos.Events()
	if err != nil {
		http.Error(w, "failed to load chaos events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"seed": req.Seed, "events": len(events)})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

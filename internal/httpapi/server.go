// Package httpapi exposes the scanner over HTTP: trending scan results,
// single-token analysis, health, and metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/pedroadiaz/meme-coin-analysis/internal/app"
	"github.com/pedroadiaz/meme-coin-analysis/internal/model"
)

// Pipeline is the application surface the handlers call into.
type Pipeline interface {
	Discover(ctx context.Context, maxAge time.Duration, minMentions int) ([]model.RankedToken, error)
	Analyze(ctx context.Context, contractAddress, symbol string) (*app.AnalysisReport, error)
}

// Server serves the JSON API.
type Server struct {
	pipeline           Pipeline
	router             *mux.Router
	defaultMaxAge      time.Duration
	defaultMinMentions int
}

// NewServer builds the router. The defaults apply when a trending request
// omits the query parameters.
func NewServer(pipeline Pipeline, defaultMaxAge time.Duration, defaultMinMentions int) *Server {
	s := &Server{
		pipeline:           pipeline,
		router:             mux.NewRouter(),
		defaultMaxAge:      defaultMaxAge,
		defaultMinMentions: defaultMinMentions,
	}

	s.router.HandleFunc("/api/trending", s.handleTrending).Methods(http.MethodGet)
	s.router.HandleFunc("/api/analyze/{address}", s.handleAnalyze).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

type trendingResponse struct {
	Count  int                 `json:"count"`
	Tokens []model.RankedToken `json:"tokens"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	maxAge := s.defaultMaxAge
	if raw := r.URL.Query().Get("max_age"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "max_age must be a positive duration")
			return
		}
		maxAge = parsed
	}

	minMentions := s.defaultMinMentions
	if raw := r.URL.Query().Get("min_mentions"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "min_mentions must be a non-negative integer")
			return
		}
		minMentions = parsed
	}

	tokens, err := s.pipeline.Discover(r.Context(), maxAge, minMentions)
	if err != nil {
		log.Error().Err(err).Msg("trending scan failed")
		writeError(w, http.StatusBadGateway, "discovery sources unavailable")
		return
	}

	writeJSON(w, http.StatusOK, trendingResponse{Count: len(tokens), Tokens: tokens})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	symbol := r.URL.Query().Get("symbol")

	report, err := s.pipeline.Analyze(r.Context(), address, symbol)
	if err != nil {
		if errors.Is(err, app.ErrInvalidAddress) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("address", address).Msg("analysis failed")
		writeError(w, http.StatusBadGateway, "analysis backends unavailable")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

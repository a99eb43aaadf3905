// Package chi exposes the engine over a chi-routed JSON API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/someday-app/matchengine/internal/domain"
	"github.com/someday-app/matchengine/internal/metrics"
	feeduc "github.com/someday-app/matchengine/internal/usecase/feed"
	healthuc "github.com/someday-app/matchengine/internal/usecase/health"
	matchuc "github.com/someday-app/matchengine/internal/usecase/match"
	profileuc "github.com/someday-app/matchengine/internal/usecase/profile"
	swipeuc "github.com/someday-app/matchengine/internal/usecase/swipe"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server hosts the engine's HTTP handlers.
type Server struct {
	profiles      *profileuc.Service
	swipes        *swipeuc.Service
	matches       *matchuc.Service
	feed          *feeduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	profiles *profileuc.Service,
	swipes *swipeuc.Service,
	matches *matchuc.Service,
	feed *feeduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		profiles: profiles,
		swipes:   swipes,
		matches:  matches,
		feed:     feed,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidVector, http.StatusBadRequest, codeInvalidVector),
		sentinelHandler(domain.ErrDuplicateSwipe, http.StatusConflict, codeDuplicateSwipe),
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeProfileNotFound),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProvider),
	}
	return s
}

// RegisterRoutes mounts all API routes on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Put("/profiles/{id}", s.UpsertProfile)
		r.Get("/profiles/{id}", s.GetProfile)
		r.Get("/profiles/{id}/candidates", s.ListCandidates)
		r.Get("/profiles/{id}/matches", s.ListMatches)
		r.Post("/profiles/{id}/swipes", s.RecordSwipe)
		r.Delete("/profiles/{id}/swipes/last", s.UndoSwipe)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// UpsertProfile handles PUT /profiles/{id}: onboarding completion.
func (s *Server) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req upsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := profileFromUpsert(id, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidVector) {
			s.handleDomainError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	if err := s.profiles.Upsert(r.Context(), &p); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(&p))
}

// GetProfile handles GET /profiles/{id}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.profiles.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(&p))
}

// ListCandidates handles GET /profiles/{id}/candidates.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var limit int
	if err := runtime.BindQueryParameter(
		"form", true, false, "limit", r.URL.Query(), &limit,
	); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid limit parameter")
		return
	}
	if limit < 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must not be negative")
		return
	}

	candidates, err := s.feed.Candidates(r.Context(), id, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]candidateResponse, len(candidates))
	for i, c := range candidates {
		items[i] = candidateToResponse(c)
	}
	writeJSON(w, http.StatusOK, candidateListResponse{Items: items, Total: len(items)})
}

// ListMatches handles GET /profiles/{id}/matches.
func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entries, err := s.matches.List(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]matchEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = matchEntryToResponse(e)
	}
	writeJSON(w, http.StatusOK, matchListResponse{Items: items, Total: len(items)})
}

// RecordSwipe handles POST /profiles/{id}/swipes: records the decision and
// runs match detection on a like.
func (s *Server) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req recordSwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.TargetID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "target_id is required")
		return
	}

	rec, err := s.swipes.Record(r.Context(), id, req.TargetID, req.Liked, req.CompatibilityScore)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	metrics.RecordSwipe(rec.Liked())

	resp := recordSwipeResponse{Swipe: swipeToResponse(rec)}

	m, err := s.matches.Evaluate(r.Context(), rec)
	if err != nil {
		// The swipe is already durable; detection failure must not look like
		// a failed swipe. Surface the swipe and log the detector error.
		s.logger.Error("match evaluation failed", zap.String("swipe_id", rec.ID()), zap.Error(err))
	} else if m != nil {
		metrics.RecordMatch()
		mr := matchToResponse(*m)
		resp.Match = &mr
	}

	writeJSON(w, http.StatusCreated, resp)
}

// UndoSwipe handles DELETE /profiles/{id}/swipes/last: single-level undo.
func (s *Server) UndoSwipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.swipes.UndoLast(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if rec == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	metrics.RecordUndo()

	writeJSON(w, http.StatusOK, swipeToResponse(*rec))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidVector,
		domain.ErrDuplicateSwipe,
		domain.ErrProfileNotFound,
		domain.ErrSwipeNotFound,
		domain.ErrMatchNotFound,
		domain.ErrStoreUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

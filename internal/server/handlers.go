package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/engine"
	"github.com/jonathan/match-engine/internal/types"
)

// errorResponse is the JSON error envelope
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	var cfgErr *types.ConfigurationError
	if errors.As(err, &cfgErr) {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: cfgErr.Error(),
			Kind:  "configuration_error",
			Field: cfgErr.Field,
		})
		return
	}
	s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// handleMatch scores one candidate/job pair.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid JSON body: " + err.Error(),
			Kind:  "configuration_error",
		})
		return
	}
	applyDefaultOptions(&req.Options, s.defaults)

	response, err := s.engine.Match(r.Context(), &req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

// handleMatchBatch scores an ordered list of pairs.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req engine.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid JSON body: " + err.Error(),
			Kind:  "configuration_error",
		})
		return
	}
	applyDefaultOptions(&req.Options, s.defaults)

	result, err := s.engine.MatchBatch(r.Context(), &req)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// handleWeights returns the resolved weight vector for a reason/urgency
// context, for operability inspection.
func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	reason := types.ListeningReason(r.URL.Query().Get("reason"))
	urgency := types.Urgency(r.URL.Query().Get("urgency"))
	adaptive := r.URL.Query().Get("adaptive") != "false"

	resolved, err := s.engine.Weights(reason, urgency, adaptive)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, resolved)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

// applyDefaultOptions fills unset request options from server defaults.
// Booleans are only defaulted upward; an explicit false in the request cannot
// be distinguished from unset and stays false unless the server enables it.
func applyDefaultOptions(opts *types.MatchOptions, defaults types.MatchOptions) {
	if defaults.AdaptiveWeighting {
		opts.AdaptiveWeighting = opts.AdaptiveWeighting || defaults.AdaptiveWeighting
	}
	if defaults.LocationIntelligence {
		opts.LocationIntelligence = opts.LocationIntelligence || defaults.LocationIntelligence
	}
	if opts.PerComponentTimeoutMS == 0 {
		opts.PerComponentTimeoutMS = defaults.PerComponentTimeoutMS
	}
	if opts.GlobalTimeoutMS == 0 {
		opts.GlobalTimeoutMS = defaults.GlobalTimeoutMS
	}
}

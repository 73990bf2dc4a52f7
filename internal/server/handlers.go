package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trevoralpert/FutureFund-sub002/internal/config"
)

// HandleAnalyze accepts an analysis request as JSON and returns the full
// analysis envelope. Validation failures are 400s; an engine-level failure is
// still a 200 with success=false, mirroring the library contract.
func (s *Server) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req config.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.Wrap(err, "failed to decode request body"))
		return
	}

	parser := config.NewRequestParser()
	if err := parser.ValidateRequest(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result := s.engine.ExecuteConsequenceAnalysis(r.Context(), &req.Scenario, &req.FinancialContext, req.Accounts)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Errorf("failed to encode analysis result: %v", err)
	}
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warnf("request rejected: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

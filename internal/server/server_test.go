package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevoralpert/FutureFund-sub002/internal/config"
	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
)

func newTestServer() *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(consequence.NewEngine(), logger, &config.ServerConfig{Port: "0", LogLevel: "error"})
}

const analyzeBody = `{
	"scenario": {
		"name": "kitchen remodel",
		"type": "major_purchase",
		"parameters": {"purchase_amount": 2000}
	},
	"financial_context": {
		"monthly_income": 6000,
		"monthly_expenses": 4000,
		"emergency_fund": 5000
	},
	"accounts": [
		{
			"id": "chk-1",
			"name": "Everyday Checking",
			"type": "checking",
			"current_balance": 4000,
			"is_active": true
		}
	]
}`

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	t.Run("well-formed request returns a full envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(analyzeBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

		var result consequence.AnalysisResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
		require.NotNil(t, result.Result)
		assert.True(t, result.Result.ExecutionFeasible)
		assert.NotEmpty(t, result.Metadata.AnalysisID)
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "failed to decode request body")
	})

	t.Run("invalid request is a 400 with the validation message", func(t *testing.T) {
		payload := `{"scenario": {"name": "x", "type": "major_purchase"}, "accounts": []}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "at least one account is required")
	})

	t.Run("GET on analyze is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

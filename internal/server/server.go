package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/trevoralpert/FutureFund-sub002/internal/config"
	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
)

// Server is the HTTP boundary around the consequence engine. It holds no
// per-request state; the engine is safe for concurrent use.
type Server struct {
	engine *consequence.Engine
	logger *logrus.Logger
	cfg    *config.ServerConfig
}

// New wires the engine behind the HTTP handlers.
func New(engine *consequence.Engine, logger *logrus.Logger, cfg *config.ServerConfig) *Server {
	return &Server{engine: engine, logger: logger, cfg: cfg}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogging)
	r.HandleFunc("/api/v1/analyze", s.HandleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.HandleHealth).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.logger.Infof("starting analysis service on %s", addr)
	return srv.ListenAndServe()
}

// requestLogging tags each request with an id and logs its outcome.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	})
}

package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Server exposes the Prometheus endpoint plus a container health check for
// the daemon.
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// healthResponse is the JSON body for /healthz.
type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// NewServer creates the metrics HTTP server.
func NewServer(port int, path string, serviceName string, logger *logrus.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() {
	s.logger.WithField("addr", s.server.Addr).Info("Starting metrics server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.WithError(err).Error("Metrics server stopped")
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

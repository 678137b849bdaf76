package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	energyerrors "github.com/greenops/energydb/internal/errors"
	"github.com/greenops/energydb/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RecordCounter reports how many records a store holds
type RecordCounter interface {
	Len() int
}

// MetricsServer serves Prometheus metrics and health endpoints via HTTP
type MetricsServer struct {
	httpServer      *http.Server
	metrics         *metrics.Metrics
	stores          map[string]RecordCounter
	logger          *zap.Logger
	nodeID          string
	collectInterval time.Duration
	stopChan        chan struct{}
}

// MetricsServerConfig holds configuration for the metrics server
type MetricsServerConfig struct {
	NodeID          string
	Port            int
	Path            string
	CollectInterval time.Duration
	// Gatherer defaults to the default Prometheus registry
	Gatherer prometheus.Gatherer
}

// NewMetricsServer creates a new metrics server. stores maps a store name to
// the store reported on by the readiness endpoint.
func NewMetricsServer(cfg *MetricsServerConfig, m *metrics.Metrics, stores map[string]RecordCounter, logger *zap.Logger) *MetricsServer {
	mux := http.NewServeMux()

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}
	interval := cfg.CollectInterval
	if interval == 0 {
		interval = 15 * time.Second
	}

	ms := &MetricsServer{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		metrics:         m,
		stores:          stores,
		logger:          logger,
		nodeID:          cfg.NodeID,
		collectInterval: interval,
		stopChan:        make(chan struct{}),
	}

	mux.Handle(path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", ms.healthHandler)
	mux.HandleFunc("/ready", ms.readyHandler)

	return ms
}

// Handler returns the HTTP handler serving all endpoints
func (s *MetricsServer) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the metrics server in the background
func (s *MetricsServer) Start() error {
	s.logger.Info("Starting metrics server", zap.String("addr", s.httpServer.Addr))

	go s.collectSystemMetrics()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Metrics server failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully stops the metrics server
func (s *MetricsServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping metrics server")

	close(s.stopChan)

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return energyerrors.Unavailable("metrics server shutdown failed", err)
	}

	return nil
}

type healthResponse struct {
	Status    string         `json:"status"`
	NodeID    string         `json:"node_id"`
	Timestamp string         `json:"timestamp"`
	Records   map[string]int `json:"records,omitempty"`
}

func (s *MetricsServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		NodeID:    s.nodeID,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// readyHandler reports ready once every store is registered
func (s *MetricsServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if len(s.stores) == 0 {
		s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "not_ready",
			NodeID:    s.nodeID,
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	records := make(map[string]int, len(s.stores))
	for name, store := range s.stores {
		records[name] = store.Len()
	}

	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ready",
		NodeID:    s.nodeID,
		Timestamp: time.Now().Format(time.RFC3339),
		Records:   records,
	})
}

func (s *MetricsServer) writeJSON(w http.ResponseWriter, status int, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// collectSystemMetrics periodically collects process and store metrics
func (s *MetricsServer) collectSystemMetrics() {
	ticker := time.NewTicker(s.collectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.updateSystemMetrics()
		case <-s.stopChan:
			return
		}
	}
}

func (s *MetricsServer) updateSystemMetrics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	s.metrics.UpdateSystemStats(int64(memStats.Alloc), runtime.NumGoroutine())

	for name, store := range s.stores {
		s.metrics.UpdateRecordCount(name, store.Len())
	}
}

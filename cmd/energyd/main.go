package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/greenops/energydb/internal/config"
	"github.com/greenops/energydb/internal/logging"
	"github.com/greenops/energydb/internal/metrics"
	"github.com/greenops/energydb/internal/server"
	"github.com/greenops/energydb/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("config_path", configPath),
		zap.String("node_id", cfg.Server.NodeID),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled))

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(cfg.Server.NodeID, reg)

	storeOpts := []store.Option{store.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		storeOpts = append(storeOpts, store.WithMetrics(m))
	}

	consumption := store.NewConsumptionStore(storeOpts...)
	measures := store.NewMeasureStore(storeOpts...)

	var metricsSrv *server.MetricsServer
	if cfg.Metrics.Enabled {
		metricsSrv = server.NewMetricsServer(
			&server.MetricsServerConfig{
				NodeID:   cfg.Server.NodeID,
				Port:     cfg.Metrics.Port,
				Path:     cfg.Metrics.Path,
				Gatherer: reg,
			},
			m,
			map[string]server.RecordCounter{
				metrics.StoreConsumption: consumption,
				metrics.StoreMeasure:     measures,
			},
			logger,
		)
		if err := metricsSrv.Start(); err != nil {
			logger.Fatal("Failed to start metrics server", zap.Error(err))
		}
	}

	logger.Info("Energy record stores ready", zap.String("node_id", cfg.Server.NodeID))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...",
		zap.Int("consumption_records", consumption.Len()),
		zap.Int("measure_records", measures.Len()))

	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := metricsSrv.Stop(ctx); err != nil {
			logger.Error("Failed to stop metrics server", zap.Error(err))
		}
	}
}

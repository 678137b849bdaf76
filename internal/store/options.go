// Package store holds the in-memory record stores for consumption readings
// and energy-saving measures. Each store owns its records exclusively and
// hands out copies.
package store

import (
	"time"

	"github.com/greenops/energydb/internal/metrics"
	"go.uber.org/zap"
)

// Option configures a store
type Option func(*options)

type options struct {
	clock   func() time.Time
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func defaultOptions() *options {
	return &options{
		clock:  time.Now,
		logger: zap.NewNop(),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithClock sets the time source used for default timestamps
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics enables operation metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

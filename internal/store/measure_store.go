package store

import (
	"sync"

	"github.com/greenops/energydb/internal/metrics"
	"github.com/greenops/energydb/internal/model"
	"go.uber.org/zap"
)

// MeasureStore manages energy-saving measures keyed by measure id.
// Measures are immutable once added; there is no update operation.
type MeasureStore struct {
	measures map[int64]*model.MeasureRecord
	logger   *zap.Logger
	metrics  *metrics.Metrics
	mu       sync.Mutex
}

// NewMeasureStore creates an empty measure store. WithClock has no effect.
func NewMeasureStore(opts ...Option) *MeasureStore {
	o := buildOptions(opts)
	return &MeasureStore{
		measures: make(map[int64]*model.MeasureRecord),
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Add stores a measure, replacing any existing measure with the same id
func (s *MeasureStore) Add(id int64, description string, effectiveness float64) model.MeasureRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	measure := &model.MeasureRecord{
		ID:            id,
		Description:   description,
		Effectiveness: effectiveness,
	}

	result := metrics.ResultOK
	if _, exists := s.measures[id]; exists {
		result = metrics.ResultOverwrite
		s.logger.Debug("Overwriting saving measure", zap.Int64("measure_id", id))
	}
	s.measures[id] = measure
	s.observe(metrics.OpAdd, result)

	return *measure
}

// Get retrieves a measure by id
func (s *MeasureStore) Get(id int64) (model.MeasureRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	measure, found := s.measures[id]
	if !found {
		s.observe(metrics.OpGet, metrics.ResultNotFound)
		return model.MeasureRecord{}, false
	}

	s.observe(metrics.OpGet, metrics.ResultOK)
	return *measure, true
}

// Delete removes a measure. Returns false if the id is not present.
func (s *MeasureStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.measures[id]; !found {
		s.logger.Debug("Saving measure not found for delete", zap.Int64("measure_id", id))
		s.observe(metrics.OpDelete, metrics.ResultNotFound)
		return false
	}

	delete(s.measures, id)
	s.observe(metrics.OpDelete, metrics.ResultOK)
	return true
}

// Len returns the number of stored measures
func (s *MeasureStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.measures)
}

func (s *MeasureStore) observe(op, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(metrics.StoreMeasure, op, result)
	s.metrics.UpdateRecordCount(metrics.StoreMeasure, len(s.measures))
}

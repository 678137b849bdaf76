package store

import (
	"sync"
	"time"

	"github.com/greenops/energydb/internal/metrics"
	"github.com/greenops/energydb/internal/model"
	"go.uber.org/zap"
)

// ConsumptionStore manages energy consumption records keyed by energy id
type ConsumptionStore struct {
	records map[int64]*model.ConsumptionRecord
	clock   func() time.Time
	logger  *zap.Logger
	metrics *metrics.Metrics
	mu      sync.Mutex
}

// NewConsumptionStore creates an empty consumption store
func NewConsumptionStore(opts ...Option) *ConsumptionStore {
	o := buildOptions(opts)
	return &ConsumptionStore{
		records: make(map[int64]*model.ConsumptionRecord),
		clock:   o.clock,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Add stores a new reading timestamped with the current time.
// An existing record with the same id is replaced.
func (s *ConsumptionStore) Add(id int64, facilityID string, value float64) model.ConsumptionRecord {
	return s.AddAt(id, facilityID, value, time.Time{})
}

// AddAt stores a new reading with an explicit timestamp. A zero timestamp
// falls back to the current time.
func (s *ConsumptionStore) AddAt(id int64, facilityID string, value float64, ts time.Time) model.ConsumptionRecord {
	if ts.IsZero() {
		ts = s.clock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &model.ConsumptionRecord{
		ID:         id,
		FacilityID: facilityID,
		Value:      value,
		Timestamp:  ts,
	}

	result := metrics.ResultOK
	if _, exists := s.records[id]; exists {
		result = metrics.ResultOverwrite
		s.logger.Debug("Overwriting consumption record",
			zap.Int64("energy_id", id),
			zap.String("facility_id", facilityID))
	}
	s.records[id] = record
	s.observe(metrics.OpAdd, result)

	return *record
}

// Get retrieves a reading by id. The second return value is false if the
// id is not present.
func (s *ConsumptionStore) Get(id int64) (model.ConsumptionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, found := s.records[id]
	if !found {
		s.observe(metrics.OpGet, metrics.ResultNotFound)
		return model.ConsumptionRecord{}, false
	}

	s.observe(metrics.OpGet, metrics.ResultOK)
	return *record, true
}

// Update overwrites the value of an existing reading. The timestamp is
// left unchanged. Returns false if the id is not present.
func (s *ConsumptionStore) Update(id int64, newValue float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, found := s.records[id]
	if !found {
		s.logger.Debug("Consumption record not found for update", zap.Int64("energy_id", id))
		s.observe(metrics.OpUpdate, metrics.ResultNotFound)
		return false
	}

	record.Value = newValue
	s.observe(metrics.OpUpdate, metrics.ResultOK)
	return true
}

// Delete removes a reading. Returns false if the id is not present.
func (s *ConsumptionStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.records[id]; !found {
		s.logger.Debug("Consumption record not found for delete", zap.Int64("energy_id", id))
		s.observe(metrics.OpDelete, metrics.ResultNotFound)
		return false
	}

	delete(s.records, id)
	s.observe(metrics.OpDelete, metrics.ResultOK)
	return true
}

// Len returns the number of stored readings
func (s *ConsumptionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// observe must be called with mu held
func (s *ConsumptionStore) observe(op, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(metrics.StoreConsumption, op, result)
	s.metrics.UpdateRecordCount(metrics.StoreConsumption, len(s.records))
}

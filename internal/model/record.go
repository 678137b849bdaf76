package model

import "time"

// ConsumptionRecord represents a single energy consumption reading for a data center
type ConsumptionRecord struct {
	ID         int64
	FacilityID string // Data center label
	Value      float64
	Timestamp  time.Time
}

// MeasureRecord represents a suggested energy-saving measure
type MeasureRecord struct {
	ID            int64
	Description   string
	Effectiveness float64 // Fractional reduction, 0.15 = 15%
}

package recorder

import "KappaTrend/internal/model"

// StepSnapshot holds all data for one recorded oscillator update.
type StepSnapshot struct {
	State     model.TrendState
	SeriesLen int
	Source    string
}

// Recorder persists oscillator steps for later analysis.
type Recorder interface {
	RecordStep(snap *StepSnapshot) error
	RecentSteps(limit int) ([]StepSnapshot, error)
	Close() error
}

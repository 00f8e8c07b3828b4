package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordStep(_ *StepSnapshot) error          { return nil }
func (n *NoopRecorder) RecentSteps(_ int) ([]StepSnapshot, error) { return nil, nil }
func (n *NoopRecorder) Close() error                              { return nil }

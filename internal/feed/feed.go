package feed

// Source supplies successive snapshots of an input series. Each call to
// Next returns the series as seen at that step and false once the source
// is exhausted.
type Source interface {
	Name() string
	Next() ([]float64, bool)
}

// Replay steps through a fixed series one point at a time, returning a
// growing prefix on each call. It stands in for a live data feed: the
// engine sees the series exactly as it would have, point by point.
type Replay struct {
	name   string
	values []float64
	pos    int
}

// NewReplay creates a replay source over the given values.
func NewReplay(name string, values []float64) *Replay {
	return &Replay{name: name, values: values}
}

func (r *Replay) Name() string { return r.name }

// Next returns the prefix ending at the next unseen point. The returned
// slice is a copy; callers may retain it.
func (r *Replay) Next() ([]float64, bool) {
	if r.pos >= len(r.values) {
		return nil, false
	}
	r.pos++
	out := make([]float64, r.pos)
	copy(out, r.values[:r.pos])
	return out, true
}

// Remaining reports how many points have not yet been replayed.
func (r *Replay) Remaining() int { return len(r.values) - r.pos }

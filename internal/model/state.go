package model

// CrossSignal is the discrete crossover direction derived from the change
// between two consecutive oscillator values.
type CrossSignal int

const (
	SignalBear    CrossSignal = -1
	SignalNeutral CrossSignal = 0
	SignalBull    CrossSignal = 1
)

func (s CrossSignal) String() string {
	switch s {
	case SignalBear:
		return "BEAR"
	case SignalBull:
		return "BULL"
	default:
		return "NEUTRAL"
	}
}

// TrendState is one oscillator output snapshot. The engine replaces it
// wholesale on every update; fields are never mutated piecemeal.
type TrendState struct {
	Value    float64     // clamped into the configured band
	Phase    float64     // cumulative phase, wrapped into [0, 2π)
	Momentum float64     // Value minus the previous Value
	Signal   CrossSignal
	Epoch    int         // count of non-empty updates applied so far
}

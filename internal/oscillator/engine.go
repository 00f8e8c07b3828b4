package oscillator

import (
	"math"

	"KappaTrend/internal/calculator"
	"KappaTrend/internal/model"
)

// Engine computes the blended kappa/vexel oscillator over successive series
// snapshots. It is not safe for concurrent use; an update replaces several
// fields that must be observed together, so callers needing shared access
// must serialize externally.
type Engine struct {
	cfg     OscillatorConfig
	state   model.TrendState
	prev    float64
	history []float64
}

// NewEngine creates an engine with the default configuration and a neutral
// initial state.
func NewEngine() *Engine {
	return NewEngineWith(DefaultConfig())
}

// NewEngineWith creates an engine with a caller-supplied configuration.
func NewEngineWith(cfg OscillatorConfig) *Engine {
	return &Engine{
		cfg:   cfg,
		state: model.TrendState{Value: NeutralValue},
		prev:  NeutralValue,
	}
}

// Update consumes one snapshot of the input series and replaces the engine
// state wholesale. An empty series is a no-op and returns the current state
// unchanged. Both sub-components read the phase as it stood before this
// update advances it.
func (e *Engine) Update(series []float64) model.TrendState {
	if len(series) == 0 {
		return e.state
	}

	smoothed := calculator.SmoothSeries(series, e.cfg.Smooth)
	kappa := calculator.Kappa(smoothed, e.state.Phase, e.cfg.Period, e.cfg.ConvFactor)
	vexel := calculator.Vexel(smoothed, e.cfg.Period, e.cfg.Lower, e.cfg.Upper)

	combined := e.cfg.DomWeight*kappa + e.cfg.SecWeight*vexel
	value := clamp(combined, e.cfg.Lower, e.cfg.Upper)

	momentum := value - e.prev
	sig := model.SignalNeutral
	threshold := crossoverThreshold * seedNormalizer
	switch {
	case momentum >= threshold:
		sig = model.SignalBull
	case -momentum >= threshold:
		sig = model.SignalBear
	}

	phase := math.Mod(e.state.Phase+e.cfg.PhaseRad, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}

	e.history = append(e.history, value)
	e.prev = value
	e.state = model.TrendState{
		Value:    value,
		Phase:    phase,
		Momentum: momentum,
		Signal:   sig,
		Epoch:    e.state.Epoch + 1,
	}
	return e.state
}

// Signal returns the current crossover signal.
func (e *Engine) Signal() model.CrossSignal { return e.state.Signal }

// Value returns the current clamped oscillator value.
func (e *Engine) Value() float64 { return e.state.Value }

// InOverbought reports whether the value sits within the top margin of the
// band. The margin is derived from the fixed band constants while the
// comparison uses the configured upper bound.
func (e *Engine) InOverbought() bool {
	return e.state.Value >= e.cfg.Upper-bandMargin()
}

// InOversold reports whether the value sits within the bottom margin of
// the band, symmetric to InOverbought.
func (e *Engine) InOversold() bool {
	return e.state.Value <= e.cfg.Lower+bandMargin()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() OscillatorConfig { return e.cfg }

// State returns the current state snapshot.
func (e *Engine) State() model.TrendState { return e.state }

// History returns a copy of all clamped values in insertion order.
func (e *Engine) History() []float64 {
	out := make([]float64, len(e.history))
	copy(out, e.history)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package oscillator

import "math"

// Fixed band constants. These seed DefaultConfig and also anchor the
// overbought/oversold margin: the margin is always 10% of this span even
// when an engine runs with different configured bounds.
const (
	BandUpper = 80.0
	BandLower = 20.0
)

// NeutralValue is the initial oscillator value and the previous-value
// default before the first update.
const NeutralValue = 50.0

// Crossover threshold, scaled to absolute value units (0.0044 × 1000 = 4.4).
const (
	crossoverThreshold = 0.0044
	seedNormalizer     = 1000.0
)

// OscillatorConfig holds the engine's tuning parameters. It is constructed
// once at engine creation and never mutated; there are no setters.
type OscillatorConfig struct {
	Upper      float64 // band upper bound, Upper > Lower > 0
	Lower      float64 // band lower bound
	Period     int     // lookback window for both sub-components
	Smooth     int     // trailing moving-average window
	PhaseRad   float64 // phase increment per update, radians
	ConvFactor float64 // arctangent convergence scaling
	// Blend weights for the kappa and vexel sub-components. Expected to
	// sum to 1.0; the engine does not enforce this, matching the
	// reference behavior.
	DomWeight float64
	SecWeight float64
}

// DefaultConfig returns the fixed tuning used by NewEngine. There is no
// external configuration surface for these values.
func DefaultConfig() OscillatorConfig {
	return OscillatorConfig{
		Upper:      BandUpper,
		Lower:      BandLower,
		Period:     14,
		Smooth:     3,
		PhaseRad:   math.Pi / 16,
		ConvFactor: 1.5,
		DomWeight:  0.6,
		SecWeight:  0.4,
	}
}

// bandMargin is 10% of the fixed constant span, regardless of the bounds an
// engine was configured with.
func bandMargin() float64 {
	return (BandUpper - BandLower) * 0.1
}

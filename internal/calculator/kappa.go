package calculator

import "math"

// Neutral is the value both sub-components fall back to when the series is
// too short to evaluate. No error is returned in that case; degradation is
// deliberately silent.
const Neutral = 50.0

// epsilon replaces exactly-zero denominators in degenerate windows.
const epsilon = 1e-12

// Kappa computes the phase-weighted momentum-ratio sub-component over the
// last period elements of the series, as a value centered at 50 and bounded
// asymptotically in (0, 100). Returns Neutral if the series is shorter
// than period.
func Kappa(series []float64, phase float64, period int, convFactor float64) float64 {
	if len(series) < period {
		return Neutral
	}
	window := series[len(series)-period:]

	var gain, loss float64
	for i := 1; i < len(window); i++ {
		delta := window[i] - window[i-1]
		if delta > 0 {
			gain += delta
		} else {
			loss -= delta // make positive
		}
	}

	t := math.Tan(phase)
	raw := gain - loss*t
	denom := gain + loss*t
	if denom == 0 {
		denom = epsilon
	}
	rs := raw / denom

	return 50 + 50*math.Atan(rs*convFactor)/(math.Pi/2)
}

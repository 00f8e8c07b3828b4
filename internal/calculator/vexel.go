package calculator

// Vexel computes the range-position sub-component: where the last element
// sits within the high/low span of the trailing period-window, rescaled
// into [lower, upper]. Returns Neutral if the series is shorter than
// period. A zero span is replaced by epsilon rather than raising; the last
// element is drawn from the same window, so the position cannot leave [0, 1].
func Vexel(series []float64, period int, lower, upper float64) float64 {
	if len(series) < period {
		return Neutral
	}
	window := series[len(series)-period:]

	high, low := window[0], window[0]
	for _, v := range window[1:] {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}

	span := high - low
	if span == 0 {
		span = epsilon
	}
	pct := (window[len(window)-1] - low) / span
	return lower + pct*(upper-lower)
}

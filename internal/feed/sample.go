package feed

// Vexel7Sample is the 10-point demonstration slice of the Vexel-7 index.
// Shorter than the default lookback, so a single update over it stays at
// the neutral value.
func Vexel7Sample() []float64 {
	return []float64{104.2, 106.8, 105.1, 108.9, 107.3, 110.2, 109.0, 111.5, 112.1, 110.8}
}

// Vexel7Extended is a longer fixed slice of the same index, enough to push
// the oscillator past its lookback and produce non-neutral values during a
// replay.
func Vexel7Extended() []float64 {
	return []float64{
		104.2, 106.8, 105.1, 108.9, 107.3, 110.2, 109.0, 111.5, 112.1, 110.8,
		113.4, 115.0, 114.2, 116.8, 118.1, 117.4, 119.9, 121.3, 120.6, 122.8,
		121.9, 119.5, 117.8, 118.6, 116.2, 114.9, 115.7, 113.1, 111.8, 112.6,
		110.4, 108.7, 109.5, 107.2, 105.9, 106.8, 104.5, 103.2, 104.1, 102.6,
	}
}

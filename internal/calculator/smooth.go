package calculator

// SmoothSeries applies a trailing simple moving average with window n.
// Element i of the result is the mean of input[max(0, i-n+1) .. i], so the
// window grows from 1 to n over the head of the series. If n < 1 or the
// series has fewer than n elements, the input is returned unchanged.
func SmoothSeries(series []float64, n int) []float64 {
	if n < 1 || len(series) < n {
		return series
	}
	out := make([]float64, len(series))
	sum := 0.0
	for i, v := range series {
		sum += v
		width := n
		if i >= n {
			sum -= series[i-n]
		} else {
			width = i + 1
		}
		out[i] = sum / float64(width)
	}
	return out
}

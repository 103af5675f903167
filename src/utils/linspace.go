package utils

// Linspace returns count evenly spaced values from start to stop
// inclusive.
func Linspace(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}

	if count == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(count-1)

	points := make([]float64, count)
	for i := range points {
		points[i] = start + float64(i)*step
	}

	// Pin the endpoint so rounding cannot drift past stop.
	points[count-1] = stop

	return points
}

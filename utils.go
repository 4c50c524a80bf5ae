package htm

import (
	"math"
)

func clampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

//Euclidean distance between two points
func euclidean(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

/*
Gaussian shaped bias peaking at peak when distance is 0. The std deviation
is stdDev * longerSide so the falloff scales with the input extent.
*/
func localityBias(distance, longerSide, peak, stdDev float64) float64 {
	z := distance / (longerSide * stdDev)
	return peak * math.Exp(z*z/-2)
}

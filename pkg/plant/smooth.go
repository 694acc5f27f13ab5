package plant

import "math"

// Smooth reshapes linear progress into an ease-in/ease-out curve:
//
//	Smooth(x) = (sin((x - 1/2) * π) + 1) / 2
//
// It maps [0,1] onto [0,1] monotonically with zero derivative at both
// endpoints, which is what makes growth start and finish gently. Every
// age-dependent dimension in the plant variants goes through Smooth (or
// Smooth of a lagged age), never through the raw age.
func Smooth(x float64) float64 {
	return (math.Sin((x-0.5)*math.Pi) + 1) / 2
}

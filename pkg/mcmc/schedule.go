package mcmc

import "math"

// Schedule maps an iteration number to the acceptance temperature used for
// downhill moves. Temperatures must be positive.
type Schedule interface {
	Temperature(iteration int) float64
}

// ConstantSchedule holds the temperature fixed. T = 1 gives the exact
// Metropolis acceptance probability exp(delta).
type ConstantSchedule struct {
	T float64
}

func (s ConstantSchedule) Temperature(int) float64 { return s.T }

// GeometricSchedule cools the temperature geometrically: Initial * Rate^i,
// never below Min.
type GeometricSchedule struct {
	Initial float64
	Rate    float64
	Min     float64
}

// NewGeometricSchedule returns the annealing schedule tuned to an iteration
// budget: the temperature starts at 5 and decays to one percent of that by
// the final iteration, floored at 0.01.
func NewGeometricSchedule(iterations int) *GeometricSchedule {
	s := &GeometricSchedule{Initial: 5.0, Rate: 1, Min: 0.01}
	if iterations > 0 {
		s.Rate = math.Exp(math.Log(0.01) / float64(iterations))
	}
	return s
}

func (s *GeometricSchedule) Temperature(iteration int) float64 {
	t := s.Initial * math.Pow(s.Rate, float64(iteration))
	if t < s.Min {
		return s.Min
	}
	return t
}

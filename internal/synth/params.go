package synth

import "math"

type IntRange struct {
	Min     int
	Max     int
	Step    int
	Default int
}

type FloatRange struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Generation parameters are cosmetic: they are shown in the form and echoed
// back, but never select a template.
var (
	MaxTokens   = IntRange{Min: 50, Max: 1000, Step: 50, Default: 200}
	Temperature = FloatRange{Min: 0.0, Max: 2.0, Step: 0.1, Default: 0.7}
)

// Clamp bounds v to the range and snaps it down to the nearest step above Min.
func (r IntRange) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	if r.Step > 0 {
		v = r.Min + (v-r.Min)/r.Step*r.Step
	}
	return v
}

// Clamp bounds v to the range and rounds it to the nearest step above Min.
// NaN yields Default.
func (r FloatRange) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	if r.Step > 0 {
		steps := math.Round((v - r.Min) / r.Step)
		v = r.Min + steps*r.Step
		v = math.Round(v*1e6) / 1e6
		if v > r.Max {
			v = r.Max
		}
	}
	return v
}

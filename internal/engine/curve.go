package engine

import "gonum.org/v1/gonum/floats"

// DefaultCurveSamples is the number of points MakeThrustCurve synthesises when
// callers have no preference.
const DefaultCurveSamples = 3

// MakeThrustCurve returns the stored curve unchanged when present. Otherwise
// it synthesises k samples (at least 2) evenly spaced over [0, BurnTime] at
// the constant ThrustAvg.
func (e *Engine) MakeThrustCurve(k int) []Sample {
	if len(e.curve) > 0 {
		return e.ThrustCurve()
	}
	k = max(k, 2)
	burn := e.BurnTime()
	avg := e.ThrustAvg()
	out := make([]Sample, k)
	for i := range out {
		out[i] = Sample{Time: burn * float64(i) / float64(k-1), Thrust: avg}
	}
	return out
}

// CumulativeImpulse returns the impulse delivered up to each sample of
// MakeThrustCurve(k), starting at 0. The last entry equals the curve's
// trapezoid integral.
func (e *Engine) CumulativeImpulse(k int) []float64 {
	c := e.MakeThrustCurve(k)
	if len(c) == 0 {
		return nil
	}
	seg := make([]float64, len(c))
	for i := 1; i < len(c); i++ {
		seg[i] = (c[i].Time - c[i-1].Time) * (c[i].Thrust + c[i-1].Thrust) / 2
	}
	return floats.CumSum(make([]float64, len(c)), seg)
}

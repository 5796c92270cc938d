package engine

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Derived quantities are evaluated in tiers. A method only calls methods of
// a lower tier, so no pair of quantities can recurse into each other:
//
//	tier 1  directBurnTime, knownExhaustVelocity, curveImpulse, ThrustAvg
//	tier 2  PropellantMass
//	tier 3  storedExhaustVelocity, BurnTime
//	tier 4  TotalImpulse
//	tier 5  Isp, ThrustPeak, InitialMass, Length, Diameter
//	tier 6  ExhaustVelocity, MassFraction, Constrained, Classification

// directBurnTime is the burn time known without any derivation.
func (e *Engine) directBurnTime() float64 {
	if len(e.curve) > 0 {
		return e.curve[len(e.curve)-1].Time
	}
	return val(e.ov.BurnTime)
}

// knownExhaustVelocity is V_e from an explicit Isp only.
func (e *Engine) knownExhaustVelocity() float64 {
	return val(e.ov.Isp) * G0
}

// curveImpulse integrates the stored curve with the trapezoid rule.
func (e *Engine) curveImpulse() float64 {
	if len(e.curve) < 2 {
		return 0
	}
	ts := make([]float64, len(e.curve))
	fs := make([]float64, len(e.curve))
	for i, s := range e.curve {
		ts[i] = s.Time
		fs[i] = s.Thrust
	}
	return integrate.Trapezoidal(ts, fs)
}

// ThrustAvg returns the average thrust in N. With a curve it is the curve's
// impulse over its burn time.
func (e *Engine) ThrustAvg() float64 {
	if len(e.curve) > 0 {
		burn := e.curve[len(e.curve)-1].Time
		if burn <= 0 {
			return 0
		}
		return e.curveImpulse() / burn
	}
	return val(e.ov.ThrustAvg)
}

// PropellantMass returns the propellant load in kg.
func (e *Engine) PropellantMass() float64 {
	if e.ov.FuelMass != nil && e.ov.OxidizerMass != nil {
		return *e.ov.FuelMass + *e.ov.OxidizerMass
	}
	ve := e.knownExhaustVelocity()
	avg := e.ThrustAvg()
	burn := e.directBurnTime()
	if ve > 0 && avg > 0 && burn > 0 {
		return avg / ve * burn
	}
	if e.ov.FuelMass != nil {
		return *e.ov.FuelMass
	}
	return val(e.ov.OxidizerMass)
}

// storedExhaustVelocity is V_e from an explicit Isp, else from the total
// impulse override spread over the propellant mass.
func (e *Engine) storedExhaustVelocity() float64 {
	if ve := e.knownExhaustVelocity(); ve > 0 {
		return ve
	}
	if e.ov.TotalImpulse != nil {
		if mp := e.PropellantMass(); mp > 0 {
			return *e.ov.TotalImpulse / mp
		}
	}
	return 0
}

// BurnTime returns the burn time in seconds.
func (e *Engine) BurnTime() float64 {
	if len(e.curve) > 0 {
		return e.curve[len(e.curve)-1].Time
	}
	ve := e.storedExhaustVelocity()
	mp := e.PropellantMass()
	avg := e.ThrustAvg()
	if ve > 0 && mp > 0 && avg > 0 {
		return mp / (avg / ve)
	}
	return val(e.ov.BurnTime)
}

// TotalImpulse returns the total impulse in N·s. A curve with fewer than two
// samples has no area and yields 0.
func (e *Engine) TotalImpulse() float64 {
	if len(e.curve) > 0 {
		return e.curveImpulse()
	}
	if e.ov.TotalImpulse != nil {
		return *e.ov.TotalImpulse
	}
	avg := e.ThrustAvg()
	burn := e.BurnTime()
	if avg > 0 && burn > 0 {
		return avg * burn
	}
	return e.PropellantMass() * e.knownExhaustVelocity()
}

// Isp returns the specific impulse in seconds.
func (e *Engine) Isp() float64 {
	if e.ov.Isp != nil {
		return *e.ov.Isp
	}
	if mp := e.PropellantMass(); mp > 0 {
		return e.TotalImpulse() / (mp * G0)
	}
	return 0
}

// ThrustPeak returns the peak thrust in N.
func (e *Engine) ThrustPeak() float64 {
	if len(e.curve) > 0 {
		fs := make([]float64, len(e.curve))
		for i, s := range e.curve {
			fs[i] = s.Thrust
		}
		return floats.Max(fs)
	}
	if e.ov.ThrustPeak != nil {
		return *e.ov.ThrustPeak
	}
	return e.ThrustAvg()
}

// InitialMass returns the loaded motor mass in kg: propellant, tanks and
// system hardware.
func (e *Engine) InitialMass() float64 {
	total := e.PropellantMass() + val(e.ov.SystemMass)
	for _, t := range e.Tanks {
		total += t.Mass
	}
	return total
}

// Length returns the motor length in metres: the override, else the stacked
// length of all tanks.
func (e *Engine) Length() float64 {
	if e.ov.Length != nil {
		return *e.ov.Length
	}
	total := 0.0
	for _, t := range e.Tanks {
		total += t.Length
	}
	return total
}

// Diameter returns the motor diameter in metres: the override, else the
// widest tank.
func (e *Engine) Diameter() float64 {
	if e.ov.Diameter != nil {
		return *e.ov.Diameter
	}
	widest := 0.0
	for _, t := range e.Tanks {
		widest = max(widest, t.Diameter)
	}
	return widest
}

// ExhaustVelocity returns the effective exhaust velocity in m/s.
func (e *Engine) ExhaustVelocity() float64 {
	return e.Isp() * G0
}

// MassFraction returns the propellant mass fraction in percent.
func (e *Engine) MassFraction() float64 {
	if e.ov.MassFraction != nil {
		return *e.ov.MassFraction
	}
	if mi := e.InitialMass(); mi > 0 {
		return e.PropellantMass() / mi * 100
	}
	return 0
}

// Constrained reports whether enough data is present to derive a positive
// total impulse.
func (e *Engine) Constrained() bool {
	return e.TotalImpulse() > 0
}

// Classification returns the NAR impulse class of the motor.
func (e *Engine) Classification() (Classification, bool) {
	return Classify(e.TotalImpulse())
}

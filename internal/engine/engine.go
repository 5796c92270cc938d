// Package engine models a rocket motor and derives its performance.
//
// An Engine stores only what a source actually provided: explicit overrides,
// tanks and an optional thrust curve. Every performance figure (impulse, burn
// time, propellant mass, Isp, ...) is derived on read from whatever subset is
// present, so a motor described by a datasheet, a measured curve or a design
// target all answer the same questions. Missing data yields 0; callers check
// Constrained before trusting the numbers.
package engine

import (
	"slices"
	"sort"
)

// G0 is standard gravity in m/s².
const G0 = 9.80665

// Tank is a mass-bearing motor part: propellant casing, oxidizer tank or
// other hardware whose mass is not propellant.
type Tank struct {
	Mass     float64 // kg
	Length   float64 // m
	Diameter float64 // m
}

// Sample is one point of a thrust curve. Mass and CG are zero when the
// source did not record them.
type Sample struct {
	Time   float64 // s
	Thrust float64 // N
	Mass   float64 // kg
	CG     float64 // m
}

// Overrides is the set of explicitly stored performance values. A nil field
// is unset. Overrides are source data, never cached derivations.
type Overrides struct {
	Isp          *float64
	Length       *float64
	Diameter     *float64
	TotalImpulse *float64
	ThrustAvg    *float64
	ThrustPeak   *float64
	BurnTime     *float64
	MassFraction *float64
	FuelMass     *float64
	OxidizerMass *float64
	SystemMass   *float64
}

// Engine is a rocket motor.
type Engine struct {
	Name         string
	Manufacturer string
	Comments     string
	// ThroatDiameter and ExitDiameter are nozzle dimensions in metres.
	ThroatDiameter float64
	ExitDiameter   float64
	// Delays lists the available ejection delays as written by the
	// manufacturer, e.g. "3-5-7" or "P" for plugged.
	Delays string
	Tanks  []Tank

	ov    Overrides
	curve []Sample
}

// New returns an engine with no data.
func New(name string) *Engine {
	return &Engine{Name: name}
}

func ptr(v float64) *float64 { return &v }

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func copyPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return ptr(*p)
}

// SetIsp stores the specific impulse in seconds.
func (e *Engine) SetIsp(s float64) { e.ov.Isp = ptr(s) }

// SetExhaustVelocity stores the specific impulse equivalent to an effective
// exhaust velocity in m/s.
func (e *Engine) SetExhaustVelocity(v float64) { e.ov.Isp = ptr(v / G0) }

// SetLength stores the motor length in metres.
func (e *Engine) SetLength(m float64) { e.ov.Length = ptr(m) }

// SetDiameter stores the motor diameter in metres.
func (e *Engine) SetDiameter(m float64) { e.ov.Diameter = ptr(m) }

// SetTotalImpulse stores the total impulse in N·s.
func (e *Engine) SetTotalImpulse(ns float64) { e.ov.TotalImpulse = ptr(ns) }

// SetThrustAvg stores the average thrust in N.
func (e *Engine) SetThrustAvg(n float64) { e.ov.ThrustAvg = ptr(n) }

// SetThrustPeak stores the peak thrust in N.
func (e *Engine) SetThrustPeak(n float64) { e.ov.ThrustPeak = ptr(n) }

// SetBurnTime stores the burn time in seconds.
func (e *Engine) SetBurnTime(s float64) { e.ov.BurnTime = ptr(s) }

// SetMassFraction stores the propellant mass fraction in percent.
func (e *Engine) SetMassFraction(pct float64) { e.ov.MassFraction = ptr(pct) }

// SetFuelMass stores the fuel mass in kg.
func (e *Engine) SetFuelMass(kg float64) { e.ov.FuelMass = ptr(kg) }

// SetOxidizerMass stores the oxidizer mass in kg.
func (e *Engine) SetOxidizerMass(kg float64) { e.ov.OxidizerMass = ptr(kg) }

// SetSystemMass stores a fixed hardware mass in kg, added to the initial mass
// on top of the tanks.
func (e *Engine) SetSystemMass(kg float64) { e.ov.SystemMass = ptr(kg) }

// SetPropellantMass stores a single-component propellant load: fuel is set to
// kg and oxidizer to zero.
func (e *Engine) SetPropellantMass(kg float64) {
	e.ov.FuelMass = ptr(kg)
	e.ov.OxidizerMass = ptr(0)
}

// Overrides returns a copy of the stored override set.
func (e *Engine) Overrides() Overrides { return e.ov.clone() }

// SetOverrides replaces the whole override set. Nil fields clear.
func (e *Engine) SetOverrides(o Overrides) { e.ov = o.clone() }

func (o Overrides) clone() Overrides {
	return Overrides{
		Isp:          copyPtr(o.Isp),
		Length:       copyPtr(o.Length),
		Diameter:     copyPtr(o.Diameter),
		TotalImpulse: copyPtr(o.TotalImpulse),
		ThrustAvg:    copyPtr(o.ThrustAvg),
		ThrustPeak:   copyPtr(o.ThrustPeak),
		BurnTime:     copyPtr(o.BurnTime),
		MassFraction: copyPtr(o.MassFraction),
		FuelMass:     copyPtr(o.FuelMass),
		OxidizerMass: copyPtr(o.OxidizerMass),
		SystemMass:   copyPtr(o.SystemMass),
	}
}

// SetThrustCurve stores a copy of samples sorted by ascending time. Samples
// with equal times keep their relative order. A nil or empty slice removes
// the curve.
func (e *Engine) SetThrustCurve(samples []Sample) {
	if len(samples) == 0 {
		e.curve = nil
		return
	}
	c := slices.Clone(samples)
	sort.SliceStable(c, func(i, j int) bool { return c[i].Time < c[j].Time })
	e.curve = c
}

// AddSample inserts s after every stored sample with a time not greater
// than s.Time.
func (e *Engine) AddSample(s Sample) {
	i := sort.Search(len(e.curve), func(i int) bool { return e.curve[i].Time > s.Time })
	e.curve = slices.Insert(e.curve, i, s)
}

// ThrustCurve returns a copy of the stored curve, or nil.
func (e *Engine) ThrustCurve() []Sample {
	return slices.Clone(e.curve)
}

// HasThrustCurve reports whether a curve is stored. A stored curve is
// authoritative for impulse, burn time, peak and average thrust.
func (e *Engine) HasThrustCurve() bool { return len(e.curve) > 0 }

// AddTank appends a tank.
func (e *Engine) AddTank(t Tank) {
	e.Tanks = append(e.Tanks, t)
}

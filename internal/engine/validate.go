package engine

import "errors"

// Sentinel errors returned inside ValidationError.
var (
	// ErrMissingName indicates a motor with no name.
	ErrMissingName = errors.New("motor name is empty")
	// ErrNegativeValue indicates a stored quantity below zero.
	ErrNegativeValue = errors.New("value must not be negative")
)

// ValidationCategory classifies a validation error.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is empty.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatNegative indicates a stored quantity below zero.
	ValCatNegative ValidationCategory = "negative_value"
)

// ValidationError records a validation problem on a motor field.
type ValidationError struct {
	Category ValidationCategory
	Field    string
	Err      error
}

// Error returns the field and the underlying error.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the stored data of a motor. Derived values are not
// checked; an unconstrained motor is valid.
func Validate(e *Engine) []ValidationError {
	var errs []ValidationError
	if e.Name == "" {
		errs = append(errs, ValidationError{Category: ValCatMissingField, Field: "name", Err: ErrMissingName})
	}
	neg := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, ValidationError{Category: ValCatNegative, Field: field, Err: ErrNegativeValue})
		}
	}
	o := e.ov
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"isp", o.Isp}, {"length", o.Length}, {"diameter", o.Diameter},
		{"total_impulse", o.TotalImpulse}, {"thrust_avg", o.ThrustAvg},
		{"thrust_peak", o.ThrustPeak}, {"burn_time", o.BurnTime},
		{"mass_fraction", o.MassFraction}, {"fuel_mass", o.FuelMass},
		{"oxidizer_mass", o.OxidizerMass}, {"system_mass", o.SystemMass},
	} {
		neg(f.name, val(f.v))
	}
	neg("throat_diameter", e.ThroatDiameter)
	neg("exit_diameter", e.ExitDiameter)
	for _, t := range e.Tanks {
		neg("tank.mass", t.Mass)
		neg("tank.length", t.Length)
		neg("tank.diameter", t.Diameter)
	}
	for _, s := range e.curve {
		neg("curve.time", s.Time)
		neg("curve.thrust", s.Thrust)
	}
	return errs
}

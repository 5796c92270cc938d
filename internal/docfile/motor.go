package docfile

import "github.com/papapumpkin/rocketdoc/internal/engine"

type motorDTO struct {
	Name           string       `toml:"name" yaml:"name" msgpack:"name"`
	Manufacturer   string       `toml:"manufacturer,omitempty" yaml:"manufacturer,omitempty" msgpack:"manufacturer,omitempty"`
	Comments       string       `toml:"comments,omitempty" yaml:"comments,omitempty" msgpack:"comments,omitempty"`
	Delays         string       `toml:"delays,omitempty" yaml:"delays,omitempty" msgpack:"delays,omitempty"`
	ThroatDiameter float64      `toml:"throat_diameter,omitempty" yaml:"throat_diameter,omitempty" msgpack:"throat_diameter,omitempty"`
	ExitDiameter   float64      `toml:"exit_diameter,omitempty" yaml:"exit_diameter,omitempty" msgpack:"exit_diameter,omitempty"`
	Overrides      overridesDTO `toml:"overrides" yaml:"overrides" msgpack:"overrides"`
	Tanks          []tankDTO    `toml:"tanks,omitempty" yaml:"tanks,omitempty" msgpack:"tanks,omitempty"`
	Curve          []sampleDTO  `toml:"curve,omitempty" yaml:"curve,omitempty" msgpack:"curve,omitempty"`
	Derived        *derivedDTO  `toml:"derived,omitempty" yaml:"derived,omitempty" msgpack:"derived,omitempty"`
}

type overridesDTO struct {
	Isp          *float64 `toml:"isp,omitempty" yaml:"isp,omitempty" msgpack:"isp,omitempty"`
	Length       *float64 `toml:"length,omitempty" yaml:"length,omitempty" msgpack:"length,omitempty"`
	Diameter     *float64 `toml:"diameter,omitempty" yaml:"diameter,omitempty" msgpack:"diameter,omitempty"`
	TotalImpulse *float64 `toml:"total_impulse,omitempty" yaml:"total_impulse,omitempty" msgpack:"total_impulse,omitempty"`
	ThrustAvg    *float64 `toml:"thrust_avg,omitempty" yaml:"thrust_avg,omitempty" msgpack:"thrust_avg,omitempty"`
	ThrustPeak   *float64 `toml:"thrust_peak,omitempty" yaml:"thrust_peak,omitempty" msgpack:"thrust_peak,omitempty"`
	BurnTime     *float64 `toml:"burn_time,omitempty" yaml:"burn_time,omitempty" msgpack:"burn_time,omitempty"`
	MassFraction *float64 `toml:"mass_fraction,omitempty" yaml:"mass_fraction,omitempty" msgpack:"mass_fraction,omitempty"`
	FuelMass     *float64 `toml:"fuel_mass,omitempty" yaml:"fuel_mass,omitempty" msgpack:"fuel_mass,omitempty"`
	OxidizerMass *float64 `toml:"oxidizer_mass,omitempty" yaml:"oxidizer_mass,omitempty" msgpack:"oxidizer_mass,omitempty"`
	SystemMass   *float64 `toml:"system_mass,omitempty" yaml:"system_mass,omitempty" msgpack:"system_mass,omitempty"`
}

type tankDTO struct {
	Mass     float64 `toml:"mass" yaml:"mass" msgpack:"mass"`
	Length   float64 `toml:"length" yaml:"length" msgpack:"length"`
	Diameter float64 `toml:"diameter" yaml:"diameter" msgpack:"diameter"`
}

type sampleDTO struct {
	Time   float64 `toml:"t" yaml:"t" msgpack:"t"`
	Thrust float64 `toml:"thrust" yaml:"thrust" msgpack:"thrust"`
	Mass   float64 `toml:"mass,omitempty" yaml:"mass,omitempty" msgpack:"mass,omitempty"`
	CG     float64 `toml:"cg,omitempty" yaml:"cg,omitempty" msgpack:"cg,omitempty"`
}

// derivedDTO is written for readers and never decoded into the model.
type derivedDTO struct {
	TotalImpulse   float64 `toml:"total_impulse" yaml:"total_impulse" msgpack:"total_impulse"`
	BurnTime       float64 `toml:"burn_time" yaml:"burn_time" msgpack:"burn_time"`
	ThrustAvg      float64 `toml:"thrust_avg" yaml:"thrust_avg" msgpack:"thrust_avg"`
	ThrustPeak     float64 `toml:"thrust_peak" yaml:"thrust_peak" msgpack:"thrust_peak"`
	Isp            float64 `toml:"isp" yaml:"isp" msgpack:"isp"`
	PropellantMass float64 `toml:"propellant_mass" yaml:"propellant_mass" msgpack:"propellant_mass"`
	InitialMass    float64 `toml:"initial_mass" yaml:"initial_mass" msgpack:"initial_mass"`
	Class          string  `toml:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`
}

func motorToDTO(e *engine.Engine) *motorDTO {
	o := e.Overrides()
	m := &motorDTO{
		Name:           e.Name,
		Manufacturer:   e.Manufacturer,
		Comments:       e.Comments,
		Delays:         e.Delays,
		ThroatDiameter: e.ThroatDiameter,
		ExitDiameter:   e.ExitDiameter,
		Overrides: overridesDTO{
			Isp:          o.Isp,
			Length:       o.Length,
			Diameter:     o.Diameter,
			TotalImpulse: o.TotalImpulse,
			ThrustAvg:    o.ThrustAvg,
			ThrustPeak:   o.ThrustPeak,
			BurnTime:     o.BurnTime,
			MassFraction: o.MassFraction,
			FuelMass:     o.FuelMass,
			OxidizerMass: o.OxidizerMass,
			SystemMass:   o.SystemMass,
		},
		Derived: &derivedDTO{
			TotalImpulse:   e.TotalImpulse(),
			BurnTime:       e.BurnTime(),
			ThrustAvg:      e.ThrustAvg(),
			ThrustPeak:     e.ThrustPeak(),
			Isp:            e.Isp(),
			PropellantMass: e.PropellantMass(),
			InitialMass:    e.InitialMass(),
		},
	}
	if c, ok := e.Classification(); ok {
		m.Derived.Class = c.Code
	}
	for _, t := range e.Tanks {
		m.Tanks = append(m.Tanks, tankDTO(t))
	}
	for _, s := range e.ThrustCurve() {
		m.Curve = append(m.Curve, sampleDTO(s))
	}
	return m
}

func (m *motorDTO) toEngine() *engine.Engine {
	e := engine.New(m.Name)
	e.Manufacturer = m.Manufacturer
	e.Comments = m.Comments
	e.Delays = m.Delays
	e.ThroatDiameter = m.ThroatDiameter
	e.ExitDiameter = m.ExitDiameter
	o := m.Overrides
	e.SetOverrides(engine.Overrides{
		Isp:          o.Isp,
		Length:       o.Length,
		Diameter:     o.Diameter,
		TotalImpulse: o.TotalImpulse,
		ThrustAvg:    o.ThrustAvg,
		ThrustPeak:   o.ThrustPeak,
		BurnTime:     o.BurnTime,
		MassFraction: o.MassFraction,
		FuelMass:     o.FuelMass,
		OxidizerMass: o.OxidizerMass,
		SystemMass:   o.SystemMass,
	})
	for _, t := range m.Tanks {
		e.AddTank(engine.Tank(t))
	}
	if len(m.Curve) > 0 {
		curve := make([]engine.Sample, 0, len(m.Curve))
		for _, s := range m.Curve {
			curve = append(curve, engine.Sample(s))
		}
		e.SetThrustCurve(curve)
	}
	return e
}

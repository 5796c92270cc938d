package document

// Stage is an ordered assembly of root-level components. Assembly order is
// physical order, tip first. A stage carries no mass of its own.
type Stage struct {
	Name       string
	Components []Component
}

// NewStage returns an empty stage.
func NewStage(name string) *Stage {
	return &Stage{Name: name}
}

// Add appends components in order. Nil entries are ignored.
func (s *Stage) Add(cs ...Component) {
	for _, c := range cs {
		if c != nil {
			s.Components = append(s.Components, c)
		}
	}
}

// Mass returns the summed mass of every component in the stage.
func (s *Stage) Mass() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.Mass()
	}
	return total
}

// Length returns the summed length of the root-level components.
func (s *Stage) Length() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.Common().Length
	}
	return total
}

// Rocket is the document root: a named, ordered list of stages (top stage
// first) plus opaque aerodynamic data carried through for writers.
type Rocket struct {
	Name   string
	Stages []*Stage
	// AeroProperties holds aerodynamic coefficients keyed by name. The model
	// does not interpret them.
	AeroProperties map[string]any
}

// NewRocket returns a rocket with no stages.
func NewRocket(name string) *Rocket {
	return &Rocket{Name: name, AeroProperties: make(map[string]any)}
}

// AddStage appends a stage below the existing ones.
func (r *Rocket) AddStage(s *Stage) {
	if s != nil {
		r.Stages = append(r.Stages, s)
	}
}

// Mass returns the summed mass of all stages.
func (r *Rocket) Mass() float64 {
	total := 0.0
	for _, s := range r.Stages {
		total += s.Mass()
	}
	return total
}

// Length returns the length of the top stage, or 0 with no stages.
func (r *Rocket) Length() float64 {
	if len(r.Stages) == 0 {
		return 0
	}
	return r.Stages[0].Length()
}

// MaxDiameter returns the largest component diameter anywhere in the rocket.
func (r *Rocket) MaxDiameter() float64 {
	widest := 0.0
	for _, s := range r.Stages {
		for _, c := range s.Components {
			_ = Walk(c, func(c Component, _ int) error {
				widest = max(widest, c.Common().Diameter)
				return nil
			})
		}
	}
	return widest
}

package document

// Mass is a point mass (avionics, ballast, recovery gear) carried inside a
// parent component.
type Mass struct {
	Base
	// Position is the axial offset from the parent's front, in metres.
	Position float64
}

// NewMass returns a point mass.
func NewMass(name string, mass float64) *Mass {
	return &Mass{Base: Base{Name: name, ComponentMass: mass}}
}

// Kind returns KindMass.
func (m *Mass) Kind() Kind { return KindMass }

// Accept calls v.VisitMass.
func (m *Mass) Accept(v Visitor) error { return v.VisitMass(m) }

// Clone returns a deep copy.
func (m *Mass) Clone() Component {
	out := *m
	out.Base = m.cloneBase()
	return &out
}

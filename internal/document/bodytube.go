package document

import "math"

// Bodytube is a cylindrical airframe section.
type Bodytube struct {
	Base
	// Thickness is the wall thickness in metres.
	Thickness float64
	// SurfaceRoughness is in micrometres.
	SurfaceRoughness float64

	density    float64
	hasDensity bool
}

// NewBodytube returns a tube with the given own mass and length.
func NewBodytube(name string, mass, length float64) *Bodytube {
	return &Bodytube{Base: Base{Name: name, ComponentMass: mass, Length: length}}
}

// Kind returns KindBodytube.
func (b *Bodytube) Kind() Kind { return KindBodytube }

// Accept calls v.VisitBodytube.
func (b *Bodytube) Accept(v Visitor) error { return v.VisitBodytube(b) }

// Clone returns a deep copy.
func (b *Bodytube) Clone() Component {
	out := *b
	out.Base = b.cloneBase()
	return &out
}

// SetDensity records an explicit material density in kg/m³.
func (b *Bodytube) SetDensity(kgPerM3 float64) {
	b.density = kgPerM3
	b.hasDensity = true
}

// ClearDensity removes the density override.
func (b *Bodytube) ClearDensity() {
	b.density = 0
	b.hasDensity = false
}

// HasDensity reports whether a density override is set.
func (b *Bodytube) HasDensity() bool { return b.hasDensity }

// DensityOverride returns the stored override, if any.
func (b *Bodytube) DensityOverride() (float64, bool) {
	return b.density, b.hasDensity
}

// ShellVolume returns the material volume of the tube wall in m³. The inner
// radius is clamped at zero, so a wall thicker than the radius is a solid rod.
func (b *Bodytube) ShellVolume() float64 {
	ro := b.Diameter / 2
	if ro <= 0 || b.Length <= 0 {
		return 0
	}
	ri := math.Max(ro-b.Thickness, 0)
	return math.Pi * b.Length * (ro*ro - ri*ri)
}

// Density returns the material density in kg/m³.
//
// An override wins while the tube has no own mass. Otherwise a tube with a
// wall thickness derives density from its mass and shell volume (zero volume
// yields 0). Failing both, the override is returned if set, else 0.
func (b *Bodytube) Density() float64 {
	if b.hasDensity && b.ComponentMass == 0 {
		return b.density
	}
	if b.Thickness > 0 {
		v := b.ShellVolume()
		if v <= 0 {
			return 0
		}
		return b.ComponentMass / v
	}
	if b.hasDensity {
		return b.density
	}
	return 0
}

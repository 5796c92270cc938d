package document

import (
	"fmt"
	"strings"
)

// NoseShape is the nosecone profile family.
type NoseShape int

// Nose profile families.
const (
	ShapeCone NoseShape = iota
	ShapeSphereBluntedCone
	ShapeBiconic
	ShapeTangentOgive
	ShapeSecantOgive
	ShapeSphereBluntedOgive
	ShapeElliptical
	ShapeParabolic
	ShapeVonKarman
	ShapePowerSeries
	ShapeHaackSeries
)

var noseShapeNames = [...]string{
	ShapeCone:               "CONE",
	ShapeSphereBluntedCone:  "SPHERE_BLUNTED_CONE",
	ShapeBiconic:            "BICONIC",
	ShapeTangentOgive:       "TANGENT_OGIVE",
	ShapeSecantOgive:        "SECANT_OGIVE",
	ShapeSphereBluntedOgive: "SPHERE_BLUNTED_OGIVE",
	ShapeElliptical:         "ELLIPTICAL",
	ShapeParabolic:          "PARABOLIC",
	ShapeVonKarman:          "VONKARMAN",
	ShapePowerSeries:        "POWER_SERIES",
	ShapeHaackSeries:        "HAACK_SERIES",
}

// String returns the upper-case shape name.
func (s NoseShape) String() string {
	if s >= 0 && int(s) < len(noseShapeNames) {
		return noseShapeNames[s]
	}
	return fmt.Sprintf("NoseShape(%d)", int(s))
}

// ParseNoseShape parses a shape name. Matching ignores case, and spaces or
// hyphens are accepted in place of underscores.
func ParseNoseShape(s string) (NoseShape, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	for i, n := range noseShapeNames {
		if n == name {
			return NoseShape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Nosecone is the forward-most aerodynamic shell.
type Nosecone struct {
	Base
	Shape NoseShape
	// ShapeParameter is the unitless profile parameter (power-series exponent, Haack C, ...).
	ShapeParameter float64
	// Thickness is the wall thickness in metres.
	Thickness float64
	// SurfaceRoughness is in micrometres.
	SurfaceRoughness float64
}

// NewNosecone returns a nosecone named "Nosecone".
func NewNosecone(shape NoseShape, shapeParameter, mass, length float64) *Nosecone {
	return &Nosecone{
		Base:           Base{Name: "Nosecone", ComponentMass: mass, Length: length},
		Shape:          shape,
		ShapeParameter: shapeParameter,
	}
}

// Kind returns KindNosecone.
func (n *Nosecone) Kind() Kind { return KindNosecone }

// Accept calls v.VisitNosecone.
func (n *Nosecone) Accept(v Visitor) error { return v.VisitNosecone(n) }

// Clone returns a deep copy.
func (n *Nosecone) Clone() Component {
	out := *n
	out.Base = n.cloneBase()
	return &out
}

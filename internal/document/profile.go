package document

import "math"

// Radius returns the nosecone radius at distance x from the tip, for
// 0 ≤ x ≤ Length. The base radius is Diameter/2. Blunted and biconic shapes
// are approximated by their sharp parent profile.
func (n *Nosecone) Radius(x float64) float64 {
	r := n.Diameter / 2
	l := n.Length
	if l <= 0 || r <= 0 {
		return 0
	}
	x = min(max(x, 0), l)
	f := x / l

	switch n.Shape {
	case ShapeTangentOgive, ShapeSecantOgive, ShapeSphereBluntedOgive:
		rho := (r*r + l*l) / (2 * r)
		return math.Sqrt(rho*rho-(l-x)*(l-x)) + r - rho
	case ShapeElliptical:
		return r * math.Sqrt(1-(1-f)*(1-f))
	case ShapeParabolic:
		k := n.ShapeParameter
		if k >= 2 {
			return r * f
		}
		return r * (2*f - k*f*f) / (2 - k)
	case ShapePowerSeries:
		p := n.ShapeParameter
		if p <= 0 {
			p = 0.5
		}
		return r * math.Pow(f, p)
	case ShapeHaackSeries, ShapeVonKarman:
		c := n.ShapeParameter
		if n.Shape == ShapeVonKarman {
			c = 0
		}
		theta := math.Acos(1 - 2*f)
		s := math.Sin(theta)
		return r / math.Sqrt(math.Pi) * math.Sqrt(max(theta-math.Sin(2*theta)/2+c*s*s*s, 0))
	default:
		return r * f
	}
}

package formats

// Conversion factors to SI.
const (
	Millimetre = 1e-3
	Gram       = 1e-3
	Micrometre = 1e-6
	Inch       = 0.0254
	Foot       = 0.3048
	Pound      = 0.45359237
	// PoundForce is one lbf in newtons.
	PoundForce = 4.4482216152605
	Slug       = 14.593902937
)

// MMToM converts millimetres to metres.
func MMToM(mm float64) float64 { return mm * Millimetre }

// MToMM converts metres to millimetres.
func MToMM(m float64) float64 { return m / Millimetre }

// GToKg converts grams to kilograms.
func GToKg(g float64) float64 { return g * Gram }

// KgToG converts kilograms to grams.
func KgToG(kg float64) float64 { return kg / Gram }

// KgToLb converts kilograms to pounds mass.
func KgToLb(kg float64) float64 { return kg / Pound }

// NToLbf converts newtons to pounds force.
func NToLbf(n float64) float64 { return n / PoundForce }

// MToIn converts metres to inches.
func MToIn(m float64) float64 { return m / Inch }

// M2ToFt2 converts square metres to square feet.
func M2ToFt2(m2 float64) float64 { return m2 / (Foot * Foot) }

// KgM2ToSlugFt2 converts a moment of inertia from kg·m² to slug·ft².
func KgM2ToSlugFt2(v float64) float64 { return v / (Slug * Foot * Foot) }

package engine

import "math"

// Classification is a NAR motor impulse class.
type Classification struct {
	// Code is the class letter(s): "1/8A" … "A", "B" … "Z", then "AA", "AB", ...
	Code string
	// Percent is how far the impulse sits into its class, 0 at the lower bound.
	Percent float64
	// Min and Max bound the class in N·s.
	Min float64
	Max float64
}

// Classify returns the NAR class for a total impulse in N·s. Each class spans
// a doubling of impulse starting from 2.5 N·s for class B. Non-positive
// impulse has no class.
func Classify(impulse float64) (Classification, bool) {
	if !(impulse > 0) || math.IsInf(impulse, 0) {
		return Classification{}, false
	}
	idx := int(math.Floor(math.Log2(impulse / 2.5)))
	lower := 2.5 * math.Pow(2, float64(idx))
	c := Classification{Min: lower, Max: 2 * lower}
	switch {
	case idx >= 0:
		c.Code = classLetters(idx)
	case idx == -1:
		c.Code = "A"
	case idx == -2:
		c.Code = "1/2A"
	case idx == -3:
		c.Code = "1/4A"
	default:
		c.Code = "1/8A"
		c.Min = 0
		c.Max = 2.5 / 8
	}
	c.Percent = (impulse - c.Min) / (c.Max - c.Min) * 100
	return c, true
}

// classLetters maps a class index (0 = B) to its letter code. Letters count
// in bijective base 26 like spreadsheet columns: Z, AA, AB, ... ZZ, AAA.
func classLetters(idx int) string {
	var out []rune
	for n := idx + 2; n > 0; n = (n - 1) / 26 {
		out = append([]rune{rune('A' + (n-1)%26)}, out...)
	}
	return string(out)
}

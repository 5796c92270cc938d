package document

import (
	"fmt"
	"math"
)

// DefaultSweepAngle is the sweep angle, in degrees, of a fin built by NewFin.
const DefaultSweepAngle = 45.0

// Fin is a single trapezoidal fin. Sweep is stored either as a linear
// distance or as an angle; whichever was set last is authoritative and the
// other is derived from it through the span.
type Fin struct {
	Base
	// Root and Tip are chord lengths in metres.
	Root float64
	Tip  float64
	// Span is the fin height perpendicular to the body, in metres.
	Span float64

	sweep      float64
	hasSweep   bool
	sweepAngle float64
}

// NewFin returns a fin with the default sweep angle.
func NewFin(name string, root, tip, span float64) *Fin {
	return &Fin{
		Base:       Base{Name: name, Length: root},
		Root:       root,
		Tip:        tip,
		Span:       span,
		sweepAngle: DefaultSweepAngle,
	}
}

// Kind returns KindFin.
func (f *Fin) Kind() Kind { return KindFin }

// Accept calls v.VisitFin.
func (f *Fin) Accept(v Visitor) error { return v.VisitFin(f) }

// Clone returns a deep copy.
func (f *Fin) Clone() Component {
	out := *f
	out.Base = f.cloneBase()
	return &out
}

// SetSweep stores a linear sweep distance in metres.
func (f *Fin) SetSweep(d float64) {
	f.sweep = d
	f.hasSweep = true
}

// HasLinearSweep reports whether the sweep is stored as a distance.
func (f *Fin) HasLinearSweep() bool { return f.hasSweep }

// Sweep returns the leading-edge sweep distance in metres.
func (f *Fin) Sweep() float64 {
	if f.hasSweep {
		return f.sweep
	}
	return f.Span * math.Tan(f.sweepAngle*math.Pi/180)
}

// SetSweepAngle stores the sweep as an angle in degrees and clears any
// linear sweep.
func (f *Fin) SetSweepAngle(deg float64) {
	f.sweepAngle = deg
	f.sweep = 0
	f.hasSweep = false
}

// SweepAngle returns the leading-edge sweep angle in degrees. A linear sweep
// on a fin with no span has no defined angle and yields ErrZeroSpan.
func (f *Fin) SweepAngle() (float64, error) {
	if !f.hasSweep {
		return f.sweepAngle, nil
	}
	if f.Span == 0 {
		return 0, ErrZeroSpan
	}
	return math.Atan(f.sweep/f.Span) * 180 / math.Pi, nil
}

// Area returns the planform area of the trapezoid in m².
func (f *Fin) Area() float64 {
	return (f.Root + f.Tip) / 2 * f.Span
}

// Finset is a ring of identical fins. Its children are generated from a
// prototype fin and rebuilt whenever the prototype or the count changes.
type Finset struct {
	Base
	fin   *Fin
	count int
}

// NewFinset returns a finset holding count copies of fin. A negative count is
// treated as zero.
func NewFinset(name string, fin *Fin, count int) *Finset {
	fs := &Finset{Base: Base{Name: name}}
	fs.fin = fin
	fs.count = max(count, 0)
	fs.regenerate()
	return fs
}

// Kind returns KindFinset.
func (fs *Finset) Kind() Kind { return KindFinset }

// Accept calls v.VisitFinset.
func (fs *Finset) Accept(v Visitor) error { return v.VisitFinset(fs) }

// Clone returns a deep copy, including the prototype.
func (fs *Finset) Clone() Component {
	out := *fs
	out.Base = fs.cloneBase()
	if fs.fin != nil {
		out.fin = fs.fin.Clone().(*Fin)
	}
	return &out
}

// Fin returns the prototype fin.
func (fs *Finset) Fin() *Fin { return fs.fin }

// Count returns the number of generated fins.
func (fs *Finset) Count() int { return fs.count }

// SetFin replaces the prototype and regenerates the fins.
func (fs *Finset) SetFin(f *Fin) {
	fs.fin = f
	fs.regenerate()
}

// SetCount changes the fin count and regenerates the fins.
func (fs *Finset) SetCount(n int) {
	fs.count = max(n, 0)
	fs.regenerate()
}

// Fins returns the generated fins in order.
func (fs *Finset) Fins() []*Fin {
	out := make([]*Fin, 0, len(fs.children))
	for _, c := range fs.children {
		if f, ok := c.(*Fin); ok {
			out = append(out, f)
		}
	}
	return out
}

func (fs *Finset) regenerate() {
	fs.children = make([]Component, 0, fs.count)
	if fs.fin == nil {
		return
	}
	for i := range fs.count {
		f := fs.fin.Clone().(*Fin)
		f.Name = fmt.Sprintf("Fin %d", i+1)
		fs.children = append(fs.children, f)
	}
}

// Package document holds the vendor-neutral rocket document model: rockets,
// stages and the recursive component tree whose masses aggregate bottom-up.
//
// Derived values (mass, length, density, sweep angle) are recomputed from the
// stored fields on every call. Nothing is cached, so a tree may be edited freely
// after it has been assembled.
package document

import (
	"fmt"
	"slices"
	"strings"
)

// Kind discriminates the closed set of component variants.
type Kind int

// Component variants.
const (
	KindNosecone Kind = iota
	KindBodytube
	KindMass
	KindFin
	KindFinset
)

var kindNames = [...]string{
	KindNosecone: "nosecone",
	KindBodytube: "bodytube",
	KindMass:     "mass",
	KindFin:      "fin",
	KindFinset:   "finset",
}

// String returns the lower-case variant name used by document codecs.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a variant name back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Color is an RGB colour as stored by airframe design tools.
type Color struct {
	R, G, B uint8
}

// Component is a node of the airframe tree. The variant set is closed:
// Nosecone, Bodytube, Mass, Fin and Finset. Callers branch on Kind or
// implement Visitor rather than inspecting concrete types.
type Component interface {
	// Kind reports the concrete variant.
	Kind() Kind
	// Common exposes the fields shared by every variant.
	Common() *Base
	// Mass is the own mass plus the recursively summed mass of all descendants.
	Mass() float64
	// Children returns the direct sub-components in stored order.
	Children() []Component
	// Clone returns an independent deep copy.
	Clone() Component
	// Accept dispatches to the Visitor method for the concrete variant.
	Accept(v Visitor) error
}

// Base carries the fields every component variant shares. Variants embed it.
type Base struct {
	Name string
	// ComponentMass is the component's own mass in kg, excluding children.
	ComponentMass float64
	// Length and Diameter are in metres; zero means unknown.
	Length       float64
	Diameter     float64
	Color        *Color
	MaterialName string
	Tags         Tags

	children []Component
}

// Common returns b itself so that every embedding variant satisfies Component.
func (b *Base) Common() *Base { return b }

// Mass returns the own mass plus the mass of every descendant.
func (b *Base) Mass() float64 {
	total := b.ComponentMass
	for _, c := range b.children {
		total += c.Mass()
	}
	return total
}

// Children returns a copy of the direct sub-component list in stored order.
func (b *Base) Children() []Component {
	return slices.Clone(b.children)
}

// Add appends sub-components in order. Nil entries are ignored.
func (b *Base) Add(cs ...Component) {
	for _, c := range cs {
		if c != nil {
			b.children = append(b.children, c)
		}
	}
}

// SetChildren replaces the sub-component list.
func (b *Base) SetChildren(cs []Component) {
	b.children = nil
	b.Add(cs...)
}

// AddTag records tag under class. Duplicates are kept.
func (b *Base) AddTag(class TagClass, tag string) {
	b.Tags.Add(class, tag)
}

// cloneBase deep-copies the shared fields, including every descendant.
func (b *Base) cloneBase() Base {
	out := *b
	if b.Color != nil {
		c := *b.Color
		out.Color = &c
	}
	out.Tags = b.Tags.Clone()
	out.children = make([]Component, 0, len(b.children))
	for _, c := range b.children {
		out.children = append(out.children, c.Clone())
	}
	return out
}

// Walk calls fn for c and then for every descendant, depth first, in stored
// order. depth is 0 for c. A non-nil error from fn stops the walk.
func Walk(c Component, fn func(c Component, depth int) error) error {
	return walk(c, 0, fn)
}

func walk(c Component, depth int, fn func(Component, int) error) error {
	if c == nil {
		return nil
	}
	if err := fn(c, depth); err != nil {
		return err
	}
	for _, child := range c.Common().children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

package openrocket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

// loader carries the state of one design walk. OpenRocket writes most radii
// as "auto", meaning "same as the part in front", so the last explicit
// radius is tracked in document order.
type loader struct {
	opts   Options
	radius float64
	known  bool
}

func (l *loader) rocket(rn *node) (*document.Rocket, error) {
	r := document.NewRocket("Imported OpenRocket File")
	if n := rn.child("name"); n != nil && n.text() != "" {
		r.Name = n.text()
	}
	subs := rn.child("subcomponents")
	if subs == nil {
		return r, nil
	}
	for i := range subs.Nodes {
		sn := &subs.Nodes[i]
		if sn.XMLName.Local != "stage" {
			continue
		}
		stage := document.NewStage(fmt.Sprintf("stage %d", len(r.Stages)))
		if n := sn.child("name"); n != nil && n.text() != "" {
			stage.Name = n.text()
		}
		if parts := sn.child("subcomponents"); parts != nil {
			cs, err := l.walk(parts)
			if err != nil {
				return nil, err
			}
			stage.Add(cs...)
		}
		r.AddStage(stage)
	}
	return r, nil
}

// walk converts the children of a <subcomponents> element. Parts of unknown
// type are dropped but their own known children are hoisted in their place.
// A finset only holds its generated fins, so parts nested under it follow it
// as siblings.
func (l *loader) walk(subs *node) ([]document.Component, error) {
	var out []document.Component
	for i := range subs.Nodes {
		sn := &subs.Nodes[i]
		var (
			c   document.Component
			err error
		)
		switch sn.XMLName.Local {
		case "nosecone":
			c, err = l.nosecone(sn)
		case "bodytube":
			c, err = l.bodytube(sn)
		case "masscomponent":
			c, err = l.mass(sn)
		case "trapezoidfinset":
			c, err = l.finset(sn)
		}
		if err != nil {
			return nil, err
		}

		var children []document.Component
		if inner := sn.child("subcomponents"); inner != nil {
			children, err = l.walk(inner)
			if err != nil {
				return nil, err
			}
		}
		switch c.(type) {
		case nil:
			out = append(out, children...)
		case *document.Finset:
			out = append(out, c)
			out = append(out, children...)
		default:
			c.Common().Add(children...)
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *loader) float(n *node) (float64, error) {
	return formats.ParseFloat(formatName, 0, n.XMLName.Local, n.text())
}

// setRadius records an explicit radius. "auto" keeps the previous one.
func (l *loader) setRadius(n *node) error {
	if strings.Contains(n.text(), "auto") {
		return nil
	}
	v, err := l.float(n)
	if err != nil {
		return err
	}
	l.radius, l.known = v, true
	return nil
}

func (l *loader) diameter() float64 {
	if !l.known {
		return 0
	}
	return l.radius * 2
}

func (l *loader) roughness(finish string) float64 {
	if v, ok := l.opts.FinishRoughness[finish]; ok {
		return v
	}
	return l.opts.DefaultRoughness
}

func readColor(n *node) *document.Color {
	ch := func(name string) uint8 {
		v, err := strconv.Atoi(strings.TrimSpace(n.attr(name)))
		if err != nil {
			return 0
		}
		return uint8(min(max(v, 0), 255))
	}
	return &document.Color{R: ch("red"), G: ch("green"), B: ch("blue")}
}

// noseShapeKeys maps substrings of OpenRocket shape names to profiles.
// Older files spell shapes loosely ("Conical", "Ogive"), so matching is by
// substring in this order.
var noseShapeKeys = []struct {
	key   string
	shape document.NoseShape
}{
	{"ogive", document.ShapeTangentOgive},
	{"con", document.ShapeCone},
	{"ellips", document.ShapeElliptical},
	{"power", document.ShapePowerSeries},
	{"parabol", document.ShapeParabolic},
	{"haack", document.ShapeHaackSeries},
}

func noseShape(s string) (document.NoseShape, bool) {
	s = strings.ToLower(s)
	for _, k := range noseShapeKeys {
		if strings.Contains(s, k.key) {
			return k.shape, true
		}
	}
	return document.ShapeCone, false
}

var shoulderTags = map[string]bool{
	"aftshoulderradius":    true,
	"aftshoulderlength":    true,
	"aftshoulderthickness": true,
	"aftshouldercapped":    true,
	"linestyle":            true,
}

func (l *loader) nosecone(n *node) (document.Component, error) {
	nose := document.NewNosecone(document.ShapeCone, 0, 0, 0)
	for i := range n.Nodes {
		el := &n.Nodes[i]
		tag := el.XMLName.Local
		var err error
		switch tag {
		case "name":
			nose.Name = el.text()
		case "shape":
			if shape, ok := noseShape(el.text()); ok {
				nose.Shape = shape
			} else {
				nose.AddTag(document.TagOpenRocket, "shape:"+el.text())
			}
		case "shapeparameter":
			nose.ShapeParameter, err = l.float(el)
		case "length":
			nose.Length, err = l.float(el)
		case "thickness":
			nose.Thickness, err = l.float(el)
		case "finish":
			nose.SurfaceRoughness = l.roughness(el.text())
		case "material":
			nose.MaterialName = el.text()
		case "overridemass":
			nose.ComponentMass, err = l.float(el)
		case "aftradius":
			err = l.setRadius(el)
		case "color":
			nose.Color = readColor(el)
		default:
			if shoulderTags[tag] {
				nose.AddTag(document.TagOpenRocket, tag+":"+el.text())
			}
		}
		if err != nil {
			return nil, err
		}
	}
	nose.Diameter = l.diameter()
	return nose, nil
}

func (l *loader) bodytube(n *node) (document.Component, error) {
	tube := document.NewBodytube("bodytube", 0, 0)
	var (
		density  float64
		override = -1.0
	)
	for i := range n.Nodes {
		el := &n.Nodes[i]
		var err error
		switch el.XMLName.Local {
		case "name":
			tube.Name = el.text()
		case "length":
			tube.Length, err = l.float(el)
		case "thickness":
			tube.Thickness, err = l.float(el)
		case "finish":
			tube.SurfaceRoughness = l.roughness(el.text())
		case "material":
			tube.MaterialName = el.text()
			if d := el.attr("density"); d != "" {
				density, err = formats.ParseFloat(formatName, 0, "material.density", d)
			}
		case "overridemass":
			override, err = l.float(el)
		case "color":
			tube.Color = readColor(el)
		case "radius":
			err = l.setRadius(el)
		}
		if err != nil {
			return nil, err
		}
	}
	tube.Diameter = l.diameter()
	if density > 0 {
		tube.SetDensity(density)
	}
	tube.ComponentMass = density * tube.ShellVolume()
	if override >= 0 {
		tube.ComponentMass = override
	}
	return tube, nil
}

func (l *loader) mass(n *node) (document.Component, error) {
	m := document.NewMass("mass", 0)
	for i := range n.Nodes {
		el := &n.Nodes[i]
		var err error
		switch el.XMLName.Local {
		case "name":
			m.Name = el.text()
		case "mass":
			m.ComponentMass, err = l.float(el)
		case "position":
			m.Position, err = l.float(el)
		case "packedlength":
			m.Length, err = l.float(el)
		case "packedradius":
			var r float64
			r, err = l.float(el)
			m.Diameter = 2 * r
		case "color":
			m.Color = readColor(el)
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (l *loader) finset(n *node) (document.Component, error) {
	fin := document.NewFin("Fin", 0, 0, 0)
	name := "Finset"
	count := 0
	for i := range n.Nodes {
		el := &n.Nodes[i]
		var (
			err error
			v   float64
		)
		switch el.XMLName.Local {
		case "name":
			name = el.text()
		case "rootchord":
			fin.Root, err = l.float(el)
			fin.Length = fin.Root
		case "tipchord":
			fin.Tip, err = l.float(el)
		case "height":
			fin.Span, err = l.float(el)
		case "sweeplength":
			if v, err = l.float(el); err == nil {
				fin.SetSweep(v)
			}
		case "fincount":
			count, err = formats.ParseInt(formatName, 0, "fincount", el.text())
		case "material":
			fin.MaterialName = el.text()
		case "finish":
			fin.AddTag(document.TagOpenRocket, "finish:"+el.text())
		case "color":
			fin.Color = readColor(el)
		}
		if err != nil {
			return nil, err
		}
	}
	return document.NewFinset(name, fin, count), nil
}

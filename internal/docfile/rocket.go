package docfile

import (
	"fmt"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

type rocketDTO struct {
	Name   string         `toml:"name" yaml:"name" msgpack:"name"`
	Stages []stageDTO     `toml:"stages,omitempty" yaml:"stages,omitempty" msgpack:"stages,omitempty"`
	Aero   map[string]any `toml:"aero,omitempty" yaml:"aero,omitempty" msgpack:"aero,omitempty"`
}

type stageDTO struct {
	Name       string         `toml:"name" yaml:"name" msgpack:"name"`
	Components []componentDTO `toml:"components,omitempty" yaml:"components,omitempty" msgpack:"components,omitempty"`
}

type colorDTO struct {
	R uint8 `toml:"r" yaml:"r" msgpack:"r"`
	G uint8 `toml:"g" yaml:"g" msgpack:"g"`
	B uint8 `toml:"b" yaml:"b" msgpack:"b"`
}

type tagDTO struct {
	Class  string   `toml:"class" yaml:"class" msgpack:"class"`
	Values []string `toml:"values" yaml:"values" msgpack:"values"`
}

// componentDTO is the union of every variant's fields, discriminated by
// Kind. A finset stores its prototype and count; its fins are regenerated on
// decode.
type componentDTO struct {
	Kind     string    `toml:"kind" yaml:"kind" msgpack:"kind"`
	Name     string    `toml:"name" yaml:"name" msgpack:"name"`
	Mass     float64   `toml:"mass,omitempty" yaml:"mass,omitempty" msgpack:"mass,omitempty"`
	Length   float64   `toml:"length,omitempty" yaml:"length,omitempty" msgpack:"length,omitempty"`
	Diameter float64   `toml:"diameter,omitempty" yaml:"diameter,omitempty" msgpack:"diameter,omitempty"`
	Color    *colorDTO `toml:"color,omitempty" yaml:"color,omitempty" msgpack:"color,omitempty"`
	Material string    `toml:"material,omitempty" yaml:"material,omitempty" msgpack:"material,omitempty"`
	Tags     []tagDTO  `toml:"tags,omitempty" yaml:"tags,omitempty" msgpack:"tags,omitempty"`

	Shape          string  `toml:"shape,omitempty" yaml:"shape,omitempty" msgpack:"shape,omitempty"`
	ShapeParameter float64 `toml:"shape_parameter,omitempty" yaml:"shape_parameter,omitempty" msgpack:"shape_parameter,omitempty"`
	Thickness      float64 `toml:"thickness,omitempty" yaml:"thickness,omitempty" msgpack:"thickness,omitempty"`
	Roughness      float64 `toml:"roughness,omitempty" yaml:"roughness,omitempty" msgpack:"roughness,omitempty"`

	Density  *float64 `toml:"density,omitempty" yaml:"density,omitempty" msgpack:"density,omitempty"`
	Position float64  `toml:"position,omitempty" yaml:"position,omitempty" msgpack:"position,omitempty"`

	Root       float64  `toml:"root,omitempty" yaml:"root,omitempty" msgpack:"root,omitempty"`
	Tip        float64  `toml:"tip,omitempty" yaml:"tip,omitempty" msgpack:"tip,omitempty"`
	Span       float64  `toml:"span,omitempty" yaml:"span,omitempty" msgpack:"span,omitempty"`
	Sweep      *float64 `toml:"sweep,omitempty" yaml:"sweep,omitempty" msgpack:"sweep,omitempty"`
	SweepAngle *float64 `toml:"sweep_angle,omitempty" yaml:"sweep_angle,omitempty" msgpack:"sweep_angle,omitempty"`

	Count    int            `toml:"count,omitempty" yaml:"count,omitempty" msgpack:"count,omitempty"`
	Fin      *componentDTO  `toml:"fin,omitempty" yaml:"fin,omitempty" msgpack:"fin,omitempty"`
	Children []componentDTO `toml:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

func rocketToDTO(r *document.Rocket) *rocketDTO {
	out := &rocketDTO{Name: r.Name}
	if len(r.AeroProperties) > 0 {
		out.Aero = r.AeroProperties
	}
	for _, s := range r.Stages {
		sd := stageDTO{Name: s.Name}
		for _, c := range s.Components {
			sd.Components = append(sd.Components, componentToDTO(c))
		}
		out.Stages = append(out.Stages, sd)
	}
	return out
}

func componentToDTO(c document.Component) componentDTO {
	b := c.Common()
	d := componentDTO{
		Kind:     c.Kind().String(),
		Name:     b.Name,
		Mass:     b.ComponentMass,
		Length:   b.Length,
		Diameter: b.Diameter,
		Material: b.MaterialName,
	}
	if b.Color != nil {
		d.Color = &colorDTO{R: b.Color.R, G: b.Color.G, B: b.Color.B}
	}
	for _, class := range b.Tags.Classes() {
		d.Tags = append(d.Tags, tagDTO{Class: string(class), Values: b.Tags.Get(class)})
	}

	switch v := c.(type) {
	case *document.Nosecone:
		d.Shape = v.Shape.String()
		d.ShapeParameter = v.ShapeParameter
		d.Thickness = v.Thickness
		d.Roughness = v.SurfaceRoughness
	case *document.Bodytube:
		d.Thickness = v.Thickness
		d.Roughness = v.SurfaceRoughness
		if rho, ok := v.DensityOverride(); ok {
			d.Density = &rho
		}
	case *document.Mass:
		d.Position = v.Position
	case *document.Fin:
		d.Root, d.Tip, d.Span = v.Root, v.Tip, v.Span
		if v.HasLinearSweep() {
			s := v.Sweep()
			d.Sweep = &s
		} else if a, err := v.SweepAngle(); err == nil {
			d.SweepAngle = &a
		}
	case *document.Finset:
		d.Count = v.Count()
		if v.Fin() != nil {
			fin := componentToDTO(v.Fin())
			d.Fin = &fin
		}
		return d
	}

	for _, child := range c.Children() {
		d.Children = append(d.Children, componentToDTO(child))
	}
	return d
}

func (r *rocketDTO) toDocument(format string) (*document.Rocket, error) {
	out := document.NewRocket(r.Name)
	for k, v := range r.Aero {
		out.AeroProperties[k] = v
	}
	for _, sd := range r.Stages {
		s := document.NewStage(sd.Name)
		for i := range sd.Components {
			c, err := sd.Components[i].toComponent(format)
			if err != nil {
				return nil, err
			}
			s.Add(c)
		}
		out.AddStage(s)
	}
	return out, nil
}

func (d *componentDTO) toComponent(format string) (document.Component, error) {
	kind, err := document.ParseKind(d.Kind)
	if err != nil {
		return nil, &formats.FormatError{Format: format, Field: "kind", Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
	}

	var c document.Component
	switch kind {
	case document.KindNosecone:
		shape, err := document.ParseNoseShape(d.Shape)
		if err != nil {
			return nil, &formats.FormatError{Format: format, Field: "shape", Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
		}
		n := document.NewNosecone(shape, d.ShapeParameter, d.Mass, d.Length)
		n.Thickness = d.Thickness
		n.SurfaceRoughness = d.Roughness
		c = n
	case document.KindBodytube:
		b := document.NewBodytube(d.Name, d.Mass, d.Length)
		b.Thickness = d.Thickness
		b.SurfaceRoughness = d.Roughness
		if d.Density != nil {
			b.SetDensity(*d.Density)
		}
		c = b
	case document.KindMass:
		m := document.NewMass(d.Name, d.Mass)
		m.Position = d.Position
		c = m
	case document.KindFin:
		f := document.NewFin(d.Name, d.Root, d.Tip, d.Span)
		switch {
		case d.Sweep != nil:
			f.SetSweep(*d.Sweep)
		case d.SweepAngle != nil:
			f.SetSweepAngle(*d.SweepAngle)
		}
		c = f
	case document.KindFinset:
		var proto *document.Fin
		if d.Fin != nil {
			pc, err := d.Fin.toComponent(format)
			if err != nil {
				return nil, err
			}
			fin, ok := pc.(*document.Fin)
			if !ok {
				return nil, formats.Malformed(format, 0, "fin", "finset prototype is a "+pc.Kind().String())
			}
			proto = fin
		}
		c = document.NewFinset(d.Name, proto, d.Count)
	}

	b := c.Common()
	b.Name = d.Name
	b.ComponentMass = d.Mass
	b.Length = d.Length
	b.Diameter = d.Diameter
	b.MaterialName = d.Material
	if d.Color != nil {
		b.Color = &document.Color{R: d.Color.R, G: d.Color.G, B: d.Color.B}
	}
	for _, t := range d.Tags {
		for _, v := range t.Values {
			b.AddTag(document.TagClass(t.Class), v)
		}
	}

	if kind == document.KindFinset {
		return c, nil
	}
	for i := range d.Children {
		child, err := d.Children[i].toComponent(format)
		if err != nil {
			return nil, err
		}
		b.Add(child)
	}
	return c, nil
}

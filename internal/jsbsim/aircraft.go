package jsbsim

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

type fdmConfig struct {
	XMLName     xml.Name    `xml:"fdm_config"`
	Name        string      `xml:"name,attr"`
	Version     string      `xml:"version,attr"`
	Release     string      `xml:"release,attr"`
	Header      fileHeader  `xml:"fileheader"`
	Metrics     metrics     `xml:"metrics"`
	MassBalance massBalance `xml:"mass_balance"`
	Properties  []property  `xml:"property"`
	Comment     string      `xml:",comment"`
}

type fileHeader struct {
	Author      string `xml:"author"`
	Description string `xml:"description"`
}

type unitValue struct {
	Unit  string  `xml:"unit,attr"`
	Value float64 `xml:",chardata"`
}

type location struct {
	Name string  `xml:"name,attr"`
	Unit string  `xml:"unit,attr"`
	X    float64 `xml:"x"`
	Y    float64 `xml:"y"`
	Z    float64 `xml:"z"`
}

type metrics struct {
	WingArea  unitValue  `xml:"wingarea"`
	WingSpan  unitValue  `xml:"wingspan"`
	Chord     unitValue  `xml:"chord"`
	Locations []location `xml:"location"`
}

type massBalance struct {
	Ixx     unitValue `xml:"ixx"`
	Iyy     unitValue `xml:"iyy"`
	Izz     unitValue `xml:"izz"`
	EmptyWt unitValue `xml:"emptywt"`
	CG      location  `xml:"location"`
}

type property struct {
	Value string `xml:"value,attr"`
	Name  string `xml:",chardata"`
}

// WriteAircraft emits the metrics and mass balance of r as a JSBSim
// fdm_config skeleton. The rocket is treated as a slender cylinder of its
// top-stage length and largest diameter. Numeric aerodynamic properties
// become <property> declarations under aero/; anything else is kept as a
// comment.
func WriteAircraft(w io.Writer, r *document.Rocket) error {
	length := r.Length()
	dia := r.MaxDiameter()
	mass := r.Mass()
	cg := centerOfGravity(r)

	refArea := math.Pi * dia * dia / 4
	iLong := mass * dia * dia / 8
	iLat := mass * length * length / 12

	cp := cg
	if v, ok := r.AeroProperties["cp"].(float64); ok {
		cp = v
	}

	doc := fdmConfig{
		Name:    r.Name,
		Version: "2.0",
		Release: "ALPHA",
		Header: fileHeader{
			Author:      "rocketdoc",
			Description: fmt.Sprintf("%s: %d stage(s), %.3f kg", r.Name, len(r.Stages), mass),
		},
		Metrics: metrics{
			WingArea: unitValue{Unit: "FT2", Value: formats.M2ToFt2(refArea)},
			WingSpan: unitValue{Unit: "FT", Value: formats.MToIn(dia) / 12},
			Chord:    unitValue{Unit: "FT", Value: formats.MToIn(length) / 12},
			Locations: []location{
				{Name: "AERORP", Unit: "IN", X: formats.MToIn(cp)},
				{Name: "VRP", Unit: "IN"},
			},
		},
		MassBalance: massBalance{
			Ixx:     unitValue{Unit: "SLUG*FT2", Value: formats.KgM2ToSlugFt2(iLong)},
			Iyy:     unitValue{Unit: "SLUG*FT2", Value: formats.KgM2ToSlugFt2(iLat)},
			Izz:     unitValue{Unit: "SLUG*FT2", Value: formats.KgM2ToSlugFt2(iLat)},
			EmptyWt: unitValue{Unit: "LBS", Value: formats.KgToLb(mass)},
			CG:      location{Name: "CG", Unit: "IN", X: formats.MToIn(cg)},
		},
	}

	var opaque strings.Builder
	keys := make([]string, 0, len(r.AeroProperties))
	for k := range r.AeroProperties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := r.AeroProperties[k].(type) {
		case float64:
			doc.Properties = append(doc.Properties, property{Name: "aero/" + k, Value: strconv.FormatFloat(v, 'g', -1, 64)})
		case int:
			doc.Properties = append(doc.Properties, property{Name: "aero/" + k, Value: strconv.Itoa(v)})
		default:
			fmt.Fprintf(&opaque, " aero %s = %v;", k, v)
		}
	}
	if opaque.Len() > 0 {
		doc.Comment = strings.ReplaceAll(opaque.String(), "--", "- -") + " "
	}

	return encode(w, doc, "aircraft")
}

// centerOfGravity returns the CG distance from the nose tip in metres. Stages
// stack tip first. Each component's own mass sits at its midpoint; children
// sit at their parent's front plus their Position (point masses) or half
// their length.
func centerOfGravity(r *document.Rocket) float64 {
	var moment, total, offset float64
	for _, s := range r.Stages {
		for _, c := range s.Components {
			m, mm := componentMoment(c, offset)
			total += m
			moment += mm
			offset += c.Common().Length
		}
	}
	if total <= 0 {
		return r.Length() / 2
	}
	return moment / total
}

func componentMoment(c document.Component, front float64) (mass, moment float64) {
	b := c.Common()
	mass = b.ComponentMass
	moment = b.ComponentMass * (front + b.Length/2)
	for _, child := range c.Children() {
		start := front
		if pm, ok := child.(*document.Mass); ok {
			start += pm.Position
		}
		m, mm := componentMoment(child, start)
		mass += m
		moment += mm
	}
	return mass, moment
}

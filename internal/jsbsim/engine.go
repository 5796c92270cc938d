// Package jsbsim writes documents as JSBSim flight-dynamics input: a
// rocket_engine file for a motor and an fdm_config skeleton carrying the
// mass and geometry of a rocket. JSBSim works in English units, so every
// value is converted on the way out. Nothing is read back.
package jsbsim

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

// DefaultBuildupTime is the thrust build-up time in seconds used when
// Options leaves it unset.
const DefaultBuildupTime = 0.1

// Options controls the writers.
type Options struct {
	// CurveSamples is passed to MakeThrustCurve when the motor has no stored curve.
	CurveSamples int
	// BuildupTime is the thrust build-up time in seconds.
	BuildupTime float64
}

func (o Options) withDefaults() Options {
	if o.CurveSamples <= 0 {
		o.CurveSamples = engine.DefaultCurveSamples
	}
	if o.BuildupTime <= 0 {
		o.BuildupTime = DefaultBuildupTime
	}
	return o
}

type rocketEngine struct {
	XMLName     xml.Name    `xml:"rocket_engine"`
	Name        string      `xml:"name,attr"`
	Comment     string      `xml:",comment"`
	Isp         float64     `xml:"isp"`
	BuildupTime float64     `xml:"builduptime"`
	Thrust      thrustTable `xml:"thrust_table"`
}

type thrustTable struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Data string `xml:"tableData"`
}

// WriteEngine emits e as a JSBSim rocket_engine. The thrust table maps
// propellant remaining (lbs, ascending) to thrust (lbf).
func WriteEngine(w io.Writer, e *engine.Engine, opts Options) error {
	opts = opts.withDefaults()

	doc := rocketEngine{
		Name: e.Name,
		Comment: strings.ReplaceAll(fmt.Sprintf(" %s %s: %.1f N·s total impulse, %.2f s burn ",
			e.Manufacturer, e.Name, e.TotalImpulse(), e.BurnTime()), "--", "- -"),
		Isp:         e.Isp(),
		BuildupTime: opts.BuildupTime,
		Thrust: thrustTable{
			Name: "propulsion/thrust_prop_remain",
			Type: "internal",
			Data: thrustRows(e, opts.CurveSamples),
		},
	}
	return encode(w, doc, "engine")
}

// thrustRows renders the table body. Propellant is assumed to burn in
// proportion to delivered impulse; with no impulse it burns linearly in
// sample order.
func thrustRows(e *engine.Engine, samples int) string {
	curve := e.MakeThrustCurve(samples)
	cum := e.CumulativeImpulse(samples)
	total := e.TotalImpulse()
	mProp := e.PropellantMass()

	var b strings.Builder
	b.WriteByte('\n')
	for i := len(curve) - 1; i >= 0; i-- {
		var burnt float64
		switch {
		case total > 0:
			burnt = cum[i] / total
		case len(curve) > 1:
			burnt = float64(i) / float64(len(curve)-1)
		}
		remaining := formats.KgToLb(mProp * (1 - burnt))
		fmt.Fprintf(&b, "        %12.4f %12.4f\n", max(remaining, 0), formats.NToLbf(curve[i].Thrust))
	}
	b.WriteString("      ")
	return b.String()
}

func encode(w io.Writer, v any, what string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing jsbsim %s: %w", what, err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing jsbsim %s: %w", what, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing jsbsim %s: %w", what, err)
	}
	return nil
}

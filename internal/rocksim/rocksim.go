// Package rocksim reads and writes RockSim engine files (.rse), an XML motor
// format that carries a full attribute sheet alongside the thrust curve.
// Lengths in the file are millimetres and masses grams.
package rocksim

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

const formatName = "rocksim"

// Options controls Write.
type Options struct {
	// CurveSamples is passed to MakeThrustCurve when the motor has no stored curve.
	CurveSamples int
}

type database struct {
	XMLName xml.Name    `xml:"engine-database"`
	Engines []rseEngine `xml:"engine-list>engine"`
}

type rseEngine struct {
	Code       string      `xml:"code,attr"`
	Mfg        string      `xml:"mfg,attr"`
	Delays     string      `xml:"delays,attr,omitempty"`
	Dia        float64     `xml:"dia,attr"`
	Len        float64     `xml:"len,attr"`
	InitWt     float64     `xml:"initWt,attr"`
	PropWt     float64     `xml:"propWt,attr"`
	AvgThrust  float64     `xml:"avgThrust,attr"`
	PeakThrust float64     `xml:"peakThrust,attr"`
	ThroatDia  float64     `xml:"throatDia,attr"`
	ExitDia    float64     `xml:"exitDia,attr"`
	Itot       float64     `xml:"Itot,attr"`
	BurnTime   float64     `xml:"burn-time,attr"`
	MassFrac   float64     `xml:"massFrac,attr"`
	Isp        float64     `xml:"Isp,attr"`
	Comments   string      `xml:"comments,omitempty"`
	Data       []rseSample `xml:"data>eng-data"`
}

type rseSample struct {
	T  float64 `xml:"t,attr"`
	F  float64 `xml:"f,attr"`
	M  float64 `xml:"m,attr,omitempty"`
	CG float64 `xml:"cg,attr,omitempty"`
}

// Load parses the first engine of a RockSim engine database. The casing is
// modelled as one tank holding the non-propellant mass. When the file has no
// curve data the attribute sheet is kept as overrides instead.
func Load(r io.Reader) (*engine.Engine, error) {
	var db database
	if err := xml.NewDecoder(r).Decode(&db); err != nil {
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			return nil, formats.Malformed(formatName, syn.Line, "", syn.Msg)
		}
		return nil, &formats.FormatError{Format: formatName, Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
	}
	if len(db.Engines) == 0 {
		return nil, formats.Malformed(formatName, 0, "engine-list", "no engine element")
	}
	rse := db.Engines[0]
	if rse.Code == "" {
		return nil, formats.Malformed(formatName, 0, "code", "engine has no code")
	}

	e := engine.New(rse.Code)
	e.Manufacturer = rse.Mfg
	e.Delays = rse.Delays
	e.Comments = strings.TrimSpace(rse.Comments)
	e.ThroatDiameter = formats.MMToM(rse.ThroatDia)
	e.ExitDiameter = formats.MMToM(rse.ExitDia)

	mProp := formats.GToKg(rse.PropWt)
	e.SetPropellantMass(mProp)
	if rse.Isp > 0 {
		e.SetIsp(rse.Isp)
	}
	e.AddTank(engine.Tank{
		Mass:     formats.GToKg(rse.InitWt) - mProp,
		Length:   formats.MMToM(rse.Len),
		Diameter: formats.MMToM(rse.Dia),
	})

	if len(rse.Data) == 0 {
		setIfPositive(e.SetTotalImpulse, rse.Itot)
		setIfPositive(e.SetThrustAvg, rse.AvgThrust)
		setIfPositive(e.SetThrustPeak, rse.PeakThrust)
		setIfPositive(e.SetBurnTime, rse.BurnTime)
		return e, nil
	}

	curve := make([]engine.Sample, 0, len(rse.Data))
	for _, d := range rse.Data {
		curve = append(curve, engine.Sample{
			Time:   d.T,
			Thrust: d.F,
			Mass:   formats.GToKg(d.M),
			CG:     formats.MMToM(d.CG),
		})
	}
	e.SetThrustCurve(curve)
	return e, nil
}

func setIfPositive(set func(float64), v float64) {
	if v > 0 {
		set(v)
	}
}

// Write emits e as a single-engine RockSim database. Every attribute is a
// derived property of e. Curve samples that carry no mass are given the
// propellant remaining, assuming propellant burns in proportion to impulse.
func Write(w io.Writer, e *engine.Engine, opts Options) error {
	samples := opts.CurveSamples
	if samples <= 0 {
		samples = engine.DefaultCurveSamples
	}
	curve := e.MakeThrustCurve(samples)
	remaining := propellantRemaining(e, curve, samples)

	rse := rseEngine{
		Code:       e.Name,
		Mfg:        e.Manufacturer,
		Delays:     e.Delays,
		Dia:        formats.MToMM(e.Diameter()),
		Len:        formats.MToMM(e.Length()),
		InitWt:     formats.KgToG(e.InitialMass()),
		PropWt:     formats.KgToG(e.PropellantMass()),
		AvgThrust:  e.ThrustAvg(),
		PeakThrust: e.ThrustPeak(),
		ThroatDia:  formats.MToMM(e.ThroatDiameter),
		ExitDia:    formats.MToMM(e.ExitDiameter),
		Itot:       e.TotalImpulse(),
		BurnTime:   e.BurnTime(),
		MassFrac:   e.MassFraction(),
		Isp:        e.Isp(),
		Comments:   e.Comments,
	}
	for i, s := range curve {
		rse.Data = append(rse.Data, rseSample{
			T:  s.Time,
			F:  s.Thrust,
			M:  formats.KgToG(remaining[i]),
			CG: formats.MToMM(s.CG),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing rocksim: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(database{Engines: []rseEngine{rse}}); err != nil {
		return fmt.Errorf("writing rocksim: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing rocksim: %w", err)
	}
	return nil
}

// propellantRemaining returns the per-sample mass column, using recorded
// masses when the curve has any.
func propellantRemaining(e *engine.Engine, curve []engine.Sample, samples int) []float64 {
	out := make([]float64, len(curve))
	recorded := false
	for i, s := range curve {
		out[i] = s.Mass
		recorded = recorded || s.Mass != 0
	}
	if recorded {
		return out
	}
	total := e.TotalImpulse()
	mProp := e.PropellantMass()
	if total <= 0 || mProp <= 0 {
		return out
	}
	for i, c := range e.CumulativeImpulse(samples) {
		if i < len(out) {
			out[i] = mProp * (1 - c/total)
		}
	}
	return out
}

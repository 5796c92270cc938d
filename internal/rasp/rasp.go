// Package rasp reads and writes RASP engine files (.eng), the plain-text
// motor format shared by most hobby flight simulators.
//
// A file is a block of ';' comment lines, one header line
//
//	name diameter_mm length_mm delays propellant_kg initial_kg manufacturer
//
// and then one "time thrust" pair per line.
package rasp

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

const formatName = "rasp"

// Options controls Write.
type Options struct {
	// CurveSamples is passed to MakeThrustCurve when the motor has no stored curve.
	CurveSamples int
}

// Load parses a RASP file. The motor is modelled as a single casing tank
// holding everything that is not propellant.
func Load(r io.Reader) (*engine.Engine, error) {
	e := engine.New("Imported RASP Engine")
	var comments strings.Builder
	var curve []engine.Sample
	header := false

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, ";") {
			if !header {
				comments.WriteString(strings.TrimPrefix(text, ";"))
				comments.WriteByte('\n')
			}
			continue
		}
		if !header {
			if err := parseHeader(e, strings.Fields(text), line); err != nil {
				return nil, err
			}
			header = true
			continue
		}
		if !strings.ContainsAny(text, "0123456789") {
			continue
		}
		s, err := parseSample(strings.Fields(text), line)
		if err != nil {
			return nil, err
		}
		curve = append(curve, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading rasp: %w", err)
	}
	if !header {
		return nil, formats.Malformed(formatName, line, "header", "no header line")
	}

	e.Comments = comments.String()
	e.SetThrustCurve(curve)
	return e, nil
}

func parseHeader(e *engine.Engine, fields []string, line int) error {
	if len(fields) < 7 {
		return formats.Malformed(formatName, line, "header",
			fmt.Sprintf("want 7 fields, got %d", len(fields)))
	}
	nums := make([]float64, 0, 4)
	for _, f := range []struct {
		name string
		idx  int
	}{{"diameter", 1}, {"length", 2}, {"propellant_mass", 4}, {"initial_mass", 5}} {
		v, err := formats.ParseFloat(formatName, line, f.name, fields[f.idx])
		if err != nil {
			return err
		}
		nums = append(nums, v)
	}
	dia, length, mProp, mInit := nums[0], nums[1], nums[2], nums[3]

	e.Name = fields[0]
	e.Delays = fields[3]
	e.Manufacturer = strings.Join(fields[6:], " ")
	e.SetPropellantMass(mProp)
	e.AddTank(engine.Tank{
		Mass:     mInit - mProp,
		Length:   formats.MMToM(length),
		Diameter: formats.MMToM(dia),
	})
	return nil
}

func parseSample(fields []string, line int) (engine.Sample, error) {
	if len(fields) < 2 {
		return engine.Sample{}, formats.Malformed(formatName, line, "sample", "want time and thrust")
	}
	t, err := formats.ParseFloat(formatName, line, "time", fields[0])
	if err != nil {
		return engine.Sample{}, err
	}
	f, err := formats.ParseFloat(formatName, line, "thrust", fields[1])
	if err != nil {
		return engine.Sample{}, err
	}
	return engine.Sample{Time: t, Thrust: f}, nil
}

// Write emits e in RASP format. Only derived properties are read, so a
// motor described by overrides alone is written with a synthetic flat curve.
func Write(w io.Writer, e *engine.Engine, opts Options) error {
	bw := bufio.NewWriter(w)

	if c := strings.TrimRight(e.Comments, "\n"); c != "" {
		for _, l := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, ";%s\n", l)
		}
	}

	delays := formats.Token(e.Delays)
	if delays == "" {
		delays = "0"
	}
	fmt.Fprintf(bw, "%s %0.0f %0.0f %s %0.4f %0.4f %s\n",
		tokenOr(e.Name, "Unnamed"),
		formats.MToMM(e.Diameter()),
		formats.MToMM(e.Length()),
		delays,
		e.PropellantMass(),
		e.InitialMass(),
		tokenOr(e.Manufacturer, "Unknown"),
	)

	samples := opts.CurveSamples
	if samples <= 0 {
		samples = engine.DefaultCurveSamples
	}
	for _, s := range e.MakeThrustCurve(samples) {
		fmt.Fprintf(bw, "%0.3f %0.3f\n", s.Time, s.Thrust)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing rasp: %w", err)
	}
	return nil
}

// tokenOr keeps the header at seven fields when a name is empty.
func tokenOr(s, fallback string) string {
	if t := formats.Token(s); t != "" {
		return t
	}
	return fallback
}

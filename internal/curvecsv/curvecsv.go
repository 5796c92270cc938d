// Package curvecsv reads and writes thrust curves as CSV with one record per
// sample: time_s, thrust_n, mass_kg, cg_m.
package curvecsv

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

const formatName = "csv"

// Options controls Write.
type Options struct {
	// CurveSamples is passed to MakeThrustCurve when the motor has no stored curve.
	CurveSamples int
}

// Record is one CSV row. Zero mass or CG means the value was not recorded.
type Record struct {
	Time   float64 `csv:"time_s"`
	Thrust float64 `csv:"thrust_n"`
	Mass   float64 `csv:"mass_kg"`
	CG     float64 `csv:"cg_m"`
}

// Load reads a curve and returns an engine holding nothing but that curve.
func Load(r io.Reader) (*engine.Engine, error) {
	var records []*Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, &formats.FormatError{Format: formatName, Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
	}
	if len(records) == 0 {
		return nil, formats.Malformed(formatName, 0, "", "no samples")
	}

	curve := make([]engine.Sample, 0, len(records))
	for i, rec := range records {
		if rec.Time < 0 {
			// +2: header line and 1-based numbering
			return nil, formats.Malformed(formatName, i+2, "time_s", "negative time")
		}
		curve = append(curve, engine.Sample{Time: rec.Time, Thrust: rec.Thrust, Mass: rec.Mass, CG: rec.CG})
	}

	e := engine.New("Imported thrust curve")
	e.SetThrustCurve(curve)
	return e, nil
}

// Write dumps MakeThrustCurve as CSV with a header row.
func Write(w io.Writer, e *engine.Engine, opts Options) error {
	samples := opts.CurveSamples
	if samples <= 0 {
		samples = engine.DefaultCurveSamples
	}
	curve := e.MakeThrustCurve(samples)
	records := make([]Record, 0, len(curve))
	for _, s := range curve {
		records = append(records, Record{Time: s.Time, Thrust: s.Thrust, Mass: s.Mass, CG: s.CG})
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

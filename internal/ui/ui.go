// Package ui renders rocketdoc reports for the terminal: motor summaries,
// rocket trees, validation results and the format table. Reports go to the
// output writer; status lines go to the error writer.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/convert"
	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/engine"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes styled terminal output.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a Printer writing reports to stdout and status to stderr.
func New() *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr}
}

// NewWithWriters returns a Printer over arbitrary writers.
func NewWithWriters(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// Error prints an error status line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.err, red+bold+"error: "+reset+"%s\n", msg)
}

// Info prints a dim status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.err, dim+"%s"+reset+"\n", msg)
}

// Converted reports a finished conversion.
func (p *Printer) Converted(src, dst, format string) {
	fmt.Fprintf(p.err, green+"✓ "+reset+"%s → %s "+dim+"(%s)"+reset+"\n", src, dst, format)
}

// WatchChange reports a change picked up by the watcher.
func (p *Printer) WatchChange(path, kind string) {
	fmt.Fprintf(p.err, cyan+"◆ %s"+reset+" %s\n", kind, path)
}

// MotorSummary prints every derived quantity of e together with its NAR class.
func (p *Printer) MotorSummary(e *engine.Engine) {
	fmt.Fprintf(p.out, bold+cyan+"motor: %s"+reset+"\n", e.Name)
	if e.Manufacturer != "" {
		fmt.Fprintf(p.out, "  manufacturer:     %s\n", e.Manufacturer)
	}
	if e.Delays != "" {
		fmt.Fprintf(p.out, "  delays:           %s\n", e.Delays)
	}
	class := "-"
	if c, ok := e.Classification(); ok {
		class = fmt.Sprintf("%s (%.0f%%)", c.Code, c.Percent)
	}
	rows := []struct {
		label string
		value string
	}{
		{"class", class},
		{"total impulse", fmt.Sprintf("%.2f N·s", e.TotalImpulse())},
		{"burn time", fmt.Sprintf("%.3f s", e.BurnTime())},
		{"average thrust", fmt.Sprintf("%.2f N", e.ThrustAvg())},
		{"peak thrust", fmt.Sprintf("%.2f N", e.ThrustPeak())},
		{"specific impulse", fmt.Sprintf("%.1f s", e.Isp())},
		{"exhaust velocity", fmt.Sprintf("%.1f m/s", e.ExhaustVelocity())},
		{"propellant mass", fmt.Sprintf("%.4f kg", e.PropellantMass())},
		{"initial mass", fmt.Sprintf("%.4f kg", e.InitialMass())},
		{"mass fraction", fmt.Sprintf("%.2f %%", e.MassFraction())},
		{"length", fmt.Sprintf("%.4f m", e.Length())},
		{"diameter", fmt.Sprintf("%.4f m", e.Diameter())},
		{"curve samples", fmt.Sprintf("%d", len(e.ThrustCurve()))},
	}
	for _, r := range rows {
		fmt.Fprintf(p.out, "  %-17s %s\n", r.label+":", r.value)
	}
	if !e.Constrained() {
		fmt.Fprintln(p.out, yellow+"  ⚠ under-constrained: derived values may be zero"+reset)
	}
}

// RocketTree prints the stage and component tree of r with masses.
func (p *Printer) RocketTree(r *document.Rocket) {
	fmt.Fprintf(p.out, bold+cyan+"rocket: %s"+reset+dim+" (%.4f kg, %.4f m, ⌀ %.4f m)"+reset+"\n",
		r.Name, r.Mass(), r.Length(), r.MaxDiameter())
	for _, s := range r.Stages {
		fmt.Fprintf(p.out, "  "+bold+"%s"+reset+dim+" %.4f kg"+reset+"\n", s.Name, s.Mass())
		for _, c := range s.Components {
			_ = document.Walk(c, func(c document.Component, depth int) error {
				indent := strings.Repeat("  ", depth+2)
				fmt.Fprintf(p.out, "%s%s "+dim+"[%s] %.4f kg"+reset+"\n", indent, c.Common().Name, c.Kind(), c.Mass())
				return nil
			})
		}
	}
}

// ValidationResult prints the outcome of validating the named document.
func (p *Printer) ValidationResult(name string, errs []error) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, green+bold+"✓ %s"+reset+" no problems found\n", name)
		return
	}
	fmt.Fprintf(p.out, red+bold+"✗ %s"+reset+" %d problem(s):\n", name, len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.out, "  "+red+"• "+reset+"%s\n", e.Error())
	}
}

// Classification prints the NAR class for an impulse.
func (p *Printer) Classification(impulse float64, c engine.Classification, ok bool) {
	if !ok {
		fmt.Fprintf(p.out, yellow+"%.2f N·s has no motor class"+reset+"\n", impulse)
		return
	}
	fmt.Fprintf(p.out, bold+"%s"+reset+" %.2f N·s "+dim+"(%.0f%% of %.4g–%.4g N·s)"+reset+"\n",
		c.Code, impulse, c.Percent, c.Min, c.Max)
}

// FormatTable lists registered formats and what each can read and write.
func (p *Printer) FormatTable(formats []convert.Format) {
	fmt.Fprintf(p.out, bold+"%-11s %-6s %-6s %-18s %s"+reset+"\n", "FORMAT", "READ", "WRITE", "EXTENSIONS", "DESCRIPTION")
	for _, f := range formats {
		fmt.Fprintf(p.out, "%-11s %-6s %-6s %-18s %s\n",
			f.Name,
			abilities(f.ReadsMotor(), f.ReadsRocket()),
			abilities(f.WritesMotor(), f.WritesRocket()),
			strings.Join(f.Extensions, " "),
			f.Description)
	}
}

// abilities renders "m" for motors and "r" for rockets, "-" for neither.
func abilities(motor, rocket bool) string {
	var s string
	if motor {
		s += "m"
	}
	if rocket {
		s += "r"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Package svg draws the side profile of a rocket's top stage as an SVG
// image: nosecone outline, body tube rectangles and fin trapezoids. The
// drawing is axis-aligned with the tip on the left.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/document"
)

// DefaultScale is the drawing scale in pixels per metre.
const DefaultScale = 1000.0

const (
	margin       = 10.0
	noseSegments = 32
	defaultFill  = "#d0d0d0"
)

// Options controls Write.
type Options struct {
	// Scale is pixels per metre; zero selects DefaultScale.
	Scale float64
}

// Write draws the top stage of r. A rocket without stages produces an
// empty canvas.
func Write(w io.Writer, r *document.Rocket, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var stage *document.Stage
	if len(r.Stages) > 0 {
		stage = r.Stages[0]
	}
	halfHeight := extent(stage)
	width := r.Length()*scale + 2*margin
	height := 2*halfHeight*scale + 2*margin

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.2f %.2f\">\n",
		width, height, width, height)
	fmt.Fprintf(bw, "  <title>%s</title>\n", html.EscapeString(r.Name))
	fmt.Fprintf(bw, "  <g stroke=\"#000000\" stroke-width=\"1\">\n")

	d := &drawer{w: bw, scale: scale, cy: height / 2}
	if stage != nil {
		offset := 0.0
		for _, c := range stage.Components {
			if err := d.draw(c, offset, c.Common().Length); err != nil {
				return err
			}
			offset += c.Common().Length
		}
	}

	fmt.Fprintf(bw, "  </g>\n</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// extent returns the largest distance from the centreline in metres:
// widest body radius plus longest fin span.
func extent(s *document.Stage) float64 {
	if s == nil {
		return 0
	}
	var radius, span float64
	for _, c := range s.Components {
		_ = document.Walk(c, func(c document.Component, _ int) error {
			radius = max(radius, c.Common().Diameter/2)
			if f, ok := c.(*document.Fin); ok {
				span = max(span, f.Span)
			}
			return nil
		})
	}
	return radius + span
}

// drawer renders components as it visits them. x is the front of the
// component being visited and parentLen the length of its parent, which
// positions fins at the parent's aft end.
type drawer struct {
	w         *bufio.Writer
	scale     float64
	cy        float64
	x         float64
	parentLen float64
	radius    float64
}

var _ document.Visitor = (*drawer)(nil)

func (d *drawer) draw(c document.Component, x, parentLen float64) error {
	d.x, d.parentLen = x, parentLen
	if r := c.Common().Diameter / 2; r > 0 {
		d.radius = r
	}
	if err := c.Accept(d); err != nil {
		return err
	}
	if c.Kind() == document.KindFinset {
		return nil
	}
	for _, child := range c.Children() {
		if err := d.draw(child, x, c.Common().Length); err != nil {
			return err
		}
	}
	return nil
}

func (d *drawer) px(x float64) float64 { return margin + x*d.scale }

func (d *drawer) py(y float64) float64 { return d.cy - y*d.scale }

func fill(c *document.Color) string {
	if c == nil {
		return defaultFill
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (d *drawer) polygon(name string, color *document.Color, pts [][2]float64) {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", d.px(p[0]), d.py(p[1]))
	}
	fmt.Fprintf(d.w, "    <polygon id=\"%s\" fill=\"%s\" points=\"%s\"/>\n",
		html.EscapeString(name), fill(color), b.String())
}

// VisitNosecone outlines the nose profile above and below the centreline.
func (d *drawer) VisitNosecone(n *document.Nosecone) error {
	if n.Length <= 0 || n.Diameter <= 0 {
		return nil
	}
	pts := make([][2]float64, 0, 2*(noseSegments+1))
	for i := 0; i <= noseSegments; i++ {
		x := n.Length * float64(i) / noseSegments
		pts = append(pts, [2]float64{d.x + x, n.Radius(x)})
	}
	for i := noseSegments; i >= 0; i-- {
		x := n.Length * float64(i) / noseSegments
		pts = append(pts, [2]float64{d.x + x, -n.Radius(x)})
	}
	d.polygon(n.Name, n.Color, pts)
	return nil
}

// VisitBodytube draws the tube as a rectangle.
func (d *drawer) VisitBodytube(b *document.Bodytube) error {
	if b.Length <= 0 || b.Diameter <= 0 {
		return nil
	}
	r := b.Diameter / 2
	fmt.Fprintf(d.w, "    <rect id=\"%s\" fill=\"%s\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n",
		html.EscapeString(b.Name), fill(b.Color), d.px(d.x), d.py(r), b.Length*d.scale, 2*r*d.scale)
	return nil
}

// VisitMass marks a packed mass as a dashed outline when it has a size.
func (d *drawer) VisitMass(m *document.Mass) error {
	if m.Length <= 0 || m.Diameter <= 0 {
		return nil
	}
	r := m.Diameter / 2
	fmt.Fprintf(d.w, "    <rect id=\"%s\" fill=\"none\" stroke-dasharray=\"4 2\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n",
		html.EscapeString(m.Name), d.px(d.x+m.Position), d.py(r), m.Length*d.scale, 2*r*d.scale)
	return nil
}

// VisitFin is a no-op; fins are drawn by their finset.
func (d *drawer) VisitFin(*document.Fin) error { return nil }

// VisitFinset draws the fin prototype above and below the body, root chord
// flush with the aft end of the parent.
func (d *drawer) VisitFinset(fs *document.Finset) error {
	f := fs.Fin()
	if f == nil || fs.Count() == 0 || f.Span <= 0 {
		return nil
	}
	lead := d.x + d.parentLen - f.Root
	sweep := f.Sweep()
	for _, side := range []float64{1, -1} {
		base := side * d.radius
		tip := base + side*f.Span
		d.polygon(fs.Name, f.Color, [][2]float64{
			{lead, base},
			{lead + sweep, tip},
			{lead + sweep + f.Tip, tip},
			{lead + f.Root, base},
		})
	}
	return nil
}

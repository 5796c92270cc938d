package docfile

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

var codecs = []Codec{TOML, YAML, MsgPack}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

func sampleRocket() *document.Rocket {
	r := document.NewRocket("Alpha III")
	r.AeroProperties["cd"] = 0.45
	r.AeroProperties["note"] = "wind tunnel"

	s := document.NewStage("Sustainer")
	nose := document.NewNosecone(document.ShapeTangentOgive, 1, 0.012, 0.09)
	nose.Diameter = 0.025
	nose.Color = &document.Color{R: 200, G: 10, B: 10}
	nose.AddTag(document.TagOpenRocket, "shoulder")
	nose.AddTag(document.TagOpenRocket, "solid")

	tube := document.NewBodytube("Body tube", 0.02, 0.3)
	tube.Diameter = 0.025
	tube.Thickness = 0.0005
	tube.MaterialName = "Cardboard"
	tube.SetDensity(680)

	payload := document.NewMass("Altimeter", 0.015)
	payload.Position = 0.05
	tube.Add(payload)

	fin := document.NewFin("Fin", 0.05, 0.02, 0.04)
	fin.SetSweep(0.03)
	tube.Add(document.NewFinset("Fins", fin, 3))

	s.Add(nose, tube)
	r.AddStage(s)
	return r
}

func TestRocketRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			want := sampleRocket()
			var buf bytes.Buffer
			if err := EncodeRocket(&buf, c, want); err != nil {
				t.Fatalf("EncodeRocket() error: %v", err)
			}
			got, motor, err := Decode(&buf, c)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if motor != nil {
				t.Fatal("Decode() returned a motor for a rocket document")
			}
			if got.Name != want.Name || len(got.Stages) != 1 {
				t.Fatalf("rocket = %q with %d stages", got.Name, len(got.Stages))
			}
			if !near(got.Mass(), want.Mass()) {
				t.Errorf("Mass() = %v, want %v", got.Mass(), want.Mass())
			}
			if !near(got.Length(), want.Length()) {
				t.Errorf("Length() = %v, want %v", got.Length(), want.Length())
			}
			if _, ok := got.AeroProperties["cd"]; !ok {
				t.Error("aero property cd lost")
			}

			comps := got.Stages[0].Components
			nose, ok := comps[0].(*document.Nosecone)
			if !ok {
				t.Fatalf("first component is %T, want *Nosecone", comps[0])
			}
			if nose.Shape != document.ShapeTangentOgive {
				t.Errorf("Shape = %v, want TANGENT_OGIVE", nose.Shape)
			}
			if nose.Color == nil || *nose.Color != (document.Color{R: 200, G: 10, B: 10}) {
				t.Errorf("Color = %v, want {200 10 10}", nose.Color)
			}
			if tags := nose.Tags.Get(document.TagOpenRocket); len(tags) != 2 || tags[1] != "solid" {
				t.Errorf("tags = %v, want [shoulder solid]", tags)
			}

			tube, ok := comps[1].(*document.Bodytube)
			if !ok {
				t.Fatalf("second component is %T, want *Bodytube", comps[1])
			}
			if rho, ok := tube.DensityOverride(); !ok || rho != 680 {
				t.Errorf("DensityOverride() = %v, %v; want 680, true", rho, ok)
			}
			if tube.MaterialName != "Cardboard" {
				t.Errorf("MaterialName = %q, want Cardboard", tube.MaterialName)
			}

			children := tube.Children()
			if len(children) != 2 {
				t.Fatalf("tube has %d children, want 2", len(children))
			}
			fs, ok := children[1].(*document.Finset)
			if !ok {
				t.Fatalf("tube child is %T, want *Finset", children[1])
			}
			if fs.Count() != 3 || len(fs.Fins()) != 3 {
				t.Errorf("finset count = %d with %d fins, want 3", fs.Count(), len(fs.Fins()))
			}
			if proto := fs.Fin(); proto == nil || !proto.HasLinearSweep() || proto.Sweep() != 0.03 {
				t.Errorf("prototype sweep not preserved: %+v", proto)
			}
		})
	}
}

func TestFinSweepAngleRoundTrip(t *testing.T) {
	t.Parallel()

	r := document.NewRocket("angled")
	s := document.NewStage("s")
	fin := document.NewFin("Fin", 0.05, 0.02, 0.04)
	fin.SetSweepAngle(30)
	s.Add(fin)
	r.AddStage(s)

	var buf bytes.Buffer
	if err := EncodeRocket(&buf, YAML, r); err != nil {
		t.Fatalf("EncodeRocket() error: %v", err)
	}
	got, _, err := Decode(&buf, YAML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	f := got.Stages[0].Components[0].(*document.Fin)
	if f.HasLinearSweep() {
		t.Error("decoded fin has a linear sweep, want an angle")
	}
	if a, err := f.SweepAngle(); err != nil || !near(a, 30) {
		t.Errorf("SweepAngle() = %v, %v; want 30", a, err)
	}
}

func sampleMotor() *engine.Engine {
	e := engine.New("F10")
	e.Manufacturer = "Apogee"
	e.Delays = "4-6-8"
	e.SetLength(0.093)
	e.SetDiameter(0.029)
	e.SetPropellantMass(0.0407)
	e.AddTank(engine.Tank{Mass: 0.0434})
	e.SetThrustCurve([]engine.Sample{
		{Time: 0, Thrust: 0},
		{Time: 0.5, Thrust: 20},
		{Time: 4, Thrust: 10},
		{Time: 7, Thrust: 0},
	})
	return e
}

func TestMotorRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			want := sampleMotor()
			var buf bytes.Buffer
			if err := EncodeMotor(&buf, c, want); err != nil {
				t.Fatalf("EncodeMotor() error: %v", err)
			}
			rocket, got, err := Decode(&buf, c)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if rocket != nil {
				t.Fatal("Decode() returned a rocket for a motor document")
			}
			if got.Name != "F10" || got.Manufacturer != "Apogee" || got.Delays != "4-6-8" {
				t.Errorf("header = %q %q %q", got.Name, got.Manufacturer, got.Delays)
			}
			checks := []struct {
				name      string
				got, want float64
			}{
				{"TotalImpulse", got.TotalImpulse(), want.TotalImpulse()},
				{"BurnTime", got.BurnTime(), want.BurnTime()},
				{"ThrustPeak", got.ThrustPeak(), want.ThrustPeak()},
				{"InitialMass", got.InitialMass(), want.InitialMass()},
				{"Isp", got.Isp(), want.Isp()},
			}
			for _, ck := range checks {
				if !near(ck.got, ck.want) {
					t.Errorf("%s() = %v, want %v", ck.name, ck.got, ck.want)
				}
			}
			if len(got.ThrustCurve()) != 4 {
				t.Errorf("len(ThrustCurve()) = %d, want 4", len(got.ThrustCurve()))
			}
			if got.Overrides().TotalImpulse != nil {
				t.Error("derived total impulse was decoded as an override")
			}
		})
	}
}

func TestMotorTOMLHasDerivedSection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodeMotor(&buf, TOML, sampleMotor()); err != nil {
		t.Fatalf("EncodeMotor() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"kind = 'motor'", "[motor.derived]", "class = "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codec Codec
		input string
	}{
		{"unknown kind", YAML, "kind: spaceship\n"},
		{"missing rocket", YAML, "kind: rocket\n"},
		{"missing motor", TOML, "kind = 'motor'\n"},
		{"unknown component", YAML, "kind: rocket\nrocket:\n  name: r\n  stages:\n    - name: s\n      components:\n        - kind: wing\n          name: w\n"},
		{"unknown shape", YAML, "kind: rocket\nrocket:\n  name: r\n  stages:\n    - name: s\n      components:\n        - kind: nosecone\n          name: n\n          shape: pointy\n"},
		{"finset with tube prototype", YAML, "kind: rocket\nrocket:\n  name: r\n  stages:\n    - name: s\n      components:\n        - kind: finset\n          name: f\n          count: 3\n          fin:\n            kind: bodytube\n            name: t\n"},
		{"not toml", TOML, "kind = = ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Decode(strings.NewReader(tt.input), tt.codec)
			if !errors.Is(err, formats.ErrMalformed) {
				t.Fatalf("Decode() error = %v, want ErrMalformed", err)
			}
			var fe *formats.FormatError
			if !errors.As(err, &fe) || fe.Format != tt.codec.String() {
				t.Errorf("error %v is not a %s FormatError", err, tt.codec)
			}
		})
	}
}

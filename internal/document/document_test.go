package document

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestStageMassSum(t *testing.T) {
	t.Parallel()

	stage := NewStage("Booster")
	stage.Add(
		NewNosecone(ShapeCone, 0, 0.7, 0),
		NewBodytube("body", 0, 0),
		NewBodytube("body", 24.1, 0),
	)
	if got := stage.Mass(); !approx(got, 24.8) {
		t.Errorf("Stage.Mass() = %v, want 24.8", got)
	}
}

func TestRocketMassSum(t *testing.T) {
	t.Parallel()

	booster := NewStage("Booster")
	booster.Add(
		NewNosecone(ShapeCone, 0, 0.7, 0),
		NewBodytube("body", 0, 0),
		NewBodytube("body", 24.1, 0),
	)
	fin := NewFin("fin", 0, 0, 0)
	fin.ComponentMass = 0.1
	sustainer := NewStage("Sustainer")
	sustainer.Add(NewBodytube("body", 4.87, 0), fin)

	r := NewRocket("Rocket")
	r.AddStage(booster)
	r.AddStage(sustainer)

	if got := r.Mass(); !approx(got, 29.77) {
		t.Errorf("Rocket.Mass() = %v, want 29.77", got)
	}
}

func TestEmptyRocket(t *testing.T) {
	t.Parallel()

	r := NewRocket("empty")
	if got := r.Mass(); got != 0 {
		t.Errorf("Mass() = %v, want 0", got)
	}
	if got := r.Length(); got != 0 {
		t.Errorf("Length() = %v, want 0", got)
	}
	if got := NewFin("f", 0, 0, 0).Mass(); got != 0 {
		t.Errorf("Fin.Mass() = %v, want 0", got)
	}
}

func TestNestedMassIsRecomputed(t *testing.T) {
	t.Parallel()

	tube := NewBodytube("body", 1.5, 0.6)
	payload := NewMass("payload", 0.25)
	tube.Add(payload)
	tube.Add(NewMass("ballast", 0.05))

	if got := tube.Mass(); !approx(got, 1.8) {
		t.Fatalf("Mass() = %v, want 1.8", got)
	}
	payload.ComponentMass = 1.0
	if got := tube.Mass(); !approx(got, 2.55) {
		t.Errorf("Mass() after edit = %v, want 2.55", got)
	}
}

func TestRocketLengthUsesTopStage(t *testing.T) {
	t.Parallel()

	top := NewStage("Sustainer")
	top.Add(NewNosecone(ShapeTangentOgive, 0, 0.1, 0.3), NewBodytube("body", 0.4, 0.9))
	bottom := NewStage("Booster")
	bottom.Add(NewBodytube("booster", 0.8, 2.0))

	r := NewRocket("two stage")
	r.AddStage(top)
	r.AddStage(bottom)

	if got := r.Length(); !approx(got, 1.2) {
		t.Errorf("Length() = %v, want 1.2", got)
	}
}

func TestFinSweepDuality(t *testing.T) {
	t.Parallel()

	f := NewFin("fin", 1, 1, 1)
	f.SetSweep(0.234)

	if got := f.Sweep(); got != 0.234 {
		t.Errorf("Sweep() = %v, want 0.234", got)
	}
	angle, err := f.SweepAngle()
	if err != nil {
		t.Fatalf("SweepAngle() error: %v", err)
	}
	if math.Abs(angle-13.1702) > 1e-4 {
		t.Errorf("SweepAngle() = %v, want ~13.1702", angle)
	}

	f.SetSweepAngle(30)
	if f.HasLinearSweep() {
		t.Error("SetSweepAngle should clear the linear sweep")
	}
	if got := f.Sweep(); !approx(got, math.Tan(math.Pi/6)) {
		t.Errorf("Sweep() from angle = %v, want %v", got, math.Tan(math.Pi/6))
	}
}

func TestFinDefaultAngle(t *testing.T) {
	t.Parallel()

	f := NewFin("fin", 0.1, 0.05, 0.2)
	angle, err := f.SweepAngle()
	if err != nil || angle != DefaultSweepAngle {
		t.Errorf("SweepAngle() = %v, %v; want %v, nil", angle, err, DefaultSweepAngle)
	}
	if got := f.Sweep(); !approx(got, 0.2) {
		t.Errorf("Sweep() = %v, want 0.2", got)
	}
	if got := f.Area(); !approx(got, 0.015) {
		t.Errorf("Area() = %v, want 0.015", got)
	}
}

func TestFinZeroSpan(t *testing.T) {
	t.Parallel()

	f := NewFin("fin", 1, 1, 0)
	f.SetSweep(0.5)
	angle, err := f.SweepAngle()
	if !errors.Is(err, ErrZeroSpan) {
		t.Errorf("SweepAngle() error = %v, want ErrZeroSpan", err)
	}
	if angle != 0 {
		t.Errorf("SweepAngle() = %v, want 0", angle)
	}
}

func TestFinsetReplication(t *testing.T) {
	t.Parallel()

	proto := NewFin("proto", 0.1, 0.05, 0.08)
	proto.ComponentMass = 0.02
	fs := NewFinset("Fins", proto, 4)

	fins := fs.Fins()
	if len(fins) != 4 {
		t.Fatalf("len(Fins()) = %d, want 4", len(fins))
	}
	for i, f := range fins {
		want := "Fin " + string(rune('1'+i))
		if f.Name != want {
			t.Errorf("fin %d name = %q, want %q", i, f.Name, want)
		}
		if f == proto {
			t.Errorf("fin %d aliases the prototype", i)
		}
	}
	if got := fs.Mass(); !approx(got, 0.08) {
		t.Errorf("Mass() = %v, want 0.08", got)
	}

	// Editing a generated fin leaves the prototype and siblings alone.
	fins[0].Root = 9
	if proto.Root != 0.1 || fins[1].Root != 0.1 {
		t.Error("generated fins must be independent copies")
	}

	fs.SetCount(3)
	if got := len(fs.Children()); got != 3 {
		t.Errorf("after SetCount(3) children = %d, want 3", got)
	}
	fs.SetCount(-2)
	if got := len(fs.Children()); got != 0 {
		t.Errorf("after SetCount(-2) children = %d, want 0", got)
	}

	fs.SetCount(2)
	heavier := NewFin("heavy", 0.1, 0.05, 0.08)
	heavier.ComponentMass = 0.5
	fs.SetFin(heavier)
	if got := fs.Mass(); !approx(got, 1.0) {
		t.Errorf("Mass() after SetFin = %v, want 1.0", got)
	}
}

func TestBodytubeDensity(t *testing.T) {
	t.Parallel()

	shell := func(mass float64) *Bodytube {
		b := NewBodytube("tube", mass, 1)
		b.Diameter = 0.1
		b.Thickness = 0.002
		return b
	}
	vol := math.Pi * 1 * (0.05*0.05 - 0.048*0.048)

	tests := []struct {
		name string
		tube func() *Bodytube
		want float64
	}{
		{
			name: "override with no mass",
			tube: func() *Bodytube { b := shell(0); b.SetDensity(1850); return b },
			want: 1850,
		},
		{
			name: "derived from mass and annulus",
			tube: func() *Bodytube { return shell(0.5) },
			want: 0.5 / vol,
		},
		{
			name: "mass wins over override",
			tube: func() *Bodytube { b := shell(0.5); b.SetDensity(1850); return b },
			want: 0.5 / vol,
		},
		{
			name: "zero diameter yields zero",
			tube: func() *Bodytube { b := shell(0.5); b.Diameter = 0; return b },
			want: 0,
		},
		{
			name: "no thickness falls back to override",
			tube: func() *Bodytube { b := shell(0.5); b.Thickness = 0; b.SetDensity(700); return b },
			want: 700,
		},
		{
			name: "nothing known",
			tube: func() *Bodytube { return NewBodytube("tube", 0.5, 1) },
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.tube().Density(); !approx(got, tt.want) {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	tube := NewBodytube("body", 1, 1)
	tube.Color = &Color{R: 10, G: 20, B: 30}
	tube.AddTag(TagOpenRocket, "finish:normal")
	tube.Add(NewMass("avionics", 0.3))

	cp := tube.Clone().(*Bodytube)
	cp.Color.R = 99
	cp.AddTag(TagOpenRocket, "extra")
	cp.Children()[0].Common().ComponentMass = 5

	if tube.Color.R != 10 {
		t.Error("clone shares colour")
	}
	if got := len(tube.Tags.Get(TagOpenRocket)); got != 1 {
		t.Errorf("original tags = %d, want 1", got)
	}
	if got := tube.Mass(); !approx(got, 1.3) {
		t.Errorf("original Mass() = %v, want 1.3", got)
	}
}

func TestTagsPreserveOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	var tags Tags
	tags.Add(TagRockSim, "b")
	tags.Add(TagOpenRocket, "x")
	tags.Add(TagRockSim, "a")
	tags.Add(TagRockSim, "b")

	classes := tags.Classes()
	if len(classes) != 2 || classes[0] != TagRockSim || classes[1] != TagOpenRocket {
		t.Errorf("Classes() = %v, want [RockSim OpenRocket]", classes)
	}
	got := tags.Get(TagRockSim)
	want := []string{"b", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Get() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Get()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if tags.Has(TagRASP) {
		t.Error("Has(RASP) = true, want false")
	}
}

func TestParseNoseShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    NoseShape
		wantErr bool
	}{
		{in: "CONE", want: ShapeCone},
		{in: "tangent ogive", want: ShapeTangentOgive},
		{in: "haack-series", want: ShapeHaackSeries},
		{in: "VONKARMAN", want: ShapeVonKarman},
		{in: "teardrop", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseNoseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNoseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseNoseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() == "" {
			t.Errorf("String() empty for %v", got)
		}
	}
}

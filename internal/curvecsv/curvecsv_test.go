package curvecsv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	in := "time_s,thrust_n,mass_kg,cg_m\n" +
		"1,0,0,0\n" +
		"0,500,0.1,0.05\n" +
		"0.5,500,0.05,0.05\n"
	e, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	curve := e.ThrustCurve()
	if len(curve) != 3 {
		t.Fatalf("len(ThrustCurve()) = %d, want 3", len(curve))
	}
	if curve[0].Time != 0 || curve[2].Time != 1 {
		t.Errorf("curve not sorted: %+v", curve)
	}
	if curve[0].Mass != 0.1 || curve[0].CG != 0.05 {
		t.Errorf("sample 0 = %+v, want mass 0.1 cg 0.05", curve[0])
	}
	if got := e.TotalImpulse(); got != 375 {
		t.Errorf("TotalImpulse() = %v, want 375", got)
	}
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()

	e := engine.New("flat")
	e.SetThrustAvg(20)
	e.SetBurnTime(4)

	var buf bytes.Buffer
	if err := Write(&buf, e, Options{CurveSamples: 5}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "time_s,thrust_n,mass_kg,cg_m") {
		t.Errorf("Write() header = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n := len(got.ThrustCurve()); n != 5 {
		t.Errorf("samples = %d, want 5", n)
	}
	if got.TotalImpulse() != 80 {
		t.Errorf("TotalImpulse() = %v, want 80", got.TotalImpulse())
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"empty":         "time_s,thrust_n\n",
		"bad number":    "time_s,thrust_n\nabc,1\n",
		"negative time": "time_s,thrust_n\n-1,5\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(strings.NewReader(in)); !errors.Is(err, formats.ErrMalformed) {
				t.Errorf("Load() error = %v, want ErrMalformed", err)
			}
		})
	}
}

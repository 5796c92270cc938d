package convert

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/curvecsv"
	"github.com/papapumpkin/rocketdoc/internal/docfile"
	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/jsbsim"
	"github.com/papapumpkin/rocketdoc/internal/openrocket"
	"github.com/papapumpkin/rocketdoc/internal/rasp"
	"github.com/papapumpkin/rocketdoc/internal/rocksim"
	"github.com/papapumpkin/rocketdoc/internal/svg"
)

// Options carries the tunables every adapter may need.
type Options struct {
	CurveSamples int
	SVGScale     float64
	BuildupTime  float64
	OpenRocket   openrocket.Options
}

// Format describes one registered file format. A nil reader or writer means
// the format does not support that direction for that document kind.
type Format struct {
	Name        string
	Extensions  []string
	Description string

	readMotor   func(data []byte) (*engine.Engine, error)
	readRocket  func(data []byte, opts Options) (*document.Rocket, error)
	readAny     func(data []byte) (*document.Rocket, *engine.Engine, error)
	writeMotor  func(w io.Writer, e *engine.Engine, opts Options) error
	writeRocket func(w io.Writer, r *document.Rocket, opts Options) error
}

// ReadsMotor reports whether the format can load a motor.
func (f Format) ReadsMotor() bool { return f.readMotor != nil || f.readAny != nil }

// ReadsRocket reports whether the format can load a rocket.
func (f Format) ReadsRocket() bool { return f.readRocket != nil || f.readAny != nil }

// WritesMotor reports whether the format can write a motor.
func (f Format) WritesMotor() bool { return f.writeMotor != nil }

// WritesRocket reports whether the format can write a rocket.
func (f Format) WritesRocket() bool { return f.writeRocket != nil }

// Formats returns the registered formats in display order.
func Formats() []Format {
	return []Format{
		{
			Name:        "rasp",
			Extensions:  []string{".eng"},
			Description: "RASP motor file",
			readMotor: func(data []byte) (*engine.Engine, error) {
				return rasp.Load(bytes.NewReader(data))
			},
			writeMotor: func(w io.Writer, e *engine.Engine, o Options) error {
				return rasp.Write(w, e, rasp.Options{CurveSamples: o.CurveSamples})
			},
		},
		{
			Name:        "rocksim",
			Extensions:  []string{".rse"},
			Description: "RockSim motor database",
			readMotor: func(data []byte) (*engine.Engine, error) {
				return rocksim.Load(bytes.NewReader(data))
			},
			writeMotor: func(w io.Writer, e *engine.Engine, o Options) error {
				return rocksim.Write(w, e, rocksim.Options{CurveSamples: o.CurveSamples})
			},
		},
		{
			Name:        "csv",
			Extensions:  []string{".csv"},
			Description: "thrust curve table",
			readMotor: func(data []byte) (*engine.Engine, error) {
				return curvecsv.Load(bytes.NewReader(data))
			},
			writeMotor: func(w io.Writer, e *engine.Engine, o Options) error {
				return curvecsv.Write(w, e, curvecsv.Options{CurveSamples: o.CurveSamples})
			},
		},
		{
			Name:        "openrocket",
			Extensions:  []string{".ork"},
			Description: "OpenRocket design",
			readRocket: func(data []byte, o Options) (*document.Rocket, error) {
				f, err := openrocket.LoadBytes(data, o.OpenRocket)
				if err != nil {
					return nil, err
				}
				return f.Rocket, nil
			},
		},
		{
			Name:        "jsbsim",
			Extensions:  []string{".xml"},
			Description: "JSBSim engine or aircraft definition",
			writeMotor: func(w io.Writer, e *engine.Engine, o Options) error {
				return jsbsim.WriteEngine(w, e, jsbsim.Options{CurveSamples: o.CurveSamples, BuildupTime: o.BuildupTime})
			},
			writeRocket: func(w io.Writer, r *document.Rocket, _ Options) error {
				return jsbsim.WriteAircraft(w, r)
			},
		},
		{
			Name:        "svg",
			Extensions:  []string{".svg"},
			Description: "side profile drawing",
			writeRocket: func(w io.Writer, r *document.Rocket, o Options) error {
				return svg.Write(w, r, svg.Options{Scale: o.SVGScale})
			},
		},
		docfileFormat("toml", docfile.TOML, ".toml"),
		docfileFormat("yaml", docfile.YAML, ".yaml", ".yml"),
		docfileFormat("msgpack", docfile.MsgPack, ".msgpack", ".mpk"),
	}
}

func docfileFormat(name string, c docfile.Codec, exts ...string) Format {
	return Format{
		Name:        name,
		Extensions:  exts,
		Description: "rocketdoc document (" + c.String() + ")",
		readAny: func(data []byte) (*document.Rocket, *engine.Engine, error) {
			return docfile.Decode(bytes.NewReader(data), c)
		},
		writeMotor: func(w io.Writer, e *engine.Engine, _ Options) error {
			return docfile.EncodeMotor(w, c, e)
		},
		writeRocket: func(w io.Writer, r *document.Rocket, _ Options) error {
			return docfile.EncodeRocket(w, c, r)
		},
	}
}

// Lookup returns the format registered under name, ignoring case.
func Lookup(name string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if f.Name == want {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ForPath picks a format from the file extension of path.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats() {
		for _, e := range f.Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return Format{}, fmt.Errorf("%w: no format for extension %q", ErrUnknownFormat, ext)
}

// resolve returns the named format, or the one matching path when name is empty.
func resolve(name, path string) (Format, error) {
	if name != "" {
		return Lookup(name)
	}
	return ForPath(path)
}

// Package docfile is the canonical on-disk form of documents: a rocket or a
// motor wrapped in a small envelope and encoded as TOML, YAML or msgpack.
//
// Motors are stored by what they were given (overrides, tanks, curve), not
// by derived values, so a decoded motor re-derives exactly what the encoded
// one did. A read-only "derived" section is written for human readers and
// ignored on decode.
package docfile

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

// Codec selects the serialisation.
type Codec int

// Supported codecs.
const (
	TOML Codec = iota
	YAML
	MsgPack
)

// String returns the codec name used in FormatError.
func (c Codec) String() string {
	switch c {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case MsgPack:
		return "msgpack"
	}
	return fmt.Sprintf("codec(%d)", int(c))
}

// Envelope kinds.
const (
	KindRocket = "rocket"
	KindMotor  = "motor"
)

type envelope struct {
	Kind   string     `toml:"kind" yaml:"kind" msgpack:"kind"`
	Rocket *rocketDTO `toml:"rocket,omitempty" yaml:"rocket,omitempty" msgpack:"rocket,omitempty"`
	Motor  *motorDTO  `toml:"motor,omitempty" yaml:"motor,omitempty" msgpack:"motor,omitempty"`
}

func (c Codec) marshal(v any) ([]byte, error) {
	switch c {
	case TOML:
		return toml.Marshal(v)
	case YAML:
		return yaml.Marshal(v)
	case MsgPack:
		return msgpack.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %s", formats.ErrUnsupported, c)
}

func (c Codec) unmarshal(data []byte, v any) error {
	switch c {
	case TOML:
		return toml.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	case MsgPack:
		return msgpack.Unmarshal(data, v)
	}
	return fmt.Errorf("%w: %s", formats.ErrUnsupported, c)
}

// EncodeRocket writes r as a rocket document.
func EncodeRocket(w io.Writer, c Codec, r *document.Rocket) error {
	return c.encode(w, envelope{Kind: KindRocket, Rocket: rocketToDTO(r)})
}

// EncodeMotor writes e as a motor document.
func EncodeMotor(w io.Writer, c Codec, e *engine.Engine) error {
	return c.encode(w, envelope{Kind: KindMotor, Motor: motorToDTO(e)})
}

func (c Codec) encode(w io.Writer, env envelope) error {
	data, err := c.marshal(env)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", c, err)
	}
	return nil
}

// Decode reads a document. Exactly one of the returned rocket and motor is
// non-nil on success.
func Decode(r io.Reader, c Codec) (*document.Rocket, *engine.Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", c, err)
	}
	var env envelope
	if err := c.unmarshal(data, &env); err != nil {
		return nil, nil, &formats.FormatError{Format: c.String(), Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
	}

	switch env.Kind {
	case KindRocket:
		if env.Rocket == nil {
			return nil, nil, formats.Malformed(c.String(), 0, "rocket", "missing rocket table")
		}
		rocket, err := env.Rocket.toDocument(c.String())
		return rocket, nil, err
	case KindMotor:
		if env.Motor == nil {
			return nil, nil, formats.Malformed(c.String(), 0, "motor", "missing motor table")
		}
		return nil, env.Motor.toEngine(), nil
	default:
		return nil, nil, formats.Malformed(c.String(), 0, "kind", fmt.Sprintf("unknown document kind %q", env.Kind))
	}
}

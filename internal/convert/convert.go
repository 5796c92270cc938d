// Package convert moves documents between files. It owns the format
// registry, resolves formats from names or extensions, and records every
// load and write through the structured logger and the telemetry stream.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/logging"
	"github.com/papapumpkin/rocketdoc/internal/telemetry"
)

// Document is a loaded file: exactly one of Rocket and Engine is set.
type Document struct {
	Rocket *document.Rocket
	Engine *engine.Engine
	Format string // name of the format it was read with
	Source string // path it was read from
}

// Kind returns "rocket", "motor" or "" for an empty document.
func (d *Document) Kind() string {
	switch {
	case d.Rocket != nil:
		return "rocket"
	case d.Engine != nil:
		return "motor"
	}
	return ""
}

// Validate reports structural problems in whichever entity the document holds.
func (d *Document) Validate() []error {
	var out []error
	switch {
	case d.Rocket != nil:
		for _, v := range document.Validate(d.Rocket) {
			out = append(out, &v)
		}
	case d.Engine != nil:
		for _, v := range engine.Validate(d.Engine) {
			out = append(out, &v)
		}
	default:
		out = append(out, ErrEmptyDocument)
	}
	return out
}

// Converter loads and writes documents. The zero value works with a
// no-op logger and no telemetry.
type Converter struct {
	Options   Options
	Logger    logging.Logger
	Telemetry *telemetry.Emitter
}

func (c *Converter) log() logging.Logger {
	if c.Logger == nil {
		return logging.Noop()
	}
	return c.Logger
}

// LoadFile reads path with the named format, or the format matching its
// extension when format is empty.
func (c *Converter) LoadFile(ctx context.Context, path, format string) (*Document, error) {
	doc, err := c.load(path, format)
	if err != nil {
		c.failed(ctx, path, "", format, err)
		return nil, err
	}
	c.log().Info(ctx, "document loaded",
		logging.String("path", path), logging.String("format", doc.Format), logging.String("kind", doc.Kind()))
	c.emit(ctx, telemetry.Event{
		Kind:   telemetry.KindDocumentLoaded,
		Source: path,
		Format: doc.Format,
		Data:   map[string]string{"kind": doc.Kind()},
	})
	return doc, nil
}

func (c *Converter) load(path, format string) (*Document, error) {
	f, err := resolve(format, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := &Document{Format: f.Name, Source: path}
	switch {
	case f.readAny != nil:
		doc.Rocket, doc.Engine, err = f.readAny(data)
	case f.readMotor != nil:
		doc.Engine, err = f.readMotor(data)
		if err == nil && f.Name == "csv" {
			doc.Engine.Name = stem(path)
		}
	case f.readRocket != nil:
		doc.Rocket, err = f.readRocket(data, c.Options)
	default:
		return nil, fmt.Errorf("%w: %s", ErrCannotRead, f.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile writes doc to path with the named format, or the format matching
// the extension when format is empty. An existing file is replaced only when
// overwrite is set.
func (c *Converter) WriteFile(ctx context.Context, doc *Document, path, format string, overwrite bool) error {
	f, err := c.write(doc, path, format, overwrite)
	if err != nil {
		c.failed(ctx, doc.Source, path, format, err)
		return err
	}
	c.log().Info(ctx, "document written",
		logging.String("path", path), logging.String("format", f.Name), logging.String("kind", doc.Kind()))
	c.emit(ctx, telemetry.Event{
		Kind:   telemetry.KindDocumentWritten,
		Source: doc.Source,
		Target: path,
		Format: f.Name,
		Data:   map[string]string{"kind": doc.Kind()},
	})
	return nil
}

func (c *Converter) write(doc *Document, path, format string, overwrite bool) (Format, error) {
	f, err := resolve(format, path)
	if err != nil {
		return Format{}, err
	}

	var buf bytes.Buffer
	switch {
	case doc.Engine != nil && f.writeMotor != nil:
		err = f.writeMotor(&buf, doc.Engine, c.Options)
	case doc.Rocket != nil && f.writeRocket != nil:
		err = f.writeRocket(&buf, doc.Rocket, c.Options)
	case doc.Kind() == "":
		return f, ErrEmptyDocument
	default:
		return f, fmt.Errorf("%w: %s cannot write a %s", ErrCannotWrite, f.Name, doc.Kind())
	}
	if err != nil {
		return f, fmt.Errorf("encoding %s: %w", f.Name, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	out, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return f, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return f, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := buf.WriteTo(out); err != nil {
		out.Close()
		return f, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return f, fmt.Errorf("closing %s: %w", path, err)
	}
	return f, nil
}

// Convert loads in and writes it to out. inFormat and outFormat may be empty
// to select by extension.
func (c *Converter) Convert(ctx context.Context, in, inFormat, out, outFormat string, overwrite bool) (*Document, error) {
	doc, err := c.LoadFile(ctx, in, inFormat)
	if err != nil {
		return nil, err
	}
	if err := c.WriteFile(ctx, doc, out, outFormat, overwrite); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Converter) failed(ctx context.Context, source, target, format string, err error) {
	c.log().Error(ctx, "conversion failed",
		logging.String("source", source), logging.String("target", target), logging.Err(err))
	c.emit(ctx, telemetry.Event{
		Kind:   telemetry.KindConversionFailed,
		Source: source,
		Target: target,
		Format: format,
		Data:   map[string]string{"error": err.Error()},
	})
}

func (c *Converter) emit(ctx context.Context, evt telemetry.Event) {
	if err := c.Telemetry.Emit(evt); err != nil {
		c.log().Warn(ctx, "telemetry emit failed", logging.Err(err))
	}
}

// OutputPath names the file written into dir for source converted to the
// named format.
func OutputPath(source, dir, format string) (string, error) {
	f, err := Lookup(format)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stem(source)+f.Extensions[0]), nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

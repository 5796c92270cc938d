// Package openrocket reads OpenRocket design files (.ork) into the document
// model. A design file is either a zip archive holding the XML, a gzip
// stream, or the bare XML. Only airframe parts the model can represent are
// read (nosecone, body tube, mass component and trapezoidal finset); parts
// of other types are skipped but their children are kept.
package openrocket

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/rocketdoc/internal/document"
	"github.com/papapumpkin/rocketdoc/internal/formats"
)

const formatName = "openrocket"

// Options controls how loose OpenRocket values are mapped onto the model.
type Options struct {
	// FinishRoughness maps a surface finish name to roughness in micrometres.
	FinishRoughness map[string]float64
	// DefaultRoughness is used for finish names missing from FinishRoughness.
	DefaultRoughness float64
}

// DefaultOptions returns the finish table OpenRocket itself uses.
func DefaultOptions() Options {
	return Options{
		FinishRoughness: map[string]float64{
			"rough":      500,
			"unfinished": 150,
			"normal":     60,
			"smooth":     20,
			"polished":   2,
		},
		DefaultRoughness: 60,
	}
}

// File is a loaded design file.
type File struct {
	// Version and Creator are the attributes of the root element.
	Version string
	Creator string
	Rocket  *document.Rocket
}

// node is a generic XML element.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n *node) text() string { return strings.TrimSpace(n.Text) }

func (n *node) child(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

// Load reads a design file of the given size from r.
func Load(r io.ReaderAt, size int64, opts Options) (*File, error) {
	raw, err := readDesign(r, size)
	if err != nil {
		return nil, err
	}

	var root node
	if err := xml.Unmarshal(raw, &root); err != nil {
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			return nil, formats.Malformed(formatName, syn.Line, "", syn.Msg)
		}
		return nil, &formats.FormatError{Format: formatName, Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
	}
	if root.XMLName.Local != "openrocket" {
		return nil, formats.Malformed(formatName, 0, root.XMLName.Local, "root element is not <openrocket>")
	}

	f := &File{Version: root.attr("version"), Creator: root.attr("creator")}
	rn := root.child("rocket")
	if rn == nil {
		return nil, formats.Malformed(formatName, 0, "rocket", "no <rocket> element")
	}

	l := &loader{opts: opts}
	f.Rocket, err = l.rocket(rn)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// LoadBytes is Load over an in-memory file.
func LoadBytes(data []byte, opts Options) (*File, error) {
	return Load(bytes.NewReader(data), int64(len(data)), opts)
}

// readDesign unwraps the container and returns the design XML.
func readDesign(r io.ReaderAt, size int64) ([]byte, error) {
	magic := make([]byte, 4)
	n, _ := r.ReadAt(magic, 0)
	magic = magic[:n]

	switch {
	case bytes.HasPrefix(magic, []byte("PK\x03\x04")):
		zr, err := zip.NewReader(r, size)
		if err != nil {
			return nil, &formats.FormatError{Format: formatName, Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
		}
		if len(zr.File) == 0 {
			return nil, formats.Malformed(formatName, 0, "", "empty archive")
		}
		entry := zr.File[0]
		for _, zf := range zr.File {
			if strings.HasSuffix(strings.ToLower(zf.Name), ".ork") {
				entry = zf
				break
			}
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", entry.Name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	case bytes.HasPrefix(magic, []byte{0x1f, 0x8b}):
		gz, err := gzip.NewReader(io.NewSectionReader(r, 0, size))
		if err != nil {
			return nil, &formats.FormatError{Format: formatName, Err: fmt.Errorf("%w: %v", formats.ErrMalformed, err)}
		}
		defer gz.Close()
		return io.ReadAll(gz)
	default:
		return io.ReadAll(io.NewSectionReader(r, 0, size))
	}
}

package layoutcodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Format names.
const (
	FormatXML  = "xml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported formats.
func Formats() []string {
	return []string{FormatXML, FormatYAML, FormatJSON}
}

// New returns the codec for format ("yml" is accepted for YAML).
func New(format string, indent bool) (port.LayoutCodec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatXML:
		return NewXMLCodec(indent), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	case FormatJSON:
		return NewJSONCodec(indent), nil
	default:
		return nil, fmt.Errorf("unknown layout format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Sniff guesses the format from the first meaningful byte of data.
func Sniff(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("<")):
		return FormatXML
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	default:
		return FormatYAML
	}
}

// YAMLCodec stores layout state as YAML.
type YAMLCodec struct{}

var _ port.LayoutCodec = (*YAMLCodec)(nil)

// NewYAMLCodec creates a YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format implements port.LayoutCodec.
func (c *YAMLCodec) Format() string {
	return FormatYAML
}

// Encode implements port.LayoutCodec.
func (c *YAMLCodec) Encode(state *entity.LayoutState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("layout state is nil")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(state); err != nil {
		return nil, fmt.Errorf("encode yaml layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml layout: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode implements port.LayoutCodec.
func (c *YAMLCodec) Decode(data []byte) (*entity.LayoutState, error) {
	var state entity.LayoutState
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
	}
	return &state, nil
}

// JSONCodec stores layout state as JSON.
type JSONCodec struct {
	indent bool
}

var _ port.LayoutCodec = (*JSONCodec)(nil)

// NewJSONCodec creates a JSON codec. indent pretty-prints the output.
func NewJSONCodec(indent bool) *JSONCodec {
	return &JSONCodec{indent: indent}
}

// Format implements port.LayoutCodec.
func (c *JSONCodec) Format() string {
	return FormatJSON
}

// Encode implements port.LayoutCodec.
func (c *JSONCodec) Encode(state *entity.LayoutState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("layout state is nil")
	}
	var (
		data []byte
		err  error
	)
	if c.indent {
		data, err = json.MarshalIndent(state, "", "  ")
	} else {
		data, err = json.Marshal(state)
	}
	if err != nil {
		return nil, fmt.Errorf("encode json layout: %w", err)
	}
	return data, nil
}

// Decode implements port.LayoutCodec.
func (c *JSONCodec) Decode(data []byte) (*entity.LayoutState, error) {
	var state entity.LayoutState
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
	}
	return &state, nil
}

// Convert re-encodes data from one codec into another.
func Convert(data []byte, from, to port.LayoutCodec) ([]byte, error) {
	state, err := from.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return to.Encode(state)
}

// AutoCodec encodes with one codec and decodes whatever format the data is
// in, so blobs written under an earlier format setting stay readable.
type AutoCodec struct {
	encoder port.LayoutCodec
	indent  bool
}

var _ port.LayoutCodec = (*AutoCodec)(nil)

// NewAutoCodec wraps encoder.
func NewAutoCodec(encoder port.LayoutCodec, indent bool) *AutoCodec {
	return &AutoCodec{encoder: encoder, indent: indent}
}

// Format implements port.LayoutCodec.
func (c *AutoCodec) Format() string {
	return c.encoder.Format()
}

// Encode implements port.LayoutCodec.
func (c *AutoCodec) Encode(state *entity.LayoutState) ([]byte, error) {
	return c.encoder.Encode(state)
}

// Decode implements port.LayoutCodec.
func (c *AutoCodec) Decode(data []byte) (*entity.LayoutState, error) {
	format := Sniff(data)
	if format == c.encoder.Format() {
		return c.encoder.Decode(data)
	}
	codec, err := New(format, c.indent)
	if err != nil {
		return nil, err
	}
	return codec.Decode(data)
}

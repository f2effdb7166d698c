// Package perspectivexml reads and writes perspective documents: a single
// <Perspective> for import/export and a <Perspectives> bundle for bulk storage.
package perspectivexml

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// TimeLayout is the timestamp format of the created and modified attributes.
const TimeLayout = time.RFC3339

type xmlLayout struct {
	Data string `xml:",cdata"`
}

type xmlPerspective struct {
	XMLName     xml.Name   `xml:"Perspective"`
	Name        string     `xml:"name,attr"`
	Description string     `xml:"description,attr"`
	Created     string     `xml:"created,attr,omitempty"`
	Modified    string     `xml:"modified,attr,omitempty"`
	Layout      *xmlLayout `xml:"Layout"`
	Preview     string     `xml:"Preview,omitempty"`
}

type xmlPerspectives struct {
	XMLName      xml.Name         `xml:"Perspectives"`
	Current      string           `xml:"current,attr"`
	Perspectives []xmlPerspective `xml:"Perspective"`
}

// Codec implements port.PerspectiveCodec.
type Codec struct {
	indent bool
}

var _ port.PerspectiveCodec = (*Codec)(nil)

// NewCodec returns a codec. indent pretty-prints the output.
func NewCodec(indent bool) *Codec {
	return &Codec{indent: indent}
}

// EncodePerspective writes p as a standalone <Perspective> document.
func (c *Codec) EncodePerspective(w io.Writer, p *entity.Perspective) error {
	if p == nil {
		return fmt.Errorf("nil perspective")
	}
	return c.encode(w, toXML(p))
}

// DecodePerspective reads a standalone <Perspective> document.
func (c *Codec) DecodePerspective(r io.Reader) (*entity.Perspective, error) {
	var doc xmlPerspective
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedState, err)
	}
	return fromXML(doc)
}

// EncodeSet writes the whole named map as a <Perspectives> bundle.
func (c *Codec) EncodeSet(w io.Writer, set *entity.PerspectiveSet) error {
	doc := xmlPerspectives{}
	if set != nil {
		doc.Current = set.Current
		for _, p := range set.Perspectives {
			if p == nil {
				continue
			}
			doc.Perspectives = append(doc.Perspectives, toXML(p))
		}
	}
	return c.encode(w, doc)
}

// DecodeSet reads a <Perspectives> bundle. Entries without a name or layout
// are skipped.
func (c *Codec) DecodeSet(r io.Reader) (*entity.PerspectiveSet, error) {
	var doc xmlPerspectives
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedState, err)
	}
	set := &entity.PerspectiveSet{Current: doc.Current}
	for _, x := range doc.Perspectives {
		p, err := fromXML(x)
		if err != nil {
			return nil, err
		}
		if p.Name == "" || len(p.Layout) == 0 {
			continue
		}
		set.Perspectives = append(set.Perspectives, p)
	}
	return set, nil
}

func (c *Codec) encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if c.indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode perspective: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func toXML(p *entity.Perspective) xmlPerspective {
	x := xmlPerspective{
		Name:        p.Name,
		Description: p.Description,
		Layout:      &xmlLayout{Data: string(p.Layout)},
	}
	if !p.Created.IsZero() {
		x.Created = p.Created.UTC().Format(TimeLayout)
	}
	if !p.Modified.IsZero() {
		x.Modified = p.Modified.UTC().Format(TimeLayout)
	}
	if len(p.Preview) > 0 {
		x.Preview = base64.StdEncoding.EncodeToString(p.Preview)
	}
	return x
}

func fromXML(x xmlPerspective) (*entity.Perspective, error) {
	p := &entity.Perspective{
		Name:        x.Name,
		Description: x.Description,
	}
	if x.Layout != nil {
		p.Layout = []byte(x.Layout.Data)
	}

	var err error
	if x.Created != "" {
		if p.Created, err = time.Parse(TimeLayout, x.Created); err != nil {
			return nil, fmt.Errorf("%w: perspective %q: created: %v", entity.ErrMalformedState, x.Name, err)
		}
	}
	if x.Modified != "" {
		if p.Modified, err = time.Parse(TimeLayout, x.Modified); err != nil {
			return nil, fmt.Errorf("%w: perspective %q: modified: %v", entity.ErrMalformedState, x.Name, err)
		}
	}
	if preview := strings.TrimSpace(x.Preview); preview != "" {
		if p.Preview, err = base64.StdEncoding.DecodeString(preview); err != nil {
			return nil, fmt.Errorf("%w: perspective %q: preview: %v", entity.ErrMalformedState, x.Name, err)
		}
	}
	return p, nil
}

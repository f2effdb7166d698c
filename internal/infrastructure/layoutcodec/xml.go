// Package layoutcodec implements port.LayoutCodec for XML, YAML and JSON.
package layoutcodec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	xmlSplitter = "Splitter"
	xmlArea     = "Area"
	xmlWidget   = "Widget"
)

// XMLCodec reads and writes the <DockingState Version="1"> document.
type XMLCodec struct {
	indent bool
}

var _ port.LayoutCodec = (*XMLCodec)(nil)

// NewXMLCodec creates an XML codec. indent pretty-prints the output.
func NewXMLCodec(indent bool) *XMLCodec {
	return &XMLCodec{indent: indent}
}

// Format implements port.LayoutCodec.
func (c *XMLCodec) Format() string {
	return FormatXML
}

type xmlDockingState struct {
	XMLName  xml.Name       `xml:"DockingState"`
	Version  int            `xml:"Version,attr"`
	Widgets  []xmlWidgetDef `xml:"DockWidgets>Widget"`
	Main     xmlContainer   `xml:"Container"`
	Floating []xmlFloating  `xml:"FloatingWidgets>Floating"`
	Active   string         `xml:"ActiveWidget,omitempty"`
}

type xmlWidgetDef struct {
	Name     string       `xml:"Name,attr"`
	Closed   bool         `xml:"Closed,attr"`
	AutoHide string       `xml:"AutoHide,attr,omitempty"`
	Features []xmlFeature `xml:"Feature"`
}

type xmlFeature struct {
	Name    string `xml:"Name,attr"`
	Enabled bool   `xml:"Enabled,attr"`
}

type xmlContainer struct {
	Nodes []xmlNode `xml:",any"`
}

type xmlFloating struct {
	Title     string       `xml:"Title,attr,omitempty"`
	X         int          `xml:"X,attr"`
	Y         int          `xml:"Y,attr"`
	W         int          `xml:"Width,attr"`
	H         int          `xml:"Height,attr"`
	Container xmlContainer `xml:"Container"`
}

// xmlNode is a Splitter, an Area or an Area's Widget reference.
type xmlNode struct {
	XMLName     xml.Name
	Orientation string    `xml:"Orientation,attr,omitempty"`
	Sizes       string    `xml:"Sizes,attr,omitempty"`
	Current     string    `xml:"Current,attr,omitempty"`
	Name        string    `xml:"Name,attr,omitempty"`
	Children    []xmlNode `xml:",any"`
}

// Encode implements port.LayoutCodec.
func (c *XMLCodec) Encode(state *entity.LayoutState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("layout state is nil")
	}
	doc := xmlDockingState{
		Version: state.Version,
		Main:    encodeXMLContainer(state.Main),
		Active:  state.ActiveWidget,
	}
	for _, w := range state.Widgets {
		def := xmlWidgetDef{Name: w.Name, Closed: w.Closed, AutoHide: string(w.AutoHide)}
		for _, o := range w.Features {
			def.Features = append(def.Features, xmlFeature{Name: string(o.Feature), Enabled: o.Enabled})
		}
		doc.Widgets = append(doc.Widgets, def)
	}
	for _, f := range state.Floating {
		doc.Floating = append(doc.Floating, xmlFloating{
			Title:     f.Title,
			X:         f.Geometry.X,
			Y:         f.Geometry.Y,
			W:         f.Geometry.W,
			H:         f.Geometry.H,
			Container: encodeXMLContainer(f.Container),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if c.indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode xml layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode xml layout: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeXMLContainer(c entity.ContainerState) xmlContainer {
	if c.Root == nil {
		return xmlContainer{}
	}
	return xmlContainer{Nodes: []xmlNode{encodeXMLNode(c.Root)}}
}

func encodeXMLNode(n *entity.NodeState) xmlNode {
	if n.Area != nil {
		node := xmlNode{
			XMLName: xml.Name{Local: xmlArea},
			Current: strconv.Itoa(n.Area.CurrentIndex),
		}
		for _, name := range n.Area.Widgets {
			node.Children = append(node.Children, xmlNode{XMLName: xml.Name{Local: xmlWidget}, Name: name})
		}
		return node
	}
	node := xmlNode{
		XMLName:     xml.Name{Local: xmlSplitter},
		Orientation: n.Orientation.String(),
		Sizes:       formatSizes(n.Sizes),
	}
	for _, child := range n.Children {
		node.Children = append(node.Children, encodeXMLNode(child))
	}
	return node
}

// Decode implements port.LayoutCodec.
func (c *XMLCodec) Decode(data []byte) (*entity.LayoutState, error) {
	var doc xmlDockingState
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
	}

	state := &entity.LayoutState{
		Version:      doc.Version,
		ActiveWidget: doc.Active,
	}
	for _, def := range doc.Widgets {
		ws := entity.WidgetState{
			Name:     def.Name,
			Closed:   def.Closed,
			AutoHide: entity.DockLocation(def.AutoHide),
		}
		for _, f := range def.Features {
			ws.Features = append(ws.Features, entity.FeatureOverride{Feature: entity.Feature(f.Name), Enabled: f.Enabled})
		}
		state.Widgets = append(state.Widgets, ws)
	}

	main, err := decodeXMLContainer(doc.Main)
	if err != nil {
		return nil, err
	}
	state.Main = main

	for _, f := range doc.Floating {
		container, err := decodeXMLContainer(f.Container)
		if err != nil {
			return nil, err
		}
		state.Floating = append(state.Floating, entity.FloatingState{
			Title:     f.Title,
			Geometry:  entity.Rect{X: f.X, Y: f.Y, W: f.W, H: f.H},
			Container: container,
		})
	}
	return state, nil
}

func decodeXMLContainer(c xmlContainer) (entity.ContainerState, error) {
	switch len(c.Nodes) {
	case 0:
		return entity.ContainerState{}, nil
	case 1:
		root, err := decodeXMLNode(c.Nodes[0])
		if err != nil {
			return entity.ContainerState{}, err
		}
		return entity.ContainerState{Root: root}, nil
	default:
		return entity.ContainerState{}, fmt.Errorf("%w: container with %d roots", entity.ErrMalformedState, len(c.Nodes))
	}
}

func decodeXMLNode(n xmlNode) (*entity.NodeState, error) {
	switch n.XMLName.Local {
	case xmlArea:
		current, err := strconv.Atoi(n.Current)
		if err != nil {
			return nil, fmt.Errorf("%w: area current index %q", entity.ErrMalformedState, n.Current)
		}
		area := &entity.AreaState{CurrentIndex: current, Widgets: []string{}}
		for _, child := range n.Children {
			if child.XMLName.Local != xmlWidget || child.Name == "" {
				return nil, fmt.Errorf("%w: unexpected <%s> in area", entity.ErrMalformedState, child.XMLName.Local)
			}
			area.Widgets = append(area.Widgets, child.Name)
		}
		return &entity.NodeState{Area: area}, nil

	case xmlSplitter:
		orientation, err := entity.ParseOrientation(n.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
		}
		sizes, err := parseSizes(n.Sizes)
		if err != nil {
			return nil, err
		}
		node := &entity.NodeState{Orientation: orientation, Sizes: sizes, Children: []*entity.NodeState{}}
		for _, child := range n.Children {
			decoded, err := decodeXMLNode(child)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, decoded)
		}
		return node, nil

	default:
		return nil, fmt.Errorf("%w: unexpected element <%s>", entity.ErrMalformedState, n.XMLName.Local)
	}
}

func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func parseSizes(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	sizes := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: splitter size %q", entity.ErrMalformedState, f)
		}
		sizes[i] = v
	}
	return sizes, nil
}

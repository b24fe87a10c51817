package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svglist"
	"github.com/benoitkugler/svgtree/svgxml"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("<invalid format %d>", uint8(f))
	}
}

// ParseFormat parses json, yaml or cbor.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("unknown format: %s (supported: json, yaml, cbor)", s)
}

// ExportOutput describes a document and all its entities.
type ExportOutput struct {
	Summary  svgdoc.Summary `json:"summary" yaml:"summary" cbor:"summary"`
	Entities []EntityOutput `json:"entities,omitempty" yaml:"entities,omitempty" cbor:"entities,omitempty"`
}

// EntityOutput is one entity of a document.
type EntityOutput struct {
	Kind       string             `json:"kind" yaml:"kind" cbor:"kind"`
	Geometry   map[string]float64 `json:"geometry,omitempty" yaml:"geometry,omitempty" cbor:"geometry,omitempty"`
	Units      string             `json:"units,omitempty" yaml:"units,omitempty" cbor:"units,omitempty"`
	Data       string             `json:"d,omitempty" yaml:"d,omitempty" cbor:"d,omitempty"`
	Children   int                `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
	Attributes []AttrOutput       `json:"attributes,omitempty" yaml:"attributes,omitempty" cbor:"attributes,omitempty"`
}

// AttrOutput is an other attribute of an entity.
type AttrOutput struct {
	Name  string `json:"name" yaml:"name" cbor:"name"`
	Value string `json:"value" yaml:"value" cbor:"value"`
}

// BuildExport describes doc: its summary, then its rectangles, circles,
// paths and groups, over the whole tree.
func BuildExport(doc *svgdoc.Document) ExportOutput {
	out := ExportOutput{Summary: svgdoc.Summarize(doc)}
	for r := range svgdoc.Rects(doc).All() {
		out.Entities = append(out.Entities, EntityOutput{
			Kind:       svgdoc.KindRect.String(),
			Geometry:   map[string]float64{"x": r.X, "y": r.Y, "width": r.Width, "height": r.Height},
			Units:      r.Units,
			Attributes: attrsOutput(r.Other),
		})
	}
	for c := range svgdoc.Circles(doc).All() {
		out.Entities = append(out.Entities, EntityOutput{
			Kind:       svgdoc.KindCircle.String(),
			Geometry:   map[string]float64{"cx": c.Cx, "cy": c.Cy, "r": c.R},
			Units:      c.Units,
			Attributes: attrsOutput(c.Other),
		})
	}
	for p := range svgdoc.Paths(doc).All() {
		out.Entities = append(out.Entities, EntityOutput{
			Kind:       svgdoc.KindPath.String(),
			Data:       p.Data,
			Attributes: attrsOutput(p.Other),
		})
	}
	for g := range svgdoc.Groups(doc).All() {
		out.Entities = append(out.Entities, EntityOutput{
			Kind:       svgdoc.KindGroup.String(),
			Children:   g.NumChildren(),
			Attributes: attrsOutput(g.Other),
		})
	}
	return out
}

func attrsOutput(attrs svglist.Seq[*svgdoc.Attribute]) []AttrOutput {
	var out []AttrOutput
	for a := range attrs.All() {
		out = append(out, AttrOutput{Name: a.Name, Value: a.Value})
	}
	return out
}

// Encode writes out in the given format.
func (out ExportOutput) Encode(format Format, w io.Writer) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(out, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(out)
	case FormatCBOR:
		data, err = cbor.Marshal(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// RunExport reads the file at path and writes its description.
func RunExport(path string, format Format, opts Options, w io.Writer) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()
	return BuildExport(doc).Encode(format, w)
}

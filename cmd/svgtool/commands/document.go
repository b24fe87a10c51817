// Package commands implements the svgtool subcommands. The operations
// on an open document are shared with the interactive session.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgxml"
	"golang.org/x/image/math/fixed"
)

// ErrNoEntity is returned when an attribute can't be set.
var ErrNoEntity = errors.New("no such entity, or invalid value")

// Options are shared by the commands reading and writing documents.
type Options struct {
	Mode   svgxml.ErrorMode
	Indent bool
}

// ParseKindFlag parses an entity kind: svg, rect, circle, path or g.
func ParseKindFlag(s string) (svgdoc.Kind, error) {
	k, ok := svgdoc.ParseKind(strings.ToLower(s))
	if !ok {
		return 0, fmt.Errorf("unknown kind: %s (supported: svg, rect, circle, path, g)", s)
	}
	return k, nil
}

// List writes every entity of the given kind, over the whole tree.
// With text, the entities are rendered as plain text, one per line;
// otherwise as a JSON list. KindDocument lists the document attributes.
func List(doc *svgdoc.Document, kind svgdoc.Kind, text bool, w io.Writer) error {
	if text {
		_, err := fmt.Fprintln(w, renderText(doc, kind))
		return err
	}
	var out string
	switch kind {
	case svgdoc.KindDocument:
		out = svgdoc.AttrListToJSON(doc.Other)
	case svgdoc.KindRect:
		out = svgdoc.RectListToJSON(svgdoc.Rects(doc))
	case svgdoc.KindCircle:
		out = svgdoc.CircleListToJSON(svgdoc.Circles(doc))
	case svgdoc.KindPath:
		out = svgdoc.PathListToJSON(svgdoc.Paths(doc))
	case svgdoc.KindGroup:
		out = svgdoc.GroupListToJSON(svgdoc.Groups(doc))
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func renderText(doc *svgdoc.Document, kind svgdoc.Kind) string {
	var lines []string
	switch kind {
	case svgdoc.KindDocument:
		lines = append(lines, doc.String()+doc.Other.RenderAll())
	case svgdoc.KindRect:
		for r := range svgdoc.Rects(doc).All() {
			lines = append(lines, r.String())
		}
	case svgdoc.KindCircle:
		for c := range svgdoc.Circles(doc).All() {
			lines = append(lines, c.String())
		}
	case svgdoc.KindPath:
		for p := range svgdoc.Paths(doc).All() {
			lines = append(lines, p.String())
		}
	case svgdoc.KindGroup:
		lines = append(lines, svgdoc.Groups(doc).RenderAll())
	}
	return strings.Join(lines, "\n")
}

// Set sets the attribute name on the index-th top level entity of kind.
func Set(doc *svgdoc.Document, kind svgdoc.Kind, index int, name, value string) error {
	if !svgdoc.SetEntityAttribute(doc, kind, index, svgdoc.NewAttribute(name, value)) {
		return fmt.Errorf("cannot set %s on %s #%d: %w", name, kind, index, ErrNoEntity)
	}
	return nil
}

// Add appends a new top level entity of the given kind to doc, with
// the attributes given as name=value pairs. The entity is first built
// in a scratch document, and only added to doc if it is valid.
func Add(doc *svgdoc.Document, kind svgdoc.Kind, pairs []string) error {
	var elem svgdoc.Element
	switch kind {
	case svgdoc.KindRect:
		elem = svgdoc.NewRectangle(0, 0, 0, 0, "")
	case svgdoc.KindCircle:
		elem = svgdoc.NewCircle(0, 0, 0, "")
	case svgdoc.KindPath:
		elem = svgdoc.NewPath("")
	case svgdoc.KindGroup:
		elem = svgdoc.NewGroup()
	default:
		return fmt.Errorf("cannot add a %s", kind)
	}

	scratch := svgdoc.NewDocument(doc.Namespace)
	svgdoc.AddComponent(scratch, kind, elem)
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			scratch.Destroy()
			return fmt.Errorf("invalid attribute %q (expected name=value)", pair)
		}
		if err := Set(scratch, kind, 0, name, value); err != nil {
			scratch.Destroy()
			return err
		}
	}
	if err := svgdoc.Validate(scratch); err != nil {
		scratch.Destroy()
		return err
	}
	// elem now belongs to doc: scratch must not be destroyed
	svgdoc.AddComponent(doc, kind, elem)
	return nil
}

// Bounds returns the bounding box of every shape of the tree,
// and false if there is none. Groups are not transformed.
// Paths whose data can't be compiled, which are kept when
// reading in warn or ignore mode, have no outline and are skipped.
func Bounds(doc *svgdoc.Document) (fixed.Rectangle26_6, bool) {
	var (
		bbox fixed.Rectangle26_6
		ok   bool
	)
	add := func(p svgpath.Path) {
		b, has := p.Bounds()
		switch {
		case !has:
		case ok:
			bbox = svgpath.Union(bbox, b)
		default:
			bbox, ok = b, true
		}
	}
	for r := range svgdoc.Rects(doc).All() {
		add(svgpath.RectPath(r.X, r.Y, r.Width, r.Height))
	}
	for c := range svgdoc.Circles(doc).All() {
		add(svgpath.EllipsePath(c.Cx, c.Cy, c.R, c.R))
	}
	for p := range svgdoc.Paths(doc).All() {
		if compiled, err := svgpath.Compile(p.Data); err == nil {
			add(compiled)
		}
	}
	return bbox, ok
}

// FormatBox returns the four bounds of b, with two decimals.
func FormatBox(b fixed.Rectangle26_6) string {
	return fmt.Sprintf("%.2f %.2f %.2f %.2f",
		float64(b.Min.X)/64, float64(b.Min.Y)/64, float64(b.Max.X)/64, float64(b.Max.Y)/64)
}

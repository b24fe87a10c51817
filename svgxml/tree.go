package svgxml

import (
	"fmt"
	"strconv"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svglist"
)

// ToTree returns the tree describing doc, rooted at a svg element
// in the document namespace: the title and description, if not empty,
// then the rectangles, circles, paths and groups of doc.
// The Other attributes of doc become attributes of the root.
func ToTree(doc *svgdoc.Document) (*Node, error) {
	if doc == nil {
		return nil, ErrAbsent
	}
	if doc.Namespace == "" {
		return nil, &BuildError{Element: "svg", Err: fmt.Errorf("%w: missing namespace", ErrMalformed)}
	}
	ns := doc.Namespace
	root := &Node{Name: "svg", Namespace: ns}
	if doc.Title != "" {
		root.Children = append(root.Children, &Node{Name: "title", Namespace: ns, Text: doc.Title})
	}
	if doc.Description != "" {
		root.Children = append(root.Children, &Node{Name: "desc", Namespace: ns, Text: doc.Description})
	}
	appendChildren(root, doc.Rectangles, doc.Circles, doc.Paths, doc.Groups)
	for a := range doc.Other.All() {
		if a.Name == "xmlns" { // written from Namespace
			continue
		}
		root.Attrs = append(root.Attrs, Attr{Name: a.Name, Value: a.Value})
	}
	return root, nil
}

func appendChildren(parent *Node, rects *svglist.List[*svgdoc.Rectangle], circles *svglist.List[*svgdoc.Circle],
	paths *svglist.List[*svgdoc.Path], groups *svglist.List[*svgdoc.Group],
) {
	for r := range rects.All() {
		parent.Children = append(parent.Children, rectNode(r, parent.Namespace))
	}
	for c := range circles.All() {
		parent.Children = append(parent.Children, circleNode(c, parent.Namespace))
	}
	for p := range paths.All() {
		parent.Children = append(parent.Children, pathNode(p, parent.Namespace))
	}
	for g := range groups.All() {
		parent.Children = append(parent.Children, groupNode(g, parent.Namespace))
	}
}

func formatLength(v float64, units string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + units
}

func otherAttrs(attrs []Attr, other *svglist.List[*svgdoc.Attribute]) []Attr {
	for a := range other.All() {
		attrs = append(attrs, Attr{Name: a.Name, Value: a.Value})
	}
	return attrs
}

func rectNode(r *svgdoc.Rectangle, ns string) *Node {
	attrs := []Attr{
		{"x", formatLength(r.X, r.Units)},
		{"y", formatLength(r.Y, r.Units)},
		{"width", formatLength(r.Width, r.Units)},
		{"height", formatLength(r.Height, r.Units)},
	}
	return &Node{Name: "rect", Namespace: ns, Attrs: otherAttrs(attrs, r.Other)}
}

func circleNode(c *svgdoc.Circle, ns string) *Node {
	attrs := []Attr{
		{"cx", formatLength(c.Cx, c.Units)},
		{"cy", formatLength(c.Cy, c.Units)},
		{"r", formatLength(c.R, c.Units)},
	}
	return &Node{Name: "circle", Namespace: ns, Attrs: otherAttrs(attrs, c.Other)}
}

func pathNode(p *svgdoc.Path, ns string) *Node {
	return &Node{Name: "path", Namespace: ns, Attrs: otherAttrs([]Attr{{"d", p.Data}}, p.Other)}
}

// groupNode emits the children of g, then its attributes.
func groupNode(g *svgdoc.Group, ns string) *Node {
	n := &Node{Name: "g", Namespace: ns}
	appendChildren(n, g.Rectangles, g.Circles, g.Paths, g.Groups)
	n.Attrs = otherAttrs(nil, g.Other)
	return n
}

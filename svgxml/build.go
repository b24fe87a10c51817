package svgxml

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svglist"
	"github.com/benoitkugler/svgtree/svgpath"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	buildFuncs["g"] = gF
}

// children gives access to the four entity lists
// shared by Document and Group.
type children struct {
	rects   *svglist.List[*svgdoc.Rectangle]
	circles *svglist.List[*svgdoc.Circle]
	paths   *svglist.List[*svgdoc.Path]
	groups  *svglist.List[*svgdoc.Group]
}

// builder is used while building a document from a tree
type builder struct {
	mode      ErrorMode
	namespace string // of the root element
}

type buildFunc func(b *builder, dst children, n *Node) error

var buildFuncs = map[string]buildFunc{
	"rect":   rectF,
	"circle": circleF,
	"path":   pathF,
}

func rectF(b *builder, dst children, n *Node) error {
	r, err := buildRectangle(n)
	if err != nil {
		return err
	}
	dst.rects.Append(r)
	return nil
}

func circleF(b *builder, dst children, n *Node) error {
	c, err := buildCircle(n)
	if err != nil {
		return err
	}
	dst.circles.Append(c)
	return nil
}

func pathF(b *builder, dst children, n *Node) error {
	p, err := b.buildPath(n)
	if err != nil {
		return err
	}
	dst.paths.Append(p)
	return nil
}

func gF(b *builder, dst children, n *Node) error {
	child, err := b.buildGroup(n)
	if err != nil {
		return err
	}
	dst.groups.Append(child)
	return nil
}

// FromTree builds the document described by root.
// A nil root yields a nil document and no error.
// On failure, nothing built so far is returned.
func FromTree(root *Node, mode ErrorMode) (*svgdoc.Document, error) {
	if root == nil {
		return nil, nil
	}
	b := builder{mode: mode, namespace: root.Namespace}
	return b.buildDocument(root)
}

func (b *builder) buildDocument(root *Node) (*svgdoc.Document, error) {
	if root.Name != "svg" {
		return nil, &BuildError{Element: root.Name, Err: fmt.Errorf("%w: root element must be svg", ErrMalformed)}
	}
	if root.Namespace == "" {
		return nil, &BuildError{Element: root.Name, Err: fmt.Errorf("%w: missing namespace", ErrMalformed)}
	}
	doc := svgdoc.NewDocument(root.Namespace)
	ok := false
	defer func() {
		if !ok {
			doc.Destroy()
		}
	}()

	for _, attr := range root.Attrs {
		if attr.Name == "xmlns" { // stored as Namespace
			continue
		}
		doc.Other.Append(svgdoc.NewAttribute(attr.Name, attr.Value))
	}

	dst := children{doc.Rectangles, doc.Circles, doc.Paths, doc.Groups}
	var hasTitle, hasDesc bool
	for _, child := range root.Children {
		if b.inNamespace(child) {
			switch child.Name {
			case "title":
				if !hasTitle {
					doc.Title, hasTitle = strings.TrimSpace(child.Text), true
				}
				continue
			case "desc":
				if !hasDesc {
					doc.Description, hasDesc = strings.TrimSpace(child.Text), true
				}
				continue
			}
		}
		if err := b.addChild(dst, child); err != nil {
			return nil, err
		}
	}

	ok = true
	return doc, nil
}

// buildGroup returns the group described by n. If any of its
// children fails to build, everything built for the group is released.
func (b *builder) buildGroup(n *Node) (*svgdoc.Group, error) {
	if n == nil {
		return nil, nil
	}
	g := svgdoc.NewGroup()
	ok := false
	defer func() {
		if !ok {
			g.Destroy()
		}
	}()

	for _, attr := range n.Attrs {
		g.Other.Append(svgdoc.NewAttribute(attr.Name, attr.Value))
	}
	dst := children{g.Rectangles, g.Circles, g.Paths, g.Groups}
	for _, child := range n.Children {
		if err := b.addChild(dst, child); err != nil {
			return nil, err
		}
	}

	ok = true
	return g, nil
}

func (b *builder) inNamespace(n *Node) bool {
	return n.Namespace == "" || n.Namespace == b.namespace
}

// addChild builds n and appends it to the matching list of dst.
func (b *builder) addChild(dst children, n *Node) error {
	if b.inNamespace(n) && (n.Name == "title" || n.Name == "desc") {
		// metadata is only kept for the document
		return nil
	}
	fn, known := buildFuncs[n.Name]
	if !known || !b.inNamespace(n) {
		return b.unsupported(n)
	}
	return fn(b, dst, n)
}

func (b *builder) unsupported(n *Node) error {
	switch b.mode {
	case StrictErrorMode:
		return &BuildError{Element: n.Name, Err: ErrUnsupported}
	case WarnErrorMode:
		logger().Warn("cannot process svg element", "element", n.Name, "namespace", n.Namespace)
	}
	return nil
}

func buildRectangle(n *Node) (*svgdoc.Rectangle, error) {
	if n == nil {
		return nil, nil
	}
	r := svgdoc.NewRectangle(0, 0, 0, 0, "")
	for _, attr := range n.Attrs {
		var field *float64
		switch attr.Name {
		case "x":
			field = &r.X
		case "y":
			field = &r.Y
		case "width":
			field = &r.Width
		case "height":
			field = &r.Height
		default:
			r.Other.Append(svgdoc.NewAttribute(attr.Name, attr.Value))
			continue
		}
		v, units, err := svgdoc.ParseLength(attr.Value)
		if err != nil {
			r.Destroy()
			return nil, &BuildError{Element: n.Name, Attr: attr.Name, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
		}
		*field, r.Units = v, units
	}
	return r, nil
}

func buildCircle(n *Node) (*svgdoc.Circle, error) {
	if n == nil {
		return nil, nil
	}
	c := svgdoc.NewCircle(0, 0, 0, "")
	for _, attr := range n.Attrs {
		var field *float64
		switch attr.Name {
		case "cx":
			field = &c.Cx
		case "cy":
			field = &c.Cy
		case "r":
			field = &c.R
		default:
			c.Other.Append(svgdoc.NewAttribute(attr.Name, attr.Value))
			continue
		}
		v, units, err := svgdoc.ParseLength(attr.Value)
		if err != nil {
			c.Destroy()
			return nil, &BuildError{Element: n.Name, Attr: attr.Name, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
		}
		*field, c.Units = v, units
	}
	return c, nil
}

// buildPath requires a non empty d attribute. The data is checked
// with svgpath.Compile, according to the error mode.
func (b *builder) buildPath(n *Node) (*svgdoc.Path, error) {
	if n == nil {
		return nil, nil
	}
	p := svgdoc.NewPath("")
	for _, attr := range n.Attrs {
		if attr.Name == "d" {
			p.Data = attr.Value
			continue
		}
		p.Other.Append(svgdoc.NewAttribute(attr.Name, attr.Value))
	}
	if strings.TrimSpace(p.Data) == "" {
		p.Destroy()
		return nil, &BuildError{Element: n.Name, Attr: "d", Err: fmt.Errorf("%w: missing path data", ErrMalformed)}
	}
	if _, err := svgpath.Compile(p.Data); err != nil {
		switch b.mode {
		case StrictErrorMode:
			p.Destroy()
			return nil, &BuildError{Element: n.Name, Attr: "d", Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
		case WarnErrorMode:
			logger().Warn("invalid path data", "d", p.Data, "error", err)
		}
	}
	return p, nil
}

package svgdoc

import (
	"fmt"

	"github.com/benoitkugler/svgtree/svglist"
)

// Kind identifies an entity type.
type Kind uint8

const (
	KindDocument Kind = iota
	KindRect
	KindCircle
	KindPath
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "svg"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPath:
		return "path"
	case KindGroup:
		return "g"
	default:
		return fmt.Sprintf("<invalid kind %d>", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String. It also accepts
// "circ", "group" and "document".
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "svg", "document":
		return KindDocument, true
	case "rect":
		return KindRect, true
	case "circle", "circ":
		return KindCircle, true
	case "path":
		return KindPath, true
	case "g", "group":
		return KindGroup, true
	}
	return 0, false
}

// Element is implemented by *Rectangle, *Circle, *Path and *Group.
type Element interface {
	Kind() Kind
}

var (
	_ Element = (*Rectangle)(nil)
	_ Element = (*Circle)(nil)
	_ Element = (*Path)(nil)
	_ Element = (*Group)(nil)
)

// Document is the root of the tree. Its elements are not
// wrapped in an implicit top level group.
type Document struct {
	Namespace   string // mandatory
	Title       string
	Description string

	Rectangles *svglist.List[*Rectangle]
	Circles    *svglist.List[*Circle]
	Paths      *svglist.List[*Path]
	Groups     *svglist.List[*Group]
	Other      *svglist.List[*Attribute]
}

// NewDocument returns an empty document in the given namespace.
func NewDocument(namespace string) *Document {
	return &Document{
		Namespace:  namespace,
		Rectangles: NewRectangleList(),
		Circles:    NewCircleList(),
		Paths:      NewPathList(),
		Groups:     NewGroupList(),
		Other:      NewAttributeList(),
	}
}

func (*Document) Kind() Kind { return KindDocument }

func (d *Document) String() string {
	return fmt.Sprintf("Namespace: %s Title: %s Desc: %s", d.Namespace, d.Title, d.Description)
}

// Destroy releases the whole tree, depth first.
// It is safe to call on a nil Document.
func (d *Document) Destroy() {
	if d == nil {
		return
	}
	d.Groups.Destroy()
	d.Rectangles.Destroy()
	d.Circles.Destroy()
	d.Paths.Destroy()
	d.Other.Destroy()
	d.Rectangles, d.Circles, d.Paths, d.Groups, d.Other = nil, nil, nil, nil, nil
}

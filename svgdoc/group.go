package svgdoc

import (
	"github.com/benoitkugler/svgtree/svglist"
)

// Group is a SVG g element, the recursive node of the tree.
type Group struct {
	Rectangles *svglist.List[*Rectangle]
	Circles    *svglist.List[*Circle]
	Paths      *svglist.List[*Path]
	Groups     *svglist.List[*Group]
	Other      *svglist.List[*Attribute]
}

// NewGroup returns a group with its five lists allocated and empty.
func NewGroup() *Group {
	return &Group{
		Rectangles: NewRectangleList(),
		Circles:    NewCircleList(),
		Paths:      NewPathList(),
		Groups:     NewGroupList(),
		Other:      NewAttributeList(),
	}
}

func (*Group) Kind() Kind { return KindGroup }

// NumChildren returns the number of direct children, of every kind.
func (g *Group) NumChildren() int {
	return g.Rectangles.Len() + g.Circles.Len() + g.Paths.Len() + g.Groups.Len()
}

func (g *Group) String() string {
	return "\nGroup Attributes:" + g.Other.RenderAll() +
		g.Rectangles.RenderAll() + g.Circles.RenderAll() + g.Paths.RenderAll() +
		g.Groups.RenderAll()
}

// Destroy releases the children of the group, depth first,
// then its attributes.
func (g *Group) Destroy() {
	g.Groups.Destroy()
	g.Rectangles.Destroy()
	g.Circles.Destroy()
	g.Paths.Destroy()
	g.Other.Destroy()
	g.Rectangles, g.Circles, g.Paths, g.Groups, g.Other = nil, nil, nil, nil, nil
}

type groupStrategy struct{}

func (groupStrategy) Render(g *Group) string  { return g.String() }
func (groupStrategy) Destroy(g *Group)        { g.Destroy() }
func (groupStrategy) Compare(a, b *Group) int { return compareGroups(a, b) }

// NewGroupList returns an empty list of groups.
func NewGroupList() *svglist.List[*Group] {
	return svglist.New[*Group](groupStrategy{})
}

package svgdoc

import "github.com/benoitkugler/svgtree/svglist"

// Groups returns every group of the tree, at any depth,
// in pre-order: a group comes before its children.
// It returns nil for a nil document.
func Groups(doc *Document) *svglist.View[*Group] {
	if doc == nil {
		return nil
	}
	acc := svglist.NewView[*Group](groupStrategy{})
	for top := range doc.Groups.All() {
		collectGroups(acc, top)
	}
	return acc
}

// collectGroups appends parent, then its descendants, to acc.
func collectGroups(acc *svglist.View[*Group], parent *Group) {
	acc.Append(parent)
	if parent == nil {
		return
	}
	for child := range parent.Groups.All() {
		collectGroups(acc, child)
	}
}

// Rects returns the document rectangles, followed by the direct
// rectangles of every group, in the order of Groups.
func Rects(doc *Document) *svglist.View[*Rectangle] {
	if doc == nil {
		return nil
	}
	return flatten(doc.Rectangles, Groups(doc), func(g *Group) *svglist.List[*Rectangle] { return g.Rectangles })
}

// Circles returns every circle of the tree, ordered as in Rects.
func Circles(doc *Document) *svglist.View[*Circle] {
	if doc == nil {
		return nil
	}
	return flatten(doc.Circles, Groups(doc), func(g *Group) *svglist.List[*Circle] { return g.Circles })
}

// Paths returns every path of the tree, ordered as in Rects.
func Paths(doc *Document) *svglist.View[*Path] {
	if doc == nil {
		return nil
	}
	return flatten(doc.Paths, Groups(doc), func(g *Group) *svglist.List[*Path] { return g.Paths })
}

func flatten[T any](top *svglist.List[T], groups *svglist.View[*Group], children func(*Group) *svglist.List[T]) *svglist.View[T] {
	out := svglist.ViewOf(top)
	for g := range groups.All() {
		if g == nil {
			continue
		}
		out.Extend(children(g))
	}
	return out
}

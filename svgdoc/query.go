package svgdoc

import (
	"math"

	"github.com/benoitkugler/svgtree/svglist"
)

// NumRectsWithArea returns the number of rectangles of the whole tree
// whose area, rounded up, equals area rounded up.
func NumRectsWithArea(doc *Document, area float64) int {
	if doc == nil || area < 0 {
		return 0
	}
	target := math.Ceil(area)
	return count(Rects(doc), func(r *Rectangle) bool { return math.Ceil(r.Area()) == target })
}

// NumCirclesWithArea is the same as NumRectsWithArea, for circles.
func NumCirclesWithArea(doc *Document, area float64) int {
	if doc == nil || area < 0 {
		return 0
	}
	target := math.Ceil(area)
	return count(Circles(doc), func(c *Circle) bool { return math.Ceil(c.Area()) == target })
}

// NumPathsWithData returns the number of paths of the whole tree
// whose data is exactly data.
func NumPathsWithData(doc *Document, data string) int {
	if doc == nil {
		return 0
	}
	return count(Paths(doc), func(p *Path) bool { return p.Data == data })
}

// NumGroupsWithLen returns the number of groups, at any depth,
// with exactly n direct children.
func NumGroupsWithLen(doc *Document, n int) int {
	if doc == nil || n < 0 {
		return 0
	}
	return count(Groups(doc), func(g *Group) bool { return g.NumChildren() == n })
}

// NumAttr returns the total number of Other attributes of the tree,
// including the ones of the document.
func NumAttr(doc *Document) int {
	if doc == nil {
		return 0
	}
	total := doc.Other.Len()
	total += sumOf(Rects(doc), func(r *Rectangle) int { return r.Other.Len() })
	total += sumOf(Circles(doc), func(c *Circle) int { return c.Other.Len() })
	total += sumOf(Paths(doc), func(p *Path) int { return p.Other.Len() })
	total += sumOf(Groups(doc), func(g *Group) int { return g.Other.Len() })
	return total
}

func count[T any](elems svglist.Seq[T], pred func(T) bool) int {
	n := 0
	for elem := range elems.All() {
		if pred(elem) {
			n++
		}
	}
	return n
}

func sumOf[T any](elems svglist.Seq[T], f func(T) int) int {
	total := 0
	for elem := range elems.All() {
		total += f(elem)
	}
	return total
}

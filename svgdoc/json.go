package svgdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/benoitkugler/svgtree/svglist"
)

// ErrUnsupported is returned by the FromJSON functions:
// the JSON forms are summaries and cannot be parsed back.
var ErrUnsupported = errors.New("svgdoc: parsing JSON is not supported")

const emptyJSON = "{}"

func quote(s string) string {
	b, _ := json.Marshal(s) // a string is always marshalled
	return string(b)
}

// AttrToJSON returns {"name":..,"value":..}.
func AttrToJSON(a *Attribute) string {
	if a == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"name":%s,"value":%s}`, quote(a.Name), quote(a.Value))
}

// RectToJSON returns the geometry of r with two decimals,
// its number of other attributes and its units.
func RectToJSON(r *Rectangle) string {
	if r == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"x":%.2f,"y":%.2f,"w":%.2f,"h":%.2f,"numAttr":%d,"units":%s}`,
		r.X, r.Y, r.Width, r.Height, r.Other.Len(), quote(r.Units))
}

// CircleToJSON returns the geometry of c with two decimals,
// its number of other attributes and its units.
func CircleToJSON(c *Circle) string {
	if c == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"cx":%.2f,"cy":%.2f,"r":%.2f,"numAttr":%d,"units":%s}`,
		c.Cx, c.Cy, c.R, c.Other.Len(), quote(c.Units))
}

// PathToJSON returns the path data of p and its number of other attributes.
func PathToJSON(p *Path) string {
	if p == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"d":%s,"numAttr":%d}`, quote(p.Data), p.Other.Len())
}

// GroupToJSON returns the number of direct children of g
// and its number of other attributes.
func GroupToJSON(g *Group) string {
	if g == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"children":%d,"numAttr":%d}`, g.NumChildren(), g.Other.Len())
}

// DocumentToJSON returns the number of entities of each kind,
// counted over the whole tree.
func DocumentToJSON(doc *Document) string {
	if doc == nil {
		return emptyJSON
	}
	return fmt.Sprintf(`{"numRect":%d,"numCirc":%d,"numPaths":%d,"numGroups":%d}`,
		Rects(doc).Len(), Circles(doc).Len(), Paths(doc).Len(), Groups(doc).Len())
}

// AttrListToJSON returns the JSON array of the attributes of l.
func AttrListToJSON(l svglist.Seq[*Attribute]) string { return listToJSON(l, AttrToJSON) }

// RectListToJSON returns the JSON array of the rectangles of l.
func RectListToJSON(l svglist.Seq[*Rectangle]) string { return listToJSON(l, RectToJSON) }

// CircleListToJSON returns the JSON array of the circles of l.
func CircleListToJSON(l svglist.Seq[*Circle]) string { return listToJSON(l, CircleToJSON) }

// PathListToJSON returns the JSON array of the paths of l.
func PathListToJSON(l svglist.Seq[*Path]) string { return listToJSON(l, PathToJSON) }

// GroupListToJSON returns the JSON array of the groups of l.
func GroupListToJSON(l svglist.Seq[*Group]) string { return listToJSON(l, GroupToJSON) }

// listToJSON returns [e1,e2,...], or [] for an empty or nil list.
func listToJSON[T any](l svglist.Seq[T], toJSON func(T) string) string {
	if l == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for elem := range l.All() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(toJSON(elem))
	}
	sb.WriteByte(']')
	return sb.String()
}

// DocumentFromJSON always fails with [ErrUnsupported].
func DocumentFromJSON(string) (*Document, error) { return nil, ErrUnsupported }

// RectFromJSON always fails with [ErrUnsupported].
func RectFromJSON(string) (*Rectangle, error) { return nil, ErrUnsupported }

// CircleFromJSON always fails with [ErrUnsupported].
func CircleFromJSON(string) (*Circle, error) { return nil, ErrUnsupported }

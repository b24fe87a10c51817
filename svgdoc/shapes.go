package svgdoc

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgtree/svglist"
)

// Rectangle is a SVG rect element.
// Units is shared by the four numeric fields: it is the unit
// suffix of the last geometry attribute read.
type Rectangle struct {
	X, Y, Width, Height float64
	Units               string
	Other               *svglist.List[*Attribute]
}

// NewRectangle returns a rectangle with an empty attribute list.
func NewRectangle(x, y, width, height float64, units string) *Rectangle {
	return &Rectangle{X: x, Y: y, Width: width, Height: height, Units: units, Other: NewAttributeList()}
}

func (*Rectangle) Kind() Kind { return KindRect }

func (r *Rectangle) String() string {
	return fmt.Sprintf("x: %.2f y: %.2f width: %.2f height: %.2f", r.X, r.Y, r.Width, r.Height) +
		r.Other.RenderAll()
}

// Destroy releases the attributes of the rectangle.
func (r *Rectangle) Destroy() {
	r.Other.Destroy()
	r.Other = nil
}

// Area returns width * height.
func (r *Rectangle) Area() float64 { return r.Width * r.Height }

// Circle is a SVG circle element.
// As for Rectangle, Units is shared by cx, cy and r.
type Circle struct {
	Cx, Cy, R float64
	Units     string
	Other     *svglist.List[*Attribute]
}

// NewCircle returns a circle with an empty attribute list.
func NewCircle(cx, cy, r float64, units string) *Circle {
	return &Circle{Cx: cx, Cy: cy, R: r, Units: units, Other: NewAttributeList()}
}

func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) String() string {
	return fmt.Sprintf("cx: %.2f cy: %.2f r: %.2f", c.Cx, c.Cy, c.R) + c.Other.RenderAll()
}

// Area returns pi * r * r.
func (c *Circle) Area() float64 { return math.Pi * c.R * c.R }

// Destroy releases the attributes of the circle.
func (c *Circle) Destroy() {
	c.Other.Destroy()
	c.Other = nil
}

// Path is a SVG path element. Data is the raw content of the d attribute.
type Path struct {
	Data  string
	Other *svglist.List[*Attribute]
}

// NewPath returns a path with an empty attribute list.
func NewPath(data string) *Path {
	return &Path{Data: data, Other: NewAttributeList()}
}

func (*Path) Kind() Kind { return KindPath }

func (p *Path) String() string { return "Data: " + p.Data + p.Other.RenderAll() }

// Destroy releases the attributes of the path.
func (p *Path) Destroy() {
	p.Other.Destroy()
	p.Other = nil
}

type rectangleStrategy struct{}

func (rectangleStrategy) Render(r *Rectangle) string { return r.String() }
func (rectangleStrategy) Destroy(r *Rectangle)       { r.Destroy() }
func (rectangleStrategy) Compare(a, b *Rectangle) int {
	return strings.Compare(a.Units, b.Units)
}

type circleStrategy struct{}

func (circleStrategy) Render(c *Circle) string { return c.String() }
func (circleStrategy) Destroy(c *Circle)       { c.Destroy() }
func (circleStrategy) Compare(a, b *Circle) int {
	return strings.Compare(a.Units, b.Units)
}

type pathStrategy struct{}

func (pathStrategy) Render(p *Path) string  { return p.String() }
func (pathStrategy) Destroy(p *Path)        { p.Destroy() }
func (pathStrategy) Compare(a, b *Path) int { return strings.Compare(a.Data, b.Data) }

// NewRectangleList returns an empty list of rectangles.
func NewRectangleList() *svglist.List[*Rectangle] {
	return svglist.New[*Rectangle](rectangleStrategy{})
}

// NewCircleList returns an empty list of circles.
func NewCircleList() *svglist.List[*Circle] {
	return svglist.New[*Circle](circleStrategy{})
}

// NewPathList returns an empty list of paths.
func NewPathList() *svglist.List[*Path] {
	return svglist.New[*Path](pathStrategy{})
}

// compare groups by number of direct children
func compareGroups(a, b *Group) int {
	return cmp.Compare(a.NumChildren(), b.NumChildren())
}

// Implements an abstract representation of
// svg paths: the content of a d attribute is
// compiled into a list of fixed point operations.
package svgpath

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Operation is one of MoveTo, LineTo, QuadTo, CubicTo or Close.
type Operation interface {
	// letter is the absolute SVG command of the operation
	letter() byte
	// points are the arguments of the command, end point last
	points() []fixed.Point26_6
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

// QuadTo is a control point and an end point.
type QuadTo [2]fixed.Point26_6

// CubicTo is two control points and an end point.
type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) letter() byte  { return 'M' }
func (LineTo) letter() byte  { return 'L' }
func (QuadTo) letter() byte  { return 'Q' }
func (CubicTo) letter() byte { return 'C' }
func (Close) letter() byte   { return 'Z' }

func (op MoveTo) points() []fixed.Point26_6  { return []fixed.Point26_6{fixed.Point26_6(op)} }
func (op LineTo) points() []fixed.Point26_6  { return []fixed.Point26_6{fixed.Point26_6(op)} }
func (op QuadTo) points() []fixed.Point26_6  { return op[:] }
func (op CubicTo) points() []fixed.Point26_6 { return op[:] }
func (Close) points() []fixed.Point26_6      { return nil }

// Path is a sequence of basic operations. Arcs, horizontal
// and vertical lines and smooth curves are reduced to these.
type Path []Operation

// ToSVGPath returns the path data equivalent to p, using only absolute
// M, L, Q, C and Z commands. The coordinates are written exactly,
// so that compiling the result gives back p.
func (p Path) ToSVGPath() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(op.letter())
		for j, pt := range op.points() {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatFixed(pt.X))
			sb.WriteByte(',')
			sb.WriteString(formatFixed(pt.Y))
		}
	}
	return sb.String()
}

// a 26.6 value is a binary fraction, printed without rounding
func formatFixed(v fixed.Int26_6) string {
	return strconv.FormatFloat(float64(v)/64, 'f', -1, 64)
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop ends the current curve, joining its ends if closeLoop is true.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

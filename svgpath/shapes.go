package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// outlines of rectangles, ellipses and arcs

// maxDx is the largest parameter span of one of the cubic
// curves approximating an elliptical arc.
const maxDx float64 = math.Pi / 8

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// RectPath returns the outline of the rectangle with top left
// corner (x, y).
func RectPath(x, y, w, h float64) Path {
	var p Path
	p.Start(toFixedP(x, y))
	p.Line(toFixedP(x+w, y))
	p.Line(toFixedP(x+w, y+h))
	p.Line(toFixedP(x, y+h))
	p.Stop(true)
	return p
}

// EllipsePath returns the outline of the ellipse centered at (cx, cy),
// approximated by cubic bezier curves.
// A non positive radius yields an empty path.
func EllipsePath(cx, cy, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	e := ellipse{cx: cx, cy: cy, rx: rx, ry: ry, cos: 1}
	start := toFixedP(cx+rx, cy)
	var p Path
	p.Start(start)
	p.appendArc(e, 0, 2*math.Pi, start)
	p.Stop(true)
	return p
}

// ellipse has radii rx and ry, and its x axis makes with the
// coordinates x axis an angle of cosine cos and sine sin.
type ellipse struct {
	cx, cy, rx, ry float64
	cos, sin       float64
}

// at returns the point of parameter theta, and the tangent there.
func (e ellipse) at(theta float64) (x, y, dx, dy float64) {
	c, s := math.Cos(theta), math.Sin(theta)
	x = e.cx + e.rx*c*e.cos - e.ry*s*e.sin
	y = e.cy + e.rx*c*e.sin + e.ry*s*e.cos
	dx = -e.rx*s*e.cos - e.ry*c*e.sin
	dy = -e.rx*s*e.sin + e.ry*c*e.cos
	return
}

// appendArc adds the cubic curves approximating the arc of e between
// the parameters theta and theta+delta. The current point of p must be
// the start of the arc; end replaces the computed end point.
func (p *Path) appendArc(e ellipse, theta, delta float64, end fixed.Point26_6) {
	segs := int(math.Ceil(math.Abs(delta) / maxDx))
	if segs == 0 {
		return
	}
	step := delta / float64(segs)
	// tangent length of a cubic matching a circular arc of angle step
	k := 4 / 3. * math.Tan(step/4)
	x0, y0, dx0, dy0 := e.at(theta)
	for i := 1; i <= segs; i++ {
		x1, y1, dx1, dy1 := e.at(theta + step*float64(i))
		to := toFixedP(x1, y1)
		if i == segs {
			to = end
		}
		p.CubeBezier(toFixedP(x0+k*dx0, y0+k*dy0), toFixedP(x1-k*dx1, y1-k*dy1), to)
		x0, y0, dx0, dy0 = x1, y1, dx1, dy1
	}
}

// endpointArc converts an SVG arc from (x1, y1) to (x2, y2), with radii rx, ry
// and x axis rotation phi (in radians), to its center parameterization:
// the ellipse, the start parameter and the signed parameter span.
// Radii too small for the two points are scaled up, keeping their ratio.
// The two points must be distinct and the radii not zero.
func endpointArc(x1, y1, x2, y2, rx, ry, phi float64, largeArc, sweep bool) (e ellipse, theta, delta float64) {
	e.cos, e.sin = math.Cos(phi), math.Sin(phi)

	// start point, in the frame centered on the chord middle
	hx, hy := (x1-x2)/2, (y1-y2)/2
	px := e.cos*hx + e.sin*hy
	py := -e.sin*hx + e.cos*hy

	rx, ry = math.Abs(rx), math.Abs(ry)
	if lambda := px*px/(rx*rx) + py*py/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}
	e.rx, e.ry = rx, ry

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*py*py - ry2*px*px
	den := rx2*py*py + ry2*px*px
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	ccx, ccy := coef*rx*py/ry, -coef*ry*px/rx
	e.cx = e.cos*ccx - e.sin*ccy + (x1+x2)/2
	e.cy = e.sin*ccx + e.cos*ccy + (y1+y2)/2

	ux, uy := (px-ccx)/rx, (py-ccy)/ry
	vx, vy := (-px-ccx)/rx, (-py-ccy)/ry
	theta = math.Atan2(uy, ux)
	delta = math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return e, theta, delta
}

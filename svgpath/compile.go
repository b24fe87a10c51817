package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrEmptyPath is returned when compiling a d attribute with no command.
	ErrEmptyPath = errors.New("svgpath: empty path data")
	// ErrInvalidPath is wrapped by the errors describing malformed path data.
	ErrInvalidPath = errors.New("svgpath: invalid path data")
)

// number of arguments of each command
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// pathCursor is used while compiling path data
type pathCursor struct {
	path                   Path
	placeX, placeY         float64 // current point
	cntlPtX, cntlPtY       float64 // last control point, for smooth curves
	pathStartX, pathStartY float64
	points                 []float64
	lastKey                byte
	closed                 bool // a Z was read, and no M since
}

// Compile parses the content of a d attribute, resolving relative
// commands, and returns the equivalent path.
func Compile(data string) (Path, error) {
	var c pathCursor
	if err := c.compile(data); err != nil {
		return nil, err
	}
	return c.path, nil
}

func (c *pathCursor) compile(data string) error {
	s := scanner{src: data}
	s.skipSeparators()
	if s.done() {
		return ErrEmptyPath
	}
	for !s.done() {
		start := s.pos
		key := s.src[s.pos]
		up := toUpper(key)
		if _, ok := argCounts[up]; !ok {
			return fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidPath, key, start)
		}
		if len(c.path) == 0 && up != 'M' {
			return fmt.Errorf("%w: must start with a move to, got %q", ErrInvalidPath, key)
		}
		s.pos++

		c.points = c.points[:0]
		for {
			s.skipSeparators()
			if s.done() || isLetter(s.src[s.pos]) {
				break
			}
			var (
				v   float64
				err error
			)
			if i := len(c.points) % 7; up == 'A' && (i == 3 || i == 4) {
				v, err = s.flag()
			} else {
				v, err = s.number()
			}
			if err != nil {
				return err
			}
			c.points = append(c.points, v)
		}
		if err := c.addSeg(key); err != nil {
			return fmt.Errorf("command %q at offset %d: %w", key, start, err)
		}
	}
	return nil
}

// reflect returns the control point of a smooth curve
func (c *pathCursor) reflect(smoothAfter ...byte) (x, y float64) {
	for _, k := range smoothAfter {
		if c.lastKey == k {
			return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
		}
	}
	return c.placeX, c.placeY
}

// addSeg decodes the command key, with arguments
// in c.points, and adds the matching operations to the path.
func (c *pathCursor) addSeg(key byte) error {
	up := toUpper(key)
	rel := key != up
	n := argCounts[up]
	l := len(c.points)
	if n == 0 {
		if l != 0 {
			return fmt.Errorf("%w: unexpected arguments", ErrInvalidPath)
		}
	} else if l == 0 || l%n != 0 {
		return fmt.Errorf("%w: got %d arguments, expected a multiple of %d", ErrInvalidPath, l, n)
	}

	// a command after Z starts a new sub path at the current point
	if c.closed && up != 'M' && up != 'Z' {
		c.path.Start(toFixedP(c.placeX, c.placeY))
	}
	c.closed = false

	if rel { // resolve the relative coordinates
		switch up {
		case 'H':
			for i := range c.points {
				c.points[i] += c.placeX
			}
		case 'V':
			for i := range c.points {
				c.points[i] += c.placeY
			}
		case 'A':
			// only the end point is relative, and each arc moves the current point
		default:
			// each point of a group is relative to the end of the previous group
			x, y := c.placeX, c.placeY
			for i := 0; i < l; i += n {
				for j := i; j < i+n; j += 2 {
					c.points[j] += x
					c.points[j+1] += y
				}
				x, y = c.points[i+n-2], c.points[i+n-1]
			}
		}
	}

	switch up {
	case 'Z':
		c.path.Stop(true)
		c.placeX, c.placeY = c.pathStartX, c.pathStartY
		c.closed = true
	case 'M':
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if i == 0 {
				c.path.Start(toFixedP(x, y))
				c.pathStartX, c.pathStartY = x, y
			} else { // implicit line to
				c.path.Line(toFixedP(x, y))
			}
			c.placeX, c.placeY = x, y
		}
	case 'L':
		for i := 0; i < l; i += 2 {
			c.placeX, c.placeY = c.points[i], c.points[i+1]
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'H':
		for _, x := range c.points {
			c.placeX = x
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'V':
		for _, y := range c.points {
			c.placeY = y
			c.path.Line(toFixedP(c.placeX, c.placeY))
		}
	case 'C':
		for i := 0; i < l; i += 6 {
			p := c.points[i : i+6]
			c.path.CubeBezier(toFixedP(p[0], p[1]), toFixedP(p[2], p[3]), toFixedP(p[4], p[5]))
			c.cntlPtX, c.cntlPtY = p[2], p[3]
			c.placeX, c.placeY = p[4], p[5]
			c.lastKey = 'C'
		}
	case 'S':
		for i := 0; i < l; i += 4 {
			p := c.points[i : i+4]
			x1, y1 := c.reflect('C', 'S')
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(p[0], p[1]), toFixedP(p[2], p[3]))
			c.cntlPtX, c.cntlPtY = p[0], p[1]
			c.placeX, c.placeY = p[2], p[3]
			c.lastKey = 'S'
		}
	case 'Q':
		for i := 0; i < l; i += 4 {
			p := c.points[i : i+4]
			c.path.QuadBezier(toFixedP(p[0], p[1]), toFixedP(p[2], p[3]))
			c.cntlPtX, c.cntlPtY = p[0], p[1]
			c.placeX, c.placeY = p[2], p[3]
			c.lastKey = 'Q'
		}
	case 'T':
		for i := 0; i < l; i += 2 {
			x1, y1 := c.reflect('Q', 'T')
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(c.points[i], c.points[i+1]))
			c.cntlPtX, c.cntlPtY = x1, y1
			c.placeX, c.placeY = c.points[i], c.points[i+1]
			c.lastKey = 'T'
		}
	case 'A':
		for i := 0; i < l; i += 7 {
			p := c.points[i : i+7]
			if rel {
				p[5] += c.placeX
				p[6] += c.placeY
			}
			c.addArcSeg(p)
		}
	}

	switch up {
	case 'C', 'S', 'Q', 'T':
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
		c.lastKey = up
	}
	return nil
}

// addArcSeg adds one elliptical arc, whose arguments are
// rx ry x-axis-rotation large-arc-flag sweep-flag x y
func (c *pathCursor) addArcSeg(p []float64) {
	endX, endY := p[5], p[6]
	if endX == c.placeX && endY == c.placeY {
		return // no arc to draw
	}
	if p[0] == 0 || p[1] == 0 {
		c.placeX, c.placeY = endX, endY
		c.path.Line(toFixedP(endX, endY))
		return
	}
	e, theta, delta := endpointArc(c.placeX, c.placeY, endX, endY,
		p[0], p[1], p[2]*math.Pi/180, p[3] != 0, p[4] != 0)
	c.path.appendArc(e, theta, delta, toFixedP(endX, endY))
	c.placeX, c.placeY = endX, endY
}

// scanner reads the numbers of path data
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) skipSeparators() {
	for !s.done() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

// number reads a float such as -1.5e-3. A sign or a second dot ends the number,
// so that "1-2" and "0.5.5" are read as two numbers.
func (s *scanner) number() (float64, error) {
	start := s.pos
	if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	digits := s.digits()
	if !s.done() && s.src[s.pos] == '.' {
		s.pos++
		digits += s.digits()
	}
	if digits == 0 {
		if s.pos == start {
			s.pos++ // always make progress in error messages
		}
		return 0, fmt.Errorf("%w: invalid number %q at offset %d", ErrInvalidPath, s.src[start:s.pos], start)
	}
	if !s.done() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		save := s.pos
		s.pos++
		if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.digits() == 0 { // not an exponent
			s.pos = save
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}
	return v, nil
}

func (s *scanner) digits() int {
	n := 0
	for !s.done() && '0' <= s.src[s.pos] && s.src[s.pos] <= '9' {
		s.pos++
		n++
	}
	return n
}

// flag reads an arc flag, which may not be separated from what follows
func (s *scanner) flag() (float64, error) {
	switch s.src[s.pos] {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	}
	return 0, fmt.Errorf("%w: invalid arc flag %q at offset %d", ErrInvalidPath, s.src[s.pos], s.pos)
}

func isLetter(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

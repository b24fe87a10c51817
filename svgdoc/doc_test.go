package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns = "http://www.w3.org/2000/svg"

// scenario returns a document with one rectangle (0,0,10,5 px)
// and one group holding one circle (1,1,2).
func scenario() *Document {
	doc := NewDocument(ns)
	doc.Rectangles.Append(NewRectangle(0, 0, 10, 5, "px"))
	g := NewGroup()
	g.Circles.Append(NewCircle(1, 1, 2, ""))
	doc.Groups.Append(g)
	return doc
}

// nested returns a document with groups nested as
//
//	g0 (rect) -> g1 (path) -> g2 (circle)
//	g3 (empty)
func nested() *Document {
	doc := NewDocument(ns)
	doc.Rectangles.Append(NewRectangle(1, 1, 1, 1, ""))
	doc.Paths.Append(NewPath("M0 0"))

	g0, g1, g2, g3 := NewGroup(), NewGroup(), NewGroup(), NewGroup()
	g0.Rectangles.Append(NewRectangle(2, 2, 2, 2, ""))
	g1.Paths.Append(NewPath("M1 1"))
	g2.Circles.Append(NewCircle(0, 0, 1, ""))
	g1.Groups.Append(g2)
	g0.Groups.Append(g1)
	doc.Groups.Append(g0)
	doc.Groups.Append(g3)
	return doc
}

func TestScenario(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()

	assert.Equal(t, 1, Rects(doc).Len())
	assert.Equal(t, 1, Circles(doc).Len())
	assert.Equal(t, 1, Groups(doc).Len())
	assert.Equal(t, 0, Paths(doc).Len())
	assert.True(t, IsValid(doc))
}

func TestGroupsPreOrder(t *testing.T) {
	doc := nested()
	defer doc.Destroy()

	groups := Groups(doc)
	require.Equal(t, 4, groups.Len())
	g0 := doc.Groups.At(0)
	g1 := g0.Groups.At(0)
	assert.Same(t, g0, groups.At(0))
	assert.Same(t, g1, groups.At(1))
	assert.Same(t, g1.Groups.At(0), groups.At(2))
	assert.Same(t, doc.Groups.At(1), groups.At(3))
}

func TestFlattenOrder(t *testing.T) {
	doc := nested()
	defer doc.Destroy()

	rects := Rects(doc)
	require.Equal(t, 2, rects.Len())
	assert.Same(t, doc.Rectangles.At(0), rects.At(0))
	assert.Equal(t, 2., rects.At(1).X)

	paths := Paths(doc)
	require.Equal(t, 2, paths.Len())
	assert.Equal(t, "M0 0", paths.At(0).Data)
	assert.Equal(t, "M1 1", paths.At(1).Data)

	assert.Equal(t, 1, Circles(doc).Len())
}

func TestFlattenCompleteness(t *testing.T) {
	for _, doc := range []*Document{NewDocument(ns), scenario(), nested()} {
		groups := Groups(doc)
		rects, circles, paths := doc.Rectangles.Len(), doc.Circles.Len(), doc.Paths.Len()
		subGroups := 0
		for g := range groups.All() {
			rects += g.Rectangles.Len()
			circles += g.Circles.Len()
			paths += g.Paths.Len()
			subGroups += g.Groups.Len()
		}
		assert.Equal(t, rects, Rects(doc).Len())
		assert.Equal(t, circles, Circles(doc).Len())
		assert.Equal(t, paths, Paths(doc).Len())
		assert.Equal(t, doc.Groups.Len()+subGroups, groups.Len())
		doc.Destroy()
	}
}

func TestFlattenEmpty(t *testing.T) {
	doc := NewDocument(ns)
	assert.Equal(t, 0, Rects(doc).Len())
	assert.Equal(t, 0, Groups(doc).Len())

	assert.Nil(t, Groups(nil))
	assert.Nil(t, Rects(nil))
	assert.Equal(t, 0, Circles(nil).Len())
}

func TestDestroy(t *testing.T) {
	doc := nested()
	g0 := doc.Groups.At(0)
	r := doc.Rectangles.At(0)
	doc.Destroy()

	assert.Nil(t, r.Other)
	assert.Nil(t, g0.Groups)
	assert.Equal(t, 0, doc.Rectangles.Len())

	var none *Document
	none.Destroy()
}

func TestValidatorMonotonicity(t *testing.T) {
	doc := nested()
	defer doc.Destroy()
	require.True(t, IsValid(doc))

	inner := doc.Groups.At(0).Rectangles.At(0)
	inner.Width = -1
	assert.False(t, IsValid(doc))
	inner.Width = 3
	assert.True(t, IsValid(doc))

	inner.Height = -0.5
	assert.False(t, IsValid(doc))
	inner.Height = 0
	assert.True(t, IsValid(doc))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		breaks func(doc *Document)
		kind   Kind
	}{
		{"negative height", func(doc *Document) { doc.Rectangles.At(0).Height = -1 }, KindRect},
		{"negative radius", func(doc *Document) { doc.Groups.At(0).Groups.At(0).Groups.At(0).Circles.At(0).R = -1 }, KindCircle},
		{"empty path", func(doc *Document) { doc.Paths.At(0).Data = "" }, KindPath},
		{"missing group list", func(doc *Document) { doc.Groups.At(1).Circles = nil }, KindGroup},
		{"unnamed attribute", func(doc *Document) { doc.Rectangles.At(0).Other.Append(NewAttribute("", "v")) }, KindRect},
		{"missing attributes", func(doc *Document) { doc.Paths.At(0).Other = nil }, KindPath},
		{"empty namespace", func(doc *Document) { doc.Namespace = "" }, KindDocument},
		{"document attribute", func(doc *Document) { doc.Other.Append(NewAttribute("", "")) }, KindDocument},
		{"document list", func(doc *Document) { doc.Circles = nil }, KindDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := nested()
			tt.breaks(doc)
			err := Validate(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.False(t, IsValid(doc))
		})
	}

	assert.ErrorIs(t, Validate(nil), ErrInvalid)
}

func TestValidationErrorMessage(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()
	doc.Rectangles.At(0).Height = -1
	assert.EqualError(t, Validate(doc), "invalid rect #0: negative height")
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindDocument, KindRect, KindCircle, KindPath, KindGroup} {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	k, ok := ParseKind("circ")
	assert.True(t, ok)
	assert.Equal(t, KindCircle, k)
	_, ok = ParseKind("ellipse")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()
	doc.Title = "t"

	assert.Equal(t, "Namespace: "+ns+" Title: t Desc: ", doc.String())
	r := doc.Rectangles.At(0)
	r.Other.Append(NewAttribute("fill", "red"))
	assert.Equal(t, "x: 0.00 y: 0.00 width: 10.00 height: 5.00\tName: fill Value: red", r.String())
	assert.Equal(t, "\nGroup Attributes:cx: 1.00 cy: 1.00 r: 2.00", doc.Groups.At(0).String())
	assert.Equal(t, "Data: M0 0", NewPath("M0 0").String())
}

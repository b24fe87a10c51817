package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAttributeUpsert(t *testing.T) {
	attrs := NewAttributeList()
	SetAttribute(attrs, NewAttribute("fill", "red"))
	SetAttribute(attrs, NewAttribute("stroke", "black"))
	SetAttribute(attrs, NewAttribute("fill", "blue"))

	require.Equal(t, 2, attrs.Len())
	assert.Equal(t, "fill", attrs.At(0).Name)
	assert.Equal(t, "blue", attrs.At(0).Value)
	v, ok := Lookup(attrs, "stroke")
	assert.True(t, ok)
	assert.Equal(t, "black", v)

	SetAttribute(nil, NewAttribute("a", "b"))
	SetAttribute(attrs, nil)
	assert.Equal(t, 2, attrs.Len())
}

func TestSetEntityAttributeGeometry(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()

	ok := SetEntityAttribute(doc, KindRect, 0, NewAttribute("width", "20"))
	require.True(t, ok)
	assert.Equal(t, 20., doc.Rectangles.At(0).Width)
	assert.Equal(t, 0, doc.Rectangles.At(0).Other.Len())

	before := RectToJSON(doc.Rectangles.At(0))
	assert.False(t, SetEntityAttribute(doc, KindRect, 5, NewAttribute("width", "30")))
	assert.False(t, SetEntityAttribute(doc, KindRect, -1, NewAttribute("width", "30")))
	assert.False(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("height", "tall")))
	assert.Equal(t, before, RectToJSON(doc.Rectangles.At(0)))
}

func TestSetEntityAttributeUnits(t *testing.T) {
	doc := NewDocument("urn:test")
	defer doc.Destroy()
	doc.Rectangles.Append(NewRectangle(1, 2, 10, 5, "px"))
	doc.Circles.Append(NewCircle(0, 0, 1, ""))

	require.True(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("width", "20px")))
	r := doc.Rectangles.At(0)
	assert.Equal(t, 20., r.Width)
	assert.Equal(t, "px", r.Units)

	// the units are shared: the last value written sets them
	require.True(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("height", " 7.5 em")))
	assert.Equal(t, 7.5, r.Height)
	assert.Equal(t, "em", r.Units)
	require.True(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("x", "3")))
	assert.Equal(t, "", r.Units)

	require.True(t, SetEntityAttribute(doc, KindCircle, 0, NewAttribute("r", "4mm")))
	assert.Equal(t, 4., doc.Circles.At(0).R)
	assert.Equal(t, "mm", doc.Circles.At(0).Units)

	assert.False(t, SetEntityAttribute(doc, KindCircle, 0, NewAttribute("cx", "px4")))
	assert.Equal(t, "mm", doc.Circles.At(0).Units)
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		value string
		v     float64
		units string
	}{
		{"10", 10, ""},
		{" 2.5px ", 2.5, "px"},
		{"-3e2em", -300, "em"},
		{"5em", 5, "em"},
		{".5%", 0.5, "%"},
		{"+4 mm", 4, "mm"},
		{"1e", 1, "e"},
		{"7.", 7, ""},
	}
	for _, tt := range tests {
		v, units, err := ParseLength(tt.value)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.v, v, tt.value)
		assert.Equal(t, tt.units, units, tt.value)
	}
	for _, value := range []string{"", "abc", "-", ".", "px10", "1e999"} {
		_, _, err := ParseLength(value)
		assert.ErrorIs(t, err, ErrLength, value)
	}
}

func TestSetEntityAttributeOther(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()
	doc.Circles.Append(NewCircle(0, 0, 1, ""))
	doc.Paths.Append(NewPath("M0 0"))

	require.True(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("fill", "red")))
	assert.Equal(t, 1, doc.Rectangles.At(0).Other.Len())

	require.True(t, SetEntityAttribute(doc, KindCircle, 0, NewAttribute("r", "4.5")))
	assert.Equal(t, 4.5, doc.Circles.At(0).R)
	require.True(t, SetEntityAttribute(doc, KindCircle, 0, NewAttribute("stroke", "none")))
	assert.Equal(t, 1, doc.Circles.At(0).Other.Len())

	require.True(t, SetEntityAttribute(doc, KindPath, 0, NewAttribute("d", "M1 1L2 2")))
	assert.Equal(t, "M1 1L2 2", doc.Paths.At(0).Data)

	require.True(t, SetEntityAttribute(doc, KindGroup, 0, NewAttribute("id", "layer")))
	v, _ := Lookup(doc.Groups.At(0).Other, "id")
	assert.Equal(t, "layer", v)

	require.True(t, SetEntityAttribute(doc, KindDocument, 42, NewAttribute("viewBox", "0 0 10 10")))
	v, _ = Lookup(doc.Other, "viewBox")
	assert.Equal(t, "0 0 10 10", v)

	assert.False(t, SetEntityAttribute(doc, KindPath, 1, NewAttribute("d", "M")))
	assert.False(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("", "x")))
	assert.False(t, SetEntityAttribute(doc, KindRect, 0, nil))
	assert.False(t, SetEntityAttribute(nil, KindRect, 0, NewAttribute("x", "1")))
}

func TestSetEntityAttributeTopLevelOnly(t *testing.T) {
	doc := NewDocument(ns)
	defer doc.Destroy()
	g := NewGroup()
	g.Rectangles.Append(NewRectangle(0, 0, 1, 1, ""))
	doc.Groups.Append(g)

	// the only rectangle is nested: index 0 does not reach it
	assert.False(t, SetEntityAttribute(doc, KindRect, 0, NewAttribute("width", "2")))
	assert.Equal(t, 1., g.Rectangles.At(0).Width)
}

func TestAddComponent(t *testing.T) {
	doc := scenario()
	defer doc.Destroy()

	AddComponent(doc, KindRect, NewRectangle(1, 2, 3, 4, ""))
	AddComponent(doc, KindCircle, NewCircle(1, 2, 3, ""))
	AddComponent(doc, KindPath, NewPath("M0 0"))
	AddComponent(doc, KindGroup, NewGroup())

	assert.Equal(t, 2, doc.Rectangles.Len())
	assert.Equal(t, 1, doc.Circles.Len())
	assert.Equal(t, 1, doc.Paths.Len())
	assert.Equal(t, 2, doc.Groups.Len())
	assert.Equal(t, 1, doc.Groups.At(0).Circles.Len())

	AddComponent(doc, KindRect, NewCircle(0, 0, 1, ""))
	AddComponent(doc, KindRect, nil)
	var noRect *Rectangle
	AddComponent(doc, KindRect, noRect)
	AddComponent(nil, KindRect, NewRectangle(0, 0, 0, 0, ""))
	assert.Equal(t, 2, doc.Rectangles.Len())
	assert.Equal(t, 1, doc.Circles.Len())
}

func TestQueries(t *testing.T) {
	doc := nested()
	defer doc.Destroy()
	doc.Rectangles.At(0).Other.Append(NewAttribute("fill", "red"))
	doc.Groups.At(1).Other.Append(NewAttribute("id", "empty"))
	doc.Other.Append(NewAttribute("version", "1.1"))

	assert.Equal(t, 1, NumRectsWithArea(doc, 4))
	assert.Equal(t, 1, NumRectsWithArea(doc, 0.5))
	assert.Equal(t, 0, NumRectsWithArea(doc, -1))
	assert.Equal(t, 1, NumCirclesWithArea(doc, 3.1))
	assert.Equal(t, 0, NumCirclesWithArea(doc, 5))
	assert.Equal(t, 1, NumPathsWithData(doc, "M1 1"))
	assert.Equal(t, 0, NumPathsWithData(doc, "M2 2"))
	assert.Equal(t, 2, NumGroupsWithLen(doc, 2))
	assert.Equal(t, 1, NumGroupsWithLen(doc, 0))
	assert.Equal(t, 0, NumGroupsWithLen(doc, -1))
	assert.Equal(t, 3, NumAttr(doc))

	assert.Equal(t, 0, NumAttr(nil))
	assert.Equal(t, 0, NumPathsWithData(nil, ""))
}

func TestSummary(t *testing.T) {
	doc := nested()
	defer doc.Destroy()
	doc.Title = "nested"

	s := Summarize(doc)
	assert.Equal(t, Summary{
		Namespace: ns, Title: "nested",
		NumRects: 2, NumCircles: 1, NumPaths: 2, NumGroups: 4,
	}, s)
	assert.Equal(t, DocumentToJSON(doc), s.JSON())
	assert.Equal(t, Summary{}, Summarize(nil))
}

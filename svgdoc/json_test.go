package svgdoc

import (
	"testing"

	"github.com/benoitkugler/svgtree/svglist"
	"github.com/stretchr/testify/assert"
)

func TestEntityToJSON(t *testing.T) {
	r := NewRectangle(1, 2.5, 10, 5.126, "px")
	r.Other.Append(NewAttribute("fill", "red"))
	assert.Equal(t, `{"x":1.00,"y":2.50,"w":10.00,"h":5.13,"numAttr":1,"units":"px"}`, RectToJSON(r))

	c := NewCircle(1, 1, 2, "")
	assert.Equal(t, `{"cx":1.00,"cy":1.00,"r":2.00,"numAttr":0,"units":""}`, CircleToJSON(c))

	p := NewPath(`M0 0 "quoted"`)
	assert.Equal(t, `{"d":"M0 0 \"quoted\"","numAttr":0}`, PathToJSON(p))

	assert.Equal(t, `{"name":"id","value":"a"}`, AttrToJSON(NewAttribute("id", "a")))

	doc := scenario()
	defer doc.Destroy()
	assert.Equal(t, `{"children":1,"numAttr":0}`, GroupToJSON(doc.Groups.At(0)))
	assert.Equal(t, `{"numRect":1,"numCirc":1,"numPaths":0,"numGroups":1}`, DocumentToJSON(doc))
}

func TestNilToJSON(t *testing.T) {
	assert.Equal(t, "{}", AttrToJSON(nil))
	assert.Equal(t, "{}", RectToJSON(nil))
	assert.Equal(t, "{}", CircleToJSON(nil))
	assert.Equal(t, "{}", PathToJSON(nil))
	assert.Equal(t, "{}", GroupToJSON(nil))
	assert.Equal(t, "{}", DocumentToJSON(nil))
}

func TestListToJSON(t *testing.T) {
	attrs := NewAttributeList()
	assert.Equal(t, "[]", AttrListToJSON(attrs))
	attrs.Append(NewAttribute("a", "1"))
	attrs.Append(NewAttribute("b", "2"))
	assert.Equal(t, `[{"name":"a","value":"1"},{"name":"b","value":"2"}]`, AttrListToJSON(attrs))

	assert.Equal(t, "[]", RectListToJSON(nil))
	var noPaths *svglist.List[*Path]
	assert.Equal(t, "[]", PathListToJSON(noPaths))

	doc := nested()
	defer doc.Destroy()
	assert.Equal(t, `[{"d":"M0 0","numAttr":0},{"d":"M1 1","numAttr":0}]`, PathListToJSON(Paths(doc)))
	assert.Equal(t, `[{"cx":0.00,"cy":0.00,"r":1.00,"numAttr":0,"units":""}]`, CircleListToJSON(Circles(doc)))
	assert.Equal(t, `[{"children":2,"numAttr":0},{"children":0,"numAttr":0}]`, GroupListToJSON(doc.Groups))
}

func TestFromJSON(t *testing.T) {
	doc, err := DocumentFromJSON("{}")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrUnsupported)
	r, err := RectFromJSON(`{"x":1}`)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrUnsupported)
	c, err := CircleFromJSON("")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrUnsupported)
}

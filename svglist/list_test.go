package svglist

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting records destroyed elements
type counting struct {
	destroyed map[int]int
}

func (c *counting) Render(v int) string { return "<" + strconv.Itoa(v) + ">" }
func (c *counting) Destroy(v int)       { c.destroyed[v]++ }
func (c *counting) Compare(a, b int) int { return a - b }

func newCounting() *counting { return &counting{destroyed: map[int]int{}} }

func TestAppendOrder(t *testing.T) {
	l := New[int](newCounting())
	assert.Equal(t, 0, l.Len())
	for i := range 5 {
		l.Append(i * 10)
	}
	assert.Equal(t, 5, l.Len())

	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 10, 20, 30, 40}, got)
	assert.Equal(t, "<0><10><20><30><40>", l.RenderAll())
	assert.Equal(t, 30, l.At(3))
}

func TestNilList(t *testing.T) {
	var l *List[int]
	l.Append(3) // no-op
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "", l.RenderAll())
	_, ok := l.Iterator().Next()
	assert.False(t, ok)
	assert.False(t, l.Contains(3))
	l.Destroy()
	l.Sort()
}

func TestIteratorRestart(t *testing.T) {
	l := New[int](newCounting())
	l.Append(1)
	l.Append(2)

	it := l.Iterator()
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "an exhausted iterator stays exhausted")

	fresh := l.Iterator()
	v, ok = fresh.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDestroyOnce(t *testing.T) {
	s := newCounting()
	l := New[int](s)
	for i := range 4 {
		l.Append(i)
	}
	l.Destroy()
	assert.Equal(t, 0, l.Len())
	for i := range 4 {
		assert.Equal(t, 1, s.destroyed[i])
	}
	l.Destroy()
	for i := range 4 {
		assert.Equal(t, 1, s.destroyed[i], "a released list destroys nothing")
	}
}

func TestViewDoesNotOwn(t *testing.T) {
	s := newCounting()
	l := New[int](s)
	l.Append(7)
	l.Append(8)

	v := ViewOf(l)
	v.Append(9)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "<7><8><9>", v.RenderAll())
	assert.Empty(t, s.destroyed)

	l.Destroy()
	assert.Equal(t, 3, v.Len(), "the view keeps its references")
}

func TestFindContainsSort(t *testing.T) {
	l := New[int](newCounting())
	for _, v := range []int{5, 1, 4, 1, 3} {
		l.Append(v)
	}
	v, ok := l.Find(func(v int) bool { return v > 3 })
	require.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = l.Find(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	assert.True(t, l.Contains(4))
	assert.False(t, l.Contains(2))

	l.Sort()
	var sb strings.Builder
	for v := range l.All() {
		sb.WriteString(strconv.Itoa(v))
	}
	assert.Equal(t, "11345", sb.String())
}

func TestNilView(t *testing.T) {
	var v *View[int]
	v.Append(1)
	v.Extend(nil)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, "", v.RenderAll())
	for range v.All() {
		t.Fatal("nil view yields nothing")
	}

	noRender := NewView[int](nil)
	noRender.Append(2)
	assert.Equal(t, "", noRender.RenderAll())
}

// Implements the ordered sequences used by every
// list of the document model: an owning List, bound to
// a render/destroy/compare Strategy, and a non-owning View
// used to alias elements owned elsewhere.
package svglist

import (
	"iter"
	"slices"
	"strings"
)

// Renderer turns one element into text.
type Renderer[T any] interface {
	Render(elem T) string
}

// Strategy is bound to a List at creation and supplies
// the element specific behavior.
type Strategy[T any] interface {
	Renderer[T]
	// Destroy releases the resources owned by elem.
	Destroy(elem T)
	// Compare returns a negative number, zero or a positive number
	// when a sorts before, equal to, or after b.
	Compare(a, b T) int
}

// Seq is the read-only surface shared by List and View.
type Seq[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// List is an insertion ordered sequence which owns its elements.
// A nil *List is a valid empty list: Append is a no-op and Len is 0.
type List[T any] struct {
	items    []T
	strategy Strategy[T]
}

var _ Seq[int] = (*List[int])(nil) // assert interface conformance

// New returns an empty list bound to s.
func New[T any](s Strategy[T]) *List[T] {
	return &List[T]{strategy: s}
}

// Append adds elem at the back of the list, which takes ownership of it.
func (l *List[T]) Append(elem T) {
	if l == nil {
		return
	}
	l.items = append(l.items, elem)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the i-th element. It panics if i is out of range.
func (l *List[T]) At(i int) T { return l.items[i] }

// Strategy returns the strategy bound at creation.
func (l *List[T]) Strategy() Strategy[T] {
	if l == nil {
		return nil
	}
	return l.strategy
}

// Iterator returns a fresh forward iterator over the list.
func (l *List[T]) Iterator() *Iterator[T] {
	if l == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{items: l.items}
}

// All returns an iterator over the elements, in insertion order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, elem := range l.items {
			if !yield(elem) {
				return
			}
		}
	}
}

// RenderAll concatenates the rendering of every element.
func (l *List[T]) RenderAll() string {
	if l == nil {
		return ""
	}
	return renderAll(l.strategy, l.items)
}

// Find returns the first element matching pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	i := slices.IndexFunc(l.items, pred)
	if i < 0 {
		return zero, false
	}
	return l.items[i], true
}

// Contains reports whether an element compares equal to elem.
func (l *List[T]) Contains(elem T) bool {
	if l == nil {
		return false
	}
	_, ok := l.Find(func(other T) bool { return l.strategy.Compare(other, elem) == 0 })
	return ok
}

// Sort orders the list according to the strategy, keeping
// the insertion order of equal elements.
func (l *List[T]) Sort() {
	if l == nil {
		return
	}
	slices.SortStableFunc(l.items, l.strategy.Compare)
}

// Destroy calls the strategy Destroy on every element, then
// releases the list, which is left empty.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	for _, elem := range l.items {
		l.strategy.Destroy(elem)
	}
	clear(l.items)
	l.items = nil
}

// Iterator is a single pass, forward only cursor.
// Mutating the underlying list while iterating is not supported.
type Iterator[T any] struct {
	items []T
	pos   int
}

// Next returns the next element, or false when exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	elem := it.items[it.pos]
	it.pos++
	return elem, true
}

func renderAll[T any](r Renderer[T], items []T) string {
	var sb strings.Builder
	for _, elem := range items {
		sb.WriteString(r.Render(elem))
	}
	return sb.String()
}

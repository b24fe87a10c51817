package svglist

import "iter"

// View is an ordered sequence of elements owned by some other List.
// It only aliases them: there is no way to destroy elements through a View.
// A nil *View is a valid empty view.
type View[T any] struct {
	items  []T
	render Renderer[T]
}

var _ Seq[int] = (*View[int])(nil) // assert interface conformance

// NewView returns an empty view, rendering its elements with r.
func NewView[T any](r Renderer[T]) *View[T] {
	return &View[T]{render: r}
}

// ViewOf returns a view aliasing the current content of l.
func ViewOf[T any](l *List[T]) *View[T] {
	v := NewView[T](l.Strategy())
	v.Extend(l)
	return v
}

// Append adds a reference to elem.
func (v *View[T]) Append(elem T) {
	if v == nil {
		return
	}
	v.items = append(v.items, elem)
}

// Extend appends every element of s.
func (v *View[T]) Extend(s Seq[T]) {
	if v == nil || s == nil {
		return
	}
	for elem := range s.All() {
		v.items = append(v.items, elem)
	}
}

// Len returns the number of elements.
func (v *View[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// At returns the i-th element. It panics if i is out of range.
func (v *View[T]) At(i int) T { return v.items[i] }

// Iterator returns a fresh forward iterator over the view.
func (v *View[T]) Iterator() *Iterator[T] {
	if v == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{items: v.items}
}

// All returns an iterator over the elements, in order.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v == nil {
			return
		}
		for _, elem := range v.items {
			if !yield(elem) {
				return
			}
		}
	}
}

// RenderAll concatenates the rendering of every element.
// It returns an empty string if the view has no renderer.
func (v *View[T]) RenderAll() string {
	if v == nil || v.render == nil {
		return ""
	}
	return renderAll(v.render, v.items)
}

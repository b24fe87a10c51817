package svgdoc

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgtree/svglist"
)

// ErrInvalid is wrapped by every *ValidationError.
var ErrInvalid = errors.New("invalid document")

// ValidationError describes the first rule broken by a document.
type ValidationError struct {
	Kind   Kind
	Index  int // position in the flattened list of Kind, -1 for the document
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s #%d: %s", e.Kind, e.Index, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// IsValid reports whether doc is well-formed. It never mutates doc.
func IsValid(doc *Document) bool { return Validate(doc) == nil }

// Validate checks every entity reachable from doc and returns the
// first violation found, as a *ValidationError.
func Validate(doc *Document) error {
	if doc == nil {
		return &ValidationError{Kind: KindDocument, Index: -1, Reason: "missing document"}
	}
	if reason := checkDocument(doc); reason != "" {
		return &ValidationError{Kind: KindDocument, Index: -1, Reason: reason}
	}
	if err := checkAll(KindRect, Rects(doc), checkRectangle); err != nil {
		return err
	}
	if err := checkAll(KindCircle, Circles(doc), checkCircle); err != nil {
		return err
	}
	if err := checkAll(KindPath, Paths(doc), checkPath); err != nil {
		return err
	}
	return checkAll(KindGroup, Groups(doc), checkGroup)
}

func checkAll[T any](kind Kind, elems *svglist.View[T], check func(T) string) error {
	i := 0
	for elem := range elems.All() {
		if reason := check(elem); reason != "" {
			return &ValidationError{Kind: kind, Index: i, Reason: reason}
		}
		i++
	}
	return nil
}

const (
	reasonAttrs = "missing attribute list or unnamed attribute"
	reasonLists = "missing child list"
)

func checkDocument(doc *Document) string {
	switch {
	case doc.Namespace == "":
		return "empty namespace"
	case doc.Rectangles == nil || doc.Circles == nil || doc.Paths == nil || doc.Groups == nil:
		return reasonLists
	case !namesValid(doc.Other):
		return reasonAttrs
	}
	return ""
}

func checkRectangle(r *Rectangle) string {
	switch {
	case r == nil:
		return "missing rectangle"
	case r.Width < 0:
		return "negative width"
	case r.Height < 0:
		return "negative height"
	case !namesValid(r.Other):
		return reasonAttrs
	}
	return ""
}

func checkCircle(c *Circle) string {
	switch {
	case c == nil:
		return "missing circle"
	case c.R < 0:
		return "negative radius"
	case !namesValid(c.Other):
		return reasonAttrs
	}
	return ""
}

func checkPath(p *Path) string {
	switch {
	case p == nil:
		return "missing path"
	case p.Data == "":
		return "empty path data"
	case !namesValid(p.Other):
		return reasonAttrs
	}
	return ""
}

func checkGroup(g *Group) string {
	switch {
	case g == nil:
		return "missing group"
	case g.Rectangles == nil || g.Circles == nil || g.Paths == nil || g.Groups == nil:
		return reasonLists
	case !namesValid(g.Other):
		return reasonAttrs
	}
	return ""
}

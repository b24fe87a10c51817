package svgdoc

import "github.com/benoitkugler/svgtree/svglist"

// SetAttribute updates the value of the attribute of attrs with the
// same name as attr, or appends attr if there is none.
// It is a no-op if attrs or attr is nil.
func SetAttribute(attrs *svglist.List[*Attribute], attr *Attribute) {
	if attrs == nil || attr == nil {
		return
	}
	if existing, ok := attrs.Find(func(a *Attribute) bool { return a.Name == attr.Name }); ok {
		existing.Value = attr.Value
		return
	}
	attrs.Append(attr)
}

// SetEntityAttribute sets attr on the index-th entity of the given kind,
// among the direct children of doc: nested groups are never reached.
// For KindDocument, index is ignored and attr is set on the document itself.
//
// When attr names a geometry field of the entity (x, y, width, height;
// cx, cy, r; d), the field is updated, and its value must then start with
// a number. As when reading a document, the rest of the value becomes
// the Units of the entity, even if empty.
// Otherwise attr is upserted in the entity Other attributes.
//
// It returns false, leaving doc unchanged, if the entity does not exist
// or if attr is nil, unnamed or not numeric when required.
func SetEntityAttribute(doc *Document, kind Kind, index int, attr *Attribute) bool {
	if doc == nil || attr == nil || attr.Name == "" {
		return false
	}
	switch kind {
	case KindDocument:
		if doc.Other == nil {
			return false
		}
		SetAttribute(doc.Other, attr)
		return true
	case KindRect:
		r, ok := entityAt(doc.Rectangles, index)
		if !ok {
			return false
		}
		return setRectangleAttribute(r, attr)
	case KindCircle:
		c, ok := entityAt(doc.Circles, index)
		if !ok {
			return false
		}
		return setCircleAttribute(c, attr)
	case KindPath:
		p, ok := entityAt(doc.Paths, index)
		if !ok {
			return false
		}
		if attr.Name == "d" {
			p.Data = attr.Value
			return true
		}
		return upsertOther(p.Other, attr)
	case KindGroup:
		g, ok := entityAt(doc.Groups, index)
		if !ok {
			return false
		}
		return upsertOther(g.Other, attr)
	}
	return false
}

func entityAt[T any](list *svglist.List[T], index int) (T, bool) {
	if index < 0 || index >= list.Len() {
		var zero T
		return zero, false
	}
	return list.At(index), true
}

func upsertOther(attrs *svglist.List[*Attribute], attr *Attribute) bool {
	if attrs == nil {
		return false
	}
	SetAttribute(attrs, attr)
	return true
}

func setRectangleAttribute(r *Rectangle, attr *Attribute) bool {
	var field *float64
	switch attr.Name {
	case "x":
		field = &r.X
	case "y":
		field = &r.Y
	case "width":
		field = &r.Width
	case "height":
		field = &r.Height
	default:
		return upsertOther(r.Other, attr)
	}
	v, units, err := ParseLength(attr.Value)
	if err != nil {
		return false
	}
	*field, r.Units = v, units
	return true
}

func setCircleAttribute(c *Circle, attr *Attribute) bool {
	var field *float64
	switch attr.Name {
	case "cx":
		field = &c.Cx
	case "cy":
		field = &c.Cy
	case "r":
		field = &c.R
	default:
		return upsertOther(c.Other, attr)
	}
	v, units, err := ParseLength(attr.Value)
	if err != nil {
		return false
	}
	*field, c.Units = v, units
	return true
}

// AddComponent appends elem to the top level list of doc matching kind.
// It is a no-op if doc or elem is nil, or if elem is not of the given kind.
// Nested groups are never modified.
func AddComponent(doc *Document, kind Kind, elem Element) {
	if doc == nil || elem == nil {
		return
	}
	switch e := elem.(type) {
	case *Rectangle:
		if kind == KindRect && e != nil {
			doc.Rectangles.Append(e)
		}
	case *Circle:
		if kind == KindCircle && e != nil {
			doc.Circles.Append(e)
		}
	case *Path:
		if kind == KindPath && e != nil {
			doc.Paths.Append(e)
		}
	case *Group:
		if kind == KindGroup && e != nil {
			doc.Groups.Append(e)
		}
	}
}

package svgdoc

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgtree/svglist"
)

// Attribute is a name/value pair not recognized
// as a geometry field of its entity.
type Attribute struct {
	Name, Value string
}

// NewAttribute returns a new attribute.
func NewAttribute(name, value string) *Attribute {
	return &Attribute{Name: name, Value: value}
}

func (a *Attribute) String() string {
	return fmt.Sprintf("\tName: %s Value: %s", a.Name, a.Value)
}

type attributeStrategy struct{}

func (attributeStrategy) Render(a *Attribute) string { return a.String() }

func (attributeStrategy) Destroy(*Attribute) {}

func (attributeStrategy) Compare(a, b *Attribute) int { return strings.Compare(a.Name, b.Name) }

// NewAttributeList returns an empty list of attributes.
func NewAttributeList() *svglist.List[*Attribute] {
	return svglist.New[*Attribute](attributeStrategy{})
}

// Lookup returns the value of the attribute called name.
func Lookup(attrs svglist.Seq[*Attribute], name string) (string, bool) {
	if attrs == nil {
		return "", false
	}
	for a := range attrs.All() {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// namesValid reports whether the list exists and every attribute has a name.
func namesValid(attrs *svglist.List[*Attribute]) bool {
	if attrs == nil {
		return false
	}
	for a := range attrs.All() {
		if a == nil || a.Name == "" {
			return false
		}
	}
	return true
}

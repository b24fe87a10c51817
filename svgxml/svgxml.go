// Converts SVG documents between their XML text
// and the object tree of package svgdoc.
//
// Only rect, circle, path and g elements (plus the
// title and desc of the root) are understood; how
// other elements are handled depends on the ErrorMode.
package svgxml

import (
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgtree/svgdoc"
)

// Read decodes and builds the document from the given io.Reader.
// errMode determines if the document ignores, errors out, or logs a warning
// if it does not handle an element found in the input.
func Read(stream io.Reader, errMode ErrorMode) (*svgdoc.Document, error) {
	return ReadValid(stream, nil, errMode)
}

// ReadFile reads the document from the named file.
// See Read for errMode.
func ReadFile(name string, errMode ErrorMode) (*svgdoc.Document, error) {
	fin, errf := os.Open(name)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return Read(fin, errMode)
}

// ReadValid is the same as Read, but the decoded tree is first
// checked by schema. A nil schema skips the check.
func ReadValid(stream io.Reader, schema SchemaValidator, errMode ErrorMode) (*svgdoc.Document, error) {
	root, err := Decode(stream)
	if err != nil {
		return nil, err
	}
	if err := validateTree(root, schema); err != nil {
		return nil, err
	}
	return FromTree(root, errMode)
}

// Write encodes doc as XML.
func Write(w io.Writer, doc *svgdoc.Document, indent bool) error {
	root, err := ToTree(doc)
	if err != nil {
		return err
	}
	return root.Encode(w, indent)
}

// WriteFile writes doc to the named file, which is created or truncated.
func WriteFile(name string, doc *svgdoc.Document, indent bool) error {
	root, err := ToTree(doc)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := root.Encode(f, indent); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SchemaValidator checks a tree against an external schema.
type SchemaValidator interface {
	ValidateTree(root *Node) error
}

// SchemaFunc adapts a function to SchemaValidator.
type SchemaFunc func(root *Node) error

func (f SchemaFunc) ValidateTree(root *Node) error { return f(root) }

func validateTree(root *Node, schema SchemaValidator) error {
	if schema == nil {
		return nil
	}
	if err := schema.ValidateTree(root); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}

// ValidateDocument checks the structure of doc with svgdoc.Validate,
// then its tree with schema, if not nil.
func ValidateDocument(doc *svgdoc.Document, schema SchemaValidator) error {
	if err := svgdoc.Validate(doc); err != nil {
		return err
	}
	root, err := ToTree(doc)
	if err != nil {
		return err
	}
	return validateTree(root, schema)
}

// AllowedElements returns a schema accepting only the given element names,
// at any depth.
func AllowedElements(names ...string) SchemaFunc {
	allowed := make(map[string]bool, len(names))
	for _, name := range names {
		allowed[name] = true
	}
	var check func(n *Node) error
	check = func(n *Node) error {
		if !allowed[n.Name] {
			return fmt.Errorf("element <%s> is not allowed", n.Name)
		}
		for _, child := range n.Children {
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}
	return check
}

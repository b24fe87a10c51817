package svgxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Attr is an attribute of a Node. Name keeps the prefix used
// in the source, such as xlink:href or xmlns:xlink.
type Attr struct {
	Name, Value string
}

// Node is a generic XML element, the external
// tree representation of a document.
type Node struct {
	Name      string // local name
	Namespace string // resolved namespace URI, if any
	Attrs     []Attr
	Children  []*Node
	Text      string // concatenated character data
}

// Attr returns the value of the attribute called name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Decode reads the whole XML document from r and returns its root element.
func Decode(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		// namespace URI -> prefix, one scope per open element
		scopes []map[string]string
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch tok := t.(type) {
		case xml.StartElement:
			scopes = append(scopes, declaredPrefixes(tok.Attr))
			n := &Node{Name: tok.Name.Local, Namespace: tok.Name.Space}
			for _, attr := range tok.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qualifiedName(scopes, attr.Name), Value: attr.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("svgxml: unexpected element <%s> after the root element", n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += string(tok)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrAbsent)
	}
	return root, nil
}

func declaredPrefixes(attrs []xml.Attr) map[string]string {
	var scope map[string]string
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			if scope == nil {
				scope = make(map[string]string)
			}
			scope[attr.Value] = attr.Name.Local
		}
	}
	return scope
}

// qualifiedName restores the source prefix of name, which
// the decoder has replaced by a namespace URI.
func qualifiedName(scopes []map[string]string, name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	case xmlNamespace:
		return "xml:" + name.Local
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		if prefix, ok := scopes[i][name.Space]; ok {
			return prefix + ":" + name.Local
		}
	}
	return name.Space + ":" + name.Local // undeclared prefix, kept as is
}

// Encode writes the tree rooted at n as an XML document, with
// an XML header. If indent is true, elements are indented.
func (n *Node) Encode(w io.Writer, indent bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	if err := n.encode(enc, ""); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// encode writes n, declaring its namespace if it differs from
// the one of its parent.
func (n *Node) encode(enc *xml.Encoder, parentNamespace string) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	if n.Namespace != parentNamespace {
		start.Name.Space = n.Namespace
	}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.encode(enc, n.Namespace); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

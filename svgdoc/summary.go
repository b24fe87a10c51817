package svgdoc

import "fmt"

// Summary is a one-way structural description of a document:
// the number of entities of each kind over the whole tree.
type Summary struct {
	Namespace   string `json:"namespace" yaml:"namespace" cbor:"namespace"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" cbor:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" cbor:"description,omitempty"`

	NumRects      int `json:"numRect" yaml:"rects" cbor:"numRect"`
	NumCircles    int `json:"numCirc" yaml:"circles" cbor:"numCirc"`
	NumPaths      int `json:"numPaths" yaml:"paths" cbor:"numPaths"`
	NumGroups     int `json:"numGroups" yaml:"groups" cbor:"numGroups"`
	NumAttributes int `json:"numAttr" yaml:"attributes" cbor:"numAttr"`
}

// Summarize counts the entities of doc. A nil document
// has an empty summary.
func Summarize(doc *Document) Summary {
	if doc == nil {
		return Summary{}
	}
	return Summary{
		Namespace:     doc.Namespace,
		Title:         doc.Title,
		Description:   doc.Description,
		NumRects:      Rects(doc).Len(),
		NumCircles:    Circles(doc).Len(),
		NumPaths:      Paths(doc).Len(),
		NumGroups:     Groups(doc).Len(),
		NumAttributes: NumAttr(doc),
	}
}

// JSON returns the same form as DocumentToJSON.
func (s Summary) JSON() string {
	return fmt.Sprintf(`{"numRect":%d,"numCirc":%d,"numPaths":%d,"numGroups":%d}`,
		s.NumRects, s.NumCircles, s.NumPaths, s.NumGroups)
}

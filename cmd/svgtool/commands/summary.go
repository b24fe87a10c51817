package commands

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgxml"
)

// RunSummary reads the file at path, checks it is valid
// and writes its JSON summary.
func RunSummary(path string, opts Options, w io.Writer) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()

	if err := svgdoc.Validate(doc); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, svgdoc.Summarize(doc).JSON())
	return err
}

// RunValidate reads the file at path and validates it. If elements
// is not empty, only these elements are accepted in the written tree.
func RunValidate(path string, elements []string, opts Options, w io.Writer) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()

	var schema svgxml.SchemaValidator
	if len(elements) != 0 {
		schema = svgxml.AllowedElements(elements...)
	}
	if err := svgxml.ValidateDocument(doc, schema); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: valid\n", path)
	return err
}

// RunList writes the entities of the given kind found in the file at path.
func RunList(path string, kind svgdoc.Kind, text bool, opts Options, w io.Writer) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()
	return List(doc, kind, text, w)
}

// RunPaths compiles every path of the file at path, and writes for each
// its bounding box and its normalized data, with absolute commands only.
// The paths which can't be compiled are reported and left out of the
// bounding box of the whole drawing, written last.
func RunPaths(path string, opts Options, w io.Writer) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()

	i := 0
	for p := range svgdoc.Paths(doc).All() {
		compiled, err := svgpath.Compile(p.Data)
		switch {
		case err != nil:
			fmt.Fprintf(w, "path %d: skipped: %v\n", i, err)
		default:
			b, _ := compiled.Bounds() // a compiled path starts with a move
			fmt.Fprintf(w, "path %d: %d operations, bounds %s\n\t%s\n", i, len(compiled), FormatBox(b), compiled.ToSVGPath())
		}
		i++
	}

	bbox, ok := Bounds(doc)
	if !ok {
		_, err = fmt.Fprintln(w, "no shape")
		return err
	}
	_, err = fmt.Fprintf(w, "bounds: %s\n", FormatBox(bbox))
	return err
}

package commands

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svgxml"
)

// RunSet sets an attribute on a top level entity of the file at path,
// and writes the result to output, or back to path if output is empty.
func RunSet(path, output string, kind svgdoc.Kind, index int, name, value string, opts Options, w io.Writer) error {
	return editFile(path, output, opts, w, func(doc *svgdoc.Document) error {
		return Set(doc, kind, index, name, value)
	})
}

// RunAdd adds a new top level entity to the file at path. See Add and RunSet.
func RunAdd(path, output string, kind svgdoc.Kind, pairs []string, opts Options, w io.Writer) error {
	return editFile(path, output, opts, w, func(doc *svgdoc.Document) error {
		return Add(doc, kind, pairs)
	})
}

func editFile(path, output string, opts Options, w io.Writer, edit func(*svgdoc.Document) error) error {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer doc.Destroy()

	if err := edit(doc); err != nil {
		return err
	}
	if output == "" {
		output = path
	}
	if err := svgxml.WriteFile(output, doc, opts.Indent); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	_, err = fmt.Fprintf(w, "wrote %s\n", output)
	return err
}

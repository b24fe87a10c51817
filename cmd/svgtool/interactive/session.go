// Package interactive provides an interactive shell editing
// a document in memory.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgtree/cmd/svgtool/commands"
	"github.com/benoitkugler/svgtree/svgdoc"
	"github.com/benoitkugler/svgtree/svgxml"
	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

// ErrUsage is returned for a malformed command line.
var ErrUsage = errors.New("invalid usage")

// Session is an open document, and the file it was read from.
type Session struct {
	doc   *svgdoc.Document
	path  string
	opts  commands.Options
	dirty bool
}

// NewSession takes ownership of doc, which is released by Close.
func NewSession(doc *svgdoc.Document, path string, opts commands.Options) *Session {
	return &Session{doc: doc, path: path, opts: opts}
}

// Open reads the file at path and starts a session on it.
func Open(path string, opts commands.Options) (*Session, error) {
	doc, err := svgxml.ReadFile(path, opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewSession(doc, path, opts), nil
}

// Document returns the edited document.
func (s *Session) Document() *svgdoc.Document { return s.doc }

// Dirty reports whether the document has unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Close releases the document.
func (s *Session) Close() {
	s.doc.Destroy()
	s.doc = nil
}

// lineReader is the part of *readline.Instance used by the session.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Run reads commands from the terminal until quit, EOF or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "svg> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	return s.loop(ctx, rl, rl.Stdout(), rl.Stderr())
}

// loop runs the commands read from rl, and closes it on return.
// rl is also closed as soon as ctx is done, so that a pending
// Readline returns.
func (s *Session) loop(ctx context.Context, rl lineReader, stdout, stderr io.Writer) error {
	defer rl.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-stop:
		}
	}()

	s.printHelp(stdout)
	for {
		line, err := rl.Readline()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(stdout, "Exiting...")
			return nil
		}

		quit, err := s.Exec(line, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line, writing its output to w.
// Arguments are split as a shell does, so that a quoted value
// may contain spaces. It returns true when the session should end.
func (s *Session) Exec(line string, w io.Writer) (bool, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(parts) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp(w)
	case "summary", "s":
		_, err := fmt.Fprintln(w, svgdoc.Summarize(s.doc).JSON())
		return false, err
	case "list", "l":
		return false, s.cmdList(args, w)
	case "set":
		return false, s.cmdSet(args)
	case "add", "a":
		return false, s.cmdAdd(args)
	case "validate", "v":
		if err := svgdoc.Validate(s.doc); err != nil {
			return false, err
		}
		fmt.Fprintln(w, "valid")
	case "bounds", "b":
		s.cmdBounds(w)
	case "save", "w":
		return false, s.cmdSave(args, w)
	case "quit", "exit", "q":
		if s.dirty {
			fmt.Fprintln(w, "Discarding unsaved changes")
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s (type 'help')", cmd)
	}
	return false, nil
}

func (s *Session) printHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  summary                       Count the entities of the document
  list <kind> [text]            List the entities of a kind (svg, rect, circle, path, g)
  set <kind> <index> <name> <value>
                                Set an attribute of a top level entity
  add <kind> [name=value ...]   Add a top level entity
  validate                      Check the document structure
  bounds                        Print the bounding box of the drawing
  save [file]                   Write the document
  quit                          Leave the session`)
}

func (s *Session) cmdList(args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "text") {
		return fmt.Errorf("%w: list <kind> [text]", ErrUsage)
	}
	kind, err := commands.ParseKindFlag(args[0])
	if err != nil {
		return err
	}
	return commands.List(s.doc, kind, len(args) == 2, w)
}

// the value may also be given unquoted, as several arguments
func (s *Session) cmdSet(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("%w: set <kind> <index> <name> <value>", ErrUsage)
	}
	kind, err := commands.ParseKindFlag(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid index %q", ErrUsage, args[1])
	}
	if err := commands.Set(s.doc, kind, index, args[2], strings.Join(args[3:], " ")); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

func (s *Session) cmdAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: add <kind> [name=value ...]", ErrUsage)
	}
	kind, err := commands.ParseKindFlag(args[0])
	if err != nil {
		return err
	}
	if err := commands.Add(s.doc, kind, args[1:]); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

func (s *Session) cmdBounds(w io.Writer) {
	bbox, ok := commands.Bounds(s.doc)
	if !ok {
		fmt.Fprintln(w, "no shape")
		return
	}
	fmt.Fprintln(w, commands.FormatBox(bbox))
}

func (s *Session) cmdSave(args []string, w io.Writer) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: save [file]", ErrUsage)
	}
	name := s.path
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		return fmt.Errorf("%w: no file name", ErrUsage)
	}
	if err := svgxml.WriteFile(name, s.doc, s.opts.Indent); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	s.path = name
	s.dirty = false
	fmt.Fprintf(w, "wrote %s\n", name)
	return nil
}

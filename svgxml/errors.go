package svgxml

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorMode determines how the builders react to content
// they do not support.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements
	// and accepts path data which can't be compiled.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode behaves as IgnoreErrorMode, but logs
	// a warning using Logger.
	WarnErrorMode
	// StrictErrorMode fails the build.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<invalid mode %d>", uint8(m))
	}
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch s {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("svgxml: invalid error mode %q (expected ignore, warn or strict)", s)
}

// Logger is used in WarnErrorMode. If nil, slog.Default() is used.
var Logger *slog.Logger

func logger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

var (
	// ErrAbsent is returned when there is no document to process.
	ErrAbsent = errors.New("svgxml: absent document")
	// ErrMalformed is wrapped by the errors returned for
	// entities which can't be built.
	ErrMalformed = errors.New("svgxml: malformed entity")
	// ErrUnsupported is wrapped in StrictErrorMode
	// when an unknown element is found.
	ErrUnsupported = errors.New("svgxml: unsupported element")
	// ErrSchema wraps the errors of a SchemaValidator.
	ErrSchema = errors.New("svgxml: schema validation failed")
)

// BuildError reports the element, and possibly the attribute,
// which aborted a build.
type BuildError struct {
	Element string
	Attr    string // empty if the whole element is at fault
	Err     error
}

func (e *BuildError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("<%s>: %s", e.Element, e.Err)
	}
	return fmt.Sprintf("<%s> attribute %s: %s", e.Element, e.Attr, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

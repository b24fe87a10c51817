// Command svgtool reads, checks, edits and exports SVG documents.
//
// Usage:
//
//	svgtool <command> [flags] file.svg [args...]
//
// Every command accepts:
//
//	-config string     Configuration file (default "~/.svgtool.yaml")
//	-mode string       Error mode: ignore, warn or strict (default from config)
//	-log-level string  Log level: debug, info, warn, error (default from config)
//
// Examples:
//
//	svgtool summary drawing.svg
//	svgtool list -kind rect -text drawing.svg
//	svgtool set -o out.svg drawing.svg circle 0 r 12
//	svgtool add drawing.svg path d="M0 0 L10 10" stroke=black
//	svgtool export -format yaml drawing.svg
//	svgtool edit drawing.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/benoitkugler/svgtree/cmd/svgtool/commands"
	"github.com/benoitkugler/svgtree/cmd/svgtool/interactive"
	"github.com/benoitkugler/svgtree/svgxml"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitFailure      = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "summary":
		exitCode = runSummary(args)
	case "validate":
		exitCode = runValidate(args)
	case "list":
		exitCode = runList(args)
	case "set":
		exitCode = runSet(args)
	case "add":
		exitCode = runAdd(args)
	case "export":
		exitCode = runExport(args)
	case "paths":
		exitCode = runPaths(args)
	case "edit":
		exitCode = runEdit(args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage(os.Stderr)
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `svgtool - SVG document inspection and editing

Usage:
  svgtool <command> [flags] file.svg [args...]

Commands:
  summary    Print the number of entities of each kind
  validate   Check the document structure [-elements rect,circle,...]
  list       List the entities of a kind [-kind rect] [-text]
  set        Set an attribute: set [-o out.svg] file.svg <kind> <index> <name> <value>
  add        Add an entity: add [-o out.svg] file.svg <kind> [name=value ...]
  export     Describe the document [-format json|yaml|cbor]
  paths      Print the bounding box of the paths and of the drawing
  edit       Start an interactive session

Flags shared by every command:
  -config    Configuration file (default ~/.svgtool.yaml)
  -mode      Error mode: ignore, warn or strict
  -log-level Log level: debug, info, warn, error`)
}

// common holds the flags shared by every command.
type common struct {
	config   string
	mode     string
	logLevel string
}

func newFlagSet(name string) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c := new(common)
	fs.StringVar(&c.config, "config", "", "configuration file (default "+commands.DefaultConfigPath+")")
	fs.StringVar(&c.mode, "mode", "", "error mode: ignore, warn or strict")
	fs.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")
	return fs, c
}

// setup loads the configuration, installs the logger and
// returns the document options.
func (c *common) setup() (commands.Config, commands.Options, error) {
	cfg, err := commands.LoadConfig(c.config)
	if err != nil {
		return cfg, commands.Options{}, err
	}
	if c.mode != "" {
		cfg.ErrorMode = c.mode
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	mode, err := cfg.Mode()
	if err != nil {
		return cfg, commands.Options{}, err
	}
	logger, err := commands.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return cfg, commands.Options{}, err
	}
	slog.SetDefault(logger)
	svgxml.Logger = logger
	return cfg, commands.Options{Mode: mode, Indent: cfg.Indent}, nil
}

// parse parses args and checks that at least minArgs positional
// arguments are given.
func parse(fs *flag.FlagSet, c *common, args []string, minArgs int) (commands.Config, commands.Options, []string, bool) {
	if err := fs.Parse(args); err != nil {
		return commands.Config{}, commands.Options{}, nil, false
	}
	if fs.NArg() < minArgs {
		fmt.Fprintf(os.Stderr, "Error: %s: missing arguments\n", fs.Name())
		fs.Usage()
		return commands.Config{}, commands.Options{}, nil, false
	}
	cfg, opts, err := c.setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, opts, nil, false
	}
	return cfg, opts, fs.Args(), true
}

func report(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitSuccess
}

func runSummary(args []string) int {
	fs, c := newFlagSet("summary")
	_, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	return report(commands.RunSummary(rest[0], opts, os.Stdout))
}

func runValidate(args []string) int {
	fs, c := newFlagSet("validate")
	elements := fs.String("elements", "", "comma separated list of the accepted elements")
	_, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	var names []string
	if *elements != "" {
		names = strings.Split(*elements, ",")
	}
	return report(commands.RunValidate(rest[0], names, opts, os.Stdout))
}

func runList(args []string) int {
	fs, c := newFlagSet("list")
	kindFlag := fs.String("kind", "rect", "entity kind: svg, rect, circle, path or g")
	text := fs.Bool("text", false, "plain text output")
	_, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	kind, err := commands.ParseKindFlag(*kindFlag)
	if err != nil {
		return report(err)
	}
	return report(commands.RunList(rest[0], kind, *text, opts, os.Stdout))
}

func runSet(args []string) int {
	fs, c := newFlagSet("set")
	output := fs.String("o", "", "output file (default: overwrite the input)")
	_, opts, rest, ok := parse(fs, c, args, 5)
	if !ok {
		return exitCommandError
	}
	kind, err := commands.ParseKindFlag(rest[1])
	if err != nil {
		return report(err)
	}
	index, err := strconv.Atoi(rest[2])
	if err != nil {
		return report(fmt.Errorf("invalid index %q", rest[2]))
	}
	value := strings.Join(rest[4:], " ")
	return report(commands.RunSet(rest[0], *output, kind, index, rest[3], value, opts, os.Stdout))
}

func runAdd(args []string) int {
	fs, c := newFlagSet("add")
	output := fs.String("o", "", "output file (default: overwrite the input)")
	_, opts, rest, ok := parse(fs, c, args, 2)
	if !ok {
		return exitCommandError
	}
	kind, err := commands.ParseKindFlag(rest[1])
	if err != nil {
		return report(err)
	}
	return report(commands.RunAdd(rest[0], *output, kind, rest[2:], opts, os.Stdout))
}

func runExport(args []string) int {
	fs, c := newFlagSet("export")
	formatFlag := fs.String("format", "", "output format: json, yaml or cbor (default from config)")
	cfg, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	name := *formatFlag
	if name == "" {
		name = cfg.ExportFormat
	}
	format, err := commands.ParseFormat(name)
	if err != nil {
		return report(err)
	}
	return report(commands.RunExport(rest[0], format, opts, os.Stdout))
}

func runPaths(args []string) int {
	fs, c := newFlagSet("paths")
	_, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	return report(commands.RunPaths(rest[0], opts, os.Stdout))
}

func runEdit(args []string) int {
	fs, c := newFlagSet("edit")
	_, opts, rest, ok := parse(fs, c, args, 1)
	if !ok {
		return exitCommandError
	}
	session, err := interactive.Open(rest[0], opts)
	if err != nil {
		return report(err)
	}
	defer session.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()
	err = session.Run(ctx)
	if err == context.Canceled {
		err = nil
	}
	return report(err)
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgtree/svgxml"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no configuration file is given.
const DefaultConfigPath = "~/.svgtool.yaml"

// Config holds the settings read from the configuration file.
type Config struct {
	ErrorMode    string `yaml:"error_mode" toml:"error_mode"`       // ignore, warn or strict
	Indent       bool   `yaml:"indent" toml:"indent"`               // indent written files
	ExportFormat string `yaml:"export_format" toml:"export_format"` // json, yaml or cbor
	LogLevel     string `yaml:"log_level" toml:"log_level"`         // debug, info, warn or error
}

// DefaultConfig returns the settings used when there is no configuration file.
func DefaultConfig() Config {
	return Config{
		ErrorMode:    "warn",
		Indent:       true,
		ExportFormat: "json",
		LogLevel:     "info",
	}
}

// LoadConfig reads the YAML file at path, where ~ is expanded to the
// home directory. Files with a .toml extension are read as TOML.
// Missing fields keep their default value.
// An empty path means DefaultConfigPath, which may not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to resolve config path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(expanded), ".toml") {
		unmarshal = toml.Unmarshal
	}
	if err := unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", expanded, err)
	}
	if _, err := cfg.Mode(); err != nil {
		return cfg, err
	}
	if _, err := ParseFormat(cfg.ExportFormat); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Mode returns the parsed error mode.
func (c Config) Mode() (svgxml.ErrorMode, error) {
	return svgxml.ParseErrorMode(c.ErrorMode)
}

// NewLogger returns a text logger writing to w, at the given level.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

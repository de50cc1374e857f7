// Package config loads run configuration: defaults and environment
// variables first, then an optional YAML file. Command-line flags are
// applied on top by cmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/wikichunk/core/extract"
	"github.com/gaurav-prasanna/wikichunk/core/logging"
)

// EnvPrefix prefixes every environment variable (WIKICHUNK_INPUT_DIR, ...).
const EnvPrefix = "wikichunk"

// Report formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// Config holds all run configuration.
type Config struct {
	InputDir     string   `envconfig:"INPUT_DIR" yaml:"input_dir"`
	OutputFile   string   `envconfig:"OUTPUT_FILE" default:"chunks.json" yaml:"output_file"`
	ReportFile   string   `envconfig:"REPORT_FILE" yaml:"report_file"`
	ReportFormat string   `envconfig:"REPORT_FORMAT" default:"json" yaml:"report_format"`
	MetricsFile  string   `envconfig:"METRICS_FILE" yaml:"metrics_file"`
	Workers      int      `envconfig:"WORKERS" default:"0" yaml:"workers"`
	Include      []string `envconfig:"INCLUDE" default:"**/*.html,**/*.html.gz" yaml:"include"`

	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig selects extractors and the sections deliberately skipped.
type PipelineConfig struct {
	Extractors      []string `envconfig:"EXTRACTORS" yaml:"extractors"`
	IgnoredSections []string `envconfig:"IGNORED_SECTIONS" default:"References,See also,History,Gallery,Quotes,Footnotes" yaml:"ignored_sections"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info" yaml:"level"`
	Development bool   `envconfig:"DEV" default:"false" yaml:"development"`
}

// Load reads defaults and the environment, then overlays the YAML file at
// path when path is non-empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.InputDir == "" {
		errs = append(errs, errors.New("input directory is required"))
	} else if info, err := os.Stat(c.InputDir); err != nil {
		errs = append(errs, fmt.Errorf("input directory: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("input %s is not a directory", c.InputDir))
	}
	if c.OutputFile == "" {
		errs = append(errs, errors.New("output file is required"))
	}
	switch c.ReportFormat {
	case FormatJSON, FormatMarkdown, "md", FormatPDF:
	default:
		errs = append(errs, fmt.Errorf("unknown report format %q (json, markdown, pdf)", c.ReportFormat))
	}
	if len(c.Include) == 0 {
		errs = append(errs, errors.New("at least one include pattern is required"))
	}
	if _, err := extract.New(c.Pipeline.Extractors); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// EffectiveWorkers returns the worker count, defaulting to one per core.
func (c *Config) EffectiveWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Logging converts the log section for the logging package.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Development = c.Log.Development
	return cfg
}

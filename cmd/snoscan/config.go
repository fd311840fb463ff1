package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sno/pkg/record"
)

// Config is read from -config.file first; flags given on the command line
// override it.
type Config struct {
	ConfigFile string         `yaml:"-"`
	Input      string         `yaml:"input"`
	Output     string         `yaml:"output"`
	Zstd       bool           `yaml:"zstd"`
	LogLevel   string         `yaml:"log_level"`
	MemProfile string         `yaml:"mem_profile"`
	Record     record.Options `yaml:"record"`
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.ConfigFile, "config.file", "", "YAML file to load the configuration from.")
	f.StringVar(&cfg.Input, "input", "-", "File to scan, or - for stdin.")
	f.StringVar(&cfg.Output, "output", "-", "File to write the YAML result to, or - for stdout.")
	f.BoolVar(&cfg.Zstd, "input.zstd", false, "Treat the input as zstd compressed. Inputs ending in .zst or starting with a zstd frame are detected without it.")
	f.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
	f.StringVar(&cfg.MemProfile, "mem-profile", "", "Write a heap profile to this file after the scan.")
	cfg.Record.RegisterFlagsWithPrefix("record.", f)
}

func (cfg *Config) Validate() error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.Input == "" {
		return errors.New("no input given")
	}
	if cfg.Record.MaxValue <= 0 {
		return errors.Errorf("record max value must be positive, got %d", cfg.Record.MaxValue)
	}
	return nil
}

// parseConfig applies flag defaults, then the config file, then the flags
// again so the command line wins. A single positional argument names the
// input.
func parseConfig(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("snoscan", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ConfigFile != "" {
		b, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config file %s", cfg.ConfigFile)
		}
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return cfg, errors.Errorf("expected at most one input, got %d", fs.NArg())
	}
	return cfg, cfg.Validate()
}

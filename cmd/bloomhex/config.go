package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/forestrie/go-bloomhex/bloom"
)

const (
	cmdBuild   = "build"
	cmdQuery   = "query"
	cmdInspect = "inspect"
)

var (
	ErrNoCommand      = errors.New("a command is required: build, query or inspect")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoFilterSource = errors.New("one of -filter or -store with -name is required")
	ErrNameRequired   = errors.New("-name is required with -store")
	ErrNoValues       = errors.New("query needs at least one value")
)

type Config struct {
	Command string

	// LogLevel is passed to logger.New. NOOP silences logging.
	LogLevel string

	// Probability is the target false positive probability for build.
	Probability float64

	// HashName selects the seeded hash, see bloom.HashByName. Queries must
	// use the hash the filter was built with.
	HashName string

	// In is the element file for build, one element per line. Empty or "-"
	// reads stdin.
	In string

	// FilterFile holds a hex encoded filter for query and inspect.
	FilterFile string

	// StoreDir and Name address a filter in a local bloomstore directory.
	// For build they select where the filter is saved instead of stdout.
	StoreDir  string
	Name      string
	Overwrite bool

	// Values are the positional arguments to query.
	Values []string
}

func parseConfig(args []string, errOut io.Writer) (Config, error) {
	if len(args) == 0 {
		return Config{}, ErrNoCommand
	}
	cfg := Config{Command: args[0]}

	fs := flag.NewFlagSet("bloomhex "+cfg.Command, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.LogLevel, "log-level", "INFO", "log level (DEBUG, INFO, NOOP)")
	fs.StringVar(&cfg.HashName, "hash", bloom.HashNameMurmur3, "seeded hash: murmur3, murmur3-128, xxhash64")
	fs.StringVar(&cfg.StoreDir, "store", "", "local filter store directory")
	fs.StringVar(&cfg.Name, "name", "", "filter name within -store")

	switch cfg.Command {
	case cmdBuild:
		fs.Float64Var(&cfg.Probability, "p", bloom.DefaultProbability, "target false positive probability")
		fs.StringVar(&cfg.In, "in", "", "element file, one per line (default stdin)")
		fs.BoolVar(&cfg.Overwrite, "overwrite", false, "replace an existing filter in -store")
	case cmdQuery, cmdInspect:
		fs.StringVar(&cfg.FilterFile, "filter", "", "file holding a hex encoded filter")
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Command)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return Config{}, err
	}
	cfg.Values = fs.Args()

	if cfg.StoreDir != "" && cfg.Name == "" {
		return Config{}, ErrNameRequired
	}
	switch cfg.Command {
	case cmdQuery:
		if len(cfg.Values) == 0 {
			return Config{}, ErrNoValues
		}
		fallthrough
	case cmdInspect:
		if cfg.FilterFile == "" && cfg.StoreDir == "" {
			return Config{}, ErrNoFilterSource
		}
	}
	if _, err := bloom.HashByName(cfg.HashName); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

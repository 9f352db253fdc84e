// Package config loads anagramctl settings from YAML.
//
// Every field is optional; missing fields keep their Default values. The
// file is located through the --config flag or the ANAGRAMCTL_CONFIG
// environment variable, and command-line flags override what it sets.
//
//	register_width: 64
//	overflow: extend
//	mode: checked
//	corpus:
//	  encoding: latin1
//	  compression: auto
//	  min_length: 2
//	group:
//	  workers: 8
//	  min_size: 2
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/anagramkit/alloc"
	"github.com/joshuapare/anagramkit/corpus"
	"github.com/joshuapare/anagramkit/packhash"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "ANAGRAMCTL_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	RegisterWidth int    `yaml:"register_width"`
	Overflow      string `yaml:"overflow"`
	Mode          string `yaml:"mode"`

	Corpus CorpusConfig `yaml:"corpus"`
	Group  GroupConfig  `yaml:"group"`
}

// CorpusConfig controls corpus loading.
type CorpusConfig struct {
	Encoding    string `yaml:"encoding"`
	Compression string `yaml:"compression"`
	MinLength   int    `yaml:"min_length"`
}

// GroupConfig controls the group command.
type GroupConfig struct {
	// Workers is the GroupParallel worker count. Zero uses GOMAXPROCS.
	Workers int `yaml:"workers"`
	// MinSize hides groups with fewer members.
	MinSize int `yaml:"min_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RegisterWidth: alloc.DefaultRegisterWidth,
		Overflow:      alloc.Reject.String(),
		Mode:          packhash.Unchecked.String(),
		Corpus: CorpusConfig{
			Encoding:    "utf-8",
			Compression: corpus.Auto.String(),
		},
		Group: GroupConfig{MinSize: 1},
	}
}

// Load reads the file named by ANAGRAMCTL_CONFIG, or returns Default when
// the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the YAML file at path over Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.RegisterWidth < 1 || c.RegisterWidth > alloc.MaxRegisterWidth {
		errs = append(errs, fmt.Errorf("register_width must be in 1..%d, got %d", alloc.MaxRegisterWidth, c.RegisterWidth))
	}
	if _, err := alloc.ParseOverflow(c.Overflow); err != nil {
		errs = append(errs, fmt.Errorf("overflow: %w", err))
	}
	if _, err := packhash.ParseMode(c.Mode); err != nil {
		errs = append(errs, fmt.Errorf("mode: %w", err))
	}
	if err := corpus.CheckEncoding(c.Corpus.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("corpus.encoding: %w", err))
	}
	if _, err := corpus.ParseCompression(c.Corpus.Compression); err != nil {
		errs = append(errs, fmt.Errorf("corpus.compression: %w", err))
	}
	if c.Corpus.MinLength < 0 {
		errs = append(errs, fmt.Errorf("corpus.min_length must not be negative"))
	}
	if c.Group.Workers < 0 {
		errs = append(errs, fmt.Errorf("group.workers must not be negative"))
	}
	if c.Group.MinSize < 0 {
		errs = append(errs, fmt.Errorf("group.min_size must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// AllocOptions converts the allocation settings. c must be valid.
func (c *Config) AllocOptions() alloc.Options {
	overflow, _ := alloc.ParseOverflow(c.Overflow)
	return alloc.Options{RegisterWidth: c.RegisterWidth, Overflow: overflow}
}

// HasherOptions converts the hasher settings. c must be valid.
func (c *Config) HasherOptions() packhash.Options {
	mode, _ := packhash.ParseMode(c.Mode)
	return packhash.Options{Alloc: c.AllocOptions(), Mode: mode}
}

// CorpusOptions converts the corpus settings. c must be valid.
func (c *Config) CorpusOptions() corpus.Options {
	comp, _ := corpus.ParseCompression(c.Corpus.Compression)
	return corpus.Options{
		Encoding:    c.Corpus.Encoding,
		Compression: comp,
		MinLength:   c.Corpus.MinLength,
	}
}

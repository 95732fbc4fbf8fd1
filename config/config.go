package config

import (
	"errors"
	"fmt"

	"github.com/imdario/mergo"
	"github.com/sirupsen/logrus"
)

// Config holds tool settings. Environments are not part of it; they live in
// the repository's registry file (see package registry).
type Config struct {
	// Remote is the single remote tags are pushed to and fetched from.
	Remote string `json:"remote" koanf:"remote"`

	// ConfigFile is the environment registry path, relative to the
	// repository root.
	ConfigFile string `json:"config_file" koanf:"config"`

	Dryrun  bool `json:"dryrun,omitempty" koanf:"dry-run"`
	Debug   bool `json:"debug,omitempty" koanf:"verbose"`
	Quiet   bool `json:"quiet,omitempty" koanf:"quiet"`
	NoColor bool `json:"no_color,omitempty" koanf:"no-color"`

	Term TerminalIO     `json:"-" koanf:"-"`
	Log  *logrus.Logger `json:"-" koanf:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	cfg.Log = newLogger(cfg.Term.Stderr, cfg.Debug)
	return cfg
}

func (c Config) Validate() error {
	if c.Remote == "" {
		return errors.New("config: remote name is empty")
	}
	if c.ConfigFile == "" {
		return errors.New("config: registry file path is empty")
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	c.logger().Debugf(msg, args...)
}

func (c Config) Warnf(msg string, args ...interface{}) {
	c.logger().Warnf(msg, args...)
}

func (c Config) logger() *logrus.Logger {
	if c.Log == nil {
		return newLogger(c.Term.Stderr, c.Debug)
	}
	return c.Log
}

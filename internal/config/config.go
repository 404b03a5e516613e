// SPDX-License-Identifier: MIT

// Package config loads the qlap CLI run configuration from YAML.
//
// Every field has a documented default (see Default), so an empty or missing
// file is a valid configuration. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qlap/laplacian"
	"github.com/katalvlaran/qlap/service"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Defaults.
const (
	DefaultNormalization = "sym"
	DefaultFormat        = FormatJSON
	DefaultWorkers       = 4
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultModel         = "dsbm"
	DefaultSeed          = 1
)

// Config is the complete CLI configuration.
type Config struct {
	Normalization string   `yaml:"normalization"` // sym | none
	NumNodes      int      `yaml:"num_nodes"`     // 0 ⇒ infer from edges
	Device        string   `yaml:"device"`        // auto | cpu
	Format        string   `yaml:"format"`        // json | csv
	Workers       int      `yaml:"workers"`       // files built concurrently
	Log           Log      `yaml:"log"`
	Generate      Generate `yaml:"generate"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Generate configures `qlap generate`.
type Generate struct {
	Model          string  `yaml:"model"` // path | cycle | star | complete | random | dsbm
	Nodes          int     `yaml:"nodes"`
	P              float64 `yaml:"p"`
	Sizes          []int   `yaml:"sizes"`
	PIn            float64 `yaml:"p_in"`
	PInter         float64 `yaml:"p_inter"`
	PQ             float64 `yaml:"p_q"`
	Seed           int64   `yaml:"seed"`
	SignedFraction float64 `yaml:"signed_fraction"`
	MaxWeight      int     `yaml:"max_weight"` // >1 ⇒ integer weights in [1, max]
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Normalization: DefaultNormalization,
		Device:        string(service.DeviceAuto),
		Format:        DefaultFormat,
		Workers:       DefaultWorkers,
		Log:           Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Generate: Generate{
			Model:     DefaultModel,
			Nodes:     100,
			P:         0.05,
			Sizes:     []int{50, 50},
			PIn:       0.1,
			PInter:    0.1,
			PQ:        0.95,
			Seed:      DefaultSeed,
			MaxWeight: 1,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := laplacian.ParseNormalization(c.Normalization); err != nil {
		return fmt.Errorf("normalization: %w", err)
	}
	if c.NumNodes < 0 {
		return fmt.Errorf("num_nodes=%d: %w", c.NumNodes, ErrInvalid)
	}
	if c.Format != FormatJSON && c.Format != FormatCSV {
		return fmt.Errorf("format=%q: %w", c.Format, ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}
	g := c.Generate
	for name, p := range map[string]float64{
		"p": g.P, "p_in": g.PIn, "p_inter": g.PInter, "p_q": g.PQ, "signed_fraction": g.SignedFraction,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("generate.%s=%g: %w", name, p, ErrInvalid)
		}
	}
	if g.MaxWeight < 1 {
		return fmt.Errorf("generate.max_weight=%d: %w", g.MaxWeight, ErrInvalid)
	}

	return nil
}

// Norm returns the parsed normalization.
func (c Config) Norm() laplacian.Normalization {
	n, _ := laplacian.ParseNormalization(c.Normalization)

	return n
}

// SlogLevel maps the configured level name to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}

// NewLogger builds a text or JSON slog.Logger writing to w.
func (l Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the biclust tool.
//
//	algorithm: exact            # exact | heuristic (aliases ilp | ch)
//	exact:
//	  time_limit_seconds: 60    # 0 disables the limit
//	  tune: false
//	heuristic:
//	  bias: 1.0
//	  seed: 42                  # optional
//	workers: 1
//	log:
//	  level: info
//	  environment: development
//
// Missing keys keep their Default values. BICLUST_ALGORITHM, BICLUST_WORKERS
// and BICLUST_LOG_LEVEL override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/biclust/solver"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Algorithm string          `yaml:"algorithm" validate:"required,oneof=exact heuristic ilp ch"`
	Exact     ExactConfig     `yaml:"exact"`
	Heuristic HeuristicConfig `yaml:"heuristic"`
	Workers   int             `yaml:"workers" validate:"min=1,max=1024"`
	Log       LogConfig       `yaml:"log"`
}

// ExactConfig parameterises the exact solver.
type ExactConfig struct {
	TimeLimitSeconds float64 `yaml:"time_limit_seconds" validate:"gte=0"`
	Tune             bool    `yaml:"tune"`
}

// HeuristicConfig parameterises the heuristic solver.
type HeuristicConfig struct {
	Bias float64 `yaml:"bias" validate:"gte=0,lte=1"`
	Seed *int64  `yaml:"seed"`
}

// LogConfig selects the logger flavour and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Environment string `yaml:"environment" validate:"oneof=development production"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: solver.NameExact,
		Exact:     ExactConfig{TimeLimitSeconds: solver.DefaultTimeLimit.Seconds()},
		Heuristic: HeuristicConfig{Bias: solver.DefaultBias},
		Workers:   1,
		Log:       LogConfig{Level: "info", Environment: "development"},
	}
}

// Load reads and validates the file at path. An empty path yields Default
// with environment overrides applied.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return checked(cfg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return checked(cfg)
}

// Parse decodes and validates data without consulting the environment.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return checked(cfg)
}

func checked(cfg *Config) (*Config, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.normalize()

	return cfg, nil
}

func (c *Config) normalize() {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Environment = strings.ToLower(strings.TrimSpace(c.Log.Environment))
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("BICLUST_ALGORITHM"); ok {
		c.Algorithm = v
	}
	if v, ok := os.LookupEnv("BICLUST_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("BICLUST_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: BICLUST_WORKERS=%q", ErrInvalid, v)
		}
		c.Workers = n
	}
	c.normalize()

	return nil
}

// Variant converts the algorithm section into a solver variant.
func (c *Config) Variant() (solver.Variant, error) {
	v, err := solver.ParseVariant(c.Algorithm)
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case solver.Exact:
		return solver.Exact{
			TimeLimit: time.Duration(c.Exact.TimeLimitSeconds * float64(time.Second)),
			Tune:      c.Exact.Tune,
		}, nil
	default:
		h := solver.Heuristic{Bias: c.Heuristic.Bias}
		if c.Heuristic.Seed != nil {
			h.Seed = solver.Seed(*c.Heuristic.Seed)
		}
		return h, nil
	}
}

package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/moons/internal/dataset"
)

const (
	DefaultSamples = 200
	DefaultNoise   = 0.20
)

// Config holds the generator parameters. A zero Seed means entropy seeding.
type Config struct {
	Samples int     `yaml:"samples"`
	Noise   float64 `yaml:"noise"`
	Seed    uint64  `yaml:"seed,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Samples: DefaultSamples,
		Noise:   DefaultNoise,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "config: marshal")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "config: write")
}

// Validate applies the generator's parameter checks.
func (c *Config) Validate() error {
	if c.Samples < 2 {
		return errors.Wrapf(dataset.ErrTooFewSamples, "samples=%d", c.Samples)
	}
	if !(c.Noise >= 0) || math.IsInf(c.Noise, 1) {
		return errors.Wrapf(dataset.ErrNegativeNoise, "noise=%v", c.Noise)
	}
	return nil
}

// Generator returns a seeded generator when Seed is set and an
// entropy-seeded one otherwise.
func (c *Config) Generator() *dataset.Generator {
	if c.Seed != 0 {
		return dataset.NewSeededGenerator(c.Seed)
	}
	return dataset.NewGenerator(nil)
}

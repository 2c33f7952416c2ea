package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/export"
	"github.com/san-kum/algoart/internal/painting"
	"github.com/san-kum/algoart/internal/palette"
)

const (
	DefaultAlgorithm = algorithm.NameRandomSpiral
	DefaultFormat    = "png"
	DefaultOutputDir = "paintings"
	// MaxDimension caps height and width accepted from files and requests.
	MaxDimension = 4096
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm   string   `yaml:"algorithm"`
	Seed        *int64   `yaml:"seed,omitempty"`
	Height      int      `yaml:"height"`
	Width       int      `yaml:"width"`
	Format      string   `yaml:"format"`
	OutputDir   string   `yaml:"output_dir"`
	Palette     string   `yaml:"palette"`
	Colors      []string `yaml:"colors,omitempty"`
	MaxAttempts int      `yaml:"max_attempts"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:   DefaultAlgorithm,
		Height:      canvas.DefaultHeight,
		Width:       canvas.DefaultWidth,
		Format:      DefaultFormat,
		OutputDir:   DefaultOutputDir,
		Palette:     palette.DefaultName,
		MaxAttempts: algorithm.DefaultMaxAttempts,
	}
}

func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads path over a copy of base, so keys absent from the file keep
// the values of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Colors = append([]string(nil), base.Colors...)
	if base.Seed != nil {
		seed := *base.Seed
		cfg.Seed = &seed
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field that can be checked without painting.
func (c *Config) Validate() error {
	if !algorithm.NewRegistry().Has(c.Algorithm) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, algorithm.ErrUnknownAlgorithm, c.Algorithm)
	}
	if c.Height <= 0 || c.Width <= 0 || c.Height > MaxDimension || c.Width > MaxDimension {
		return fmt.Errorf("%w: size %dx%d outside 1..%d", ErrInvalidConfig, c.Height, c.Width, MaxDimension)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max_attempts must not be negative, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if _, err := c.ResolvePalette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ResolvePalette returns the custom colors when set, otherwise the named palette.
func (c *Config) ResolvePalette() (palette.Palette, error) {
	if len(c.Colors) > 0 {
		return palette.Parse(c.Colors)
	}
	name := c.Palette
	if name == "" {
		name = palette.DefaultName
	}
	return palette.Get(name)
}

// Session converts the file configuration into a painting configuration.
func (c *Config) Session() (painting.Config, error) {
	p, err := c.ResolvePalette()
	if err != nil {
		return painting.Config{}, err
	}
	return painting.Config{
		Algorithm: c.Algorithm,
		Seed:      c.Seed,
		Height:    c.Height,
		Width:     c.Width,
		Params: algorithm.Params{
			Palette:     p,
			MaxAttempts: c.MaxAttempts,
		},
	}, nil
}

package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/quadrature"
	"github.com/san-kum/thermokit/internal/spline"
)

const (
	DefaultDataDir       = ".thermokit"
	DefaultExtrapolation = "const"
	DefaultTMin          = 1e-3
	DefaultTMax          = 1e3
	DefaultPoints        = 61
)

type Config struct {
	DataDir    string            `yaml:"data_dir"`
	Quadrature quadrature.Config `yaml:"quadrature"`
	Bath       BathConfig        `yaml:"bath"`
	Tabulate   TabulateConfig    `yaml:"tabulate"`
	Species    []Species         `yaml:"species,omitempty"`
}

type BathConfig struct {
	Extrapolation string `yaml:"extrapolation"`
}

// TabulateConfig is the default temperature range, in GeV, for tabulations.
type TabulateConfig struct {
	TMin   float64 `yaml:"t_min"`
	TMax   float64 `yaml:"t_max"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		// Matches thermal.DefaultQuadrature.
		Quadrature: quadrature.Config{
			AbsTol: 0,
			RelTol: quadrature.DefaultRelTol,
			Rule:   quadrature.GK21,
			Limit:  quadrature.DefaultLimit,
		},
		Bath: BathConfig{Extrapolation: DefaultExtrapolation},
		Tabulate: TabulateConfig{
			TMin:   DefaultTMin,
			TMax:   DefaultTMax,
			Points: DefaultPoints,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "config: parse %s", path), errors.ErrInvalidInput)
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
	return errors.Wrapf(os.WriteFile(path, data, 0644), "config: write %s", path)
}

func (c *Config) Validate() error {
	if err := c.Quadrature.Validate(); err != nil {
		return err
	}
	if _, err := c.Extrapolation(); err != nil {
		return err
	}

	t := c.Tabulate
	if !(t.TMin > 0) || math.IsInf(t.TMax, 0) || !(t.TMax > t.TMin) {
		return errors.InvalidInputf("config: tabulate range must satisfy 0 < t_min < t_max, got [%g, %g]", t.TMin, t.TMax)
	}
	if t.Points < 2 {
		return errors.InvalidInputf("config: tabulate points must be at least 2, got %d", t.Points)
	}

	seen := make(map[string]bool, len(c.Species))
	for _, s := range c.Species {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.InvalidInputf("config: species %q listed twice", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func (c *Config) QuadratureConfig() quadrature.Config {
	return c.Quadrature
}

func (c *Config) Extrapolation() (spline.Extrapolation, error) {
	if c.Bath.Extrapolation == "" {
		return spline.Const, nil
	}
	return spline.ParseExtrapolation(c.Bath.Extrapolation)
}

// Catalog is the built-in species list with config entries merged over it.
func (c *Config) Catalog() map[string]Species {
	out := make(map[string]Species, len(builtinSpecies)+len(c.Species))
	for name, s := range builtinSpecies {
		out[name] = s
	}
	for _, s := range c.Species {
		out[s.Name] = s
	}
	return out
}

func (c *Config) LookupSpecies(name string) (Species, error) {
	s, ok := c.Catalog()[name]
	if !ok {
		return Species{}, errors.WithHint(
			errors.InvalidInputf("config: unknown species %q", name),
			"run `thermokit species` for the list",
		)
	}
	return s, nil
}

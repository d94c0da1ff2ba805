package quadrature

import (
	"math"

	"github.com/san-kum/thermokit/internal/errors"
)

// Rule selects a Gauss-Kronrod pair by its number of Kronrod points.
type Rule int

const (
	GK15 Rule = 15
	GK21 Rule = 21
	GK31 Rule = 31
	GK41 Rule = 41
	GK51 Rule = 51
	GK61 Rule = 61
)

// RuleForKey maps the conventional QUADPACK key (1..6) to a rule.
func RuleForKey(key int) (Rule, error) {
	keys := []Rule{GK15, GK21, GK31, GK41, GK51, GK61}
	if key < 1 || key > len(keys) {
		return 0, errors.InvalidInputf("quadrature: key %d outside 1..6", key)
	}
	return keys[key-1], nil
}

func (r Rule) Valid() bool {
	_, ok := rules[r]
	return ok
}

const (
	DefaultRelTol = 1e-8
	DefaultLimit  = 1000
)

type Config struct {
	AbsTol float64 `yaml:"abs_tol"`
	RelTol float64 `yaml:"rel_tol"`
	Rule   Rule    `yaml:"rule"`
	Limit  int     `yaml:"limit"`
}

func DefaultConfig() Config {
	return Config{
		AbsTol: 0,
		RelTol: DefaultRelTol,
		Rule:   GK21,
		Limit:  DefaultLimit,
	}
}

// Validate rejects tolerances that cannot be met in double precision.
func (c Config) Validate() error {
	if math.IsNaN(c.AbsTol) || math.IsNaN(c.RelTol) || c.AbsTol < 0 || c.RelTol < 0 {
		return errors.InvalidInputf("quadrature: tolerances must be non-negative (abs=%g, rel=%g)", c.AbsTol, c.RelTol)
	}
	if c.AbsTol <= 0 && c.RelTol < math.Max(50*epsilon, 5e-29) {
		return errors.WithHint(
			errors.InvalidInputf("quadrature: relative tolerance %g too small with zero absolute tolerance", c.RelTol),
			"use rel_tol >= 1.1e-14 or set a positive abs_tol",
		)
	}
	if c.Limit < 1 {
		return errors.InvalidInputf("quadrature: limit %d must be at least 1", c.Limit)
	}
	if !c.Rule.Valid() {
		return errors.InvalidInputf("quadrature: unknown rule GK%d", int(c.Rule))
	}
	return nil
}

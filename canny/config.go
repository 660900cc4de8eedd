// SPDX-License-Identifier: MIT

package canny

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ndcanny/flood"
)

// Config is the file form of the pipeline options.
//
//	sigma: 2.4
//	half_width: 5
//	lower: 100
//	upper: 200
//	workers: 0
//	connectivity: full   # or axial
//	fused: true
type Config struct {
	Sigma        float64 `yaml:"sigma"`
	HalfWidth    *int    `yaml:"half_width,omitempty"`
	Lower        float64 `yaml:"lower"`
	Upper        float64 `yaml:"upper"`
	Workers      int     `yaml:"workers"`
	Connectivity string  `yaml:"connectivity"`
	Fused        bool    `yaml:"fused"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Sigma:        DefaultSigma,
		Lower:        DefaultLower,
		Upper:        DefaultUpper,
		Workers:      DefaultWorkers,
		Connectivity: flood.Full.String(),
		Fused:        DefaultFused,
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("canny: ParseConfig: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("canny: LoadConfig: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("canny: LoadConfig %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every invalid field at once. Each reported error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error
	bad := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format+": %w", append(args, ErrInvalidConfig)...))
	}
	if math.IsNaN(c.Sigma) || math.IsInf(c.Sigma, 0) || c.Sigma < 0 {
		bad("sigma %v must be finite and >= 0", c.Sigma)
	}
	if c.HalfWidth != nil && *c.HalfWidth < 0 {
		bad("half_width %d must be >= 0", *c.HalfWidth)
	}
	if math.IsNaN(c.Lower) || math.IsNaN(c.Upper) {
		bad("thresholds must not be NaN")
	} else if c.Upper < c.Lower {
		bad("upper %v must be >= lower %v", c.Upper, c.Lower)
	}
	if c.Workers < 0 {
		bad("workers %d must be >= 0", c.Workers)
	}
	if _, err := parseConnectivity(c.Connectivity); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func parseConnectivity(s string) (flood.Connectivity, error) {
	switch s {
	case "", "full":
		return flood.Full, nil
	case "axial":
		return flood.Axial, nil
	}
	return flood.Full, fmt.Errorf("connectivity %q must be full or axial: %w", s, ErrInvalidConfig)
}

// Options converts a validated Config into pipeline options.
func (c Config) Options() []Option {
	conn, _ := parseConnectivity(c.Connectivity)
	opts := []Option{
		WithSigma(c.Sigma),
		WithThresholds(c.Lower, c.Upper),
		WithWorkers(c.Workers),
		WithConnectivity(conn),
		WithFused(c.Fused),
	}
	if c.HalfWidth != nil {
		opts = append(opts, WithHalfWidth(*c.HalfWidth))
	}
	return opts
}

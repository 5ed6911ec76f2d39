package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/aldewereld/game-of-life/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Rule    string
	Steps   int
	Seed    int64
	Density float64
	Workers int
	Quiet   bool
	Params  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 32, Steps: 10, Seed: 42, Density: 0.3, Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height (0 for a square grid)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "B/S rule overriding the simulation default, e.g. B36/S23")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per generation")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "print only the final generation")
	fs.BoolVar(&c.Params, "params", c.Params, "print the simulation parameters and exit")
}

// Validate rejects dimensions the factories would otherwise replace with
// their defaults.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width %d: %w", c.Width, life.ErrInvalidDimension)
	}
	if c.Height < 0 {
		return fmt.Errorf("height %d: %w", c.Height, life.ErrInvalidDimension)
	}
	return nil
}

// SimConfig converts the flags into the key/value map consumed by sim factories.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"workers": strconv.Itoa(c.Workers),
	}
	if c.Height > 0 {
		m["h"] = strconv.Itoa(c.Height)
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}

package life

import "strconv"

// Config controls the dimensions, rule and seeding of a Simulator.
type Config struct {
	Width  int
	Height int

	// Rule is a B/S rule string, see ParseRule.
	Rule string
	// Workers is the number of row bands computed concurrently per update.
	Workers int

	// Density is the fraction of cells set Alive by Reset.
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration: an empty 110×110
// Conway board stepped on a single goroutine.
func DefaultConfig() Config {
	return Config{
		Width:   110,
		Height:  110,
		Rule:    Conway.String(),
		Workers: 1,
		Density: 0,
		Seed:    42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// on top of DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithMap(cfg)
}

// WithMap overrides c with the valid entries of cfg. Unknown keys and
// unparsable values are ignored. When "w" is given without "h" the board
// is square.
func (c Config) WithMap(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if r, err := ParseRule(v); err == nil {
			c.Rule = r.String()
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

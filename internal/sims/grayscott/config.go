package grayscott

import (
	"fmt"
	"sort"
	"strconv"
)

// Params holds the Gray-Scott model constants. Feed and Kill select the
// pattern regime; the remaining values discretize the PDE.
type Params struct {
	Feed float64
	Kill float64

	DiffusionU float64
	DiffusionV float64

	Dx float64
	Dt float64
}

// Seeding controls how Reset builds the initial fields: uniform base values,
// a centered square holding different values, and uniform noise in
// [0, NoiseAmplitude) added to both fields to break symmetry.
type Seeding struct {
	SquareSize int

	BaseU   float64
	BaseV   float64
	SquareU float64
	SquareV float64

	NoiseAmplitude float64
}

// Config controls the Gray-Scott simulation dimensions and constants.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params  Params
	Seeding Seeding
}

// presets maps pattern names to the feed/kill pairs that produce them.
var presets = map[string]struct{ Feed, Kill float64 }{
	"stripe":       {0.022, 0.051},
	"spots":        {0.035, 0.065},
	"moving-spots": {0.014, 0.054},
	"waves":        {0.025, 0.05},
	"amorphous":    {0.04, 0.06},
	"bubbles":      {0.012, 0.05},
}

// PresetNames lists the available pattern presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig returns the standard configuration: a 256x256 torus running
// the "waves" regime.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			Feed:       0.025,
			Kill:       0.05,
			DiffusionU: 2e-5,
			DiffusionV: 1e-5,
			Dx:         0.01,
			Dt:         1,
		},
		Seeding: Seeding{
			SquareSize:     20,
			BaseU:          1,
			BaseV:          0,
			SquareU:        0.5,
			SquareV:        0.25,
			NoiseAmplitude: 0.1,
		},
	}
}

// ApplyPreset overwrites the feed/kill pair with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	c.Params.Feed = p.Feed
	c.Params.Kill = p.Kill
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["preset"]; ok {
		if err := c.ApplyPreset(v); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["f"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Feed = parsed
		}
	}
	if v, ok := cfg["k"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Kill = parsed
		}
	}
	if v, ok := cfg["du"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DiffusionU = parsed
		}
	}
	if v, ok := cfg["dv"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DiffusionV = parsed
		}
	}
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Dx = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Dt = parsed
		}
	}
	if v, ok := cfg["square_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Seeding.SquareSize = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Seeding.NoiseAmplitude = parsed
		}
	}
	return c, nil
}

package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset string
	Width  int
	Height int
	Scale  int
	TPS    int
	BPS    int
	Batch  int
	Seed   int64

	// Threaded selects the concurrent stepper: the simulation runs on its
	// own goroutine at full speed while the window samples snapshots.
	Threaded bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset: "waves",
		Width:  256,
		Height: 256,
		Scale:  2,
		TPS:    60,
		BPS:    60,
		Batch:  8,
		Seed:   1337,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "pattern preset (feed/kill pair)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.BPS, "bps", c.BPS, "step batches per second in cooperative mode")
	fs.IntVar(&c.Batch, "batch", c.Batch, "simulation steps per batch")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Threaded, "threaded", c.Threaded, "run the stepper on its own goroutine")
}

// SimOptions renders the configuration as the string map consumed by the
// simulation factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"preset": c.Preset,
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}

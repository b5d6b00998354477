package river

import (
	. "github.com/alexozer/river/internal"
)

const (
	DefaultUVScale        = 0.05
	DefaultSmoothingLevel = 2

	// Largest number of points inserted between two control points
	MaxSmoothingLevel = 10
)

// Config holds the generation settings a caller can tune.
type Config struct {
	// scale applied to both UV coordinates
	UVScale float64

	// points inserted between each pair of control points, 0 to 10
	SmoothingLevel int

	// half-width given to the first point of a new river
	Width float64
}

// Option configures a Config.
//
// Example:
//
//	r := river.New(origin, river.WithSmoothingLevel(4), river.WithUVScale(0.1))
type Option func(*Config)

// DefaultConfig returns the settings a new river starts with.
func DefaultConfig() Config {
	return Config{
		UVScale:        DefaultUVScale,
		SmoothingLevel: DefaultSmoothingLevel,
		Width:          DefaultWidth,
	}
}

// NewConfig applies opts to DefaultConfig and clamps the result.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.Clamped()
}

// Clamped limits SmoothingLevel to [0, MaxSmoothingLevel] and floors
// Width at MinWidth.
func (c Config) Clamped() Config {
	out := c
	out.SmoothingLevel = ClampInt(c.SmoothingLevel, 0, MaxSmoothingLevel)
	if !(c.Width >= MinWidth) {
		out.Width = MinWidth
	}

	if out != c {
		Logger().Debug("river config clamped",
			"smoothingLevel", c.SmoothingLevel, "clampedSmoothingLevel", out.SmoothingLevel,
			"width", c.Width, "clampedWidth", out.Width,
		)
	}

	return out
}

func WithUVScale(scale float64) Option {
	return func(c *Config) {
		c.UVScale = scale
	}
}

// WithSmoothingLevel sets the number of points inserted between each pair
// of control points. Values outside [0, 10] are clamped.
func WithSmoothingLevel(level int) Option {
	return func(c *Config) {
		c.SmoothingLevel = level
	}
}

// WithWidth sets the initial half-width, floored at MinWidth.
func WithWidth(width float64) Option {
	return func(c *Config) {
		c.Width = width
	}
}

// WithConfig replaces every setting at once.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

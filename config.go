package embers

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Motion controls the time-stepped kinematics shared by every particle.
// Rates are expressed per second so the result does not depend on frame rate.
type Motion struct {
	// Drag is the fraction of velocity retained after one second.
	Drag float64 `yaml:"drag"`
	// Shrink is the fraction of scale retained after one second. 1 disables shrinking.
	Shrink float64 `yaml:"shrink"`
	// Gravity is the downward acceleration in units per second squared.
	Gravity float64 `yaml:"gravity"`
	// Wobble is the amplitude of the lateral sway, in units per reference frame.
	Wobble float64 `yaml:"wobble"`
	// ColorLerp is the fraction of the way to Target covered per reference frame.
	// 0 disables color drift.
	ColorLerp float64 `yaml:"colorLerp"`
	// Target is the color particles drift towards.
	Target Color `yaml:"target"`
}

// EmberConfig describes a single decaying particle.
type EmberConfig struct {
	// MaxAge is the lifetime in milliseconds.
	MaxAge float64 `yaml:"maxAge"`
	// Size is the initial edge length of the quad.
	Size float64 `yaml:"size"`
	// Color is the initial tint.
	Color Color `yaml:"color"`
	// Additive selects additive blending.
	Additive bool `yaml:"additive"`
	// FadeOut is the length, in milliseconds, of the alpha fade at the end of
	// life. 0 disables fading.
	FadeOut float64 `yaml:"fadeOut"`
	Motion  Motion  `yaml:"motion"`
}

// ShellConfig describes an explosive shell: Count embers sharing one lifetime.
type ShellConfig struct {
	Count int `yaml:"count"`
	// Speed is the range of initial ember speeds in units per second.
	Speed Range `yaml:"speed"`
	// Lift is extra initial upward velocity added to every ember.
	Lift  float64     `yaml:"lift"`
	Ember EmberConfig `yaml:"ember"`
}

// TrailerConfig describes a trailer: a particle leaving embers behind it.
type TrailerConfig struct {
	// MaxAge is the lifetime in milliseconds.
	MaxAge float64 `yaml:"maxAge"`
	// Interval is the simulation time in milliseconds between two embers.
	Interval float64 `yaml:"interval"`
	// Speed and Lift shape the random launch velocity, as for shells.
	Speed  Range   `yaml:"speed"`
	Lift   float64 `yaml:"lift"`
	Size   float64 `yaml:"size"`
	Color  Color   `yaml:"color"`
	Motion Motion  `yaml:"motion"`
	// Ember describes the embers left behind.
	Ember EmberConfig `yaml:"ember"`
}

// LaunchConfig controls what a burst launch spawns.
type LaunchConfig struct {
	Trailers int `yaml:"trailers"`
	Embers   int `yaml:"embers"`
	// Speed and Lift shape the random velocity of the loose embers.
	Speed Range   `yaml:"speed"`
	Lift  float64 `yaml:"lift"`
}

// Config groups every tunable.
type Config struct {
	Ember   EmberConfig   `yaml:"ember"`
	Shell   ShellConfig   `yaml:"shell"`
	Trailer TrailerConfig `yaml:"trailer"`
	Launch  LaunchConfig  `yaml:"launch"`
}

// emberMotion is the motion of embers: they shrink, slow down, sway and
// cool from white towards red.
func emberMotion() Motion {
	return Motion{
		Drag:      0.4,
		Shrink:    0.7,
		Gravity:   0.5 * ReferenceTPS,
		Wobble:    0.1,
		ColorLerp: 0.01,
		Target:    ColorFromHex(0xff2222),
	}
}

// DefaultEmberConfig returns the configuration of a loose ember.
func DefaultEmberConfig() EmberConfig {
	return EmberConfig{
		MaxAge:  10000,
		Size:    1,
		Color:   ColorWhite,
		FadeOut: 1500,
		Motion:  emberMotion(),
	}
}

// DefaultConfig returns the stock firework tuning.
func DefaultConfig() Config {
	shellEmber := DefaultEmberConfig()
	shellEmber.Motion.Wobble = 0

	return Config{
		Ember: DefaultEmberConfig(),
		Shell: ShellConfig{
			Count: 64,
			Speed: Range{Min: 50, Max: 100},
			Lift:  50,
			Ember: shellEmber,
		},
		Trailer: TrailerConfig{
			MaxAge:   4000,
			Interval: 100,
			Speed:    Range{Min: 100, Max: 200},
			Lift:     50,
			Size:     1,
			Color:    ColorFromHex(0xff8800),
			Motion: Motion{
				Drag:    0.8,
				Shrink:  1,
				Gravity: 0.5 * ReferenceTPS,
			},
			Ember: DefaultEmberConfig(),
		},
		Launch: LaunchConfig{
			Trailers: 8,
			Embers:   32,
			Speed:    Range{Min: 50, Max: 100},
			Lift:     50,
		},
	}
}

// ParseConfig decodes YAML over DefaultConfig, so a file only needs the
// fields it changes, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("embers: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("embers: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	if err := c.Ember.validate("ember"); err != nil {
		return err
	}
	if c.Shell.Count < 0 {
		return invalid("shell.count must not be negative")
	}
	if err := validateRange("shell.speed", c.Shell.Speed); err != nil {
		return err
	}
	if err := c.Shell.Ember.validate("shell.ember"); err != nil {
		return err
	}
	if c.Trailer.MaxAge <= 0 {
		return invalid("trailer.maxAge must be positive")
	}
	if c.Trailer.Interval <= 0 {
		return invalid("trailer.interval must be positive")
	}
	if err := validateRange("trailer.speed", c.Trailer.Speed); err != nil {
		return err
	}
	if err := c.Trailer.Motion.validate("trailer.motion"); err != nil {
		return err
	}
	if err := c.Trailer.Ember.validate("trailer.ember"); err != nil {
		return err
	}
	if c.Launch.Trailers < 0 || c.Launch.Embers < 0 {
		return invalid("launch counts must not be negative")
	}
	return validateRange("launch.speed", c.Launch.Speed)
}

func (e *EmberConfig) validate(path string) error {
	if e.MaxAge <= 0 {
		return invalid(path + ".maxAge must be positive")
	}
	if e.Size <= 0 {
		return invalid(path + ".size must be positive")
	}
	if e.FadeOut < 0 || e.FadeOut > e.MaxAge {
		return invalid(path + ".fadeOut must be within [0, maxAge]")
	}
	return e.Motion.validate(path + ".motion")
}

func (m *Motion) validate(path string) error {
	if m.Drag <= 0 || m.Drag > 1 {
		return invalid(path + ".drag must be within (0, 1]")
	}
	if m.Shrink <= 0 || m.Shrink > 1 {
		return invalid(path + ".shrink must be within (0, 1]")
	}
	if m.ColorLerp < 0 || m.ColorLerp > 1 {
		return invalid(path + ".colorLerp must be within [0, 1]")
	}
	return nil
}

func validateRange(path string, r Range) error {
	if r.Min < 0 || r.Max < r.Min {
		return invalid(path + " must satisfy 0 <= min <= max")
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("embers: %w: %s", ErrInvalidConfig, msg)
}

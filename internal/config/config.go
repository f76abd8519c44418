// Package config holds the options a stroke surface recognises and reads
// them from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"SketchPad/internal/state"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
)

const (
	DefaultStrokeColor     = "#000000"
	DefaultStrokeWidth     = 10.0
	DefaultStrokeAlpha     = 1.0
	DefaultEaseFactor      = 0.3
	DefaultThrottleDelayMs = 10

	configFile = "config.toml"
	appDir     = "sketchpad"
)

var (
	// ErrUnknownKey is returned when a config file sets an option that isn't
	// recognised.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalid is returned for out-of-range values.
	ErrInvalid = errors.New("invalid config value")
)

// Config lists every option a surface understands. Nothing else is accepted.
type Config struct {
	StrokeColor     string  `toml:"strokeColor"`
	StrokeWidth     float64 `toml:"strokeWidth"`
	StrokeAlpha     float64 `toml:"strokeAlpha"`
	EaseFactor      float64 `toml:"easeFactor"`
	ThrottleDelayMs int     `toml:"throttleDelayMs"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StrokeColor:     DefaultStrokeColor,
		StrokeWidth:     DefaultStrokeWidth,
		StrokeAlpha:     DefaultStrokeAlpha,
		EaseFactor:      DefaultEaseFactor,
		ThrottleDelayMs: DefaultThrottleDelayMs,
	}
}

// WithDefaults fills unset (zero) fields with their defaults. An alpha or
// width of zero means "not given", matching how the options were treated
// when they came in as loose props.
func (c Config) WithDefaults() Config {
	d := Default()
	if strings.TrimSpace(c.StrokeColor) == "" {
		c.StrokeColor = d.StrokeColor
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = d.StrokeWidth
	}
	if c.StrokeAlpha == 0 {
		c.StrokeAlpha = d.StrokeAlpha
	}
	if c.EaseFactor == 0 {
		c.EaseFactor = d.EaseFactor
	}
	if c.ThrottleDelayMs == 0 {
		c.ThrottleDelayMs = d.ThrottleDelayMs
	}
	return c
}

// Validate checks ranges. It expects WithDefaults to have been applied.
func (c Config) Validate() error {
	if _, err := ParseColor(c.StrokeColor); err != nil {
		return err
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("%w: strokeWidth %v must not be negative", ErrInvalid, c.StrokeWidth)
	}
	if c.StrokeAlpha < 0 || c.StrokeAlpha > 1 {
		return fmt.Errorf("%w: strokeAlpha %v must be within [0,1]", ErrInvalid, c.StrokeAlpha)
	}
	if c.EaseFactor < 0 || c.EaseFactor > 1 {
		return fmt.Errorf("%w: easeFactor %v must be within [0,1]", ErrInvalid, c.EaseFactor)
	}
	if c.ThrottleDelayMs < 0 {
		return fmt.Errorf("%w: throttleDelayMs %d must not be negative", ErrInvalid, c.ThrottleDelayMs)
	}
	return nil
}

// ThrottleDelay is ThrottleDelayMs as a duration.
func (c Config) ThrottleDelay() time.Duration {
	return time.Duration(c.ThrottleDelayMs) * time.Millisecond
}

// Style is the stroke style new strokes start with. An unparsable colour
// falls back to black; Validate reports it.
func (c Config) Style() state.Style {
	col, err := ParseColor(c.StrokeColor)
	if err != nil {
		col = color.NRGBA{A: 255}
	}
	return state.Style{Color: col, Width: c.StrokeWidth, Alpha: c.StrokeAlpha}
}

// ParseColor accepts "#RGB", "#RRGGBB", "#RRGGBBAA" and the "0x" prefixed
// forms.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: strokeColor %q", ErrInvalid, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("%w: strokeColor %q", ErrInvalid, s)
		}
	}

	c := gg.Hex(hex)
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}, nil
}

// Load reads a TOML file. A missing file yields the defaults. Keys that
// aren't part of Config are rejected.
func Load(path string) (Config, error) {
	conf := Config{}
	md, err := toml.DecodeFile(path, &conf)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	conf = conf.WithDefaults()
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Save writes conf to path, creating the directory if needed.
func Save(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buffer.Bytes(), 0o644)
}

// DefaultPath is config.toml under $XDG_CONFIG_HOME/sketchpad, falling back
// to ~/.config/sketchpad.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, configFile)
}

package glowsphere

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LightConfig holds the starting state of a point light.
type LightConfig struct {
	Position  [3]float64 `toml:"position"`
	Intensity float64    `toml:"intensity"`
	Color     string     `toml:"color"` // "#rrggbb" or "0xrrggbb"
}

// LightsConfig holds the starting state of the scene's three point lights.
type LightsConfig struct {
	White LightConfig `toml:"white"`
	Red   LightConfig `toml:"red"`
	Point LightConfig `toml:"point"`
}

// Config holds everything about the demo that can be changed without recompiling.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	NormalMap     string  `toml:"normal_map"`      // Path to a tangent-space normal map; empty generates one.
	NormalMapSeed int64   `toml:"normal_map_seed"` // Seed for the generated normal map.
	NormalScale   float64 `toml:"normal_scale"`

	ScrollStep   float64 `toml:"scroll_step"`   // Pixels scrolled per wheel notch.
	MaxScroll    float64 `toml:"max_scroll"`    // How far down the page can be scrolled, in pixels.
	IntroSeconds float64 `toml:"intro_seconds"` // Length of the sphere's grow-in; 0 disables it.

	ShowPanel bool `toml:"show_panel"`
	ShowDebug bool `toml:"show_debug"`

	ExportPath    string `toml:"export_path"`    // Where F11 writes a .glb snapshot of the scene.
	ScreenshotDir string `toml:"screenshot_dir"` // Where F12 writes screenshots.

	Lights LightsConfig `toml:"lights"`
}

// DefaultConfig returns the demo's default configuration.
func DefaultConfig() Config {
	return Config{
		Title:  "Glowsphere",
		Width:  1280,
		Height: 720,

		NormalMapSeed: 1,
		NormalScale:   1,

		ScrollStep:   100,
		MaxScroll:    2000,
		IntroSeconds: 1.5,

		ShowPanel: true,
		ShowDebug: false,

		ExportPath:    "glowsphere.glb",
		ScreenshotDir: ".",

		Lights: LightsConfig{
			White: LightConfig{Position: [3]float64{2, 3, 4}, Intensity: 0.1, Color: "#ffffff"},
			Red:   LightConfig{Position: [3]float64{-1.86, 1, -1.65}, Intensity: 10, Color: "#ff0000"},
			Point: LightConfig{Position: [3]float64{2.13, -3, -1.98}, Intensity: 6.8, Color: "#00e1ff"},
		},
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ParseConfig decodes TOML data over the default configuration, so any field the data leaves out keeps its default.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {

	cfg := DefaultConfig()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil

}

// LoadConfigFile reads and parses the TOML config file at path. An empty path returns the default configuration.
func LoadConfigFile(path string) (Config, error) {

	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)

}

// Validate checks that the configuration is usable.
func (cfg Config) Validate() error {

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	if cfg.ScrollStep < 0 || cfg.MaxScroll < 0 {
		return fmt.Errorf("%w: scroll_step and max_scroll can't be negative", ErrInvalidConfig)
	}

	if cfg.IntroSeconds < 0 {
		return fmt.Errorf("%w: intro_seconds can't be negative", ErrInvalidConfig)
	}

	for name, light := range map[string]LightConfig{"white": cfg.Lights.White, "red": cfg.Lights.Red, "point": cfg.Lights.Point} {
		if _, err := ParseHexColor(light.Color); err != nil {
			return fmt.Errorf("%w: lights.%s: %v", ErrInvalidConfig, name, err)
		}
	}

	return nil

}

// ParseHexColor parses a "#rrggbb", "0xrrggbb", or bare "rrggbb" string into a 24-bit color value.
func ParseHexColor(s string) (uint32, error) {

	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")

	if len(trimmed) == 0 || len(trimmed) > 6 {
		return 0, fmt.Errorf("color %q: want #rrggbb", s)
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}

	return uint32(value), nil

}

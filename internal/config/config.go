package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Dispatch  DispatchConfig  `toml:"dispatch"`
	Canvas    CanvasConfig    `toml:"canvas"`
	Palette   PaletteConfig   `toml:"palette"`
	Logging   LoggingConfig   `toml:"logging"`
	Assets    AssetsConfig    `toml:"assets"`
	Scripting ScriptingConfig `toml:"scripting"`
	Window    WindowConfig    `toml:"window"`
}

type DispatchConfig struct {
	MaxStackTime float64 `toml:"max_stack_time"` // seconds per frame budget
}

type CanvasConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	PixelSize int    `toml:"pixel_size"`
	Title     string `toml:"title"`
}

type PaletteConfig struct {
	Colors []string `toml:"colors"` // empty = built-in palette
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AssetsConfig struct {
	MenuLayout         string  `toml:"menu_layout"`
	DrifterSprite      string  `toml:"drifter_sprite"`
	DrifterPixPerFrame int     `toml:"drifter_pix_per_frame"`
	DrifterFramerate   float64 `toml:"drifter_framerate"`
	DrifterSpeed       float64 `toml:"drifter_speed"`
}

type ScriptingConfig struct {
	Dir string `toml:"dir"`
}

type WindowConfig struct {
	Headless   bool `toml:"headless"`
	EventQueue int  `toml:"event_queue"`
}

// paletteSize mirrors render.PaletteSize without importing it.
const paletteSize = 15

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Dispatch: DispatchConfig{
			MaxStackTime: 1.0 / 60.0,
		},
		Canvas: CanvasConfig{
			Width:     512,
			Height:    512,
			PixelSize: 8,
			Title:     "fluxframe",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			MenuLayout:         "data/yaml/menu.yaml",
			DrifterSprite:      "assets/drifter.u4i",
			DrifterPixPerFrame: 16,
			DrifterFramerate:   30,
			DrifterSpeed:       30,
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Window: WindowConfig{
			EventQueue: 64,
		},
	}
}

func (c *Config) Validate() error {
	if c.Dispatch.MaxStackTime <= 0 {
		return fmt.Errorf("%w: dispatch.max_stack_time must be > 0, got %v", ErrInvalid, c.Dispatch.MaxStackTime)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.PixelSize <= 0 {
		return fmt.Errorf("%w: canvas.pixel_size must be > 0", ErrInvalid)
	}
	if _, err := c.Palette.RGBA(); err != nil {
		return err
	}
	return nil
}

// RGBA parses the configured colors. It returns nil when none are set.
func (p PaletteConfig) RGBA() ([]color.RGBA, error) {
	if len(p.Colors) == 0 {
		return nil, nil
	}
	if len(p.Colors) != paletteSize {
		return nil, fmt.Errorf("%w: palette needs %d colors, got %d", ErrInvalid, paletteSize, len(p.Colors))
	}
	out := make([]color.RGBA, 0, paletteSize)
	for i, s := range p.Colors {
		c, err := parseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: palette color %d: %v", ErrInvalid, i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// parseHex accepts "#RRGGBB" or "RRGGBB".
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%q is not RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

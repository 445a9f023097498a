package sapling

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/pelletier/go-toml/v2"
)

// Config configures a Window and the backend loop that drives it. It can be
// loaded from a TOML file with LoadConfig:
//
//	title = "Demo"
//	width = 800
//	height = 600
//	background = "#202028"
//	foreground = "#e0e0e0"
//
//	[font]
//	family = "mono"
//	size = 16
type Config struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background Color  `toml:"background"`
	Foreground Color  `toml:"foreground"`
	Font       Font   `toml:"font"`

	// TPS is the number of input/update ticks per second requested from the
	// backend. Zero keeps the backend default.
	TPS int `toml:"tps"`

	// ShowFPS asks the backend to add a frame-rate overlay.
	ShowFPS bool `toml:"show_fps"`

	// Debug turns contract violations into panics and prints per-frame
	// timing to stderr.
	Debug bool `toml:"debug"`

	// Script names a JSON test script the backend plays back through the
	// window's TestRunner, exiting once every step has run.
	Script string `toml:"script"`

	// ScreenshotDir is where backends that can capture frames write them.
	ScreenshotDir string `toml:"screenshot_dir"`

	// Clock supplies time to the timer multiplexer and tweens. Nil means the
	// wall clock.
	Clock clock.Clock `toml:"-"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Title:         "sapling",
		Width:         640,
		Height:        480,
		Background:    ColorBlack,
		Foreground:    ColorWhite,
		Font:          DefaultFont,
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a TOML file over DefaultConfig. A missing file yields the
// defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = DefaultFont.Size
	}
	if cfg.Font.Family == "" {
		cfg.Font.Family = DefaultFont.Family
	}
	return cfg, cfg.Validate()
}

// Validate reports settings no window can be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrBadConfig, c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps %d must not be negative", ErrBadConfig, c.TPS)
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("%w: font size %v must not be negative", ErrBadConfig, c.Font.Size)
	}
	return nil
}

package orion

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/viewport/pulse"
	"github.com/pelletier/go-toml/v2"
)

// ConfigEnv names the environment variable holding the path
// of an optional options file.
const ConfigEnv = "VIEWPORT_CONFIG"

// Options configure the window and the surface. They can be loaded
// from a toml file, e.g.
//
//	title = "Mandelbrot"
//	width = 1000
//	height = 1000
//	present_mode = "mailbox"
//	clear_color = "#1a334d"
//	log_level = "debug"
type Options struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// fifo, mailbox or immediate. Falls back to fifo
	// if the surface does not support the mode.
	PresentMode string `toml:"present_mode"`

	// srgb color the surface is cleared to, "#rrggbb" or "r, g, b".
	// Empty keeps pulse.DefaultClearColor.
	ClearColor string `toml:"clear_color"`

	// cpu or mem, empty to disable profiling
	Profile string `toml:"profile"`

	// debug, info, warn or error
	LogLevel string `toml:"log_level"`
}

func DefaultOptions() Options {
	return Options{
		Title:       "Viewport",
		Width:       800,
		Height:      800,
		PresentMode: "fifo",
		LogLevel:    "info",
	}
}

// LoadOptions reads options from the toml file at path. Values missing in
// the file keep their defaults. A missing file or an empty path
// yields the default options.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	if path == "" {
		return opts, nil
	}

	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("No options file found", slog.String("path", path))
		return opts, nil

	case err != nil:
		return opts, fmt.Errorf("read options: %w", err)
	}

	if err := toml.Unmarshal(buf, &opts); err != nil {
		return opts, fmt.Errorf("parse options %q: %w", path, err)
	}

	if err := opts.validate(); err != nil {
		return opts, fmt.Errorf("options %q: %w", path, err)
	}

	return opts, nil
}

// LoadOptionsFromEnv loads the options file named by VIEWPORT_CONFIG.
func LoadOptionsFromEnv() (Options, error) {
	return LoadOptions(os.Getenv(ConfigEnv))
}

func (opts Options) withDefaults() Options {
	defaults := DefaultOptions()

	if opts.Title == "" {
		opts.Title = defaults.Title
	}

	if opts.Width <= 0 {
		opts.Width = defaults.Width
	}

	if opts.Height <= 0 {
		opts.Height = defaults.Height
	}

	if opts.PresentMode == "" {
		opts.PresentMode = defaults.PresentMode
	}

	if opts.LogLevel == "" {
		opts.LogLevel = defaults.LogLevel
	}

	return opts
}

func (opts Options) validate() error {
	if _, err := opts.presentModes(); err != nil {
		return err
	}

	if _, err := opts.logLevel(); err != nil {
		return err
	}

	if _, err := opts.clearColor(); err != nil {
		return err
	}

	switch opts.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile %q", opts.Profile)
	}

	return nil
}

// presentModes returns the preferred present modes, fifo is always
// supported and used as the fallback.
func (opts Options) presentModes() ([]wgpu.PresentMode, error) {
	switch strings.ToLower(opts.PresentMode) {
	case "", "fifo":
		return []wgpu.PresentMode{wgpu.PresentModeFifo}, nil
	case "mailbox":
		return []wgpu.PresentMode{wgpu.PresentModeMailbox, wgpu.PresentModeFifo}, nil
	case "immediate":
		return []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeFifo}, nil
	default:
		return nil, fmt.Errorf("unknown present mode %q", opts.PresentMode)
	}
}

func (opts Options) logLevel() (slog.Level, error) {
	if opts.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

func (opts Options) clearColor() (pulse.Color, error) {
	if opts.ClearColor == "" {
		return pulse.DefaultClearColor, nil
	}

	color, err := pulse.ParseColor(opts.ClearColor)
	if err != nil {
		return pulse.DefaultClearColor, fmt.Errorf("clear color: %w", err)
	}

	return color, nil
}

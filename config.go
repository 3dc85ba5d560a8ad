package vitrine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every RunConfig validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunConfig holds every setting needed to open a gallery window. The zero
// value is not usable; start from DefaultRunConfig.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// ImageDir is scanned with ListImages when Images is empty.
	ImageDir string   `toml:"image_dir"`
	Images   []string `toml:"images"`

	// Layout, in device pixels.
	Columns int     `toml:"columns"`
	Gap     float64 `toml:"gap"`
	Margin  float64 `toml:"margin"`

	// CameraDepth is the camera's Z. It must not be 0.
	CameraDepth float64 `toml:"camera_depth"`
	// Smoothing is the per-frame approach factor for camera, image and
	// velocity smoothing, in (0, 1].
	Smoothing float64 `toml:"smoothing"`
	// DragSpeed multiplies clip-space drag deltas into world pan.
	DragSpeed float64 `toml:"drag_speed"`

	HoverZoom    float64 `toml:"hover_zoom"`
	RestZoom     float64 `toml:"rest_zoom"`
	ZoomDuration float32 `toml:"zoom_duration"`
	FadeDuration float32 `toml:"fade_duration"`

	SubdivisionsX int `toml:"subdivisions_x"`
	SubdivisionsY int `toml:"subdivisions_y"`

	// Background is the clear color behind the images.
	Background Color `toml:"background"`

	Debug         bool   `toml:"debug"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
	// TestScript is an optional path to a JSON test script.
	TestScript string `toml:"test_script"`
	// ExitAfterScript ends the run once the test script has finished.
	ExitAfterScript bool `toml:"exit_after_script"`
}

// DefaultRunConfig returns the settings the gallery ships with.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "vitrine",
		Width:         1280,
		Height:        800,
		ImageDir:      "images",
		Columns:       3,
		Gap:           24,
		Margin:        48,
		CameraDepth:   -50,
		Smoothing:     0.1,
		DragSpeed:     20,
		HoverZoom:     1.25,
		RestZoom:      1.2,
		ZoomDuration:  0.6,
		FadeDuration:  0.4,
		SubdivisionsX: defaultSubdivisionsX,
		SubdivisionsY: defaultSubdivisionsY,
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a TOML file over DefaultRunConfig, so keys missing from the
// file keep their defaults. The result is validated.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a working gallery.
func (c RunConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.CameraDepth == 0:
		return fmt.Errorf("%w: camera_depth must not be 0", ErrInvalidConfig)
	case c.Smoothing <= 0 || c.Smoothing > 1:
		return fmt.Errorf("%w: smoothing %v not in (0, 1]", ErrInvalidConfig, c.Smoothing)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive", ErrInvalidConfig)
	case c.SubdivisionsX < 0 || c.SubdivisionsY < 0:
		return fmt.Errorf("%w: negative subdivisions", ErrInvalidConfig)
	case c.ZoomDuration < 0 || c.FadeDuration < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	return nil
}

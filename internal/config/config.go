package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPlotWidth   = 8.0 // inches
	DefaultPlotHeight  = 6.0 // inches
	DefaultLevels      = 50
	DefaultColorMap    = "red-blue"
	DefaultSurfaceW    = 768
	DefaultSurfaceH    = 432
	DefaultSupersample = 2
)

// Config holds the settings of the sdfgrid commands that are not part of the
// positional grid description: where outputs go, how they are drawn and how
// verbose the commands are.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Plot    PlotConfig    `yaml:"plot"`
	Surface SurfaceConfig `yaml:"surface"`
	Log     LogConfig     `yaml:"log"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
	CSV bool   `yaml:"csv"`
	// Plot enables the contour image for reflective and periodic grids.
	Plot bool `yaml:"plot"`
	STL  bool `yaml:"stl"`
	// Shade enables the shaded height surface image.
	Shade bool `yaml:"shade"`
}

type PlotConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Levels   int     `yaml:"levels"`
	ColorMap string  `yaml:"color_map"`
	// Thumbnail is the pixel width of a downscaled copy of the plot. Zero disables it.
	Thumbnail int `yaml:"thumbnail"`
}

type SurfaceConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	ZScale      float64 `yaml:"z_scale"`
	Color       string  `yaml:"color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:  ".",
			CSV:  true,
			Plot: true,
		},
		Plot: PlotConfig{
			Width:    DefaultPlotWidth,
			Height:   DefaultPlotHeight,
			Levels:   DefaultLevels,
			ColorMap: DefaultColorMap,
		},
		Surface: SurfaceConfig{
			Width:       DefaultSurfaceW,
			Height:      DefaultSurfaceH,
			Supersample: DefaultSupersample,
			ZScale:      1,
			Color:       "#468966",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LogLevel parses the configured log level. Unknown names default to warn.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

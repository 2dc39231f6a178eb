// Package config loads peakfinder configuration from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-peaks/internal/logging"
	"github.com/cwbudde/algo-peaks/internal/recording"
)

// Threshold modes.
const (
	ModeFixed  = "fixed"
	ModeStdDev = "stddev"
)

// MaxPrecision is the largest number of decimals accepted for text output.
const MaxPrecision = 16

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config materialises application configuration.
type Config struct {
	Input   InputConfig    `mapstructure:"input"`
	Detect  DetectConfig   `mapstructure:"detect"`
	Output  OutputConfig   `mapstructure:"output"`
	Plot    PlotConfig     `mapstructure:"plot"`
	Logging logging.Config `mapstructure:"logging"`
}

// InputConfig describes the CSV recording.
type InputConfig struct {
	Path      string `mapstructure:"path"`
	Delimiter string `mapstructure:"delimiter"`
	Header    bool   `mapstructure:"header"`
}

// DetectConfig selects the threshold strategy and channels.
type DetectConfig struct {
	Mode      string   `mapstructure:"mode"`
	Threshold float64  `mapstructure:"threshold"`
	Sigmas    float64  `mapstructure:"sigmas"`
	Channels  []string `mapstructure:"channels"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

// PlotConfig sets the rendered chart size.
type PlotConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PEAKFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.header", false)

	v.SetDefault("detect.mode", ModeFixed)
	v.SetDefault("detect.threshold", 0.0)
	v.SetDefault("detect.sigmas", 1.0)
	v.SetDefault("detect.channels", []string{recording.ChannelX, recording.ChannelY, recording.ChannelZ})

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.precision", 3)

	v.SetDefault("plot.width", 1280)
	v.SetDefault("plot.height", 720)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	switch c.Detect.Mode {
	case ModeFixed, ModeStdDev:
	default:
		return fmt.Errorf("detect.mode must be %q or %q, got %q", ModeFixed, ModeStdDev, c.Detect.Mode)
	}
	if math.IsNaN(c.Detect.Threshold) || math.IsInf(c.Detect.Threshold, 0) {
		return fmt.Errorf("detect.threshold must be finite, got %v", c.Detect.Threshold)
	}
	if math.IsNaN(c.Detect.Sigmas) || math.IsInf(c.Detect.Sigmas, 0) {
		return fmt.Errorf("detect.sigmas must be finite, got %v", c.Detect.Sigmas)
	}
	if len(c.Detect.Channels) == 0 {
		return fmt.Errorf("detect.channels must not be empty")
	}
	for _, ch := range c.Detect.Channels {
		if !slices.Contains(recording.Channels, strings.ToLower(strings.TrimSpace(ch))) {
			return fmt.Errorf("detect.channels: unknown channel %q", ch)
		}
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("output.precision must be between 0 and %d, got %d", MaxPrecision, c.Output.Precision)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot.width and plot.height must be greater than zero")
	}
	return nil
}

// Comma returns the input delimiter as a rune.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

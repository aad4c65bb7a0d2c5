// Package config resolves settings from defaults, an optional TOML file and
// the environment (including a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/ukaji3/semchart-go/pkg/semchart"
	"github.com/ukaji3/semchart-go/pkg/semchart/chart"
	"github.com/ukaji3/semchart-go/pkg/semchart/parser"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEMCHART_"

// Config holds all settings.
type Config struct {
	LogLevel  string      `toml:"log_level"`
	Sheet     string      `toml:"sheet"`
	Encoding  string      `toml:"encoding"`
	Delimiter string      `toml:"delimiter"`
	Range     string      `toml:"range"`
	Chart     ChartConfig `toml:"chart"`
	// Palettes declares extra named palettes, which take precedence over
	// built-in ones of the same name.
	Palettes map[string][]string `toml:"palettes"`
}

// ChartConfig holds chart style settings.
type ChartConfig struct {
	Title    string `toml:"title"`
	Palette  string `toml:"palette"`
	Smooth   bool   `toml:"smooth"`
	Points   bool   `toml:"points"`
	SpanGaps bool   `toml:"span_gaps"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	style := chart.DefaultStyle()
	return Config{
		LogLevel: "info",
		Encoding: string(parser.EncodingUTF8),
		Chart: ChartConfig{
			Title:    style.Title,
			Palette:  chart.DefaultPaletteName,
			Smooth:   style.Smooth,
			Points:   style.ShowPoints,
			SpanGaps: style.SpanGaps,
			Width:    style.Width,
			Height:   style.Height,
		},
	}
}

// Load builds the configuration. The TOML file at path is optional when
// path is empty; the .env file in envFile is optional when it does not
// exist. Environment variables override the file.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	strVars := map[string]*string{
		"SHEET":     &c.Sheet,
		"ENCODING":  &c.Encoding,
		"DELIMITER": &c.Delimiter,
		"RANGE":     &c.Range,
		"TITLE":     &c.Chart.Title,
		"PALETTE":   &c.Chart.Palette,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolVars := map[string]*bool{
		"SMOOTH":    &c.Chart.Smooth,
		"POINTS":    &c.Chart.Points,
		"SPAN_GAPS": &c.Chart.SpanGaps,
	}
	for name, dst := range boolVars {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
	}
	return nil
}

// Validate checks encodings, delimiters and palettes.
func (c Config) Validate() error {
	if _, err := parser.ParseEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := c.Comma(); err != nil {
		return err
	}
	for name, colors := range c.Palettes {
		if err := chart.Palette(colors).Validate(); err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
	}
	if _, err := c.Palette(c.Chart.Palette); err != nil {
		return err
	}
	return nil
}

// Comma returns the CSV delimiter; zero means the default.
func (c Config) Comma() (rune, error) {
	switch {
	case c.Delimiter == "":
		return 0, nil
	case c.Delimiter == `\t`:
		return '\t', nil
	case utf8.RuneCountInString(c.Delimiter) == 1:
		r, _ := utf8.DecodeRuneInString(c.Delimiter)
		return r, nil
	default:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
}

// Palette resolves a palette by name, preferring configured palettes.
func (c Config) Palette(name string) (chart.Palette, error) {
	if name == "" {
		return chart.DefaultPalette(), nil
	}
	if colors, ok := c.Palettes[name]; ok {
		return append(chart.Palette(nil), colors...), nil
	}
	if p, ok := chart.PaletteByName(name); ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown palette: %s", name)
}

// LoadOptions returns loader options for this configuration.
func (c Config) LoadOptions() (semchart.Options, error) {
	opts := semchart.DefaultOptions()
	opts.Sheet = c.Sheet
	opts.Range = c.Range

	enc, err := parser.ParseEncoding(c.Encoding)
	if err != nil {
		return opts, err
	}
	opts.Encoding = enc

	if opts.Comma, err = c.Comma(); err != nil {
		return opts, err
	}
	return opts, nil
}

// Style returns the chart style for this configuration.
func (c Config) Style() (chart.Style, error) {
	palette, err := c.Palette(c.Chart.Palette)
	if err != nil {
		return chart.Style{}, err
	}
	return chart.Style{
		Title:      c.Chart.Title,
		Palette:    palette,
		Smooth:     c.Chart.Smooth,
		ShowPoints: c.Chart.Points,
		SpanGaps:   c.Chart.SpanGaps,
		Width:      c.Chart.Width,
		Height:     c.Chart.Height,
	}, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/charmap"
)

// Config describes one rendered frame.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Output     string  `toml:"output"`
	Background string  `toml:"background"`
	Foreground string  `toml:"foreground"`
	Font       string  `toml:"font"` // TTF/OTF path; empty selects the builtin 7x13 font
	Size       float64 `toml:"size"`
	Encoding   string  `toml:"encoding"`
	Lines      []Line  `toml:"line"`
}

// Line is a string placed at a pixel position.
type Line struct {
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Text string `toml:"text"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Width:      320,
		Height:     96,
		Output:     "glass.png",
		Background: "#1e1e2e",
		Foreground: "white",
		Size:       14,
		Lines: []Line{
			{X: 8, Y: 8, Text: "glass monospace blit demo"},
			{X: 8, Y: 28, Text: "0123456789 !\"#$%&'()*+,-./"},
			{X: -20, Y: 48, Text: "clipped on the left edge"},
			{X: 200, Y: 88, Text: "clipped at the corner"},
		},
	}
}

// loadConfig reads a TOML file over the defaults. An empty path returns
// the defaults unchanged. The result is not validated; callers apply
// their overrides first and then call validate.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

// parseConfig decodes TOML over the defaults. Lines given in the file
// replace the default lines.
func parseConfig(data []byte) (Config, error) {
	cfg := defaultConfig()
	cfg.Lines = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Lines == nil {
		cfg.Lines = defaultConfig().Lines
	}
	return cfg, nil
}

// override replaces fields with command-line values. Zero values leave
// the field alone.
func (c *Config) override(output string, width, height int) {
	if output != "" {
		c.Output = output
	}
	if width > 0 {
		c.Width = width
	}
	if height > 0 {
		c.Height = height
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Font != "" && c.Size <= 0 {
		return fmt.Errorf("invalid font size %g", c.Size)
	}
	if _, err := c.charmap(); err != nil {
		return err
	}
	return nil
}

// charmap resolves the configured code page; nil means code points index
// the atlas directly.
func (c Config) charmap() (*charmap.Charmap, error) {
	switch strings.ToLower(c.Encoding) {
	case "", "unicode":
		return nil, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	case "cp850", "ibm850":
		return charmap.CodePage850, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", c.Encoding)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/moodcalc/moodcalc/pkg/calc"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable presentation and startup settings.
type Config struct {
	Mode      string      `yaml:"mode"`       // basic | scientific
	AngleUnit string      `yaml:"angle_unit"` // degrees | radians
	Accent    string      `yaml:"accent"`     // lipgloss color (ANSI index or hex)
	Glyphs    GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig overrides the presentational glyph per emotion. The mapping is
// purely cosmetic; empty fields fall back to the defaults.
type GlyphConfig struct {
	Happy   string `yaml:"happy"`
	Neutral string `yaml:"neutral"`
	Sad     string `yaml:"sad"`
	Excited string `yaml:"excited"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Mode:      "basic",
		AngleUnit: "degrees",
		Accent:    "6",
		Glyphs: GlyphConfig{
			Happy:   "😊",
			Neutral: "😐",
			Sad:     "😢",
			Excited: "🤩",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error: the calculator runs fine unconfigured. Environment
// variables referenced as ${VAR} or $VAR in the YAML are expanded before
// parsing, matching the .env handling at startup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case "basic", "scientific":
	default:
		return fmt.Errorf("unknown mode %q (want basic or scientific)", c.Mode)
	}

	switch c.AngleUnit {
	case "degrees", "radians":
	default:
		return fmt.Errorf("unknown angle_unit %q (want degrees or radians)", c.AngleUnit)
	}

	return nil
}

// StartState builds the engine's initial state from the config.
func (c Config) StartState() calc.State {
	s := calc.NewState()
	if c.Mode == "scientific" {
		s = s.ToggleMode()
	}
	if c.AngleUnit == "radians" {
		s = s.ToggleAngleUnit()
	}
	return s
}

// glyphFor maps an emotion to its configured glyph.
func (c Config) glyphFor(e calc.Emotion) string {
	defaults := DefaultConfig().Glyphs

	pick := func(configured, fallback string) string {
		if configured != "" {
			return configured
		}
		return fallback
	}

	switch e {
	case calc.Happy:
		return pick(c.Glyphs.Happy, defaults.Happy)
	case calc.Sad:
		return pick(c.Glyphs.Sad, defaults.Sad)
	case calc.Excited:
		return pick(c.Glyphs.Excited, defaults.Excited)
	default:
		return pick(c.Glyphs.Neutral, defaults.Neutral)
	}
}

package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// glyphSets are the presets offered by the init wizard. The emotion-to-glyph
// mapping is purely cosmetic, so any set is as valid as another.
var glyphSets = map[string]GlyphConfig{
	"emoji": {Happy: "😊", Neutral: "😐", Sad: "😢", Excited: "🤩"},
	"kaomoji": {
		Happy:   "(^_^)",
		Neutral: "(-_-)",
		Sad:     "(T_T)",
		Excited: "\\(^o^)/",
	},
	"plain": {Happy: ":)", Neutral: ":|", Sad: ":(", Excited: ":D"},
}

// runWizard interactively builds a config and returns it as YAML.
func runWizard() ([]byte, error) {
	cfg := DefaultConfig()
	glyphSet := "emoji"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start mode").
				Options(
					huh.NewOption("Basic", "basic"),
					huh.NewOption("Scientific", "scientific"),
				).
				Value(&cfg.Mode),
			huh.NewSelect[string]().
				Title("Angle unit for trig functions").
				Options(
					huh.NewOption("Degrees", "degrees"),
					huh.NewOption("Radians", "radians"),
				).
				Value(&cfg.AngleUnit),
			huh.NewSelect[string]().
				Title("Emotion glyph set").
				Options(
					huh.NewOption("Emoji 😊", "emoji"),
					huh.NewOption("Kaomoji (^_^)", "kaomoji"),
					huh.NewOption("Plain :)", "plain"),
				).
				Value(&glyphSet),
			huh.NewInput().
				Title("Accent color (ANSI index or hex)").
				Value(&cfg.Accent),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg.Glyphs = glyphSets[glyphSet]

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return data, nil
}

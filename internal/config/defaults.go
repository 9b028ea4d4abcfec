package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  30,
			Height: 20,
		},
		TickMS: 200,
		UI:     UITerm,
		Color:  true,
		Glyphs: GlyphConfig{
			Head: "O",
			Body: "o",
			Food: "*",
			Wall: "#",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Frontend names accepted by the ui field.
const (
	UITerm = "term"
	UITea  = "tea"
)

// Config contains all user-tunable settings.
type Config struct {
	Board  BoardConfig `yaml:"board"`
	TickMS int         `yaml:"tick_ms"`
	Seed   int64       `yaml:"seed"` // 0 = time based
	UI     string      `yaml:"ui"`
	Color  bool        `yaml:"color"`
	Glyphs GlyphConfig `yaml:"glyphs"`
	Log    LogConfig   `yaml:"log"`
}

// BoardConfig defines the playable area in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GlyphConfig defines the characters used to draw the board.
// Each value must be exactly one character.
type GlyphConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
	Wall string `yaml:"wall"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Tick returns the tick length.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// RenderGlyphs converts the glyph strings to runes. Call Validate first;
// invalid entries fall back to the defaults.
func (c Config) RenderGlyphs() snake.Glyphs {
	g := snake.DefaultGlyphs()
	g.Head = glyphRune(c.Glyphs.Head, g.Head)
	g.Body = glyphRune(c.Glyphs.Body, g.Body)
	g.Food = glyphRune(c.Glyphs.Food, g.Food)
	g.Wall = glyphRune(c.Glyphs.Wall, g.Wall)
	return g
}

func glyphRune(s string, fallback rune) rune {
	if utf8.RuneCountInString(s) != 1 {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Validate checks every field and joins all problems found. Board size is
// checked by the engine, which owns those rules.
func (c Config) Validate() error {
	var errs []error

	if c.TickMS <= 0 {
		errs = append(errs, &ValidationError{Field: "tick_ms", Value: c.TickMS, Reason: "must be positive"})
	}
	if c.UI != UITerm && c.UI != UITea {
		errs = append(errs, &ValidationError{Field: "ui", Value: c.UI, Reason: "must be term or tea"})
	}

	glyphs := []struct {
		field string
		value string
	}{
		{"glyphs.head", c.Glyphs.Head},
		{"glyphs.body", c.Glyphs.Body},
		{"glyphs.food", c.Glyphs.Food},
		{"glyphs.wall", c.Glyphs.Wall},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			errs = append(errs, &ValidationError{Field: g.field, Value: fmt.Sprintf("%q", g.value), Reason: "must be a single character"})
		}
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, &ValidationError{Field: "log.level", Value: c.Log.Level, Reason: "must be debug, info, warn or error"})
	}

	return errors.Join(errs...)
}

// YAML returns the configuration as a YAML document.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	yaml "gopkg.in/yaml.v3"
)

// Theme holds colour names understood by the terminal renderer.
type Theme struct {
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
	LightText   string `yaml:"light_text"`
	DarkText    string `yaml:"dark_text"`
	MoveBlock   string `yaml:"move_block"`
	AttackBlock string `yaml:"attack_block"`
	Cursor      string `yaml:"cursor"`
}

// Keys lists extra single-character bindings on top of the arrow keys and Enter.
type Keys struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Confirm []string `yaml:"confirm"`
}

type AppConfig struct {
	Theme       Theme  `yaml:"theme"`
	Keys        Keys   `yaml:"keys"`
	StartFEN    string `yaml:"start_fen"`
	MessagesDir string `yaml:"messages_dir"`
	ShowFEN     bool   `yaml:"show_fen"`
}

func Default() *AppConfig {
	return &AppConfig{
		Theme: Theme{
			LightSquare: "white",
			DarkSquare:  "black",
			LightText:   "black",
			DarkText:    "white",
			MoveBlock:   "blue",
			AttackBlock: "red",
			Cursor:      "magenta",
		},
		Keys: Keys{
			Up:      []string{"k", "w"},
			Down:    []string{"j", "s"},
			Left:    []string{"h", "a"},
			Right:   []string{"l", "d"},
			Confirm: []string{" "},
		},
	}
}

// Load builds the config from defaults, then the YAML file named by
// TERMCHESS_CONFIG (if any), then TERMCHESS_* environment overrides.
func Load() (*AppConfig, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("TERMCHESS_CONFIG")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("TERMCHESS_START_FEN")); v != "" {
		cfg.StartFEN = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMCHESS_MESSAGES_DIR")); v != "" {
		cfg.MessagesDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TERMCHESS_SHOW_FEN")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TERMCHESS_SHOW_FEN: %w", err)
		}
		cfg.ShowFEN = b
	}

	// Theme colours
	overrideString(&cfg.Theme.LightSquare, "TERMCHESS_THEME_LIGHT_SQUARE")
	overrideString(&cfg.Theme.DarkSquare, "TERMCHESS_THEME_DARK_SQUARE")
	overrideString(&cfg.Theme.LightText, "TERMCHESS_THEME_LIGHT_TEXT")
	overrideString(&cfg.Theme.DarkText, "TERMCHESS_THEME_DARK_TEXT")
	overrideString(&cfg.Theme.MoveBlock, "TERMCHESS_THEME_MOVE_BLOCK")
	overrideString(&cfg.Theme.AttackBlock, "TERMCHESS_THEME_ATTACK_BLOCK")
	overrideString(&cfg.Theme.Cursor, "TERMCHESS_THEME_CURSOR")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	// Decode over the defaults so omitted fields keep their values.
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate checks key bindings. Colour names are checked by the renderer.
func (c *AppConfig) Validate() error {
	groups := map[string][]string{
		"up":      c.Keys.Up,
		"down":    c.Keys.Down,
		"left":    c.Keys.Left,
		"right":   c.Keys.Right,
		"confirm": c.Keys.Confirm,
	}
	seen := make(map[string]string)
	for _, name := range []string{"up", "down", "left", "right", "confirm"} {
		for _, k := range groups[name] {
			if utf8.RuneCountInString(k) != 1 {
				return fmt.Errorf("key %q for %s must be a single character", k, name)
			}
			if prev, ok := seen[k]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", k, prev, name)
			}
			seen[k] = name
		}
	}
	if strings.TrimSpace(c.Theme.Cursor) == "" {
		return errors.New("theme.cursor is required")
	}
	return nil
}

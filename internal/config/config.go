package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Bounds shared by word length and guess budget.
const (
	MinSetting = 3
	MaxSetting = 9
)

// Config is the root application configuration. CLI flags override it.
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig holds session defaults.
type GameConfig struct {
	Dictionary string `yaml:"dictionary"  env:"WORDLE_DICTIONARY"  env-default:"/usr/share/dict/words"`
	WordLength int    `yaml:"word_length" env:"WORDLE_LENGTH"      env-default:"5"`
	MaxGuesses int    `yaml:"max_guesses" env:"WORDLE_MAX_GUESSES" env-default:"6"`
	Color      string `yaml:"color"       env:"WORDLE_COLOR"       env-default:"auto"`
	DailySalt  string `yaml:"daily_salt"  env:"WORDLE_DAILY_SALT"  env-default:"terminal-wordle"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

// Load reads configuration from the environment (ENV > defaults).
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if !InRange(c.Game.WordLength) {
		errs = append(errs, fmt.Errorf("game.word_length must be %d..%d, got %d", MinSetting, MaxSetting, c.Game.WordLength))
	}
	if !InRange(c.Game.MaxGuesses) {
		errs = append(errs, fmt.Errorf("game.max_guesses must be %d..%d, got %d", MinSetting, MaxSetting, c.Game.MaxGuesses))
	}
	c.Game.Color = strings.ToLower(c.Game.Color)
	if !slices.Contains([]string{"auto", "always", "never"}, c.Game.Color) {
		errs = append(errs, fmt.Errorf("game.color must be auto, always or never, got %q", c.Game.Color))
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	if !slices.Contains([]string{"console", "json"}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// InRange reports whether n is an accepted word length or guess budget.
func InRange(n int) bool { return n >= MinSetting && n <= MaxSetting }

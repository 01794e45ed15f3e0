package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	BoardSize   int    `mapstructure:"board_size"`
	LexiconPath string `mapstructure:"lexicon_path"`
	TileSetPath string `mapstructure:"tileset_path"`
	Workers     int    `mapstructure:"workers"`
	Games       int    `mapstructure:"games"`
	LogLevel    string `mapstructure:"log_level"`
	BotStrategy string `mapstructure:"bot_strategy"`
	BestN       int    `mapstructure:"best_n"`
}

func DefaultConfig() Config {
	return Config{
		BoardSize:   15,
		Games:       10,
		LogLevel:    "info",
		BotStrategy: "highscore",
		BestN:       10,
	}
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("board_size", def.BoardSize)
	v.SetDefault("lexicon_path", def.LexiconPath)
	v.SetDefault("tileset_path", def.TileSetPath)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("games", def.Games)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("bot_strategy", def.BotStrategy)
	v.SetDefault("best_n", def.BestN)
}

// Load reads the config file at path, if any, then applies SCRABBLE_*
// environment overrides, e.g. SCRABBLE_LEXICON_PATH.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("scrabble")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("%w: board_size must be positive, got %d", ErrInvalidConfig, c.BoardSize)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: games must not be negative", ErrInvalidConfig)
	}
	switch c.BotStrategy {
	case "highscore", "oneofnbest":
	default:
		return fmt.Errorf("%w: unknown bot_strategy %q", ErrInvalidConfig, c.BotStrategy)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, info if it is unset.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

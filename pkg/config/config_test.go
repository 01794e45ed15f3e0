package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg, DefaultConfig())
	is.Equal(cfg.Level(), zerolog.InfoLevel)
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "scrabble.yaml")
	doc := `
lexicon_path: /data/lexica/CSW21.txt
bot_strategy: oneofnbest
best_n: 3
log_level: debug
workers: 2
`
	is.NoErr(os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.LexiconPath, "/data/lexica/CSW21.txt")
	is.Equal(cfg.BotStrategy, "oneofnbest")
	is.Equal(cfg.BestN, 3)
	is.Equal(cfg.Workers, 2)
	is.Equal(cfg.BoardSize, 15)
	is.Equal(cfg.Level(), zerolog.DebugLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("SCRABBLE_GAMES", "3")
	t.Setenv("SCRABBLE_BOARD_SIZE", "11")
	t.Setenv("SCRABBLE_LEXICON_PATH", "/tmp/words.txt")

	cfg, err := Load("")
	is.NoErr(err)
	is.Equal(cfg.Games, 3)
	is.Equal(cfg.BoardSize, 11)
	is.Equal(cfg.LexiconPath, "/tmp/words.txt")
}

func TestLoadInvalid(t *testing.T) {
	is := is.New(t)

	t.Setenv("SCRABBLE_BOT_STRATEGY", "random")
	_, err := Load("")
	is.True(errors.Is(err, ErrInvalidConfig))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
}

func TestValidate(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfig()
	is.NoErr(cfg.Validate())

	cfg.BoardSize = 0
	is.True(errors.Is(cfg.Validate(), ErrInvalidConfig))

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	is.True(errors.Is(cfg.Validate(), ErrInvalidConfig))
}

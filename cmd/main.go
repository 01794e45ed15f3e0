package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scrabble-engine/pkg/config"
	"scrabble-engine/pkg/scrabble"
)

var (
	configPath = flag.String("config", "", "Path to a config file")
	numGames   = flag.Int("n", 0, "Number of games to simulate (overrides the config)")
)

func main() {
	start := time.Now()
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if *numGames > 0 {
		cfg.Games = *numGames
	}
	if cfg.LexiconPath == "" {
		log.Fatal().Msg("no lexicon: set lexicon_path or SCRABBLE_LEXICON_PATH")
	}

	tileSet := scrabble.DefaultTileSet
	if cfg.TileSetPath != "" {
		if tileSet, err = scrabble.LoadTileSetFile(cfg.TileSetPath); err != nil {
			log.Fatal().Err(err).Msg("loading tile set")
		}
	}
	dict, err := scrabble.LoadDictionaryFile(cfg.LexiconPath, tileSet)
	if err != nil {
		log.Fatal().Err(err).Msg("loading lexicon")
	}

	var winsA, winsB int
	for i := 0; i < cfg.Games; i++ {
		scoreA, scoreB, err := simulateGame(cfg, tileSet, dict)
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("simulation failed")
		}
		if scoreA > scoreB {
			winsA++
		}
		if scoreB > scoreA {
			winsB++
		}
	}

	log.Info().
		Int("games", cfg.Games).
		Int("winsA", winsA).
		Int("winsB", winsB).
		Int("draws", cfg.Games-winsA-winsB).
		Dur("elapsed", time.Since(start)).
		Msgf("%d games were played", cfg.Games)
}

func simulateGame(cfg config.Config, tileSet *scrabble.TileSet, dict *scrabble.Dictionary) (scoreA, scoreB int, err error) {
	g := scrabble.NewGame(tileSet, dict)
	g.Board = scrabble.NewBoard(cfg.BoardSize)
	if cfg.Workers > 0 {
		g.Generator.SetWorkers(cfg.Workers)
	}

	strategy, ok := scrabble.NewStrategy(cfg.BotStrategy, cfg.BestN)
	if !ok {
		return 0, 0, fmt.Errorf("unknown strategy %q", cfg.BotStrategy)
	}
	p1, err := g.AddPlayer("Alphonse")
	if err != nil {
		return 0, 0, err
	}
	p2, err := g.AddPlayer("Sylvestre")
	if err != nil {
		return 0, 0, err
	}
	bots := [2]*scrabble.Bot{
		scrabble.NewBot(p1, strategy),
		scrabble.NewBot(p2, &scrabble.HighScore{}),
	}

	for !g.IsOver() {
		// Ask robot A or robot B to generate a move
		move := bots[g.PlayerToMoveIndex()].GenerateMove(g.State())
		if err := g.ApplyValid(move); err != nil {
			return 0, 0, err
		}
	}
	log.Debug().Msg("\n" + g.Board.String())
	return g.Players[0].Score, g.Players[1].Score, nil
}

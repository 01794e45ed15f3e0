package scrabble

import (
	"golang.org/x/exp/slices"
	"lukechampine.com/frand"
)

// Strategy is implemented by automatic players: given the legal tile
// plays of a turn, pick the move to make.
type Strategy interface {
	PickMove(state *GameState, plays []Play) Move
}

type Bot struct {
	*Player
	Strategy
}

// GenerateMove generates the legal tile plays, then picks a move
// with the current bot's strategy
func (b *Bot) GenerateMove(state *GameState) Move {
	plays := state.GenerateMoves()
	return b.PickMove(state, plays)
}

// HighScore strategy always picks the highest-scoring play available, or
// exchanges all tiles if there is no valid tile play, or passes if exchange
// is not allowed.
type HighScore struct{}

// OneOfNBest picks one of the N highest-scoring plays at random.
type OneOfNBest struct {
	N int
}

// PickMove for a HighScore picks the highest scoring play available,
// or an exchange move, or a pass move as a last resort
func (hs *HighScore) PickMove(state *GameState, plays []Play) Move {
	if best, ok := SelectBest(plays); ok {
		return NewTileMove(best)
	}
	return noPlayMove(state)
}

// PickMove for OneOfNBest selects one of the N highest-scoring
// plays at random, or an exchange move, or a pass move as a last resort
func (ofb *OneOfNBest) PickMove(state *GameState, plays []Play) Move {
	if len(plays) == 0 {
		return noPlayMove(state)
	}
	sorted := slices.Clone(plays)
	// Descending score; discovery order among equal scores
	slices.SortStableFunc(sorted, func(a, b Play) int {
		return b.Score - a.Score
	})
	n := ofb.N
	if n < 1 {
		n = 1
	}
	// Cut the list down to N, if it is longer than that
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return NewTileMove(sorted[frand.Intn(len(sorted))])
}

// noPlayMove exchanges the whole rack when that is allowed and passes
// otherwise.
func noPlayMove(state *GameState) Move {
	if state.ExchangeAllowed && !state.Rack.IsEmpty() {
		return NewExchangeMove(state.Rack.AsString())
	}
	return NewPassMove()
}

func NewBot(p *Player, s Strategy) *Bot {
	return &Bot{
		Player:   p,
		Strategy: s,
	}
}

// NewStrategy returns the strategy registered under name: "highscore" or
// "oneofnbest", the latter picking among the n best plays.
func NewStrategy(name string, n int) (Strategy, bool) {
	switch name {
	case "highscore", "":
		return &HighScore{}, true
	case "oneofnbest":
		return &OneOfNBest{N: n}, true
	}
	return nil, false
}

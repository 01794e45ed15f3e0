package scrabble

import (
	"testing"

	"github.com/matryer/is"
)

func TestHighScorePicksBest(t *testing.T) {
	is := is.New(t)
	state := &GameState{Rack: NewRackFromString("CATS", DefaultTileSet), ExchangeAllowed: true}
	plays := []Play{
		{Word: "AT", Score: 4},
		{Word: "CATS", Score: 12},
		{Word: "SCAT", Score: 12},
	}

	move := (&HighScore{}).PickMove(state, plays)
	tm, ok := move.(*TileMove)
	is.True(ok)
	is.Equal(tm.Play.Word, "CATS")
}

func TestHighScoreWithoutPlays(t *testing.T) {
	is := is.New(t)
	state := &GameState{Rack: NewRackFromString("QZX", DefaultTileSet), ExchangeAllowed: true}

	move := (&HighScore{}).PickMove(state, nil)
	em, ok := move.(*ExchangeMove)
	is.True(ok)
	is.Equal(em.Letters, "QZX")

	state.ExchangeAllowed = false
	_, ok = (&HighScore{}).PickMove(state, nil).(*PassMove)
	is.True(ok)
}

func TestOneOfNBest(t *testing.T) {
	is := is.New(t)
	state := &GameState{Rack: NewRackFromString("CATS", DefaultTileSet)}
	plays := []Play{
		{Word: "AT", Score: 4},
		{Word: "CATS", Score: 12},
		{Word: "CAT", Score: 10},
		{Word: "TA", Score: 4},
	}

	for i := 0; i < 50; i++ {
		tm, ok := (&OneOfNBest{N: 2}).PickMove(state, plays).(*TileMove)
		is.True(ok)
		is.True(tm.Play.Score >= 10)
	}
	tm := (&OneOfNBest{N: 1}).PickMove(state, plays).(*TileMove)
	is.Equal(tm.Play.Word, "CATS")
	// The caller's order is kept
	is.Equal(plays[0].Word, "AT")

	_, ok := (&OneOfNBest{N: 3}).PickMove(state, nil).(*PassMove)
	is.True(ok)
}

func TestNewStrategy(t *testing.T) {
	is := is.New(t)

	s, ok := NewStrategy("highscore", 0)
	is.True(ok)
	_, ok = s.(*HighScore)
	is.True(ok)

	s, ok = NewStrategy("oneofnbest", 5)
	is.True(ok)
	is.Equal(s.(*OneOfNBest).N, 5)

	_, ok = NewStrategy("random", 0)
	is.True(!ok)
}

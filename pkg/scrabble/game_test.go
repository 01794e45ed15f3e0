package scrabble

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(DefaultTileSet, newTestDict(smallWords...))
	_, err := g.AddPlayer("alice")
	require.NoError(t, err)
	_, err = g.AddPlayer("bob")
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)

	is.Equal(g.Bag.TileCount(), 100-2*RackSize)
	is.Equal(g.Players[0].Rack.Len(), RackSize)
	is.Equal(g.Players[1].Rack.Len(), RackSize)
	is.True(g.Players[0].ID != g.Players[1].ID)
	is.Equal(g.PlayerToMove(), g.Players[0])
	is.True(!g.IsOver())

	_, err := g.AddPlayer("carol")
	is.Equal(err, ErrGameFull)
}

func TestGameTileMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	alice := g.Players[0]
	alice.Rack = NewRackFromString("CATSXYZ", DefaultTileSet)

	move := NewTileMove(Play{Word: "CATS", Row: 7, Col: 7, Horizontal: true, Score: 12})
	is.True(move.IsValid(g))
	is.NoErr(g.Apply(move))

	is.Equal(alice.Score, 12)
	is.Equal(alice.Rack.Len(), RackSize)
	is.Equal(g.Bag.TileCount(), 100-2*RackSize-4)
	is.Equal(g.PlayerToMove(), g.Players[1])
	is.Equal(len(g.MoveList), 1)
	is.Equal(g.MoveList[0].RackBefore, "CATSXYZ")
	is.Equal(g.MoveList[0].Score, 12)

	// Not connected to CATS any more
	bad := NewTileMove(Play{Word: "AT", Row: 0, Col: 0, Horizontal: true})
	is.True(!bad.IsValid(g))
	is.Equal(g.Apply(bad), ErrInvalidMove)
}

func TestGameExchangeMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	alice := g.Players[0]
	letters := string(alice.Rack.AsRunes()[:3])
	bagBefore := g.Bag.TileCount()

	move := NewExchangeMove(letters)
	is.True(move.IsValid(g))
	is.NoErr(g.Apply(move))

	is.Equal(alice.Rack.Len(), RackSize)
	is.Equal(g.Bag.TileCount(), bagBefore)
	is.Equal(g.NumPassMoves, 1)
	is.Equal(alice.Score, 0)

	is.True(!NewExchangeMove("").IsValid(g))
	is.True(!NewExchangeMove("QQQQQQQQ").IsValid(g))

	// Too few tiles left to exchange
	g.Bag.Tiles = g.Bag.Tiles[:RackSize-1]
	is.True(!NewExchangeMove(g.PlayerToMove().Rack.AsString()[:1]).IsValid(g))
}

func TestGameEndsAfterScorelessTurns(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	rackValues := [2]int{g.Players[0].Rack.Value(), g.Players[1].Rack.Value()}

	for i := 0; i < MaxPassMoves; i++ {
		is.True(!g.IsOver())
		is.NoErr(g.Apply(NewPassMove()))
	}
	is.True(g.IsOver())
	is.True(g.Finished)
	// Each player loses the value of their own rack
	is.Equal(g.Players[0].Score, -rackValues[0])
	is.Equal(g.Players[1].Score, -rackValues[1])
	is.Equal(g.Apply(NewPassMove()), ErrGameOver)

	var finals int
	for _, item := range g.MoveList {
		if _, ok := item.Move.(*FinalMove); ok {
			finals++
		}
	}
	is.Equal(finals, 2)
}

func TestGamePlayerGoesOut(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	g.Bag.Tiles = nil
	alice, bob := g.Players[0], g.Players[1]
	alice.Rack = NewRackFromString("CAT", DefaultTileSet)
	bob.Rack = NewRackFromString("QZ*", DefaultTileSet)

	is.NoErr(g.Apply(NewTileMove(Play{Word: "CAT", Row: 7, Col: 6, Horizontal: true, Score: 10})))

	is.True(g.Finished)
	// (3+1+1)*2 for CAT, then twice the Q and Z
	is.Equal(alice.Score, 10+2*(10+10))
	is.Equal(bob.Score, 0)
	is.Equal(g.Winner(), alice)
}

func TestFinalMoveScore(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	move := NewFinalMove(g.Players[0], "QZ*A", -1)

	is.Equal(move.Score(g.State()), -(10 + 10 + 0 + 1))
	is.Equal(move.String(), "Rack QZ*A x-1")
}

func TestSimulatedGame(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t)
	bots := [2]*Bot{
		NewBot(g.Players[0], &HighScore{}),
		NewBot(g.Players[1], &OneOfNBest{N: 3}),
	}

	for turns := 0; !g.IsOver(); turns++ {
		is.True(turns < 1000)
		move := bots[g.PlayerToMoveIndex()].GenerateMove(g.State())
		is.True(move.IsValid(g))
		is.NoErr(g.ApplyValid(move))
	}
	is.True(g.Finished)

	// The move list accounts for every point
	var totals [2]int
	for _, item := range g.MoveList {
		for i, p := range g.Players {
			if item.Player == p {
				totals[i] += item.Score
			}
		}
	}
	assert.Equal(t, [2]int{g.Players[0].Score, g.Players[1].Score}, totals)
}

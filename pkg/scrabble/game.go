package scrabble

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// MaxPassMoves is the number of consecutive scoreless turns
// (passes and exchanges) that ends a game.
const MaxPassMoves int = 6

var (
	ErrGameOver    = errors.New("game is over")
	ErrGameFull    = errors.New("game already has two players")
	ErrInvalidMove = errors.New("invalid move")
)

type Game struct {
	Players      [2]*Player
	Board        *Board
	Bag          *Bag
	Dict         *Dictionary
	TileSet      *TileSet
	MoveList     []*MoveItem
	Finished     bool
	NumPassMoves int
	Generator    *Generator
}

// GameState contains the bare minimum of information
// that is needed for a robot player to decide on a move
// in a Game.
type GameState struct {
	Dict            *Dictionary
	TileSet         *TileSet
	Board           *Board
	Rack            *Rack
	ExchangeAllowed bool

	generator *Generator
}

// MoveItem is an entry in the MoveList of a Game.
// It contains the player's Rack as it was before the move,
// as well as the move itself.
type MoveItem struct {
	Player     *Player
	RackBefore string
	Move       Move
	Score      int
}

// NewGame returns a game on a standard board with a full bag. Players
// are added with AddPlayer.
func NewGame(tileSet *TileSet, dict *Dictionary) *Game {
	if tileSet == nil {
		tileSet = dict.TileSet()
	}
	return &Game{
		Board:     NewBoard(DefaultBoardSize),
		Dict:      dict,
		Bag:       NewBag(tileSet),
		TileSet:   tileSet,
		Generator: NewGenerator(dict),
	}
}

// AddPlayer seats a new player with a rack drawn from the bag.
func (g *Game) AddPlayer(username string) (*Player, error) {
	for i, p := range g.Players {
		if p == nil {
			g.Players[i] = NewPlayer(username, g.Bag)
			return g.Players[i], nil
		}
	}
	return nil, ErrGameFull
}

// PlayerToMoveIndex returns 0 or 1 depending on which player's move it is
func (g *Game) PlayerToMoveIndex() int {
	return len(g.MoveList) % 2
}

// PlayerToMove returns the player which player's move it is
func (g *Game) PlayerToMove() *Player {
	return g.Players[g.PlayerToMoveIndex()]
}

// Apply checks a move and applies it.
func (g *Game) Apply(move Move) error {
	if g.Finished {
		return ErrGameOver
	}
	if !move.IsValid(g) {
		return ErrInvalidMove
	}
	return g.ApplyValid(move)
}

// ApplyValid applies an already validated Move to a Game,
// appends it to the move list, replenishes the player's Rack
// if needed, and finishes the game when it is over.
func (g *Game) ApplyValid(move Move) error {
	if g.Finished {
		return ErrGameOver
	}
	// Be careful to call PlayerToMove() before appending
	// a move to the move list (this reverses the players)
	playerToMove := g.PlayerToMove()
	rackBefore := playerToMove.Rack.AsString()
	scoreBefore := playerToMove.Score
	if err := move.Apply(g); err != nil {
		return err
	}
	if _, ok := move.(*TileMove); ok {
		// Replenish the rack after laying tiles
		playerToMove.Rack.Fill(g.Bag)
	}
	g.MoveList = append(g.MoveList, &MoveItem{
		Player:     playerToMove,
		RackBefore: rackBefore,
		Move:       move,
		Score:      playerToMove.Score - scoreBefore,
	})
	log.Debug().
		Str("player", playerToMove.Username).
		Str("rack", rackBefore).
		Stringer("move", move).
		Msg("move applied")

	if g.IsOver() {
		g.finish(playerToMove)
	}
	return nil
}

// finish applies the final rack adjustments. A player who went out
// gains twice the value of the opponent's rack; otherwise each player
// loses the value of their own rack.
func (g *Game) finish(last *Player) {
	g.Finished = true
	opp := g.Players[0]
	if opp == last {
		opp = g.Players[1]
	}
	var finals []*FinalMove
	if last.Rack.IsEmpty() {
		finals = append(finals, NewFinalMove(last, opp.Rack.AsString(), 2))
	} else {
		finals = append(finals,
			NewFinalMove(last, last.Rack.AsString(), -1),
			NewFinalMove(opp, opp.Rack.AsString(), -1),
		)
	}
	for _, fm := range finals {
		scoreBefore := fm.Player.Score
		if err := fm.Apply(g); err != nil {
			log.Err(err).Stringer("move", fm).Msg("final adjustment")
			continue
		}
		g.MoveList = append(g.MoveList, &MoveItem{
			Player:     fm.Player,
			RackBefore: fm.Player.Rack.AsString(),
			Move:       fm,
			Score:      fm.Player.Score - scoreBefore,
		})
	}
	log.Info().
		Str("player0", g.Players[0].Username).
		Int("score0", g.Players[0].Score).
		Str("player1", g.Players[1].Username).
		Int("score1", g.Players[1].Score).
		Int("moves", len(g.MoveList)).
		Msg("game over")
}

// IsOver returns true if the Game is over after the last
// move played
func (g *Game) IsOver() bool {
	if g.Finished {
		return true
	}
	if len(g.MoveList) == 0 {
		// No moves yet: cannot be over
		return false
	}
	if g.NumPassMoves >= MaxPassMoves {
		return true
	}
	last := g.MoveList[len(g.MoveList)-1].Player
	return last.Rack.IsEmpty() && g.Bag.TileCount() == 0
}

// Winner returns the player with the higher score, or nil on a draw.
func (g *Game) Winner() *Player {
	a, b := g.Players[0], g.Players[1]
	switch {
	case a.Score > b.Score:
		return a
	case b.Score > a.Score:
		return b
	}
	return nil
}

// State returns a new GameState instance describing the state of the
// game in a minimal manner so that a robot player can decide on a move
func (g *Game) State() *GameState {
	return &GameState{
		Dict:            g.Dict,
		TileSet:         g.TileSet,
		Board:           g.Board,
		Rack:            g.PlayerToMove().Rack,
		ExchangeAllowed: g.Bag.ExchangeAllowed(),
		generator:       g.Generator,
	}
}

// GenerateMoves returns every legal tile play for the rack of the state.
func (gs *GameState) GenerateMoves() []Play {
	gen := gs.generator
	if gen == nil {
		gen = NewGenerator(gs.Dict)
	}
	return gen.Generate(gs.Board, gs.Rack)
}

package scrabble

import (
	"fmt"
	"strings"
)

// Move is anything a player can do on their turn.
type Move interface {
	IsValid(*Game) bool
	Apply(*Game) error
	Score(*GameState) int
	String() string
}

// TileMove lays a generated or typed-in Play on the board.
type TileMove struct {
	Play Play
}

// Make sure the TileMove implements Move interface
var _ Move = (*TileMove)(nil)

// PassMove is a move that is always valid, has no effect when applied,
// and has a score of 0
type PassMove struct{}

// Make sure the PassMove implements Move interface
var _ Move = (*PassMove)(nil)

// ExchangeMove is a move that exchanges 1-7 tiles from the player's
// Rack with the Bag. It is only valid when at least 7 tiles are
// left in the Bag.
type ExchangeMove struct {
	Letters string
}

// Make sure the ExchangeMove implements Move interface
var _ Move = (*ExchangeMove)(nil)

// FinalMove represents the final adjustments that are made to
// player scores at the end of a Game: the tile values of Rack,
// multiplied by MultiplyFactor, go to Player.
type FinalMove struct {
	Player         *Player
	Rack           string
	MultiplyFactor int
}

// Make sure the FinalMove implements Move interface
var _ Move = (*FinalMove)(nil)

func NewTileMove(play Play) *TileMove {
	return &TileMove{Play: play}
}

// IsValid returns true if the play is legal on the game's board and the
// player to move holds the tiles for it
func (move *TileMove) IsValid(game *Game) bool {
	if err := ValidatePlay(game.Board, game.Dict, move.Play); err != nil {
		return false
	}
	_, _, err := TilesForPlay(game.Board, game.PlayerToMove().Rack, move.Play)
	return err == nil
}

// Apply moves the tiles from the player's Rack to the board Squares
func (move *TileMove) Apply(game *Game) error {
	if _, err := Commit(game.Board, game.PlayerToMove(), move.Play); err != nil {
		return err
	}
	// Reset the counter of consecutive zero-point moves
	game.NumPassMoves = 0
	return nil
}

// Score returns the score computed when the play was generated
func (move *TileMove) Score(state *GameState) int {
	return move.Play.Score
}

func (move *TileMove) String() string {
	return move.Play.String()
}

// NewPassMove returns a reference to a fresh PassMove
func NewPassMove() *PassMove {
	return &PassMove{}
}

// String return a string description of the PassMove
func (move *PassMove) String() string {
	return "Pass"
}

// IsValid always returns true for a PassMove
func (move *PassMove) IsValid(game *Game) bool {
	return true
}

// Apply always succeeds for a PassMove
func (move *PassMove) Apply(game *Game) error {
	// Increment the number of consecutive zero-point moves
	game.NumPassMoves++
	return nil
}

// Score is always 0 for a PassMove
func (move *PassMove) Score(state *GameState) int {
	return 0
}

// NewExchangeMove returns a reference to a fresh ExchangeMove
func NewExchangeMove(letters string) *ExchangeMove {
	return &ExchangeMove{Letters: letters}
}

// String return a string description of the ExchangeMove
func (move *ExchangeMove) String() string {
	return "Exchanged letters: " + move.Letters
}

// IsValid returns true if an exchange is allowed and all
// exchanged tiles are actually in the player's rack
func (move *ExchangeMove) IsValid(game *Game) bool {
	if move == nil || game == nil {
		return false
	}
	if !game.Bag.ExchangeAllowed() {
		// Too few tiles left in the bag
		return false
	}
	runes := []rune(move.Letters)
	if len(runes) < 1 || len(runes) > RackSize {
		return false
	}
	rack := game.PlayerToMove().Rack.AsString()
	for _, letter := range runes {
		if !strings.ContainsRune(rack, letter) {
			// This exchanged letter is not in the player's rack
			return false
		}
		rack = strings.Replace(rack, string(letter), "", 1)
	}
	// All exchanged letters found: the move is OK
	return true
}

// Apply replenishes the exchanged tiles in the Rack
// from the Bag
func (move *ExchangeMove) Apply(game *Game) error {
	if !move.IsValid(game) {
		return fmt.Errorf("%w: exchange %q", ErrTileNotInRack, move.Letters)
	}
	rack := game.PlayerToMove().Rack
	tiles := make([]*Tile, 0, RackSize)
	// First, remove the exchanged tiles from the player's Rack
	for _, letter := range move.Letters {
		tile, err := rack.GetTile(letter)
		if err != nil {
			return err
		}
		if err := rack.RemoveTile(tile); err != nil {
			return err
		}
		tiles = append(tiles, tile)
	}
	// Replenish the Rack from the Bag...
	rack.Fill(game.Bag)
	// ...before returning the exchanged tiles to the Bag
	for _, tile := range tiles {
		game.Bag.ReturnTile(tile)
	}
	// Increment the number of consecutive pass moves
	game.NumPassMoves++
	return nil
}

// Score is always 0 for an ExchangeMove
func (move *ExchangeMove) Score(state *GameState) int {
	return 0
}

// NewFinalMove returns a reference to a fresh FinalMove
func NewFinalMove(p *Player, rack string, multiplyFactor int) *FinalMove {
	return &FinalMove{Player: p, Rack: rack, MultiplyFactor: multiplyFactor}
}

// String return a string description of the FinalMove
func (move *FinalMove) String() string {
	return fmt.Sprintf("Rack %s x%d", move.Rack, move.MultiplyFactor)
}

// IsValid always returns true for a FinalMove
func (move *FinalMove) IsValid(game *Game) bool {
	return true
}

// Apply adds the adjustment to the player's score
func (move *FinalMove) Apply(game *Game) error {
	move.Player.Score += move.Score(game.State())
	return nil
}

// Score returns the rack's tile values multiplied by the factor
func (move *FinalMove) Score(state *GameState) int {
	adj := 0
	for _, letter := range move.Rack {
		adj += state.TileSet.Value(letter)
	}
	return adj * move.MultiplyFactor
}

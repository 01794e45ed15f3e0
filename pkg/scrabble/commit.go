package scrabble

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrInsufficientRack = errors.New("rack cannot supply the play")
	ErrInvalidPlacement = errors.New("play cannot be placed on the board")
	ErrWordTooShort     = errors.New("word is too short")
	ErrUnknownWord      = errors.New("word not in dictionary")
	ErrNotConnected     = errors.New("play does not touch the tiles on the board")
	ErrWordNotBounded   = errors.New("play does not cover the whole word")
)

// Commit lays play on the board with tiles from the player's rack and adds
// its score. Board, rack and score are left untouched on failure.
func Commit(b *Board, p *Player, play Play) ([]Position, error) {
	tiles, used, err := TilesForPlay(b, p.Rack, play)
	if err != nil {
		return nil, err
	}
	placed, score := b.PlaceWord(tiles, play.Start(), play.Horizontal)
	if len(placed) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
	}
	for _, t := range used {
		// Every used tile was picked from this rack
		if err := p.Rack.RemoveTile(t); err != nil {
			log.Err(err).Str("player", p.Username).Str("tile", t.String()).Msg("removing committed tile")
		}
	}
	p.Score += score
	log.Debug().
		Str("player", p.Username).
		Str("play", play.String()).
		Int("score", score).
		Int("total", p.Score).
		Msg("committed play")
	return placed, nil
}

// TilesForPlay converts the play's word into the run of tiles to lay,
// drawing the new ones from rack. A letter is taken from a tile carrying
// it when possible and from a blank otherwise; letters the play marks as
// blanks always come from a blank. It returns the run and the rack tiles
// it consumes.
func TilesForPlay(b *Board, rack *Rack, play Play) ([]Tile, []*Tile, error) {
	dRow, dCol := step(play.Horizontal)
	word := []rune(play.Word)
	if len(word) == 0 {
		return nil, nil, fmt.Errorf("%w: empty word", ErrInvalidPlacement)
	}
	tiles := make([]Tile, len(word))
	var used []*Tile
	taken := make(map[*Tile]bool, RackSize)
	pick := func(match func(*Tile) bool) *Tile {
		for _, t := range rack.Tiles {
			if !taken[t] && match(t) {
				taken[t] = true
				return t
			}
		}
		return nil
	}
	for i, letter := range word {
		pos := Position{Row: play.Row + i*dRow, Col: play.Col + i*dCol}
		if !b.InBounds(pos) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
		}
		if sq := b.GetSquare(pos); sq.Tile != nil {
			if sq.Tile.Letter != letter {
				return nil, nil, fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
			}
			tiles[i] = *sq.Tile
			continue
		}
		var t *Tile
		if !play.IsBlank(i) {
			t = pick(func(t *Tile) bool { return !t.Blank && t.Letter == letter })
		}
		if t == nil {
			t = pick(func(t *Tile) bool { return t.Blank })
		}
		if t == nil {
			return nil, nil, fmt.Errorf("%w: no tile for %q in %q", ErrInsufficientRack, letter, rack.AsString())
		}
		used = append(used, t)
		tiles[i] = t.Bind(letter)
	}
	return tiles, used, nil
}

// ValidatePlay checks a play against the board and dictionary, the way a
// play typed in by a person would be checked: it must fit the board, fill
// at least one square, be the whole word on its line, touch the existing
// tiles (or cover the center on an empty board), and every word it forms
// must be in the dictionary. The rack is not consulted.
func ValidatePlay(b *Board, d *Dictionary, play Play) error {
	word := []rune(play.Word)
	if len(word) < 2 {
		return ErrWordTooShort
	}
	dRow, dCol := step(play.Horizontal)
	start := play.Start()
	end := Position{Row: start.Row + (len(word)-1)*dRow, Col: start.Col + (len(word)-1)*dCol}
	if !b.InBounds(start) || !b.InBounds(end) {
		return fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
	}
	before := Position{Row: start.Row - dRow, Col: start.Col - dCol}
	after := Position{Row: end.Row + dRow, Col: end.Col + dCol}
	for _, p := range [2]Position{before, after} {
		if sq := b.GetSquare(p); sq != nil && !sq.IsEmpty() {
			return fmt.Errorf("%w: %s", ErrWordNotBounded, play)
		}
	}

	boardEmpty := b.IsEmpty()
	newTiles := 0
	connected := false
	for i, letter := range word {
		pos := Position{Row: start.Row + i*dRow, Col: start.Col + i*dCol}
		sq := b.GetSquare(pos)
		if sq.Tile != nil {
			if sq.Tile.Letter != letter {
				return fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
			}
			continue
		}
		newTiles++
		if (boardEmpty && pos == b.Center()) || b.NumAdjacentTiles(pos) > 0 {
			connected = true
		}
		prev, next := b.CrossWordFragments(pos, !play.Horizontal)
		if prev == "" && next == "" {
			continue
		}
		if cross := prev + string(letter) + next; !d.Validate(cross) {
			return fmt.Errorf("%w: %s", ErrUnknownWord, cross)
		}
	}
	if newTiles == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlacement, play)
	}
	if newTiles > RackSize {
		return fmt.Errorf("%w: %s", ErrInsufficientRack, play)
	}
	if !connected {
		return fmt.Errorf("%w: %s", ErrNotConnected, play)
	}
	if !d.Validate(play.Word) {
		return fmt.Errorf("%w: %s", ErrUnknownWord, play.Word)
	}
	return nil
}

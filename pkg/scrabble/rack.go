package scrabble

import (
	"errors"
	"unicode"

	"github.com/samber/lo"
)

const (
	RackSize = 7
)

var (
	ErrTileNotInRack = errors.New("tile not in rack")
	ErrRackFull      = errors.New("rack is full")
)

type Rack struct {
	Tiles []*Tile
}

// NewRack returns a rack filled from b. A nil bag gives an empty rack.
func NewRack(b *Bag) *Rack {
	rack := &Rack{
		Tiles: make([]*Tile, 0, RackSize),
	}
	if b != nil {
		rack.Fill(b)
	}

	return rack
}

// NewRackFromString builds a rack from letters, '*' or '?' standing for a
// blank. Letters are valued with ts.
func NewRackFromString(letters string, ts *TileSet) *Rack {
	rack := &Rack{
		Tiles: make([]*Tile, 0, RackSize),
	}
	for _, l := range letters {
		if l == BlankLetter || l == '?' {
			rack.Tiles = append(rack.Tiles, NewBlankTile())
			continue
		}
		l = unicode.ToUpper(l)
		rack.Tiles = append(rack.Tiles, NewTile(l, ts.Value(l)))
	}
	return rack
}

func (r *Rack) Fill(b *Bag) {
	for len(r.Tiles) < RackSize {
		tile, err := b.DrawTile()
		if err != nil {
			return
		}
		r.Tiles = append(r.Tiles, tile)
	}
}

func (r *Rack) Add(t *Tile) error {
	if len(r.Tiles) >= RackSize {
		return ErrRackFull
	}
	r.Tiles = append(r.Tiles, t)
	return nil
}

func (r *Rack) Index(letter rune) int {
	for i, t := range r.Tiles {
		if letter == t.Letter {
			return i
		}
	}
	return -1
}

func (r *Rack) Contains(letter rune) bool {
	return r.Index(letter) >= 0
}

func (r *Rack) Remove(letter rune) error {
	i := r.Index(letter)

	if i == -1 {
		return ErrTileNotInRack
	}
	r.removeAt(i)

	return nil
}

// RemoveTile removes this very tile from the rack.
func (r *Rack) RemoveTile(t *Tile) error {
	for i, rt := range r.Tiles {
		if rt == t {
			r.removeAt(i)
			return nil
		}
	}
	return ErrTileNotInRack
}

func (r *Rack) removeAt(i int) {
	// Keep order when deleting so that when displayed
	// the user sees the same order as before
	r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
}

func (r *Rack) GetTile(letter rune) (*Tile, error) {
	i := r.Index(letter)
	if i == -1 {
		return nil, ErrTileNotInRack
	}

	return r.Tiles[i], nil
}

func (r *Rack) AsRunes() []rune {
	return lo.Map(r.Tiles, func(t *Tile, _ int) rune {
		return t.Letter
	})
}

func (r *Rack) AsString() string {
	return string(r.AsRunes())
}

func (r *Rack) IsEmpty() bool {
	return len(r.Tiles) == 0
}

func (r *Rack) Len() int {
	return len(r.Tiles)
}

// Value is the sum of the tile values left on the rack.
func (r *Rack) Value() int {
	return lo.SumBy(r.Tiles, func(t *Tile) int {
		return t.Value
	})
}

// rackLetters is a rack reduced to letter counts. The move generator
// passes it by value, so each search branch owns its copy.
type rackLetters struct {
	counts [AlphabetSize]int
	blanks int
	size   int
}

func newRackLetters(r *Rack) rackLetters {
	var rl rackLetters
	for _, t := range r.Tiles {
		if t.Blank {
			rl.blanks++
			rl.size++
			continue
		}
		if i, ok := letterIndex(t.Letter); ok {
			rl.counts[i]++
			rl.size++
		}
	}
	return rl
}

func (rl rackLetters) has(letter rune) bool {
	i, ok := letterIndex(letter)
	return ok && rl.counts[i] > 0
}

// take returns the rack left after playing letter, from a blank if
// blank is set.
func (rl rackLetters) take(letter rune, blank bool) rackLetters {
	if blank {
		rl.blanks--
	} else {
		i, _ := letterIndex(letter)
		rl.counts[i]--
	}
	rl.size--
	return rl
}

func (rl rackLetters) empty() bool {
	return rl.size == 0
}

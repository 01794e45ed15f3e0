package scrabble

import "unicode"

// AlphabetSize is the number of distinct letters a tile can carry.
const AlphabetSize = 26

// BlankLetter marks a blank tile that is not bound to any letter yet.
const BlankLetter = '*'

type Tile struct {
	Letter rune
	Value  int
	Blank  bool
}

func NewTile(letter rune, value int) *Tile {
	return &Tile{
		Letter: letter,
		Value:  value,
	}
}

// NewBlankTile returns an unbound blank. Blanks are always worth zero points.
func NewBlankTile() *Tile {
	return &Tile{
		Letter: BlankLetter,
		Blank:  true,
	}
}

// Bind returns a copy of the tile standing in for letter. The receiver is
// left untouched, so a blank on a rack stays unbound.
func (t Tile) Bind(letter rune) Tile {
	if t.Blank {
		t.Letter = letter
	}
	return t
}

// IsBound reports whether the tile carries a playable letter.
func (t *Tile) IsBound() bool {
	return t.Letter != BlankLetter
}

func (t Tile) String() string {
	if t.Blank {
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}

// letterIndex maps 'A'..'Z' to 0..25.
func letterIndex(letter rune) (int, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}

func indexLetter(i int) rune {
	return rune('A' + i)
}

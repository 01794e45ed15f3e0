package scrabble

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTileSet = errors.New("invalid tile set")

// TileSet is the alphabet table of a game: how many tiles of each letter
// are in the supply and what each is worth. The blank is keyed by
// BlankLetter. A TileSet is never modified once built.
type TileSet struct {
	Count  map[rune]int
	Values map[rune]int
}

// LetterInfo is one entry of a tile set file.
type LetterInfo struct {
	Count int `yaml:"count"`
	Value int `yaml:"value"`
}

type tileSetFile struct {
	Name    string                `yaml:"name"`
	Letters map[string]LetterInfo `yaml:"letters"`
}

func initTileSet() *TileSet {
	tileCount := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, BlankLetter: 2,
	}

	tileValue := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10, BlankLetter: 0,
	}

	return &TileSet{Count: tileCount, Values: tileValue}
}

// DefaultTileSet is the English tile distribution.
var DefaultTileSet = initTileSet()

// LoadTileSet reads a YAML alphabet table of the form
//
//	letters:
//	  A: {count: 9, value: 1}
//	  "*": {count: 2, value: 0}
func LoadTileSet(r io.Reader) (*TileSet, error) {
	var f tileSetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTileSet, err)
	}
	if len(f.Letters) == 0 {
		return nil, fmt.Errorf("%w: no letters", ErrInvalidTileSet)
	}
	ts := &TileSet{
		Count:  make(map[rune]int, len(f.Letters)),
		Values: make(map[rune]int, len(f.Letters)),
	}
	for key, info := range f.Letters {
		key = strings.ToUpper(key)
		letter, size := utf8.DecodeRuneInString(key)
		if size != len(key) {
			return nil, fmt.Errorf("%w: %q is not a single letter", ErrInvalidTileSet, key)
		}
		if _, ok := letterIndex(letter); !ok && letter != BlankLetter {
			return nil, fmt.Errorf("%w: unsupported letter %q", ErrInvalidTileSet, key)
		}
		if info.Count < 0 || info.Value < 0 {
			return nil, fmt.Errorf("%w: negative entry for %q", ErrInvalidTileSet, key)
		}
		ts.Count[letter] = info.Count
		ts.Values[letter] = info.Value
	}
	// Blanks never score.
	ts.Values[BlankLetter] = 0
	return ts, nil
}

func LoadTileSetFile(path string) (*TileSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTileSet(f)
}

// Contains reports whether letter is a playable letter of the tile set.
func (ts *TileSet) Contains(letter rune) bool {
	if _, ok := letterIndex(letter); !ok {
		return false
	}
	_, ok := ts.Values[letter]
	return ok
}

func (ts *TileSet) Value(letter rune) int {
	return ts.Values[letter]
}

// Letters returns the playable letters in alphabetical order.
func (ts *TileSet) Letters() []rune {
	letters := make([]rune, 0, len(ts.Values))
	for letter := range ts.Values {
		if ts.Contains(letter) {
			letters = append(letters, letter)
		}
	}
	slices.Sort(letters)
	return letters
}

func (ts *TileSet) TotalTiles() int {
	total := 0
	for _, n := range ts.Count {
		total += n
	}
	return total
}

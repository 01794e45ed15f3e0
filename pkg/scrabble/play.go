package scrabble

import (
	"fmt"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Play is a candidate tile placement produced by the move generator.
type Play struct {
	Word       string
	Row, Col   int
	Horizontal bool
	Score      int
	// TilesUsed is the number of tiles the play takes from the rack.
	TilesUsed int
	// Blanks holds the indexes in Word that are played with a blank.
	Blanks []int
}

func (p Play) Start() Position {
	return Position{Row: p.Row, Col: p.Col}
}

func (p Play) IsBlank(i int) bool {
	return slices.Contains(p.Blanks, i)
}

// Coords returns the play's coordinates: row first for a horizontal play
// ("8H"), column first for a vertical one ("H8").
func (p Play) Coords() string {
	if p.Horizontal {
		return fmt.Sprintf("%d%c", p.Row+1, 'A'+p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// Display returns the word with letters played from blanks in lower case.
func (p Play) Display() string {
	runes := []rune(p.Word)
	for _, i := range p.Blanks {
		if i >= 0 && i < len(runes) {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return string(runes)
}

func (p Play) String() string {
	return fmt.Sprintf("%s %s %d", p.Coords(), p.Display(), p.Score)
}

// SelectBest returns the play with the strictly greatest score; among
// equal scores the earliest in the list wins.
func SelectBest(plays []Play) (Play, bool) {
	if len(plays) == 0 {
		return Play{}, false
	}
	return lo.MaxBy(plays, func(a, b Play) bool {
		return a.Score > b.Score
	}), true
}

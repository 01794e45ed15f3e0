package scrabble

import (
	"math/bits"
	"strings"
)

// TrivialCrossSet allows every letter. It is the set of any empty square
// without perpendicular neighbors.
const TrivialCrossSet CrossSet = 1<<AlphabetSize - 1

// A CrossSet is a bit mask of the letters that may be placed on a square.
// It depends on the direction of the play: a square's set for a
// horizontal play comes from the tiles above and below it.
type CrossSet uint32

func (c CrossSet) Allowed(letter rune) bool {
	i, ok := letterIndex(letter)
	return ok && c&(1<<i) != 0
}

func (c *CrossSet) Set(letter rune) {
	if i, ok := letterIndex(letter); ok {
		*c |= 1 << i
	}
}

func (c CrossSet) Count() int {
	return bits.OnesCount32(uint32(c))
}

func CrossSetFromString(letters string) CrossSet {
	var c CrossSet
	for _, l := range letters {
		c.Set(l)
	}
	return c
}

func (c CrossSet) String() string {
	var sb strings.Builder
	for i := 0; i < AlphabetSize; i++ {
		if c&(1<<i) != 0 {
			sb.WriteRune(indexLetter(i))
		}
	}
	return sb.String()
}

// CrossChecks holds the cross sets of every square for both play
// directions. It is computed once per turn from a board snapshot.
type CrossChecks struct {
	size   int
	across []CrossSet
	down   []CrossSet
}

// ComputeCrossChecks validates, for every empty square, each letter that
// would join the tiles around it into a perpendicular word. Occupied
// squares get an empty set.
func ComputeCrossChecks(b *Board, d *Dictionary) *CrossChecks {
	n := b.Size()
	cc := &CrossChecks{
		size:   n,
		across: make([]CrossSet, n*n),
		down:   make([]CrossSet, n*n),
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pos := Position{Row: row, Col: col}
			if !b.GetSquare(pos).IsEmpty() {
				continue
			}
			// A horizontal play is constrained by the column through the square
			cc.across[row*n+col] = crossSetAt(b, d, pos, false)
			cc.down[row*n+col] = crossSetAt(b, d, pos, true)
		}
	}
	return cc
}

func crossSetAt(b *Board, d *Dictionary, pos Position, horizontal bool) CrossSet {
	prev, after := b.CrossWordFragments(pos, horizontal)
	if len(prev) == 0 && len(after) == 0 {
		// No cross word, so no cross check constraint
		return TrivialCrossSet
	}
	return d.CrossCheck(prev, after)
}

// Get returns the cross set of a square for a play in the given direction.
func (cc *CrossChecks) Get(row, col int, horizontal bool) CrossSet {
	if horizontal {
		return cc.across[row*cc.size+col]
	}
	return cc.down[row*cc.size+col]
}

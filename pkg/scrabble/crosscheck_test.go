package scrabble

import (
	"testing"

	"github.com/matryer/is"
)

func TestCrossSetBits(t *testing.T) {
	is := is.New(t)
	var cs CrossSet
	cs.Set('N')
	is.Equal(uint32(cs), uint32(1<<13))
	cs.Set('A')
	is.Equal(uint32(cs), uint32(1<<13|1))

	is.True(cs.Allowed('A'))
	is.True(cs.Allowed('N'))
	is.True(!cs.Allowed('B'))
	is.True(!cs.Allowed('*'))
	is.Equal(cs.Count(), 2)
	is.Equal(cs.String(), "AN")
	is.Equal(TrivialCrossSet.Count(), AlphabetSize)
}

func TestComputeCrossChecks(t *testing.T) {
	is := is.New(t)
	d := newTestDict(smallWords...)
	b := NewBoard(5)
	setBoardRow(b, 1, "  C")
	setBoardRow(b, 3, "  T")

	cc := ComputeCrossChecks(b, d)

	// Across plays are constrained by the column: only CAT fits
	is.Equal(cc.Get(2, 2, true), CrossSetFromString("A"))
	// Nothing to the left or right of the square
	is.Equal(cc.Get(2, 2, false), TrivialCrossSet)
	// Above C: ?C is no word
	is.Equal(cc.Get(0, 2, true), CrossSet(0))
	// Below T: T? gives TA
	is.Equal(cc.Get(4, 2, true), CrossSetFromString("A"))
	// Occupied squares allow nothing
	is.Equal(cc.Get(1, 2, true), CrossSet(0))
	is.Equal(cc.Get(1, 2, false), CrossSet(0))
	// Far from every tile
	is.Equal(cc.Get(0, 0, true), TrivialCrossSet)
}

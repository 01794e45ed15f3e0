package scrabble

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestCommitBestPlay(t *testing.T) {
	is := is.New(t)
	d := newTestDict(smallWords...)
	b := NewBoard(DefaultBoardSize)
	p := NewPlayer("alice", nil)
	p.Rack = NewRackFromString("CATSQ", DefaultTileSet)

	play, ok := ComputeTurn(b, p.Rack, d)
	is.True(ok)

	placed, err := Commit(b, p, play)
	is.NoErr(err)
	is.Equal(len(placed), play.TilesUsed)
	is.Equal(p.Score, play.Score)
	is.Equal(p.Rack.AsString(), "Q")
	for _, pos := range placed {
		is.True(!b.GetSquare(pos).IsEmpty())
	}
	is.NoErr(ValidatePlay(NewBoard(DefaultBoardSize), d, play))
}

func TestCommitBindsBlank(t *testing.T) {
	is := is.New(t)
	b := NewBoard(DefaultBoardSize)
	p := NewPlayer("bob", nil)
	p.Rack = NewRackFromString("*AT", DefaultTileSet)
	blank := p.Rack.Tiles[0]

	play := Play{Word: "CAT", Row: 7, Col: 6, Horizontal: true, Score: 4, TilesUsed: 3, Blanks: []int{0}}
	_, err := Commit(b, p, play)
	is.NoErr(err)

	sq := b.GetSquare(Position{Row: 7, Col: 6})
	is.True(sq.Tile.Blank)
	is.Equal(sq.Tile.Letter, 'C')
	is.Equal(sq.Tile.Value, 0)
	is.Equal(p.Score, 4)
	is.True(p.Rack.IsEmpty())
	// The rack's own tile was never rebound
	is.Equal(blank.Letter, BlankLetter)
}

func TestCommitPrefersLetterOverBlank(t *testing.T) {
	is := is.New(t)
	b := NewBoard(DefaultBoardSize)
	p := NewPlayer("carol", nil)
	p.Rack = NewRackFromString("A*T", DefaultTileSet)

	_, err := Commit(b, p, Play{Word: "AT", Row: 7, Col: 7, Horizontal: true})
	is.NoErr(err)
	is.Equal(p.Rack.AsString(), "*")
	is.Equal(p.Score, (1+1)*2)
}

func TestCommitInsufficientRack(t *testing.T) {
	is := is.New(t)
	b := NewBoard(DefaultBoardSize)
	p := NewPlayer("dave", nil)
	p.Rack = NewRackFromString("AT", DefaultTileSet)
	before := b.String()

	_, err := Commit(b, p, Play{Word: "CAT", Row: 7, Col: 6, Horizontal: true})
	is.True(errors.Is(err, ErrInsufficientRack))
	is.Equal(b.String(), before)
	is.Equal(p.Rack.AsString(), "AT")
	is.Equal(p.Score, 0)
}

func TestCommitOverExistingTiles(t *testing.T) {
	is := is.New(t)
	b := NewBoard(DefaultBoardSize)
	setBoardRow(b, 7, "       A")
	p := NewPlayer("erin", nil)
	p.Rack = NewRackFromString("CT", DefaultTileSet)

	placed, err := Commit(b, p, Play{Word: "CAT", Row: 7, Col: 6, Horizontal: true})
	is.NoErr(err)
	is.Equal(len(placed), 2)
	is.Equal(p.Score, 3+1+1)
	is.True(p.Rack.IsEmpty())

	// A letter clashing with the board is refused
	p.Rack = NewRackFromString("BT", DefaultTileSet)
	_, err = Commit(b, p, Play{Word: "BAT", Row: 6, Col: 8, Horizontal: false})
	is.True(errors.Is(err, ErrInvalidPlacement))
	is.Equal(p.Rack.AsString(), "BT")
}

func TestValidatePlay(t *testing.T) {
	d := newTestDict(smallWords...)
	b := NewBoard(DefaultBoardSize)
	setBoardRow(b, 7, "      CAT")

	tests := []struct {
		name string
		play Play
		err  error
	}{
		{"extends a word", Play{Word: "CATS", Row: 7, Col: 6, Horizontal: true}, nil},
		{"crosses a word", Play{Word: "BAT", Row: 6, Col: 7, Horizontal: false}, nil},
		{"too short", Play{Word: "A", Row: 6, Col: 6, Horizontal: true}, ErrWordTooShort},
		{"not a word", Play{Word: "CATT", Row: 7, Col: 6, Horizontal: true}, ErrUnknownWord},
		{"stops before a tile", Play{Word: "AT", Row: 7, Col: 7, Horizontal: true}, ErrWordNotBounded},
		{"floating", Play{Word: "AT", Row: 0, Col: 0, Horizontal: true}, ErrNotConnected},
		{"off the board", Play{Word: "CABS", Row: 0, Col: 13, Horizontal: true}, ErrInvalidPlacement},
		{"nothing new", Play{Word: "CAT", Row: 7, Col: 6, Horizontal: true}, ErrInvalidPlacement},
		{"bad cross word", Play{Word: "AB", Row: 6, Col: 7, Horizontal: true}, ErrUnknownWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			err := ValidatePlay(b, d, tt.play)
			if tt.err == nil {
				is.NoErr(err)
				return
			}
			is.True(errors.Is(err, tt.err))
		})
	}
}

func TestValidatePlayFirstMove(t *testing.T) {
	is := is.New(t)
	d := newTestDict(smallWords...)
	b := NewBoard(DefaultBoardSize)

	is.NoErr(ValidatePlay(b, d, Play{Word: "CAT", Row: 7, Col: 5, Horizontal: true}))
	err := ValidatePlay(b, d, Play{Word: "CAT", Row: 7, Col: 8, Horizontal: true})
	is.True(errors.Is(err, ErrNotConnected))
}

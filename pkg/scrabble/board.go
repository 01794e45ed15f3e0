package scrabble

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBoardSize is the size of a standard board.
const DefaultBoardSize int = 15

var (
	ErrInvalidPosition = errors.New("position is out of bounds")
	ErrExistingTile    = errors.New("a tile already exist on that square")
	ErrInvalidLayout   = errors.New("invalid board layout")
)

// Premium is the bonus marking of a square. The markers are the ones
// used in layout strings.
type Premium rune

const (
	PremiumNone  Premium = ' '
	DoubleLetter Premium = '\''
	TripleLetter Premium = '"'
	DoubleWord   Premium = '-'
	TripleWord   Premium = '='
	// Center doubles the word, like DoubleWord.
	Center Premium = '*'
)

// StandardLayout is the 15x15 crossword game board.
var StandardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

type Board struct {
	size      int
	Squares   [][]Square
	Adjacents [][][4]*Square
}

type Square struct {
	Tile     *Tile
	Premium  Premium
	Position Position
}

type Position struct {
	Row, Col int
}

type Direction = int

const (
	DirectionAbove Direction = iota
	DirectionLeft
	DirectionRight
	DirectionBelow
)

// NewBoard returns an empty board. The standard premium layout is used for
// the standard size; other sizes only mark the center square. It panics
// when size is not positive.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Errorf("%w: size %d", ErrInvalidLayout, size))
	}
	if size == DefaultBoardSize {
		return mustBoard(NewBoardFromLayout(StandardLayout))
	}
	layout := make([]string, size)
	for i := range layout {
		row := []rune(strings.Repeat(" ", size))
		if i == size/2 {
			row[size/2] = rune(Center)
		}
		layout[i] = string(row)
	}
	return mustBoard(NewBoardFromLayout(layout))
}

func mustBoard(b *Board, err error) *Board {
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFromLayout builds an empty board from rows of premium markers.
func NewBoardFromLayout(layout []string) (*Board, error) {
	size := len(layout)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	b := &Board{size: size}
	b.Squares = make([][]Square, size)
	for i, line := range layout {
		markers := []rune(line)
		if len(markers) != size {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrInvalidLayout, i, len(markers), size)
		}
		b.Squares[i] = make([]Square, size)
		for j, m := range markers {
			p := Premium(m)
			switch p {
			case PremiumNone, DoubleLetter, TripleLetter, DoubleWord, TripleWord, Center:
			default:
				return nil, fmt.Errorf("%w: unknown marker %q at %d,%d", ErrInvalidLayout, m, i, j)
			}
			b.Squares[i][j] = Square{
				Premium:  p,
				Position: Position{Row: i, Col: j},
			}
		}
	}

	// Initialize the adjacent square lists
	b.Adjacents = make([][][4]*Square, size)
	for row := 0; row < size; row++ {
		b.Adjacents[row] = make([][4]*Square, size)
		for col := 0; col < size; col++ {
			adj := &b.Adjacents[row][col]
			if row > 0 {
				adj[DirectionAbove] = &b.Squares[row-1][col]
			}
			if row < size-1 {
				adj[DirectionBelow] = &b.Squares[row+1][col]
			}
			if col > 0 {
				adj[DirectionLeft] = &b.Squares[row][col-1]
			}
			if col < size-1 {
				adj[DirectionRight] = &b.Squares[row][col+1]
			}
		}
	}

	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Center() Position {
	return Position{Row: b.size / 2, Col: b.size / 2}
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// GetSquare returns the square at p, or nil when p is off the board.
func (b *Board) GetSquare(p Position) *Square {
	if !b.InBounds(p) {
		return nil
	}
	return &b.Squares[p.Row][p.Col]
}

// IsEmpty reports whether no tile has been placed yet.
func (b *Board) IsEmpty() bool {
	for i := range b.Squares {
		for j := range b.Squares[i] {
			if b.Squares[i][j].Tile != nil {
				return false
			}
		}
	}
	return true
}

func (b *Board) PlaceTile(t *Tile, p Position) error {
	sq := b.GetSquare(p)
	if sq == nil {
		return ErrInvalidPosition
	}

	if sq.Tile != nil {
		return ErrExistingTile
	}
	sq.Tile = t
	return nil
}

// PlaceWord lays tiles along a run starting at start. Squares of the run
// that already hold the same letter are kept. It returns the newly filled
// positions and the score of the play, or nil and 0 without touching the
// board when ScoreRun refuses the run.
func (b *Board) PlaceWord(tiles []Tile, start Position, horizontal bool) ([]Position, int) {
	placed, score, ok := b.ScoreRun(tiles, start, horizontal)
	if !ok {
		return nil, 0
	}
	dRow, dCol := step(horizontal)
	for i, t := range tiles {
		p := Position{Row: start.Row + i*dRow, Col: start.Col + i*dCol}
		sq := b.GetSquare(p)
		if sq.Tile != nil {
			continue
		}
		tile := t
		sq.Tile = &tile
	}
	return placed, score
}

// RemoveWord lifts the tiles at the given positions and returns them.
func (b *Board) RemoveWord(positions []Position) []*Tile {
	removed := make([]*Tile, 0, len(positions))
	for _, p := range positions {
		if sq := b.GetSquare(p); sq != nil && sq.Tile != nil {
			removed = append(removed, sq.Tile)
			sq.Tile = nil
		}
	}
	return removed
}

func step(horizontal bool) (dRow, dCol int) {
	if horizontal {
		return 0, 1
	}
	return 1, 0
}

// TileFragment returns a list of the tiles that extend from the square
// at given pos in the direction specified.
func (b *Board) TileFragment(pos Position, dir Direction) []*Tile {
	if !b.InBounds(pos) {
		return nil
	}
	if dir < DirectionAbove || dir > DirectionBelow {
		return nil
	}

	frag := make([]*Tile, 0, b.size-1)
	for {
		sq := b.Adjacents[pos.Row][pos.Col][dir]
		// If there is no adjacent square in direction, than can't be
		// more letters in that direction
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		pos = sq.Position
	}

	return frag
}

// WordFragment returns the word formed by the tile sequence emanating
// from the given square in the indicated direction, not including the
// square itself.
func (b *Board) WordFragment(pos Position, direction Direction) string {
	frag := b.TileFragment(pos, direction)
	letters := make([]rune, len(frag))

	if direction == DirectionLeft || direction == DirectionAbove {
		// We need to reverse the order of the fragment
		for i, tile := range frag {
			letters[len(frag)-1-i] = tile.Letter
		}
	} else {
		for i, tile := range frag {
			letters[i] = tile.Letter
		}
	}
	return string(letters)
}

// CrossWordFragments returns the word fragments above and below (vertical),
// or to the left and right (horizontal), of the given position on the board.
func (b *Board) CrossWordFragments(pos Position, horizontal bool) (prev, after string) {
	before, behind := DirectionAbove, DirectionBelow
	if horizontal {
		before, behind = DirectionLeft, DirectionRight
	}
	return b.WordFragment(pos, before), b.WordFragment(pos, behind)
}

// NumAdjacentTiles returns the number of tiles on the
// Board that are adjacent to the given coordinate
func (b *Board) NumAdjacentTiles(pos Position) int {
	adj := &b.Adjacents[pos.Row][pos.Col]
	count := 0
	for _, sq := range adj {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// CrossScore returns the sum of the scores of the tiles crossing
// the given square, either horizontally or vertically. If there are no
// crossings, returns false, 0. (Note that true, 0 is a valid return
// value, if a crossing has only blank tiles.)
func (b *Board) CrossScore(pos Position, horizontal bool) (hasCrossing bool, score int) {
	before, behind := DirectionAbove, DirectionBelow
	if horizontal {
		before, behind = DirectionLeft, DirectionRight
	}
	for _, dir := range [2]Direction{before, behind} {
		for _, tile := range b.TileFragment(pos, dir) {
			score += tile.Value
			hasCrossing = true
		}
	}
	return hasCrossing, score
}

// String represents a Board as a string
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for j := 0; j < b.size; j++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+j))
	}
	sb.WriteString("\n")
	for i := 0; i < b.size; i++ {
		sb.WriteString(fmt.Sprintf("%2d ", i+1))
		for j := 0; j < b.size; j++ {
			sb.WriteString(b.Squares[i][j].String() + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s *Square) String() string {
	if s.Tile == nil {
		return "-"
	}
	return s.Tile.String()
}

func (s *Square) IsEmpty() bool {
	return s.Tile == nil
}

func (s *Square) LetterMultiplier() int {
	switch s.Premium {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

func (s *Square) WordMultiplier() int {
	switch s.Premium {
	case DoubleWord, Center:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

// IsAnchor reports whether a tile can be rooted on this square: it is
// empty and touches a placed tile. On an empty board only the center
// square is an anchor.
func (s *Square) IsAnchor(b *Board, boardEmpty bool) bool {
	if !s.IsEmpty() {
		return false
	}
	if boardEmpty {
		return s.Position == b.Center()
	}
	return b.NumAdjacentTiles(s.Position) > 0
}

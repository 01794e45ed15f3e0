package scrabble

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Generator finds every legal play for a rack. Rows are searched first,
// top to bottom, then columns, left to right; the order of the returned
// plays follows that scan regardless of how many workers share the lines.
type Generator struct {
	dict    *Dictionary
	workers int
}

func NewGenerator(d *Dictionary) *Generator {
	return &Generator{
		dict:    d,
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetWorkers bounds the number of lines searched at the same time.
// A value below one searches sequentially.
func (g *Generator) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	g.workers = n
}

// Generate returns all candidate plays, each scored. The board and the
// rack are not modified.
func (g *Generator) Generate(b *Board, rack *Rack) []Play {
	letters := newRackLetters(rack)
	if letters.empty() {
		return nil
	}
	checks := ComputeCrossChecks(b, g.dict)

	size := b.Size()
	results := make([][]Play, 2*size)
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i := 0; i < 2*size; i++ {
		i := i
		horizontal := i < size
		index := i % size
		eg.Go(func() error {
			var axis Axis
			axis.Init(b, g.dict, checks, index, horizontal)
			results[i] = axis.GenerateMoves(letters)
			return nil
		})
	}
	// The group only bounds concurrency: no line search returns an error
	_ = eg.Wait()

	var plays []Play
	for _, r := range results {
		plays = append(plays, r...)
	}
	log.Debug().
		Str("rack", rack.AsString()).
		Int("plays", len(plays)).
		Msg("generated plays")
	return plays
}

// BestPlay returns the highest-scoring play, or false when no tile
// play is possible.
func (g *Generator) BestPlay(b *Board, rack *Rack) (Play, bool) {
	return SelectBest(g.Generate(b, rack))
}

// GeneratePlays returns every legal play for rack on b.
func GeneratePlays(b *Board, rack *Rack, d *Dictionary) []Play {
	return NewGenerator(d).Generate(b, rack)
}

// ComputeTurn returns the best play for rack on b, or false if there is
// none.
func ComputeTurn(b *Board, rack *Rack, d *Dictionary) (Play, bool) {
	return NewGenerator(d).BestPlay(b, rack)
}

// FindAnchors lists the anchors of the board for plays in one direction,
// line by line.
func FindAnchors(b *Board, d *Dictionary, horizontal bool) []Anchor {
	checks := ComputeCrossChecks(b, d)
	var anchors []Anchor
	for index := 0; index < b.Size(); index++ {
		var axis Axis
		axis.Init(b, d, checks, index, horizontal)
		anchors = append(anchors, axis.Anchors()...)
	}
	return anchors
}

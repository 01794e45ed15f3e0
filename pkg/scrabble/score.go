package scrabble

// BingoBonus is the number of extra points awarded for laying down
// all the 7 tiles in the rack in one move. Emptying a rack holding fewer
// tiles at the end of the game does not earn it.
const BingoBonus = 50

// ScoreRun scores tiles laid along a run from start without modifying the
// board. The run covers the whole word; squares that already hold a tile
// must carry the same letter and are scored at face value. Tiles adjacent
// to either end of the run belong to the word as well.
//
// Each new tile's value is multiplied by its letter premium, word premiums
// of new squares are multiplied together and applied once to the letter
// sum. Every new tile that touches tiles in the perpendicular direction
// also scores that cross word, with its own square's premiums.
//
// ok is false when a square is out of bounds, an occupied square holds a
// different letter, a new tile is a blank not bound to a letter, or no
// square would be newly filled.
func (b *Board) ScoreRun(tiles []Tile, start Position, horizontal bool) (placed []Position, score int, ok bool) {
	if len(tiles) == 0 {
		return nil, 0, false
	}
	dRow, dCol := step(horizontal)
	end := Position{Row: start.Row + (len(tiles)-1)*dRow, Col: start.Col + (len(tiles)-1)*dCol}
	if !b.InBounds(start) || !b.InBounds(end) {
		return nil, 0, false
	}

	// Cumulative letter score
	letters := 0
	// Cumulative cross scores
	crossScore := 0
	// Word multiplier
	multiplier := 1
	for i, t := range tiles {
		pos := Position{Row: start.Row + i*dRow, Col: start.Col + i*dCol}
		sq := b.GetSquare(pos)
		if sq.Tile != nil {
			if sq.Tile.Letter != t.Letter {
				return nil, 0, false
			}
			// Already covered: no premiums
			letters += sq.Tile.Value
			continue
		}
		if !t.IsBound() {
			return nil, 0, false
		}
		placed = append(placed, pos)
		thisScore := t.Value * sq.LetterMultiplier()
		letters += thisScore
		multiplier *= sq.WordMultiplier()
		if hasCrossing, csc := b.CrossScore(pos, !horizontal); hasCrossing {
			crossScore += (csc + thisScore) * sq.WordMultiplier()
		}
	}
	if len(placed) == 0 {
		return nil, 0, false
	}

	before, after := DirectionAbove, DirectionBelow
	if horizontal {
		before, after = DirectionLeft, DirectionRight
	}
	for _, tile := range b.TileFragment(start, before) {
		letters += tile.Value
	}
	for _, tile := range b.TileFragment(end, after) {
		letters += tile.Value
	}

	score = letters*multiplier + crossScore
	if len(placed) == RackSize {
		score += BingoBonus
	}
	return placed, score, true
}

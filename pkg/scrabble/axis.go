package scrabble

// Axis is one row (horizontal) or column (vertical) of the board seen as a
// line of squares, along with the per-square cross sets and anchors for
// plays in that direction. The board and dictionary are only read.
type Axis struct {
	board      *Board
	dict       *Dictionary
	horizontal bool
	index      int
	squares    []*Square
	crossSets  []CrossSet
	isAnchor   []bool
	plays      []Play
}

// Anchor is an empty square a play can be rooted on.
type Anchor struct {
	Row, Col   int
	Horizontal bool
	CrossSet   CrossSet
	// MaxLeft is the number of empty squares before the anchor that a
	// play may cover without reaching the previous anchor.
	MaxLeft int
}

// stripLetter is one letter of a word being built.
type stripLetter struct {
	letter    rune
	blank     bool
	fromBoard bool
}

func (axis *Axis) Init(b *Board, d *Dictionary, checks *CrossChecks, index int, horizontal bool) {
	axis.board = b
	axis.dict = d
	axis.horizontal = horizontal
	axis.index = index
	n := b.Size()
	axis.squares = make([]*Square, n)
	axis.crossSets = make([]CrossSet, n)
	axis.isAnchor = make([]bool, n)
	axis.plays = nil
	boardEmpty := b.IsEmpty()
	// Build an array of pointers to the squares on this axis
	for i := 0; i < n; i++ {
		pos := Position{Row: i, Col: index}
		if horizontal {
			pos = Position{Row: index, Col: i}
		}
		sq := b.GetSquare(pos)
		axis.squares[i] = sq
		if sq.Tile != nil {
			// Already have a tile here: not an anchor and no
			// cross-check set needed
			continue
		}
		axis.crossSets[i] = checks.Get(pos.Row, pos.Col, horizontal)
		axis.isAnchor[i] = sq.IsAnchor(b, boardEmpty)
	}
}

// Anchors lists the anchors of the axis from left to right.
func (axis *Axis) Anchors() []Anchor {
	var anchors []Anchor
	lastAnchor := -1
	for i := range axis.squares {
		if !axis.isAnchor[i] {
			continue
		}
		// Count open squares to the anchor's left,
		// up to but not including the previous anchor, if any.
		openCnt := 0
		for left := i; left > lastAnchor+1 && axis.IsOpen(left-1); left-- {
			openCnt++
		}
		pos := axis.squares[i].Position
		anchors = append(anchors, Anchor{
			Row:        pos.Row,
			Col:        pos.Col,
			Horizontal: axis.horizontal,
			CrossSet:   axis.crossSets[i],
			MaxLeft:    openCnt,
		})
		lastAnchor = i
	}
	return anchors
}

// GenerateMoves returns every play on the axis for the rack, anchor by
// anchor from left to right.
func (axis *Axis) GenerateMoves(rack rackLetters) []Play {
	axis.plays = make([]Play, 0)
	if rack.empty() {
		return axis.plays
	}
	for _, anchor := range axis.Anchors() {
		if anchor.CrossSet == 0 {
			// No tile can be placed on this anchor
			continue
		}
		axis.genMovesFromAnchor(axis.offset(anchor), anchor.MaxLeft, rack)
	}
	return axis.plays
}

func (axis *Axis) offset(a Anchor) int {
	if axis.horizontal {
		return a.Col
	}
	return a.Row
}

// genMovesFromAnchor records the plays that use the given square
// within the Axis as their leftmost anchor
func (axis *Axis) genMovesFromAnchor(anchor int, maxLeft int, rack rackLetters) {
	// Are there letters before the anchor? If so, they are the left part
	if anchor > 0 && axis.squares[anchor-1].Tile != nil {
		axis.extendBefore(anchor, rack)
		return
	}
	// One tile is kept for the anchor itself
	limit := min(maxLeft, rack.size-1)
	axis.leftPart(nil, axis.dict.Root(), anchor, limit, rack)
}

// extendBefore continues the tiles already placed before the anchor
func (axis *Axis) extendBefore(anchor int, rack rackLetters) {
	start := anchor
	for start > 0 && axis.squares[start-1].Tile != nil {
		start--
	}
	node := axis.dict.Root()
	soFar := make([]stripLetter, 0, anchor-start)
	for i := start; i < anchor; i++ {
		letter := axis.squares[i].Tile.Letter
		node = node.Child(letter)
		if node == nil {
			// No word starts with the tiles already there
			return
		}
		soFar = append(soFar, stripLetter{letter: letter, fromBoard: true})
	}
	axis.extendRight(soFar, node, anchor, rack)
}

// leftPart places up to limit rack tiles before the anchor, following the
// trie, and extends every prefix to the right of it. Squares left of the
// anchor are never anchors, so any letter fits there.
func (axis *Axis) leftPart(soFar []stripLetter, node *Node, anchor, limit int, rack rackLetters) {
	axis.extendRight(soFar, node, anchor, rack)
	if limit == 0 {
		return
	}
	node.eachChild(func(letter rune, child *Node) {
		if rack.has(letter) {
			axis.leftPart(extend(soFar, stripLetter{letter: letter}), child, anchor, limit-1, rack.take(letter, false))
		}
		if rack.blanks > 0 {
			axis.leftPart(extend(soFar, stripLetter{letter: letter, blank: true}), child, anchor, limit-1, rack.take(letter, true))
		}
	})
}

// extendRight covers the square at pos: a placed tile is forced, an empty
// square takes any rack letter allowed by both its cross set and the trie.
func (axis *Axis) extendRight(soFar []stripLetter, node *Node, pos int, rack rackLetters) {
	if pos >= len(axis.squares) {
		// Gone off the board edge
		return
	}
	if tile := axis.squares[pos].Tile; tile != nil {
		child := node.Child(tile.Letter)
		if child == nil {
			return
		}
		axis.advance(extend(soFar, stripLetter{letter: tile.Letter, fromBoard: true}), child, pos, rack)
		return
	}
	if rack.empty() {
		return
	}
	node.eachChild(func(letter rune, child *Node) {
		if !axis.Allows(pos, letter) {
			return
		}
		if rack.has(letter) {
			axis.advance(extend(soFar, stripLetter{letter: letter}), child, pos, rack.take(letter, false))
		}
		if rack.blanks > 0 {
			axis.advance(extend(soFar, stripLetter{letter: letter, blank: true}), child, pos, rack.take(letter, true))
		}
	})
}

// advance records soFar if it ends a word at pos, then keeps extending:
// longer words may still follow from the same node.
func (axis *Axis) advance(soFar []stripLetter, node *Node, pos int, rack rackLetters) {
	if node.IsWord && len(soFar) >= 2 && axis.endsAt(pos) {
		axis.record(soFar, pos)
	}
	axis.extendRight(soFar, node, pos+1, rack)
}

// endsAt reports whether a word can stop at pos, i.e. the next square is
// off the board or empty.
func (axis *Axis) endsAt(pos int) bool {
	return pos+1 >= len(axis.squares) || axis.squares[pos+1].Tile == nil
}

func (axis *Axis) record(soFar []stripLetter, end int) {
	start := end - len(soFar) + 1
	tiles := make([]Tile, len(soFar))
	word := make([]rune, len(soFar))
	var blanks []int
	used := 0
	ts := axis.dict.TileSet()
	for i, sl := range soFar {
		word[i] = sl.letter
		switch {
		case sl.fromBoard:
			tiles[i] = *axis.squares[start+i].Tile
		case sl.blank:
			tiles[i] = NewBlankTile().Bind(sl.letter)
			blanks = append(blanks, i)
			used++
		default:
			tiles[i] = *NewTile(sl.letter, ts.Value(sl.letter))
			used++
		}
	}
	startPos := axis.squares[start].Position
	_, score, ok := axis.board.ScoreRun(tiles, startPos, axis.horizontal)
	if !ok {
		return
	}
	axis.plays = append(axis.plays, Play{
		Word:       string(word),
		Row:        startPos.Row,
		Col:        startPos.Col,
		Horizontal: axis.horizontal,
		Score:      score,
		TilesUsed:  used,
		Blanks:     blanks,
	})
}

// IsOpen returns true if the given square within the Axis
// is open for a new Tile from the Rack
func (axis *Axis) IsOpen(index int) bool {
	return axis.squares[index].Tile == nil && axis.crossSets[index] != 0
}

// Allows returns true if the given letter can be placed
// in the indexed square within the Axis, in compliance
// with the cross checks
func (axis *Axis) Allows(index int, letter rune) bool {
	if axis.squares[index].Tile != nil {
		return false
	}
	return axis.crossSets[index].Allowed(letter)
}

// extend returns soFar followed by sl in a fresh slice, so sibling
// branches never share a backing array.
func extend(soFar []stripLetter, sl stripLetter) []stripLetter {
	next := make([]stripLetter, len(soFar)+1)
	copy(next, soFar)
	next[len(soFar)] = sl
	return next
}

package scrabble

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"lukechampine.com/frand"
)

var ErrBagEmpty = errors.New("bag is empty")

type Bag struct {
	Tiles []Tile

	TileSet *TileSet
}

func NewBag(tileSet *TileSet) *Bag {
	b := &Bag{
		Tiles:   make([]Tile, 0, tileSet.TotalTiles()),
		TileSet: tileSet,
	}

	letters := maps.Keys(tileSet.Count)
	slices.Sort(letters)

	for _, letter := range letters {
		for i := 0; i < tileSet.Count[letter]; i++ {
			if letter == BlankLetter {
				b.Tiles = append(b.Tiles, *NewBlankTile())
				continue
			}
			b.Tiles = append(b.Tiles, *NewTile(letter, tileSet.Value(letter)))
		}
	}

	b.shuffle()

	return b
}

func (b *Bag) shuffle() {
	frand.Shuffle(b.TileCount(), func(i, j int) {
		b.Tiles[i], b.Tiles[j] = b.Tiles[j], b.Tiles[i]
	})
}

func (b *Bag) TileCount() int {
	return len(b.Tiles)
}

func (b *Bag) DrawTile() (*Tile, error) {
	tileCount := b.TileCount()

	if tileCount == 0 {
		return nil, ErrBagEmpty
	}

	i := frand.Intn(tileCount)
	tile := b.Tiles[i]

	b.RemoveTile(i)

	return &tile, nil
}

func (b *Bag) RemoveTile(i int) {
	// No need to keep order in bag
	end := b.TileCount() - 1
	b.Tiles[i] = b.Tiles[end]
	b.Tiles = b.Tiles[:end]
}

// ReturnTile puts a tile back in the bag. Blanks go back unbound.
func (b *Bag) ReturnTile(t *Tile) {
	tile := *t
	if tile.Blank {
		tile.Letter = BlankLetter
	}
	b.Tiles = append(b.Tiles, tile)
}

func (b *Bag) ExchangeAllowed() bool {
	return b.TileCount() >= RackSize
}

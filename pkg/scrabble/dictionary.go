package scrabble

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrOutOfOrder    = errors.New("word inserted out of order")
	ErrInvalidLetter = errors.New("word contains a letter outside the alphabet")
)

// Dictionary is a prefix tree over the letters of a TileSet. Words must be
// loaded in sorted order.
type Dictionary struct {
	root       *Node
	tileSet    *TileSet
	last       string
	crossCache crossCache
}

type Node struct {
	IsWord bool
	edges  [AlphabetSize]*Node
}

// crossCache stores the cross-check set for a given key.
// A key is like all*e where the available words are "allee" and "allie",
// so the set is {E, I}
type crossCache struct {
	mu    sync.Mutex
	cache map[string]CrossSet
}

func NewNode() *Node {
	return &Node{}
}

// Child returns the node reached from n through letter, or nil.
func (n *Node) Child(letter rune) *Node {
	i, ok := letterIndex(letter)
	if !ok {
		return nil
	}
	return n.edges[i]
}

// eachChild calls fn for every outgoing edge in alphabetical order.
func (n *Node) eachChild(fn func(letter rune, child *Node)) {
	for i, child := range n.edges {
		if child != nil {
			fn(indexLetter(i), child)
		}
	}
}

func NewDictionary(tileSet *TileSet) *Dictionary {
	if tileSet == nil {
		tileSet = DefaultTileSet
	}
	return &Dictionary{
		root:    NewNode(),
		tileSet: tileSet,
		crossCache: crossCache{
			cache: make(map[string]CrossSet),
		},
	}
}

func (d *Dictionary) Root() *Node {
	return d.root
}

func (d *Dictionary) TileSet() *TileSet {
	return d.tileSet
}

// Insert adds word to the dictionary. Words must arrive in sorted order;
// inserting a word that already validates is a no-op.
func (d *Dictionary) Insert(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidLetter)
	}
	for _, letter := range word {
		if !d.tileSet.Contains(letter) {
			return fmt.Errorf("%w: %q in %q", ErrInvalidLetter, letter, word)
		}
	}
	if word < d.last {
		return fmt.Errorf("%w: %q after %q", ErrOutOfOrder, word, d.last)
	}
	d.last = word
	if d.Validate(word) {
		return nil
	}

	curr := d.root
	for _, letter := range word {
		i, _ := letterIndex(letter)
		next := curr.edges[i]
		if next == nil {
			next = NewNode()
			curr.edges[i] = next
		}
		curr = next
	}
	curr.IsWord = true
	d.crossCache.reset()
	return nil
}

// MustInsert inserts words in order and panics on the first failure.
func (d *Dictionary) MustInsert(words ...string) *Dictionary {
	for _, w := range words {
		if err := d.Insert(w); err != nil {
			panic(err)
		}
	}
	return d
}

// Remove unmarks word. Dead branches are left in place.
func (d *Dictionary) Remove(word string) {
	n := d.lookup(word)
	if n == nil || !n.IsWord {
		return
	}
	n.IsWord = false
	d.crossCache.reset()
}

// lookup follows word from the root and returns the node it lands on.
func (d *Dictionary) lookup(word string) *Node {
	curr := d.root
	for _, letter := range word {
		curr = curr.Child(letter)
		if curr == nil {
			return nil
		}
	}
	return curr
}

// Validate reports whether word is in the dictionary.
func (d *Dictionary) Validate(word string) bool {
	n := d.lookup(word)
	return n != nil && n.IsWord
}

// Match returns all words in the dictionary that match a
// given pattern string, which can include '*' wildcards.
func (d *Dictionary) Match(pattern string) []string {
	results := make([]string, 0)
	if pattern == "" {
		return results
	}
	d.root.match([]rune(pattern), nil, &results)
	return results
}

// match follows pattern below n, branching on every edge at a wildcard.
func (n *Node) match(pattern, matched []rune, results *[]string) {
	if len(pattern) == 0 {
		if n.IsWord {
			*results = append(*results, string(matched))
		}
		return
	}
	if pattern[0] != BlankLetter {
		if child := n.Child(pattern[0]); child != nil {
			child.match(pattern[1:], append(matched, pattern[0]), results)
		}
		return
	}
	n.eachChild(func(letter rune, child *Node) {
		child.match(pattern[1:], append(matched, letter), results)
	})
}

// ListWords enumerates every word in sorted order.
func (d *Dictionary) ListWords() []string {
	var words []string
	d.root.walk(nil, func(word []rune) {
		words = append(words, string(word))
	})
	return words
}

// walk calls fn with every word below n, in alphabetical order.
func (n *Node) walk(prefix []rune, fn func(word []rune)) {
	if n.IsWord {
		fn(prefix)
	}
	n.eachChild(func(letter rune, child *Node) {
		child.walk(append(prefix, letter), fn)
	})
}

// CrossCheck returns the set of letters allowed in a square whose
// cross word is prev + letter + after.
func (d *Dictionary) CrossCheck(prev, after string) CrossSet {
	lenLeft := len([]rune(prev))
	key := prev + string(BlankLetter) + after
	fetchFunc := func(key string) CrossSet {
		// Collect the letters standing in for the wildcard
		var cs CrossSet
		for _, match := range d.Match(key) {
			cs.Set([]rune(match)[lenLeft])
		}
		return cs
	}

	return d.crossCache.lookup(key, fetchFunc)
}

func (cc *crossCache) lookup(key string, fetchFunc func(string) CrossSet) CrossSet {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cs, ok := cc.cache[key]; ok {
		return cs
	}
	cs := fetchFunc(key)
	cc.cache[key] = cs
	return cs
}

func (cc *crossCache) reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache = make(map[string]CrossSet)
}

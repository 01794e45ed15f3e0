package scrabble

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// LoadDictionary reads a word list, one word per line, and builds a
// dictionary over ts. Words are upper-cased and sorted before insertion;
// blank lines and lines starting with '#' are ignored, and words using
// letters outside ts are skipped.
func LoadDictionary(r io.Reader, ts *TileSet) (*Dictionary, error) {
	dict := NewDictionary(ts)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanLines)

	var words []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Word lists may carry definitions after the word
		if fields := strings.Fields(line); len(fields) > 0 {
			words = append(words, strings.ToUpper(fields[0]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	slices.Sort(words)
	skipped := 0
	for _, w := range slices.Compact(words) {
		if err := dict.Insert(w); err != nil {
			skipped++
			continue
		}
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("words with letters outside the tile set")
	}
	return dict, nil
}

func LoadDictionaryFile(path string, ts *TileSet) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dict, err := LoadDictionary(f, ts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("loaded dictionary")
	return dict, nil
}

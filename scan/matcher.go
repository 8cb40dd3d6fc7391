package scan

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
	"github.com/betterleaks/rgrep"
)

var (
	ErrEmptyPattern   = errors.New("pattern must not be empty")
	ErrInvalidPattern = errors.New("pattern is not valid UTF-8")
)

// Matcher finds the first occurrence of a fixed pattern in a line.
type Matcher struct {
	// pattern is already folded when ignoreCase is set
	pattern    string
	ignoreCase bool

	trie *ahocorasick.Trie
}

func NewMatcher(pattern string, ignoreCase bool) (*Matcher, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if !utf8.ValidString(pattern) {
		return nil, ErrInvalidPattern
	}
	if ignoreCase {
		pattern, _ = fold(pattern)
	}

	return &Matcher{
		pattern:    pattern,
		ignoreCase: ignoreCase,
		trie:       ahocorasick.NewTrieBuilder().AddStrings([]string{pattern}).Build(),
	}, nil
}

// Find returns the first occurrence of the pattern in text. When matching
// ignores case the search runs on the folded text, but the returned offsets
// always refer to text itself.
func (m *Matcher) Find(text string) (rgrep.Match, bool) {
	if !m.ignoreCase {
		start, ok := m.first(text)
		if !ok {
			return rgrep.Match{}, false
		}
		return rgrep.Match{Start: start, End: start + len(m.pattern)}, true
	}

	folded, offsets := fold(text)
	start, ok := m.first(folded)
	if !ok {
		return rgrep.Match{}, false
	}
	return rgrep.Match{
		Start: offsets[start],
		End:   offsets[start+len(m.pattern)],
	}, true
}

// first returns the byte offset of the leftmost occurrence. With a single
// pattern the trie reports matches in order of position.
func (m *Matcher) first(s string) (int, bool) {
	matches := m.trie.MatchString(s)
	if len(matches) == 0 {
		return 0, false
	}
	return int(matches[0].Pos()), true
}

// fold lowercases s rune by rune. Lowercasing can change the encoded length
// of a rune, so offsets maps every byte offset of the folded string (plus its
// length) to the offset of the corresponding rune in s.
func fold(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		before := b.Len()
		b.WriteRune(unicode.ToLower(r))
		for j := before; j < b.Len(); j++ {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(s))

	return b.String(), offsets
}

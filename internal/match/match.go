// Package match filters lines by a fuzzy or regular-expression pattern and
// reports which runes matched, so callers can map them to display cells.
package match

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

const (
	ModeFuzzy = "fuzzy"
	ModeRegex = "regex"
)

// Result is one matching item.
type Result struct {
	// Index is the position of the item in the input slice.
	Index int
	Str   string
	// Runes holds the rune indexes of the matched characters, ascending.
	Runes []int
	// Score ranks fuzzy matches; regex matches score zero.
	Score int
}

// Matcher finds the items matching pattern. Results are in item order and
// an empty pattern matches nothing.
type Matcher interface {
	Find(pattern string, items []string) ([]Result, error)
}

// New returns the matcher for mode.
func New(mode string) (Matcher, error) {
	switch mode {
	case ModeFuzzy, "":
		return Fuzzy{}, nil
	case ModeRegex:
		return Regex{}, nil
	default:
		return nil, fmt.Errorf("unknown match mode %q", mode)
	}
}

// Fuzzy matches with sahilm/fuzzy.
type Fuzzy struct{}

type source []string

func (s source) Len() int            { return len(s) }
func (s source) String(i int) string { return s[i] }

func (Fuzzy) Find(pattern string, items []string) ([]Result, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, nil
	}
	matches := fuzzy.FindFrom(pattern, source(items))
	out := make([]Result, 0, len(matches))
	for _, m := range matches {
		out = append(out, Result{
			Index: m.Index,
			Str:   m.Str,
			Runes: runeIndexes(m.Str, m.MatchedIndexes),
			Score: m.Score,
		})
	}
	sortByIndex(out)
	return out, nil
}

// Regex matches the leftmost-longest POSIX match on each item.
type Regex struct{}

func (Regex) Find(pattern string, items []string) ([]Result, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, nil
	}
	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	var out []Result
	for i, str := range items {
		loc := re.FindStringIndex(str)
		if loc == nil {
			continue
		}
		start := utf8.RuneCountInString(str[:loc[0]])
		n := utf8.RuneCountInString(str[loc[0]:loc[1]])
		runes := make([]int, n)
		for j := range n {
			runes[j] = start + j
		}
		out = append(out, Result{Index: i, Str: str, Runes: runes})
	}
	return out, nil
}

// FirstRune returns the first matched rune index, or -1.
func (r Result) FirstRune() int {
	if len(r.Runes) == 0 {
		return -1
	}
	return r.Runes[0]
}

// runeIndexes converts byte offsets into rune indexes of s.
func runeIndexes(s string, bytes []int) []int {
	if len(bytes) == 0 {
		return nil
	}
	pos := make(map[int]int, len(s))
	ri := 0
	for bi := range s {
		pos[bi] = ri
		ri++
	}
	out := make([]int, 0, len(bytes))
	for _, b := range bytes {
		if r, ok := pos[b]; ok {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}

func sortByIndex(rs []Result) {
	slices.SortStableFunc(rs, func(a, b Result) int { return a.Index - b.Index })
}

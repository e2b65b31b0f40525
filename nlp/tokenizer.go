// Package nlp turns raw lines of text into normalized words and
// boundary-aware character bigrams.
package nlp

import (
	"strings"
	"unicode"
)

// Characters stripped from the end of a line by Normalize. Leading
// occurrences stay in place.
const trailingJunk = "!? \n"

var circumflexes = map[rune]rune{
	'â': 'a',
	'ê': 'e',
	'î': 'i',
	'ô': 'o',
}

// Normalize turns a raw line into a word: it trims trailing punctuation and
// whitespace, lowercases every character, and folds the four circumflex
// vowels to their plain forms. Everything else passes through unchanged.
func Normalize(line string) string {
	word := strings.TrimRight(line, trailingJunk)
	var buffer strings.Builder
	buffer.Grow(len(word))
	for _, ch := range word {
		ch = unicode.ToLower(ch)
		if plain, ok := circumflexes[ch]; ok {
			ch = plain
		}
		buffer.WriteRune(ch)
	}
	return buffer.String()
}

// BigramsOf returns the set of bigrams in a word. A word of n characters
// yields at most n+1 bigrams: one anchored at Start, one at End, and one per
// adjacent character pair. Repeated bigrams collapse to a single membership.
// The empty word yields an empty set.
func BigramsOf(word string) map[Bigram]bool {
	bigrams := make(map[Bigram]bool)
	if word == "" {
		return bigrams
	}
	prev := Start
	for _, ch := range word {
		cur := Char(ch)
		bigrams[Bigram{Prev: prev, Cur: cur}] = true
		prev = cur
	}
	bigrams[Bigram{Prev: prev, Cur: End}] = true
	return bigrams
}

// HasMarkerLiteral reports whether word contains a literal '^' or '$'.
// Tokens keep such characters apart from the boundary markers, but
// diagnostics render markers with them, so callers reject this input
// instead of producing ambiguous output.
func HasMarkerLiteral(word string) bool {
	return strings.ContainsAny(word, "^$")
}

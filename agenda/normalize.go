package agenda

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// punctuation folded to ASCII before the tree is built
var foldedPunctuation = map[rune]rune{
	'‘': '\'',
	'’': '\'',
	'“': '"',
	'”': '"',
	'：': ':',
}

func isLayoutNoise(r rune) bool {
	switch r {
	case '\r', '\n', '\t', '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return false
}

func foldPunctuation(r rune) rune {
	if folded, ok := foldedPunctuation[r]; ok {
		return folded
	}
	return r
}

// Normalize canonicalizes quotes and the full-width colon, and strips line
// breaks, tabs and zero-width code points. It never fails.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	// transform chains keep state, so one is built per call
	t := transform.Chain(
		runes.Remove(runes.Predicate(isLayoutNoise)),
		runes.Map(foldPunctuation),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// Package assistant holds the offline answering core of the LiAn assistant:
// tokenization, knowledge-base scoring, the topic fallback and the engine
// that ties them together.
package assistant

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minWordLen is the shortest word kept by Tokenize. Shorter words are noise.
const minWordLen = 3

// Tokenize lowercases the message, blanks out punctuation and returns the
// unigrams followed by all adjacent bigrams and trigrams. Words of two runes
// or fewer are dropped before n-grams are built.
func Tokenize(message string) []string {
	ws := words(message)
	if len(ws) == 0 {
		return []string{}
	}

	tokens := make([]string, 0, 3*len(ws))
	tokens = append(tokens, ws...)
	for i := 0; i+1 < len(ws); i++ {
		tokens = append(tokens, ws[i]+" "+ws[i+1])
	}
	for i := 0; i+2 < len(ws); i++ {
		tokens = append(tokens, ws[i]+" "+ws[i+1]+" "+ws[i+2])
	}
	return tokens
}

// words returns the unigram part of Tokenize.
func words(message string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, strings.ToLower(strings.TrimSpace(message)))

	fields := strings.Fields(cleaned)
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minWordLen {
			out = append(out, f)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

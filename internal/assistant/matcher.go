package assistant

import (
	"strings"
	"unicode/utf8"
)

const (
	// ConfidenceThreshold is the minimum score a knowledge entry needs before
	// its response is returned.
	ConfidenceThreshold = 3

	phraseWeight = 5
	// keyword words must be longer than this to count on their own
	minScoringWordLen = 4
)

// genericWords never score on their own: crop names and filler words would
// otherwise inflate unrelated entries.
var genericWords = map[string]struct{}{
	"tomato": {}, "potato": {}, "rice": {}, "wheat": {}, "corn": {}, "maize": {}, "sugarcane": {},
	"banana": {}, "mango": {}, "coffee": {}, "apple": {}, "grape": {}, "pepper": {}, "soybean": {},
	"plant": {}, "crop": {}, "leaf": {}, "leaves": {}, "grow": {}, "growing": {}, "farm": {},
	"farmer": {}, "help": {}, "problem": {}, "issue": {}, "what": {}, "have": {}, "does": {},
	"will": {}, "that": {}, "this": {}, "with": {}, "from": {}, "they": {}, "them": {}, "their": {},
	"there": {}, "when": {}, "where": {}, "should": {}, "need": {}, "want": {}, "your": {},
	"mine": {}, "also": {}, "just": {}, "like": {},
}

// KnowledgeEntry is a curated answer together with the keyword phrases that
// select it.
type KnowledgeEntry struct {
	Keywords []string `yaml:"keywords" json:"keywords"`
	Response string   `yaml:"response" json:"response"`
}

type keywordPhrase struct {
	text  string
	words []string
}

type compiledEntry struct {
	entry   KnowledgeEntry
	phrases []keywordPhrase
}

// KnowledgeBase is an ordered, immutable set of entries. Order matters: on a
// score tie the earlier entry wins.
type KnowledgeBase struct {
	entries []compiledEntry
}

// NewKnowledgeBase copies the entries and precomputes their lowercase keyword
// phrases. Later changes to the input slice do not affect the result.
func NewKnowledgeBase(entries []KnowledgeEntry) *KnowledgeBase {
	kb := &KnowledgeBase{entries: make([]compiledEntry, 0, len(entries))}
	for _, e := range entries {
		ce := compiledEntry{
			entry: KnowledgeEntry{
				Keywords: append([]string(nil), e.Keywords...),
				Response: e.Response,
			},
			phrases: make([]keywordPhrase, 0, len(e.Keywords)),
		}
		for _, kw := range e.Keywords {
			lower := strings.ToLower(kw)
			ce.phrases = append(ce.phrases, keywordPhrase{text: lower, words: strings.Fields(lower)})
		}
		kb.entries = append(kb.entries, ce)
	}
	return kb
}

// Len reports the number of entries. A nil base is empty.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.entries)
}

// Entries returns a copy of the entries in base order.
func (kb *KnowledgeBase) Entries() []KnowledgeEntry {
	out := make([]KnowledgeEntry, 0, kb.Len())
	if kb == nil {
		return out
	}
	for _, ce := range kb.entries {
		out = append(out, KnowledgeEntry{
			Keywords: append([]string(nil), ce.entry.Keywords...),
			Response: ce.entry.Response,
		})
	}
	return out
}

// ScoredMatch is the best entry found for a message. Index is -1 when the base
// is empty or the message has no tokens.
type ScoredMatch struct {
	Entry KnowledgeEntry
	Index int
	Score int
}

// Confident reports whether the match clears ConfidenceThreshold.
func (m ScoredMatch) Confident() bool {
	return m.Index >= 0 && m.Score >= ConfidenceThreshold
}

// Match scores every entry against the message and returns the winner.
func Match(message string, kb *KnowledgeBase) ScoredMatch {
	best := ScoredMatch{Index: -1}
	if kb.Len() == 0 {
		return best
	}

	unigrams := words(message)
	if len(unigrams) == 0 {
		return best
	}
	tokenSet := make(map[string]struct{}, len(unigrams))
	for _, t := range Tokenize(message) {
		tokenSet[t] = struct{}{}
	}
	joined := strings.Join(unigrams, " ")

	for i := range kb.entries {
		score := scoreEntry(&kb.entries[i], tokenSet, joined)
		if best.Index < 0 || score > best.Score {
			best = ScoredMatch{Entry: kb.entries[i].entry, Index: i, Score: score}
		}
	}
	return best
}

// Classify returns the response of the best entry when it is confident.
func Classify(message string, kb *KnowledgeBase) (string, bool) {
	m := Match(message, kb)
	if !m.Confident() {
		return "", false
	}
	return m.Entry.Response, true
}

// scoreEntry adds the best multi-word phrase hit to the number of distinct
// non-generic keyword words present in the message.
func scoreEntry(ce *compiledEntry, tokenSet map[string]struct{}, joined string) int {
	bestPhrase := 0
	matched := make(map[string]struct{})

	for _, p := range ce.phrases {
		if len(p.words) >= 2 && strings.Contains(joined, p.text) {
			if s := phraseWeight * len(p.words); s > bestPhrase {
				bestPhrase = s
			}
		}
		for _, w := range p.words {
			if utf8.RuneCountInString(w) < minScoringWordLen {
				continue
			}
			if _, generic := genericWords[w]; generic {
				continue
			}
			if _, ok := tokenSet[w]; ok {
				matched[w] = struct{}{}
			}
		}
	}
	return bestPhrase + len(matched)
}

// Package text normalizes free text into the token stream used for term weighting.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinTokenLen is the shortest token kept after tokenization, in runes.
const MinTokenLen = 3

// stopwords are common English function words that carry no topical signal.
var stopwords = toSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "could", "did", "do", "does", "doing", "down", "during",
	"each", "few", "for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into",
	"is", "it", "its", "itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own", "same", "she", "should", "so", "some", "such",
	"than", "that", "the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while", "who", "whom",
	"why", "will", "with", "would", "you", "your", "yours", "yourself", "yourselves",
)

// Tokens lowercases s, splits it on every rune that is not a letter, digit or
// underscore, and drops stopwords and tokens shorter than MinTokenLen.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.FieldsFunc(strings.ToLower(s), isSeparator)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < MinTokenLen {
			continue
		}
		if IsStopword(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Normalize returns the surviving tokens of s joined by single spaces.
func Normalize(s string) string {
	return strings.Join(Tokens(s), " ")
}

// IsStopword reports whether tok (lowercase) is in the stopword set.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

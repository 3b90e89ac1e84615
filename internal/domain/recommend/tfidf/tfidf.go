// Package tfidf builds term-frequency / inverse-document-frequency vectors over a
// small in-memory corpus.
//
// A Corpus is a plain value built from its documents and never mutated afterwards,
// so callers that build one per request share nothing between requests.
//
// Weighting:
//
//	tf(t, d) = occurrences of t in d
//	idf(t)   = 1 + ln(N / (1 + df(t)))
//	w(t, d)  = tf(t, d) * idf(t)
package tfidf

import (
	"math"
	"sort"

	"github.com/kailas-cloud/learnrec/internal/domain/recommend/text"
)

// Vector maps a term to its weight in one document. Terms with zero occurrences
// are never present.
type Vector map[string]float64

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, term := range v.Terms() {
		w := v[term]
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Terms returns the terms of v in lexical order. Summing in this order keeps
// floating-point results identical across runs.
func (v Vector) Terms() []string {
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Corpus holds per-document term counts and corpus-wide document frequencies.
type Corpus struct {
	counts []map[string]int
	df     map[string]int
}

// NewCorpus analyzes docs in order. Document i of the corpus is docs[i].
func NewCorpus(docs []string) *Corpus {
	c := &Corpus{
		counts: make([]map[string]int, len(docs)),
		df:     make(map[string]int),
	}
	for i, doc := range docs {
		tf := termCounts(doc)
		c.counts[i] = tf
		for term := range tf {
			c.df[term]++
		}
	}
	return c
}

// BuildVectors returns the TF-IDF vector of every document, in input order.
func BuildVectors(docs []string) []Vector {
	c := NewCorpus(docs)
	out := make([]Vector, c.Len())
	for i := range out {
		out[i] = c.Vector(i)
	}
	return out
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.counts) }

// DocFreq returns how many documents contain term.
func (c *Corpus) DocFreq(term string) int { return c.df[term] }

// IDF returns the inverse document frequency of term. Unknown terms get the
// weight of a term seen in no document.
func (c *Corpus) IDF(term string) float64 {
	n := float64(len(c.counts))
	if n == 0 {
		return 0
	}
	return 1 + math.Log(n/float64(1+c.DocFreq(term)))
}

// Vector returns the weight vector of document i. Out-of-range i yields an empty vector.
func (c *Corpus) Vector(i int) Vector {
	if i < 0 || i >= len(c.counts) {
		return Vector{}
	}
	return c.weigh(c.counts[i])
}

// Vectorize weighs an arbitrary document against this corpus' IDF table without
// adding it to the corpus.
func (c *Corpus) Vectorize(doc string) Vector {
	return c.weigh(termCounts(doc))
}

func (c *Corpus) weigh(tf map[string]int) Vector {
	v := make(Vector, len(tf))
	for term, n := range tf {
		v[term] = float64(n) * c.IDF(term)
	}
	return v
}

func termCounts(doc string) map[string]int {
	tokens := text.Tokens(doc)
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// Package fuzzy provides an in-memory fuzzy search index over the document
// catalog. Each field is matched with the Bitap algorithm, which tolerates
// typos, and per-field scores are combined with field weights so that title
// hits outrank incidental path hits.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/devhub"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold favors typo tolerance over precision.
// 0 accepts only exact substrings; 1 accepts anything.
const DefaultThreshold = 0.3

// exactScore is the score of a substring match with no errors. It is kept
// above zero so that a whole-field equality still ranks first.
const exactScore = 0.001

// epsilon replaces a zero field score when combining weights.
const epsilon = 2.220446049250313e-16

// Ensure Index implements devhub.Searcher at compile time.
var _ devhub.Searcher = (*Index)(nil)

// Weights are the relative importance of each searchable field.
// They are normalized to sum to 1.
type Weights struct {
	Title    float64
	Content  float64
	Category float64
	Path     float64
}

// DefaultWeights returns the default field weights.
func DefaultWeights() Weights {
	return Weights{Title: 0.5, Content: 0.3, Category: 0.15, Path: 0.05}
}

const numFields = 4

func (w Weights) normalized() [numFields]float64 {
	v := [numFields]float64{w.Title, w.Content, w.Category, w.Path}
	var sum float64
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
		sum += v[i]
	}
	if sum == 0 {
		return DefaultWeights().normalized()
	}
	for i := range v {
		v[i] /= sum
	}
	return v
}

// Index is a fuzzy search index over a fixed list of items.
// The normalized field table is built on the first query and only read
// afterwards, so an Index is safe for concurrent use.
type Index struct {
	items     []devhub.SearchItem
	threshold float64
	weights   [numFields]float64
	minMatch  int

	once    sync.Once
	records []record
}

type record struct {
	fields [numFields]field
}

type field struct {
	text []rune
	norm float64 // 1/sqrt(token count)
}

// Option configures an Index.
type Option func(*Index)

// WithThreshold sets the match strictness, clamped to [0, 1].
func WithThreshold(t float64) Option {
	return func(ix *Index) {
		ix.threshold = math.Max(0, math.Min(1, t))
	}
}

// WithWeights sets the field weights.
func WithWeights(w Weights) Option {
	return func(ix *Index) {
		ix.weights = w.normalized()
	}
}

// WithMinMatchLength sets the shortest query, and the shortest query token,
// that is matched. Defaults to devhub.MinQueryLength.
func WithMinMatchLength(n int) Option {
	return func(ix *Index) {
		if n >= 1 {
			ix.minMatch = n
		}
	}
}

// NewIndex creates an Index over items. The items are copied.
func NewIndex(items []devhub.SearchItem, opts ...Option) *Index {
	ix := &Index{
		items:     append([]devhub.SearchItem(nil), items...),
		threshold: DefaultThreshold,
		weights:   DefaultWeights().normalized(),
		minMatch:  devhub.MinQueryLength,
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	return len(ix.items)
}

func (ix *Index) build() {
	ix.records = make([]record, len(ix.items))
	for i, item := range ix.items {
		values := [numFields]string{item.Title, item.Content, item.Category, item.Path}
		for f, v := range values {
			ix.records[i].fields[f] = newField(v)
		}
	}
}

func newField(value string) field {
	tokens := len(strings.Fields(value))
	if tokens == 0 {
		return field{}
	}
	n := 1 / math.Sqrt(float64(tokens))
	return field{
		text: []rune(normalize(value)),
		norm: math.Round(n*1000) / 1000,
	}
}

// query is a compiled search query.
type query struct {
	text   []rune
	whole  []pattern
	tokens [][]pattern
}

func (ix *Index) compileQuery(q string) query {
	text := []rune(normalize(q))
	cq := query{text: text, whole: compileChunks(text)}

	words := strings.Fields(string(text))
	if len(words) > 1 {
		for _, w := range words {
			if utf8.RuneCountInString(w) >= ix.minMatch {
				cq.tokens = append(cq.tokens, compileChunks([]rune(w)))
			}
		}
	}
	return cq
}

type scored struct {
	pos   int
	score float64
}

// Search returns at most limit items ranked by relevance to q, best first.
// Equal scores keep catalog order.
func (ix *Index) Search(q string, limit int) []devhub.SearchItem {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < ix.minMatch {
		return []devhub.SearchItem{}
	}
	if limit <= 0 {
		limit = devhub.DefaultSearchLimit
	}

	ix.once.Do(ix.build)

	cq := ix.compileQuery(q)
	var hits []scored
	for i := range ix.records {
		if s, ok := ix.scoreRecord(cq, &ix.records[i]); ok {
			hits = append(hits, scored{pos: i, score: s})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score < hits[b].score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	results := make([]devhub.SearchItem, len(hits))
	for i, h := range hits {
		results[i] = ix.items[h.pos]
	}
	return results
}

// scoreRecord combines field scores multiplicatively: each matching field
// contributes score^(weight*norm). Lower is better. Fields that do not
// match are left out.
func (ix *Index) scoreRecord(cq query, rec *record) (float64, bool) {
	total := 1.0
	matched := false
	for f := 0; f < numFields; f++ {
		w := ix.weights[f]
		fv := rec.fields[f]
		if w == 0 || len(fv.text) == 0 {
			continue
		}
		s, ok := ix.scoreField(cq, fv.text)
		if !ok {
			continue
		}
		matched = true
		if s == 0 {
			s = epsilon
		}
		total *= math.Pow(s, w*fv.norm)
	}
	return total, matched
}

// scoreField returns the better of the whole-query score and, for
// multi-word queries, the mean score of the individual words. Every word
// must match for the word score to count.
func (ix *Index) scoreField(cq query, text []rune) (float64, bool) {
	if equalRunes(cq.text, text) {
		return 0, true
	}

	best, ok := ix.scoreChunks(cq.whole, text)
	if len(cq.tokens) == 0 {
		return best, ok
	}

	var sum float64
	for _, tok := range cq.tokens {
		s, tokOK := ix.scoreChunks(tok, text)
		if !tokOK {
			return best, ok
		}
		sum += s
	}
	mean := sum / float64(len(cq.tokens))
	if !ok || mean < best {
		return mean, true
	}
	return best, true
}

// scoreChunks scores a pattern split into chunks. The score is the mean of
// the chunk scores; unmatched chunks score 1. A pattern matches if any
// chunk does.
func (ix *Index) scoreChunks(chunks []pattern, text []rune) (float64, bool) {
	if len(chunks) == 0 {
		return 0, false
	}
	var sum float64
	matched := false
	for _, p := range chunks {
		m := len(p.runes)
		maxErrors := int(math.Floor(ix.threshold*float64(m) + 1e-9))
		errs, ok := p.minErrors(text, maxErrors)
		if !ok {
			sum++
			continue
		}
		matched = true
		sum += math.Max(exactScore, float64(errs)/float64(m))
	}
	return sum / float64(len(chunks)), matched
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// normalize case-folds s and strips combining marks so that "Élan" and
// "elan" compare equal.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Package spell corrects typing errors against the domain vocabulary using
// Damerau–Levenshtein edit distance, and offers a separate weighted
// distance for typo-likelihood queries and suggestion lists.
package spell

import (
	"strings"
	"unicode"

	"github.com/millerdave152-droid/street-legacy-sub014/internal/cache"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

// DefaultMaxDistance is the edit-distance threshold used by Correct.
const DefaultMaxDistance = 2

const defaultMemoSize = 512

// Correction records a single replaced token.
type Correction struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

// Result is the outcome of one Correct call.
type Result struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections,omitempty"`
	WasModified bool         `json:"wasModified"`
}

// Corrector replaces unknown tokens with their nearest vocabulary word.
type Corrector struct {
	store       *vocab.Store
	maxDistance int
	memo        *cache.Cache[string, memoEntry]
}

type memoEntry struct {
	to       string
	distance int
	replaced bool
}

// Option adjusts a Corrector.
type Option func(*Corrector)

// WithMaxDistance overrides the default edit-distance threshold.
func WithMaxDistance(d int) Option {
	return func(c *Corrector) {
		if d > 0 {
			c.maxDistance = d
		}
	}
}

// WithMemoSize overrides the per-token memo cache capacity.
func WithMemoSize(n int) Option {
	return func(c *Corrector) {
		c.memo = cache.New[string, memoEntry](n)
	}
}

// New creates a Corrector backed by the given store's vocabulary.
func New(store *vocab.Store, opts ...Option) *Corrector {
	c := &Corrector{
		store:       store,
		maxDistance: DefaultMaxDistance,
		memo:        cache.New[string, memoEntry](defaultMemoSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Correct replaces every word token within maxDistance of a vocabulary
// word. Punctuation and whitespace pass through unchanged, as do exact
// vocabulary members, digits and single-character tokens.
func (c *Corrector) Correct(text string) Result {
	res := Result{Original: text, Corrected: text}
	if strings.TrimSpace(text) == "" {
		res.Corrected = text
		return res
	}

	var out strings.Builder
	for _, tok := range tokenize(text) {
		if !tok.word {
			out.WriteString(tok.text)
			continue
		}
		to, dist, replaced := c.correctToken(tok.text)
		if replaced {
			res.Corrections = append(res.Corrections, Correction{
				From:     tok.text,
				To:       to,
				Distance: dist,
			})
		}
		out.WriteString(to)
	}

	res.Corrected = out.String()
	res.WasModified = len(res.Corrections) > 0
	return res
}

// correctToken finds the nearest vocabulary word for a single token.
// Results are memoized; ties break by vocabulary iteration order and a
// distance-1 match short-circuits the search since nothing closer exists
// for a non-member token.
func (c *Corrector) correctToken(token string) (string, int, bool) {
	if len(token) < 2 || isNumeric(token) || c.store.IsWord(token) {
		return token, 0, false
	}

	if hit, ok := c.memo.Get(token); ok {
		return hit.to, hit.distance, hit.replaced
	}

	best := ""
	bestDist := c.maxDistance + 1
	for _, w := range c.store.Words() {
		if diff := len(w) - len(token); diff > c.maxDistance || -diff > c.maxDistance {
			continue
		}
		d := Distance(token, w)
		if d < bestDist {
			best, bestDist = w, d
			if d == 1 {
				break
			}
		}
	}

	entry := memoEntry{to: token}
	if bestDist <= c.maxDistance {
		entry = memoEntry{to: best, distance: bestDist, replaced: true}
	}
	c.memo.Put(token, entry)
	return entry.to, entry.distance, entry.replaced
}

// CorrectWithin behaves like Correct with a one-off distance threshold.
// Calls with a threshold other than the corrector's own bypass the memo.
func (c *Corrector) CorrectWithin(text string, maxDistance int) Result {
	if maxDistance == c.maxDistance || maxDistance <= 0 {
		return c.Correct(text)
	}
	tmp := &Corrector{
		store:       c.store,
		maxDistance: maxDistance,
		memo:        cache.New[string, memoEntry](1),
	}
	return tmp.Correct(text)
}

// ResetMemo clears the per-token memo cache.
func (c *Corrector) ResetMemo() {
	c.memo.Clear()
}

type token struct {
	text string
	word bool
}

// tokenize splits text into word tokens and pass-through runs of
// whitespace or punctuation. Apostrophes and hyphens stay inside words so
// contractions and terms like "po-po" survive as units.
func tokenize(text string) []token {
	var tokens []token
	var buf strings.Builder
	inWord := false

	flush := func(word bool) {
		if buf.Len() > 0 {
			tokens = append(tokens, token{text: buf.String(), word: word})
			buf.Reset()
		}
	}

	for _, r := range text {
		isWordRune := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
		if isWordRune != inWord {
			flush(inWord)
			inWord = isWordRune
		}
		buf.WriteRune(r)
	}
	flush(inWord)
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

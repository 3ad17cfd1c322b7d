// Package normalize cleans raw player input and rewrites slang,
// abbreviations, contractions and multi-word idioms to canonical forms.
// Normalization is total: any string in, a well-formed result out.
package normalize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

// ChangeType identifies which table produced a substitution.
type ChangeType string

// Substitution types, in the order the passes run.
const (
	ChangePhrase       ChangeType = "phrase"
	ChangeContraction  ChangeType = "contraction"
	ChangeAbbreviation ChangeType = "abbreviation"
	ChangeSlang        ChangeType = "slang"
)

// Change records a single substitution.
type Change struct {
	From string     `json:"from"`
	To   string     `json:"to"`
	Type ChangeType `json:"type"`
}

// Result is the outcome of one Normalize call.
type Result struct {
	Original    string   `json:"original"`
	Normalized  string   `json:"normalized"`
	Changes     []Change `json:"changes,omitempty"`
	WasModified bool     `json:"wasModified"`
}

// Normalizer rewrites text using the tables in a vocab.Store.
type Normalizer struct {
	store *vocab.Store

	// Compiled word-boundary patterns per idiom phrase. Idioms can be
	// added at runtime, so this is a cache rather than a fixed table.
	muPatterns sync.Mutex
	patterns   map[string]*regexp.Regexp
}

// RE2 has no backreferences, so repeated runs are spelled out per
// character and collapsed to their first byte.
var (
	repeatedPunct = regexp.MustCompile(`!!+|\?\?+|\.\.+`)
	quoteGlyphs   = strings.NewReplacer(
		"‘", "'", "’", "'", "‛", "'", "ʼ", "'",
		"“", `"`, "”", `"`,
	)
)

// New creates a Normalizer backed by the given store.
func New(store *vocab.Store) *Normalizer {
	return &Normalizer{
		store:    store,
		patterns: make(map[string]*regexp.Regexp),
	}
}

// Normalize cleans text and applies the idiom pass followed by the
// per-token pass. It never fails; empty or whitespace-only input yields an
// empty normalized string.
func (n *Normalizer) Normalize(text string) Result {
	res := Result{Original: text}

	cleaned := n.clean(text)
	if cleaned == "" {
		return res
	}

	withIdioms := n.expandIdioms(cleaned, &res.Changes)
	rewritten := n.rewriteTokens(withIdioms, &res.Changes)

	res.Normalized = strings.Join(strings.Fields(rewritten), " ")
	res.WasModified = len(res.Changes) > 0 || res.Normalized != text
	return res
}

// clean collapses whitespace, unifies quote glyphs, collapses repeated
// terminal punctuation and lowercases.
func (n *Normalizer) clean(text string) string {
	text = quoteGlyphs.Replace(text)
	text = repeatedPunct.ReplaceAllStringFunc(text, func(run string) string {
		return run[:1]
	})
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}

// expandIdioms replaces known idioms longest-first using whole-word
// boundaries, so longer idioms are not shadowed by shorter ones sharing a
// prefix.
func (n *Normalizer) expandIdioms(text string, changes *[]Change) string {
	for _, idiom := range n.store.Idioms() {
		re := n.pattern(idiom.Phrase)
		matches := re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		text = re.ReplaceAllString(text, idiom.Canonical)
		for range matches {
			*changes = append(*changes, Change{
				From: idiom.Phrase,
				To:   idiom.Canonical,
				Type: ChangePhrase,
			})
		}
	}
	return text
}

func (n *Normalizer) pattern(phrase string) *regexp.Regexp {
	n.muPatterns.Lock()
	defer n.muPatterns.Unlock()
	if re, ok := n.patterns[phrase]; ok {
		return re
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	n.patterns[phrase] = re
	return re
}

// rewriteTokens checks every whitespace-delimited token against the
// contraction, abbreviation and slang tables, in that priority order, and
// replaces on first match. Surrounding punctuation is kept in place.
func (n *Normalizer) rewriteTokens(text string, changes *[]Change) string {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		core, prefix, suffix := splitPunct(token)
		if core == "" {
			continue
		}

		if to, ok := n.store.ContractionFor(core); ok {
			tokens[i] = prefix + to + suffix
			*changes = append(*changes, Change{From: core, To: to, Type: ChangeContraction})
			continue
		}
		if to, ok := n.store.AbbreviationFor(core); ok {
			tokens[i] = prefix + to + suffix
			*changes = append(*changes, Change{From: core, To: to, Type: ChangeAbbreviation})
			continue
		}
		if to, ok := n.store.SlangFor(core); ok {
			tokens[i] = prefix + to + suffix
			*changes = append(*changes, Change{From: core, To: to, Type: ChangeSlang})
		}
	}
	return strings.Join(tokens, " ")
}

// splitPunct splits a token into leading punctuation, the core word and
// trailing punctuation, so table lookups see the bare word.
func splitPunct(token string) (core, prefix, suffix string) {
	start := 0
	for start < len(token) && isPunct(token[start]) {
		start++
	}
	end := len(token)
	for end > start && isPunct(token[end-1]) {
		end--
	}
	return token[start:end], token[:start], token[end:]
}

func isPunct(b byte) bool {
	switch b {
	case '.', ',', '!', '?', ';', ':', '"', '(', ')':
		return true
	}
	return false
}

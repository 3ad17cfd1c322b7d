package spell

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Suggestion is a candidate replacement for a possibly mistyped token.
type Suggestion struct {
	Word   string  `json:"word"`
	Score  float64 `json:"score"`
	Source string  `json:"source"` // "distance" or "fuzzy"
}

// TypoLikelihood returns the nearest vocabulary word under the weighted
// distance along with that distance. The weighted variant discounts
// keyboard-adjacent and phonetic substitutions, so it flags likely typos
// that the strict distance would rank further away. It never replaces
// anything; it only answers "how plausible is it that this token is a typo
// of a known word".
func (c *Corrector) TypoLikelihood(token string) (string, float64, bool) {
	if token == "" {
		return "", 0, false
	}
	if c.store.IsWord(token) {
		return token, 0, true
	}

	best := ""
	bestDist := -1.0
	for _, w := range c.store.Words() {
		if diff := len(w) - len(token); diff > c.maxDistance+1 || -diff > c.maxDistance+1 {
			continue
		}
		d := WeightedDistance(token, w)
		if bestDist < 0 || d < bestDist {
			best, bestDist = w, d
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestDist, true
}

// Suggest returns up to limit replacement candidates for a token, merging
// weighted-distance neighbors with subsequence matches from fuzzy search.
// Distance candidates score 1/(1+d); fuzzy candidates are folded in with a
// flat discount so close edits rank above loose subsequence hits.
func (c *Corrector) Suggest(token string, limit int) []Suggestion {
	if token == "" || limit <= 0 {
		return nil
	}

	words := c.store.Words()
	seen := make(map[string]bool)
	var out []Suggestion

	for _, w := range words {
		if diff := len(w) - len(token); diff > c.maxDistance+1 || -diff > c.maxDistance+1 {
			continue
		}
		d := WeightedDistance(token, w)
		if d <= float64(c.maxDistance) {
			seen[w] = true
			out = append(out, Suggestion{
				Word:   w,
				Score:  1 / (1 + d),
				Source: "distance",
			})
		}
	}

	for rank, m := range fuzzy.Find(token, words) {
		if seen[m.Str] {
			continue
		}
		seen[m.Str] = true
		out = append(out, Suggestion{
			Word:   m.Str,
			Score:  0.3 / float64(rank+1),
			Source: "fuzzy",
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

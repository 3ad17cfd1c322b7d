package semantic

import (
	"math"
	"sort"
	"strings"
)

// Cosine computes cosine similarity between two vectors. Returns a value
// between -1 and 1, where 1 means identical direction; mismatched lengths
// and zero vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := 0; i < len(a); i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0.0 || normB == 0.0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// normalizeVec scales v to unit length in place and returns whether it was
// non-zero.
func normalizeVec(v []float32) bool {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return false
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
	return true
}

// isZero reports whether every component is zero.
func isZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// meanVec returns the unit-normalized mean of the given vectors, or a zero
// vector when none contribute.
func meanVec(vecs [][]float32, dim int) []float32 {
	out := make([]float32, dim)
	if len(vecs) == 0 {
		return out
	}
	for _, v := range vecs {
		for i, x := range v {
			out[i] += x
		}
	}
	n := float32(len(vecs))
	for i := range out {
		out[i] /= n
	}
	normalizeVec(out)
	return out
}

// tokenizePhrase splits corrected text into lowercase word tokens,
// trimming surrounding punctuation and discarding single-character tokens,
// which carry no concept signal.
func tokenizePhrase(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"()")
		if len(f) < 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// concept pairs a cluster name with the weight a phrase put on it.
type concept struct {
	name   string
	weight float32
}

func sortConcepts(cs []concept) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].weight != cs[j].weight {
			return cs[i].weight > cs[j].weight
		}
		return cs[i].name < cs[j].name
	})
}

// Package semantic classifies phrases in a hand-built concept vector
// space. Every word cluster in the vocabulary is one dimension; a phrase's
// vector is the importance-weighted sum of its words' cluster memberships,
// unit-normalized. Each intent gets a centroid computed from its exemplar
// phrases, and classification blends centroid similarity with the best
// single-exemplar similarity.
package semantic

import (
	"sort"
	"sync"

	"github.com/millerdave152-droid/street-legacy-sub014/internal/cache"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/normalize"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/spell"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

const (
	// Blend weights: fitting the intent's general theme versus closely
	// matching one known phrasing.
	centroidWeight = 0.6
	exemplarWeight = 0.4

	// Confidence weights: absolute strength versus separation from the
	// runner-up.
	strengthWeight   = 0.7
	separationWeight = 0.3

	topMatchCount = 3

	defaultVectorMemoSize = 512
)

// Match is one ranked candidate intent.
type Match struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

// Result is the outcome of one semantic classification.
type Result struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Similarity float64 `json:"similarity"`
	TopMatches []Match `json:"topMatches,omitempty"`
}

// Engine vectorizes phrases and classifies them against intent centroids.
type Engine struct {
	store *vocab.Store
	norm  *normalize.Normalizer
	corr  *spell.Corrector

	// The cluster set fixes the dimensionality for the engine's lifetime.
	dims     []string
	dimIndex map[string]int

	mu           sync.RWMutex
	centroids    map[string][]float32
	exemplarVecs map[string][][]float32
	rev          uint64

	vecMemo *cache.Cache[string, []float32]
}

// New builds an Engine over the store's clusters and computes one centroid
// per intent from its exemplars.
func New(store *vocab.Store, norm *normalize.Normalizer, corr *spell.Corrector) *Engine {
	dims := store.ClusterNames()
	dimIndex := make(map[string]int, len(dims))
	for i, name := range dims {
		dimIndex[name] = i
	}
	e := &Engine{
		store:    store,
		norm:     norm,
		corr:     corr,
		dims:     dims,
		dimIndex: dimIndex,
		vecMemo:  cache.New[string, []float32](defaultVectorMemoSize),
	}
	e.rebuild()
	return e
}

// Dimensions returns the size of the concept space.
func (e *Engine) Dimensions() int {
	return len(e.dims)
}

// rebuild recomputes exemplar vectors and centroids from the store. Memoized
// phrase vectors are dropped first; any mutation can shift the space they
// were computed in.
func (e *Engine) rebuild() {
	e.vecMemo.Clear()

	centroids := make(map[string][]float32)
	exemplarVecs := make(map[string][][]float32)
	rev := e.store.Revision()

	for _, in := range e.store.Intents() {
		if len(in.Exemplars) == 0 {
			continue
		}
		vecs := make([][]float32, 0, len(in.Exemplars))
		for _, ex := range in.Exemplars {
			vecs = append(vecs, e.PhraseVector(ex))
		}
		exemplarVecs[in.ID] = vecs
		centroids[in.ID] = meanVec(vecs, len(e.dims))
	}

	e.mu.Lock()
	e.centroids = centroids
	e.exemplarVecs = exemplarVecs
	e.rev = rev
	e.mu.Unlock()
}

// refresh rebuilds centroids only when the store's revision moved.
func (e *Engine) refresh() {
	e.mu.RLock()
	stale := e.rev != e.store.Revision()
	e.mu.RUnlock()
	if stale {
		e.rebuild()
	}
}

// PhraseVector converts a phrase into its unit-length concept vector. The
// phrase is normalized and typo-corrected first, single-character tokens
// are discarded, and each remaining token adds its importance weight to
// every cluster dimension it belongs to. Vectors are memoized by exact
// phrase text; unknown phrases yield the zero vector.
func (e *Engine) PhraseVector(phrase string) []float32 {
	if v, ok := e.vecMemo.Get(phrase); ok {
		return v
	}

	normalized := e.norm.Normalize(phrase).Normalized
	corrected := e.corr.Correct(normalized).Corrected

	vec := make([]float32, len(e.dims))
	for _, tok := range tokenizePhrase(corrected) {
		clusters := e.store.ClustersForWord(tok)
		if len(clusters) == 0 {
			continue
		}
		w := float32(e.store.Importance(tok))
		for _, cl := range clusters {
			if i, ok := e.dimIndex[cl]; ok {
				vec[i] += w
			}
		}
	}
	normalizeVec(vec)

	e.vecMemo.Put(phrase, vec)
	return vec
}

// Rank scores every intent against the phrase, strongest first. A phrase
// with no recognizable words ranks nothing.
func (e *Engine) Rank(phrase string) []Match {
	e.refresh()

	v := e.PhraseVector(phrase)
	if isZero(v) {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var matches []Match
	for _, in := range e.store.Intents() {
		centroid, ok := e.centroids[in.ID]
		if !ok {
			continue
		}
		centroidSim := Cosine(v, centroid)

		bestExemplar := 0.0
		for _, ex := range e.exemplarVecs[in.ID] {
			if sim := Cosine(v, ex); sim > bestExemplar {
				bestExemplar = sim
			}
		}

		matches = append(matches, Match{
			Intent: in.ID,
			Score:  centroidWeight*centroidSim + exemplarWeight*bestExemplar,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Classify ranks every intent against the phrase and returns the best
// blend of centroid and exemplar similarity. A phrase with no recognizable
// words returns the unknown intent with confidence 0.
func (e *Engine) Classify(phrase string) Result {
	matches := e.Rank(phrase)
	if len(matches) > topMatchCount {
		matches = matches[:topMatchCount]
	}

	if len(matches) == 0 || matches[0].Score <= 0 {
		return Result{Intent: vocab.UnknownIntent}
	}

	top := matches[0].Score
	second := 0.0
	if len(matches) > 1 {
		second = matches[1].Score
	}
	confidence := strengthWeight*top + separationWeight*((top-second)/top)

	return Result{
		Intent:     matches[0].Intent,
		Confidence: clamp01(confidence),
		Similarity: top,
		TopMatches: matches,
	}
}

// PhraseSimilarity returns the cosine similarity between two phrases'
// concept vectors.
func (e *Engine) PhraseSimilarity(a, b string) float64 {
	return Cosine(e.PhraseVector(a), e.PhraseVector(b))
}

// ExtractConcepts returns the cluster names a phrase touches, strongest
// first.
func (e *Engine) ExtractConcepts(phrase string) []string {
	v := e.PhraseVector(phrase)
	var cs []concept
	for i, w := range v {
		if w > 0 {
			cs = append(cs, concept{name: e.dims[i], weight: w})
		}
	}
	sortConcepts(cs)
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.name
	}
	return names
}

// ResetMemo clears the phrase-vector memo cache.
func (e *Engine) ResetMemo() {
	e.vecMemo.Clear()
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

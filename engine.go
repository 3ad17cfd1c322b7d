package intent

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/millerdave152-droid/street-legacy-sub014/internal/cache"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/normalize"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/pattern"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/semantic"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/spell"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

// Config holds the combiner's thresholds and cache sizing.
type Config struct {
	// HighConfidence short-circuits to the pattern matcher alone.
	HighConfidence float64 `json:"highConfidence"`

	// PatternThreshold and SemanticThreshold gate each classifier's vote
	// in the combine step.
	PatternThreshold  float64 `json:"patternThreshold"`
	SemanticThreshold float64 `json:"semanticThreshold"`

	// FallbackSimilarity is the raw semantic similarity above which a
	// below-threshold semantic answer is still used as a last resort.
	FallbackSimilarity float64 `json:"fallbackSimilarity"`

	// CacheSize bounds the classification cache (oldest-first eviction).
	CacheSize int `json:"cacheSize"`
}

// DefaultConfig returns the combiner's tuned defaults.
func DefaultConfig() Config {
	return Config{
		HighConfidence:     0.7,
		PatternThreshold:   0.4,
		SemanticThreshold:  0.25,
		FallbackSimilarity: 0.15,
		CacheSize:          256,
	}
}

// Option adjusts an Engine at construction.
type Option func(*Engine)

// WithConfig replaces the default combiner configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithPatternRules replaces the hand-authored trigger rules.
func WithPatternRules(rules []pattern.Rule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// Engine is the hybrid intent classifier: normalization, typo correction,
// pattern matching and semantic matching behind one entry point. Construct
// it once at application start and share the handle; there is no hidden
// module-level instance.
type Engine struct {
	store *vocab.Store
	norm  *normalize.Normalizer
	corr  *spell.Corrector
	sem   *semantic.Engine
	pat   *pattern.Matcher

	cfg   Config
	log   *zap.Logger
	rules []pattern.Rule

	results *cache.Cache[string, cachedResult]
}

// New creates an Engine over a vocabulary store. Pass vocab.Default() for
// the built-in catalog.
func New(store *vocab.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("intent: store cannot be nil")
	}

	e := &Engine{
		store: store,
		cfg:   DefaultConfig(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.CacheSize < 1 {
		e.cfg.CacheSize = DefaultConfig().CacheSize
	}

	e.norm = normalize.New(store)
	e.corr = spell.New(store)
	e.sem = semantic.New(store, e.norm, e.corr)
	patOpts := []pattern.Option{}
	if e.rules != nil {
		patOpts = append(patOpts, pattern.WithRules(e.rules))
	}
	e.pat = pattern.New(store, patOpts...)
	e.results = cache.New[string, cachedResult](e.cfg.CacheSize)

	return e, nil
}

// Classify maps raw player input to an intent. It never fails: malformed
// or empty input degrades to the unknown intent with confidence 0.
func (e *Engine) Classify(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return e.unknownResult(raw)
	}

	key := strings.ToLower(trimmed)
	if hit, ok := e.results.Get(key); ok {
		return Result{
			Intent:       hit.intent,
			Confidence:   hit.confidence,
			FriendlyName: hit.name,
			Source:       hit.source,
			FromCache:    true,
			Preprocessed: Preprocessed{Original: raw},
		}
	}

	normRes := e.norm.Normalize(trimmed)
	corrRes := e.corr.Correct(normRes.Normalized)
	text := corrRes.Corrected

	pre := Preprocessed{
		Original:    raw,
		Normalized:  text,
		WasModified: normRes.WasModified || corrRes.WasModified,
		Changes:     normRes.Changes,
		Corrections: corrRes.Corrections,
	}

	patRes := e.safePattern(text)

	// Entities come from the raw input so proper-noun casing survives, with
	// the corrected text for vocabulary terms.
	entities := e.pat.ExtractEntities(trimmed, text)

	// Fast path: a confident pattern match skips semantic entirely.
	if patRes.Confidence >= e.cfg.HighConfidence {
		res := Result{
			Intent:       patRes.Intent,
			Confidence:   patRes.Confidence,
			FriendlyName: e.store.FriendlyName(patRes.Intent),
			Source:       SourcePatternHigh,
			Preprocessed: pre,
			TopMatches: []TopMatch{{
				Intent: patRes.Intent,
				Name:   e.store.FriendlyName(patRes.Intent),
				Score:  patRes.Confidence,
			}},
			Entities: entities,
		}
		e.remember(key, res)
		return res
	}

	semRes := e.sem.Classify(text)
	res := e.combine(patRes, semRes)
	res.Preprocessed = pre
	res.Entities = entities
	res.TopMatches = e.topMatches(semRes, patRes)
	res.FriendlyName = e.store.FriendlyName(res.Intent)

	e.log.Debug("classified",
		zap.String("input", trimmed),
		zap.String("intent", res.Intent),
		zap.Float64("confidence", res.Confidence),
		zap.String("source", string(res.Source)),
	)

	e.remember(key, res)
	return res
}

// combine merges the two classifiers' votes by the threshold policy.
func (e *Engine) combine(pat pattern.Result, sem semantic.Result) Result {
	patOK := pat.Confidence >= e.cfg.PatternThreshold && pat.Intent != vocab.UnknownIntent
	semOK := sem.Confidence >= e.cfg.SemanticThreshold && sem.Intent != vocab.UnknownIntent

	switch {
	case patOK && semOK && pat.Intent == sem.Intent:
		conf := (pat.Confidence + sem.Confidence) / 1.5
		if conf > 1 {
			conf = 1
		}
		return Result{Intent: pat.Intent, Confidence: conf, Source: SourceCombinedAgreement}

	case patOK && semOK:
		// Disagreement: the stronger vote wins, penalized for the split.
		if pat.Confidence >= sem.Confidence {
			return Result{Intent: pat.Intent, Confidence: pat.Confidence * 0.9, Source: SourcePatternOverSemantic}
		}
		return Result{Intent: sem.Intent, Confidence: sem.Confidence * 0.9, Source: SourceSemanticOverPattern}

	case patOK:
		return Result{Intent: pat.Intent, Confidence: pat.Confidence, Source: SourcePatternOnly}

	case semOK:
		return Result{Intent: sem.Intent, Confidence: sem.Confidence, Source: SourceSemanticOnly}

	case sem.Similarity > e.cfg.FallbackSimilarity && sem.Intent != vocab.UnknownIntent:
		return Result{Intent: sem.Intent, Confidence: sem.Confidence, Source: SourceSemanticFallback}

	default:
		return Result{Intent: vocab.UnknownIntent, Source: SourceNoMatch}
	}
}

// safePattern guards the pattern matcher: a panic from a malformed rule is
// logged and treated as a zero-confidence result so the semantic path can
// still answer.
func (e *Engine) safePattern(text string) (res pattern.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("pattern matcher panicked", zap.Any("panic", r))
			res = pattern.Result{Intent: vocab.UnknownIntent}
		}
	}()
	return e.pat.Classify(text)
}

func (e *Engine) topMatches(sem semantic.Result, pat pattern.Result) []TopMatch {
	if len(sem.TopMatches) > 0 {
		out := make([]TopMatch, len(sem.TopMatches))
		for i, m := range sem.TopMatches {
			out[i] = TopMatch{Intent: m.Intent, Name: e.store.FriendlyName(m.Intent), Score: m.Score}
		}
		return out
	}
	if pat.Intent != vocab.UnknownIntent && pat.Confidence > 0 {
		return []TopMatch{{
			Intent: pat.Intent,
			Name:   e.store.FriendlyName(pat.Intent),
			Score:  pat.Confidence,
		}}
	}
	return nil
}

func (e *Engine) unknownResult(raw string) Result {
	return Result{
		Intent:       vocab.UnknownIntent,
		FriendlyName: e.store.FriendlyName(vocab.UnknownIntent),
		Source:       SourceNoMatch,
		Preprocessed: Preprocessed{Original: raw},
	}
}

func (e *Engine) remember(key string, res Result) {
	e.results.Put(key, cachedResult{
		intent:     res.Intent,
		confidence: res.Confidence,
		name:       res.FriendlyName,
		source:     res.Source,
	})
}

// TopMatches returns the n best semantic candidates for text, for
// clarification prompts when confidence is low.
func (e *Engine) TopMatches(text string, n int) []TopMatch {
	if n <= 0 {
		return nil
	}
	matches := e.sem.Rank(text)
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]TopMatch, len(matches))
	for i, m := range matches {
		out[i] = TopMatch{Intent: m.Intent, Name: e.store.FriendlyName(m.Intent), Score: m.Score}
	}
	return out
}

// Concepts returns the cluster names the text touches, strongest first,
// for "I heard X but..." fallback messaging.
func (e *Engine) Concepts(text string) []string {
	return e.sem.ExtractConcepts(text)
}

// IsSimilarTo reports whether two phrases are semantically close enough,
// for detecting paraphrased repeat questions.
func (e *Engine) IsSimilarTo(a, b string, threshold float64) bool {
	return e.sem.PhraseSimilarity(a, b) >= threshold
}

// Store exposes the vocabulary for read access.
func (e *Engine) Store() *vocab.Store {
	return e.store
}

// AddWord adds a vocabulary word and invalidates derived caches.
func (e *Engine) AddWord(w string) {
	e.store.AddWord(w)
	e.invalidate()
}

// AddSlang registers a slang rewrite and invalidates derived caches.
func (e *Engine) AddSlang(from, to string) {
	e.store.AddSlang(from, to)
	e.invalidate()
}

// AddIdiom registers an idiom rewrite and invalidates derived caches.
func (e *Engine) AddIdiom(phrase, canonical string) {
	e.store.AddIdiom(phrase, canonical)
	e.invalidate()
}

// AddWordToCluster grows a cluster and invalidates derived caches.
func (e *Engine) AddWordToCluster(cluster, word string) {
	e.store.AddWordToCluster(cluster, word)
	e.invalidate()
}

// SetWordImportance adjusts a word weight and invalidates derived caches.
func (e *Engine) SetWordImportance(word string, weight float64) error {
	if err := e.store.SetWordImportance(word, weight); err != nil {
		return err
	}
	e.invalidate()
	return nil
}

// AddExemplar grows an intent's exemplar list; centroids rebuild lazily on
// the next classification.
func (e *Engine) AddExemplar(intentID, phrase string) error {
	if err := e.store.AddExemplar(intentID, phrase); err != nil {
		return err
	}
	e.invalidate()
	return nil
}

// invalidate clears every cache whose entries depend on vocabulary state.
// Classification results, memoized corrections and memoized phrase vectors
// may all change after a mutation.
func (e *Engine) invalidate() {
	e.results.Clear()
	e.corr.ResetMemo()
	e.sem.ResetMemo()
	e.log.Debug("vocabulary changed, caches cleared")
}

// ResetCache clears the classification cache, e.g. between tests.
func (e *Engine) ResetCache() {
	e.results.Clear()
}

// Stats returns a snapshot of the engine's configuration and state.
func (e *Engine) Stats() map[string]interface{} {
	return map[string]interface{}{
		"intent_count":        len(e.store.Intents()),
		"cluster_count":       e.sem.Dimensions(),
		"vocabulary_size":     len(e.store.Words()),
		"cached_results":      e.results.Len(),
		"high_confidence":     e.cfg.HighConfidence,
		"pattern_threshold":   e.cfg.PatternThreshold,
		"semantic_threshold":  e.cfg.SemanticThreshold,
		"fallback_similarity": e.cfg.FallbackSimilarity,
	}
}

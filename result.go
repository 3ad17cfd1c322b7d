package intent

import (
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/normalize"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/pattern"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/spell"
)

// Source identifies which branch of the combiner produced a result. The
// tag is load-bearing for debugging and threshold tuning.
type Source string

// Combiner branches.
const (
	// SourcePatternHigh: the pattern matcher alone was confident enough
	// to short-circuit; the semantic engine never ran.
	SourcePatternHigh Source = "pattern_high"

	// SourceCombinedAgreement: both classifiers cleared their thresholds
	// and named the same intent; confidence is boosted.
	SourceCombinedAgreement Source = "combined_agreement"

	// SourcePatternOverSemantic / SourceSemanticOverPattern: both cleared
	// their thresholds but disagreed; the stronger one won with an
	// uncertainty penalty.
	SourcePatternOverSemantic Source = "pattern_over_semantic"
	SourceSemanticOverPattern Source = "semantic_over_pattern"

	// SourcePatternOnly / SourceSemanticOnly: exactly one classifier
	// cleared its threshold and was used as-is.
	SourcePatternOnly  Source = "pattern_only"
	SourceSemanticOnly Source = "semantic_only"

	// SourceSemanticFallback: neither cleared its threshold but the
	// semantic similarity was non-trivial, so its answer is better than
	// nothing.
	SourceSemanticFallback Source = "semantic_fallback"

	// SourceNoMatch: nothing recognizable; the unknown intent.
	SourceNoMatch Source = "no_match"
)

// Preprocessed traces what normalization and typo correction did to the
// input before classification.
type Preprocessed struct {
	Original    string             `json:"original"`
	Normalized  string             `json:"normalized"`
	WasModified bool               `json:"wasModified"`
	Changes     []normalize.Change `json:"changes,omitempty"`
	Corrections []spell.Correction `json:"corrections,omitempty"`
}

// TopMatch is one ranked candidate intent with its display name.
type TopMatch struct {
	Intent string  `json:"intent"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// Result is the engine's answer for one input. It is always populated: a
// low-confidence or unknown classification is a normal outcome, not an
// error.
type Result struct {
	Intent       string           `json:"intent"`
	Confidence   float64          `json:"confidence"`
	FriendlyName string           `json:"friendlyName"`
	Source       Source           `json:"source"`
	FromCache    bool             `json:"fromCache"`
	Preprocessed Preprocessed     `json:"preprocessed"`
	TopMatches   []TopMatch       `json:"topMatches,omitempty"`
	Entities     []pattern.Entity `json:"entities,omitempty"`
}

// cachedResult is the lightweight summary kept in the classification
// cache.
type cachedResult struct {
	intent     string
	confidence float64
	name       string
	source     Source
}

// Package pattern scores input against hand-authored trigger rules and
// per-intent keyword weights. It is the fast, precision-oriented first
// pass for common, literally-worded queries; anything it is unsure about
// falls through to the semantic engine.
package pattern

import (
	"regexp"
	"strings"

	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

// A trigger match is worth three keyword points, and a score of six maps
// to full confidence.
const (
	triggerScore   = 3.0
	fullConfidence = 6.0
)

// Rule is one hand-authored trigger for an intent.
type Rule struct {
	Intent  string
	Pattern *regexp.Regexp
}

// Entity is a shallow extraction from the input.
type Entity struct {
	Kind  string `json:"kind"` // "number", "location", "proper"
	Value string `json:"value"`
}

// Result is the outcome of one pattern classification.
type Result struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Score      float64  `json:"score"`
	Entities   []Entity `json:"entities,omitempty"`
}

// Matcher scores text against trigger rules and keyword weights.
type Matcher struct {
	store *vocab.Store
	rules []Rule
}

// Option adjusts a Matcher.
type Option func(*Matcher)

// WithRules replaces the default trigger rules.
func WithRules(rules []Rule) Option {
	return func(m *Matcher) {
		m.rules = rules
	}
}

// New creates a Matcher with the built-in trigger rules for the default
// catalog. Keyword weights always come from the store.
func New(store *vocab.Store, opts ...Option) *Matcher {
	m := &Matcher{
		store: store,
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	numberPattern = regexp.MustCompile(`\b\d+\b`)
	properPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// Classify scores every intent and returns the best one. Scoring is +3
// per matching trigger rule plus the weight of every keyword literally
// present; confidence is min(1, score/6).
func (m *Matcher) Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Intent: vocab.UnknownIntent}
	}
	lower := strings.ToLower(trimmed)

	scores := make(map[string]float64)
	for _, rule := range m.rules {
		if rule.Pattern.MatchString(lower) {
			scores[rule.Intent] += triggerScore
		}
	}

	words := wordSet(lower)
	for _, in := range m.store.Intents() {
		for kw, weight := range in.Keywords {
			if words[kw] {
				scores[in.ID] += weight
			}
		}
	}

	best := vocab.UnknownIntent
	bestScore := 0.0
	for _, in := range m.store.Intents() {
		if s := scores[in.ID]; s > bestScore {
			best, bestScore = in.ID, s
		}
	}

	res := Result{
		Intent:   best,
		Score:    bestScore,
		Entities: m.extractEntities(trimmed, lower),
	}
	if bestScore > 0 {
		res.Confidence = bestScore / fullConfidence
		if res.Confidence > 1 {
			res.Confidence = 1
		}
	} else {
		res.Intent = vocab.UnknownIntent
	}
	return res
}

// ExtractEntities extracts entities using the raw input for proper-noun
// detection and the normalized text for number and vocabulary lookups, so
// casing survives preprocessing while typo-corrected terms still match.
func (m *Matcher) ExtractEntities(raw, normalized string) []Entity {
	return m.extractEntities(raw, strings.ToLower(normalized))
}

// extractEntities pulls out numbers, known location terms and
// proper-noun-like tokens (the latter only when the caller passed raw,
// uncased text).
func (m *Matcher) extractEntities(raw, lower string) []Entity {
	var entities []Entity

	for _, n := range numberPattern.FindAllString(lower, -1) {
		entities = append(entities, Entity{Kind: "number", Value: n})
	}

	for _, tok := range strings.Fields(lower) {
		tok = strings.Trim(tok, ".,!?;:\"()")
		for _, cl := range m.store.ClustersForWord(tok) {
			if cl == "location" {
				entities = append(entities, Entity{Kind: "location", Value: tok})
				break
			}
		}
	}

	for _, p := range properPattern.FindAllString(raw, -1) {
		entities = append(entities, Entity{Kind: "proper", Value: p})
	}

	return entities
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		set[strings.Trim(tok, ".,!?;:\"()")] = true
	}
	return set
}

// DefaultRules returns the hand-authored triggers for the built-in
// street-legacy catalog.
func DefaultRules() []Rule {
	return []Rule{
		// Money advice.
		{"money_advice", regexp.MustCompile(`how (do|can) i (make|get|earn) (money|cash|paper|bread)`)},
		{"money_advice", regexp.MustCompile(`(make|earn|get) (more |some |that )?(money|cash)`)},
		{"money_advice", regexp.MustCompile(`(need|want) (money|cash|paper)`)},
		{"money_advice", regexp.MustCompile(`\bbroke\b`)},
		{"money_advice", regexp.MustCompile(`(what|which) pays`)},

		// Crime advice.
		{"crime_advice", regexp.MustCompile(`(what|which) (crime|job|heist)`)},
		{"crime_advice", regexp.MustCompile(`should i (rob|steal|hit)`)},
		{"crime_advice", regexp.MustCompile(`(best|easiest) (crime|job|heist)`)},
		{"crime_advice", regexp.MustCompile(`(crime|heist).* (worth|pays)`)},

		// Market analysis.
		{"market_analysis", regexp.MustCompile(`how is the market`)},
		{"market_analysis", regexp.MustCompile(`when should i (sell|buy)`)},
		{"market_analysis", regexp.MustCompile(`(are|is) prices? going`)},
		{"market_analysis", regexp.MustCompile(`(good|best) time to (sell|buy)`)},
		{"market_analysis", regexp.MustCompile(`(hold or sell|sell or hold)`)},

		// Heat and police.
		{"heat_advice", regexp.MustCompile(`(lower|drop|lose|reduce) .*\bheat\b`)},
		{"heat_advice", regexp.MustCompile(`(cops|police) are`)},
		{"heat_advice", regexp.MustCompile(`avoid the (cops|police|law)`)},
		{"heat_advice", regexp.MustCompile(`\btoo hot\b`)},

		// Locations.
		{"location_info", regexp.MustCompile(`where (should|can) i`)},
		{"location_info", regexp.MustCompile(`tell me about`)},
		{"location_info", regexp.MustCompile(`(which|what) (area|spot|place)`)},

		// Status.
		{"status_check", regexp.MustCompile(`how am i doing`)},
		{"status_check", regexp.MustCompile(`(show|check) (me )?(my )?(stats|status|progress)`)},
		{"status_check", regexp.MustCompile(`what level am i`)},

		// Greeting.
		{"greeting", regexp.MustCompile(`^(hello|hey|yo|sup|hi)\b`)},
		{"greeting", regexp.MustCompile(`^good (morning|afternoon|evening)\b`)},
		{"greeting", regexp.MustCompile(`^what is up\b`)},
		{"greeting", regexp.MustCompile(`(what is|whats) (up|good|happening)`)},

		// Help.
		{"help", regexp.MustCompile(`what can you do`)},
		{"help", regexp.MustCompile(`(can|could) you (do|help)`)},
		{"help", regexp.MustCompile(`\bhelp( me)?\b`)},
		{"help", regexp.MustCompile(`how does this work`)},
		{"help", regexp.MustCompile(`what commands`)},
	}
}

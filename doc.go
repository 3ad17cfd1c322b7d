// Package intent classifies conversational player input for the street
// legacy game assistant without any machine-learning dependency.
//
// The engine runs a hybrid pipeline: raw text is cleaned and rewritten
// (slang, abbreviations, contractions and multi-word idioms), typos are
// corrected against the domain vocabulary with bounded edit distance, and
// the result is scored by two classifiers whose votes are blended by a
// threshold policy:
//
//   - a pattern matcher over hand-authored trigger regexps and weighted
//     keywords (fast, precise on literally-worded queries), and
//   - a semantic matcher over a hand-built concept vector space, comparing
//     the input against per-intent exemplar centroids by cosine similarity
//     (robust to paraphrase).
//
// # Quick Start
//
//	import (
//	    intent "github.com/millerdave152-droid/street-legacy-sub014"
//	    "github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
//	)
//
//	func main() {
//	    engine, _ := intent.New(vocab.Default())
//
//	    res := engine.Classify("yo how do i make money rn")
//	    // res.Intent == "money_advice", res.Confidence, res.Source, ...
//	}
//
// Classification never fails: empty or unrecognizable input degrades to
// the "unknown" intent with confidence 0 and a "no_match" source tag.
// Repeated inputs are answered from a bounded result cache.
//
// # Custom Catalogs
//
// The built-in catalog covers the game's eight intents. Load your own with
// pkg/config:
//
//	store, _ := config.Load("catalog.yaml")
//	engine, _ := intent.New(store)
//
// Vocabulary, slang, idioms and exemplars can also be grown at runtime
// through the engine's mutation methods; derived caches and centroids
// refresh automatically.
//
// # Beyond Classification
//
// TopMatches ranks candidate intents for clarification prompts, Concepts
// names the concept clusters an input touches, and IsSimilarTo detects
// paraphrased repeat questions. The pkg/spell package additionally offers
// typo-likelihood scores and suggestion lists over a weighted keyboard and
// phonetic distance.
package intent

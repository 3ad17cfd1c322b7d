package semantic

import (
	"testing"

	"github.com/millerdave152-droid/street-legacy-sub014/pkg/normalize"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/spell"
	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

func newTestEngine(t *testing.T) (*Engine, *vocab.Store) {
	t.Helper()
	store := vocab.Default()
	e := New(store, normalize.New(store), spell.New(store))
	return e, store
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); got != tt.want {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhraseVectorUnitLength(t *testing.T) {
	e, _ := newTestEngine(t)

	v := e.PhraseVector("how do i make money")
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("phrase vector norm^2 = %v, want 1", sum)
	}
}

func TestPhraseVectorUnknownWordsIsZero(t *testing.T) {
	e, _ := newTestEngine(t)

	v := e.PhraseVector("xyzzyqq plughhh")
	if !isZero(v) {
		t.Fatalf("expected zero vector, got %v", v)
	}
}

func TestSameClusterWordsAreNearIdentical(t *testing.T) {
	e, _ := newTestEngine(t)

	// "cash" and "loot" belong to the money cluster and no other, so their
	// unit vectors point the same way.
	if sim := e.PhraseSimilarity("cash", "loot"); sim < 0.9 {
		t.Fatalf("PhraseSimilarity(cash, loot) = %v, want > 0.9", sim)
	}
}

func TestUnrelatedPhrasesScoreLow(t *testing.T) {
	e, _ := newTestEngine(t)

	sim := e.PhraseSimilarity("hello", "market prices")
	if sim > 0.5 {
		t.Fatalf("PhraseSimilarity(hello, market prices) = %v, want low", sim)
	}
}

func TestClassifyExemplar(t *testing.T) {
	e, store := newTestEngine(t)

	for _, in := range store.Intents() {
		if len(in.Exemplars) == 0 {
			continue
		}
		res := e.Classify(in.Exemplars[0])
		if res.Intent != in.ID {
			t.Errorf("Classify(%q) = %s, want %s (top matches %v)",
				in.Exemplars[0], res.Intent, in.ID, res.TopMatches)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	e, _ := newTestEngine(t)

	res := e.Classify("xyzzyqq plughhh")
	if res.Intent != vocab.UnknownIntent || res.Confidence != 0 {
		t.Fatalf("Classify(gibberish) = %+v, want unknown/0", res)
	}
	if len(res.TopMatches) != 0 {
		t.Fatalf("unexpected top matches for gibberish: %v", res.TopMatches)
	}
}

func TestClassifyTopMatchesRankedAndBounded(t *testing.T) {
	e, _ := newTestEngine(t)

	res := e.Classify("market prices for crimes")
	if len(res.TopMatches) == 0 || len(res.TopMatches) > 3 {
		t.Fatalf("got %d top matches, want 1..3", len(res.TopMatches))
	}
	for i := 1; i < len(res.TopMatches); i++ {
		if res.TopMatches[i].Score > res.TopMatches[i-1].Score {
			t.Fatalf("top matches not sorted: %v", res.TopMatches)
		}
	}

	found := map[string]bool{}
	for _, m := range res.TopMatches {
		found[m.Intent] = true
	}
	if !found["market_analysis"] || !found["crime_advice"] {
		t.Fatalf("expected market_analysis and crime_advice in top matches, got %v",
			res.TopMatches)
	}
}

func TestConfidenceRewardsSeparation(t *testing.T) {
	e, _ := newTestEngine(t)

	clear := e.Classify("how do i lower my heat")
	blended := e.Classify("market prices for crimes")
	if clear.Confidence <= blended.Confidence {
		t.Fatalf("clear winner conf %v should exceed blended conf %v",
			clear.Confidence, blended.Confidence)
	}
}

func TestExtractConcepts(t *testing.T) {
	e, _ := newTestEngine(t)

	concepts := e.ExtractConcepts("the cops want my money")
	hasPolice, hasMoney := false, false
	for _, c := range concepts {
		if c == "police" {
			hasPolice = true
		}
		if c == "money" {
			hasMoney = true
		}
	}
	if !hasPolice || !hasMoney {
		t.Fatalf("ExtractConcepts = %v, want police and money", concepts)
	}

	if got := e.ExtractConcepts("xyzzyqq"); len(got) != 0 {
		t.Fatalf("ExtractConcepts(gibberish) = %v, want empty", got)
	}
}

func TestAddExemplarRebuildsCentroids(t *testing.T) {
	store, err := vocab.New(vocab.Catalog{
		Intents: []vocab.Intent{
			{ID: "a", Name: "A", Exemplars: []string{"cash"}},
			{ID: "b", Name: "B", Exemplars: []string{"docks"}},
		},
		Clusters: map[string][]string{
			"money":    {"cash", "loot"},
			"location": {"docks"},
		},
	})
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}
	e := New(store, normalize.New(store), spell.New(store))

	scoreOf := func(res Result, intent string) float64 {
		for _, m := range res.TopMatches {
			if m.Intent == intent {
				return m.Score
			}
		}
		return 0
	}

	before := e.Classify("loot")
	if got := scoreOf(before, "b"); got != 0 {
		t.Fatalf("intent b scored %v before having any money exemplar", got)
	}

	if err := store.AddExemplar("b", "loot"); err != nil {
		t.Fatalf("AddExemplar: %v", err)
	}
	after := e.Classify("loot")
	if got := scoreOf(after, "b"); got < 0.5 {
		t.Fatalf("intent b scored %v after the new exemplar, want a rebuild", got)
	}
}

func TestWeightAndClusterChangesRefreshVectors(t *testing.T) {
	mutated, store := newTestEngine(t)
	// Warm centroids and the phrase-vector memo in the old space.
	mutated.Classify("best way to earn cash")
	mutated.PhraseVector("earn profit")

	if err := store.SetWordImportance("profit", 9); err != nil {
		t.Fatalf("SetWordImportance: %v", err)
	}
	store.AddWordToCluster("money", "grind")

	// An engine built after the mutations sees only the new space; the
	// warmed engine must converge to the same answers.
	fresh := New(store, normalize.New(store), spell.New(store))
	got := mutated.Classify("earn profit")
	want := fresh.Classify("earn profit")

	if got.Intent != want.Intent || got.Confidence != want.Confidence ||
		got.Similarity != want.Similarity {
		t.Fatalf("stale engine answered %+v, fresh engine %+v", got, want)
	}
}

func TestPhraseVectorMemoized(t *testing.T) {
	e, _ := newTestEngine(t)

	a := e.PhraseVector("how do i make money")
	b := e.PhraseVector("how do i make money")
	if &a[0] != &b[0] {
		t.Fatal("expected the memoized vector to be returned")
	}
	e.ResetMemo()
	c := e.PhraseVector("how do i make money")
	if &a[0] == &c[0] {
		t.Fatal("expected a fresh vector after ResetMemo")
	}
}

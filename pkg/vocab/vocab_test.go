package vocab

import (
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	s := Default()

	if _, ok := s.Intent(UnknownIntent); !ok {
		t.Fatalf("default store is missing the %s intent", UnknownIntent)
	}
	if len(s.Intents()) < 5 {
		t.Fatalf("expected a populated catalog, got %d intents", len(s.Intents()))
	}
	if len(s.ClusterNames()) == 0 {
		t.Fatal("expected word clusters")
	}
	if len(s.Words()) == 0 {
		t.Fatal("expected a domain vocabulary")
	}
}

func TestNewRejectsDuplicateIntents(t *testing.T) {
	_, err := New(Catalog{
		Intents: []Intent{
			{ID: "a", Name: "A"},
			{ID: "a", Name: "A again"},
		},
	})
	if err == nil {
		t.Fatal("expected error for duplicate intent id")
	}
}

func TestNewRejectsNonPositiveImportance(t *testing.T) {
	_, err := New(Catalog{
		Importance: map[string]float64{"heist": 0},
	})
	if err == nil {
		t.Fatal("expected error for zero importance")
	}
}

func TestClusterMembersJoinVocabulary(t *testing.T) {
	s, err := New(Catalog{
		Clusters: map[string][]string{"money": {"cash", "loot"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.IsWord("cash") || !s.IsWord("loot") {
		t.Fatal("cluster members should be vocabulary words")
	}
}

func TestImportanceDefaultsToOne(t *testing.T) {
	s := Default()
	if got := s.Importance("zzz-not-listed"); got != 1.0 {
		t.Fatalf("Importance() = %v, want 1.0", got)
	}
	if got := s.Importance("heist"); got <= 1.0 {
		t.Fatalf("domain word should be weighted above default, got %v", got)
	}
}

func TestIdiomsSortedLongestFirst(t *testing.T) {
	s := Default()
	idioms := s.Idioms()
	for i := 1; i < len(idioms); i++ {
		if len(idioms[i-1].Phrase) < len(idioms[i].Phrase) {
			t.Fatalf("idioms not sorted longest-first: %q before %q",
				idioms[i-1].Phrase, idioms[i].Phrase)
		}
	}
}

func TestMutationAPI(t *testing.T) {
	s := Default()

	s.AddWord("Shakedown")
	if !s.IsWord("shakedown") {
		t.Fatal("AddWord should lowercase and register the word")
	}

	s.AddSlang("cheese", "money")
	if to, ok := s.SlangFor("cheese"); !ok || to != "money" {
		t.Fatalf("SlangFor(cheese) = %q, %v", to, ok)
	}

	s.AddIdiom("Off The Books", "secretly")
	found := false
	for _, id := range s.Idioms() {
		if id.Phrase == "off the books" && id.Canonical == "secretly" {
			found = true
		}
	}
	if !found {
		t.Fatal("AddIdiom did not register the idiom")
	}

	s.AddWordToCluster("money", "cheese")
	clusters := s.ClustersForWord("cheese")
	if len(clusters) != 1 || clusters[0] != "money" {
		t.Fatalf("ClustersForWord(cheese) = %v", clusters)
	}

	if err := s.SetWordImportance("cheese", 1.7); err != nil {
		t.Fatalf("SetWordImportance: %v", err)
	}
	if got := s.Importance("cheese"); got != 1.7 {
		t.Fatalf("Importance(cheese) = %v", got)
	}
	if err := s.SetWordImportance("cheese", -1); err == nil {
		t.Fatal("expected error for negative importance")
	}
}

func TestEveryMutationBumpsRevision(t *testing.T) {
	s := Default()

	steps := []struct {
		name   string
		mutate func()
	}{
		{"AddWord", func() { s.AddWord("shakedown") }},
		{"AddSlang", func() { s.AddSlang("cheese", "money") }},
		{"AddIdiom", func() { s.AddIdiom("off the books", "secretly") }},
		{"AddWordToCluster", func() { s.AddWordToCluster("money", "cheese") }},
		{"SetWordImportance", func() {
			if err := s.SetWordImportance("cheese", 1.7); err != nil {
				t.Fatalf("SetWordImportance: %v", err)
			}
		}},
		{"AddExemplar", func() {
			if err := s.AddExemplar("money_advice", "how do i get that bag"); err != nil {
				t.Fatalf("AddExemplar: %v", err)
			}
		}},
	}
	for _, step := range steps {
		before := s.Revision()
		step.mutate()
		if s.Revision() != before+1 {
			t.Errorf("%s did not bump the revision (%d -> %d)",
				step.name, before, s.Revision())
		}
	}
}

func TestAddExemplarBumpsRevision(t *testing.T) {
	s := Default()
	before := s.Revision()

	if err := s.AddExemplar("money_advice", "how do i get that bag"); err != nil {
		t.Fatalf("AddExemplar: %v", err)
	}
	if s.Revision() != before+1 {
		t.Fatalf("Revision() = %d, want %d", s.Revision(), before+1)
	}

	if err := s.AddExemplar("nope", "x"); err == nil {
		t.Fatal("expected error for unknown intent")
	}
	if err := s.AddExemplar(UnknownIntent, "x"); err == nil {
		t.Fatal("expected error for the reserved unknown intent")
	}
}

func TestKeywordsLowercased(t *testing.T) {
	s, err := New(Catalog{
		Intents: []Intent{{
			ID:       "t",
			Name:     "T",
			Keywords: map[string]float64{"Heist": 2},
		}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in, _ := s.Intent("t")
	if _, ok := in.Keywords["heist"]; !ok {
		t.Fatalf("keywords should be lowercased, got %v", in.Keywords)
	}
}

func TestFriendlyName(t *testing.T) {
	s := Default()
	if got := s.FriendlyName("money_advice"); got != "Money Advice" {
		t.Fatalf("FriendlyName(money_advice) = %q", got)
	}
	if got := s.FriendlyName("no_such_intent"); got != "no_such_intent" {
		t.Fatalf("FriendlyName should fall back to the id, got %q", got)
	}
}

func TestDefaultTablesAreStableUnderRewrite(t *testing.T) {
	// Canonical forms produced by the tables must not themselves be table
	// keys, or normalization would not be idempotent.
	s := Default()
	check := func(kind, value string) {
		for _, tok := range strings.Fields(value) {
			if _, ok := s.ContractionFor(tok); ok {
				t.Errorf("%s value %q contains contraction key %q", kind, value, tok)
			}
			if _, ok := s.AbbreviationFor(tok); ok {
				t.Errorf("%s value %q contains abbreviation key %q", kind, value, tok)
			}
			if _, ok := s.SlangFor(tok); ok {
				t.Errorf("%s value %q contains slang key %q", kind, value, tok)
			}
		}
	}
	cat := DefaultCatalog()
	for _, v := range cat.Slang {
		check("slang", v)
	}
	for _, v := range cat.Abbreviations {
		check("abbreviation", v)
	}
	for _, v := range cat.Contractions {
		check("contraction", v)
	}
	for _, id := range cat.Idioms {
		check("idiom", id.Canonical)
	}
}

package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return New(vocab.Default())
}

func TestNormalizeEmpty(t *testing.T) {
	n := newTestNormalizer(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		res := n.Normalize(input)
		if res.Normalized != "" {
			t.Errorf("Normalize(%q).Normalized = %q, want empty", input, res.Normalized)
		}
		if len(res.Changes) != 0 {
			t.Errorf("Normalize(%q) recorded changes: %v", input, res.Changes)
		}
	}
}

func TestNormalizeClean(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		input string
		want  string
	}{
		{"  HELLO   there  ", "hello there"},
		{"really???", "really?"},
		{"stop!!!", "stop!"},
		{"wait... really???", "wait. really?"},
		{"ok!!!??", "ok!?"},
		{"don’t worry", "do not worry"},
		{"what’s up", "what is up"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.input).Normalized; got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdiomAndAbbreviation(t *testing.T) {
	n := newTestNormalizer(t)

	res := n.Normalize("need that paper rn")
	if res.Normalized != "need money right now" {
		t.Fatalf("Normalized = %q, want %q", res.Normalized, "need money right now")
	}
	want := []Change{
		{From: "need that paper", To: "need money", Type: ChangePhrase},
		{From: "rn", To: "right now", Type: ChangeAbbreviation},
	}
	if diff := cmp.Diff(want, res.Changes); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if !res.WasModified {
		t.Fatal("WasModified should be true")
	}
}

func TestNormalizeTokenPriority(t *testing.T) {
	store := vocab.Default()
	// A token present in several tables resolves contraction first, then
	// abbreviation, then slang.
	store.AddSlang("xo", "love")
	n := New(store)

	res := n.Normalize("i'm out, xo")
	if res.Normalized != "i am out, love" {
		t.Fatalf("Normalized = %q", res.Normalized)
	}
	if res.Changes[0].Type != ChangeContraction || res.Changes[1].Type != ChangeSlang {
		t.Fatalf("unexpected change types: %v", res.Changes)
	}
}

func TestNormalizeSlang(t *testing.T) {
	n := newTestNormalizer(t)

	res := n.Normalize("the popo took my dough")
	if res.Normalized != "the police took my money" {
		t.Fatalf("Normalized = %q", res.Normalized)
	}
}

func TestLongestIdiomWinsOverSharedPrefix(t *testing.T) {
	store := vocab.Default()
	store.AddIdiom("cash out", "sell everything")
	store.AddIdiom("cash out early", "panic sell")
	n := New(store)

	res := n.Normalize("should i cash out early")
	if res.Normalized != "should i panic sell" {
		t.Fatalf("Normalized = %q, longer idiom should win", res.Normalized)
	}
}

func TestIdiomRequiresWordBoundary(t *testing.T) {
	store := vocab.Default()
	store.AddIdiom("lay low", "hide")
	n := New(store)

	res := n.Normalize("playlayloway")
	for _, c := range res.Changes {
		if c.Type == ChangePhrase {
			t.Fatalf("idiom matched inside a word: %v", c)
		}
	}
}

func TestNormalizeKeepsPunctuationAroundTokens(t *testing.T) {
	n := newTestNormalizer(t)

	res := n.Normalize("help, rn!")
	if res.Normalized != "help, right now!" {
		t.Fatalf("Normalized = %q", res.Normalized)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{
		"need that paper rn",
		"don't tell the 5-0",
		"WHAT'S GOOD bro!!!",
		"i'm broke, gonna rob the store",
		"how do i make money",
		"wyd atm",
		"",
	}
	for _, input := range inputs {
		first := n.Normalize(input)
		second := n.Normalize(first.Normalized)
		if len(second.Changes) != 0 {
			t.Errorf("Normalize not idempotent for %q: second pass changed %v",
				input, second.Changes)
		}
		if second.Normalized != first.Normalized {
			t.Errorf("Normalize not idempotent for %q: %q -> %q",
				input, first.Normalized, second.Normalized)
		}
	}
}

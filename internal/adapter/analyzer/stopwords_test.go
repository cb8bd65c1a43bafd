package analyzer

import (
	"testing"
)

func TestStopwordSet_EnglishSize(t *testing.T) {
	set, err := NewStopwordSet("english", MatchExact, nil)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 179 {
		t.Errorf("expected 179 english stopwords, got %d", set.Len())
	}
}

func TestStopwordSet_FilterExact(t *testing.T) {
	set, err := NewStopwordSet("english", MatchExact, nil)
	if err != nil {
		t.Fatal(err)
	}

	tokens := []string{"The", "weather", "is", "great", ",", "and", "Python", "is", "awesome", "."}
	got := set.Filter(tokens)
	want := []string{"The", "weather", "great", ",", "Python", "awesome", "."}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStopwordSet_FilterLowercase(t *testing.T) {
	set, err := NewStopwordSet("english", MatchLowercase, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := set.Filter([]string{"The", "sky", "IS", "pinkish-blue"})
	if len(got) != 2 || got[0] != "sky" || got[1] != "pinkish-blue" {
		t.Errorf("expected [sky pinkish-blue], got %v", got)
	}
}

func TestStopwordSet_FilterIsOrderedSubsequence(t *testing.T) {
	set, err := NewStopwordSet("english", MatchExact, []string{"Smith"})
	if err != nil {
		t.Fatal(err)
	}

	tokens := []string{"Hello", "Mr.", "Smith", ",", "how", "are", "you", "doing", "today", "?"}
	got := set.Filter(tokens)

	j := 0
	for _, tok := range got {
		if set.Contains(tok) {
			t.Errorf("filtered output contains stopword %q", tok)
		}
		for j < len(tokens) && tokens[j] != tok {
			j++
		}
		if j == len(tokens) {
			t.Fatalf("filtered output %v is not a subsequence of %v", got, tokens)
		}
		j++
	}
}

func TestStopwordSet_EmptyInput(t *testing.T) {
	set, err := NewStopwordSet("english", MatchExact, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := set.Filter(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestNewStopwordSet_Errors(t *testing.T) {
	if _, err := NewStopwordSet("klingon", MatchExact, nil); err == nil {
		t.Error("expected error for unknown language")
	}
	if _, err := NewStopwordSet("english", MatchPolicy("fuzzy"), nil); err == nil {
		t.Error("expected error for unknown policy")
	}
}

package vocab

import (
	"errors"
	"testing"
)

func TestVocabularyParses(t *testing.T) {
	v := New()

	tags, err := v.Tags()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 12 {
		t.Errorf("expected 12 tags, got %d", len(tags))
	}

	difficulties, err := v.Difficulties()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(difficulties) != 3 {
		t.Errorf("expected 3 difficulties, got %d", len(difficulties))
	}

	times, err := v.Times()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 3 {
		t.Errorf("expected 3 time buckets, got %d", len(times))
	}

	sorts, err := v.Sorts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sorts) != 8 {
		t.Errorf("expected 8 sort modes, got %d", len(sorts))
	}
}

func TestVocabularyValues(t *testing.T) {
	v := New()

	wantDifficulties := []string{"Easy", "Medium", "Hard"}
	got := v.DifficultyValues()
	if len(got) != len(wantDifficulties) {
		t.Fatalf("DifficultyValues() = %v, want %v", got, wantDifficulties)
	}
	for i := range wantDifficulties {
		if got[i] != wantDifficulties[i] {
			t.Errorf("DifficultyValues()[%d] = %q, want %q", i, got[i], wantDifficulties[i])
		}
	}

	wantTimes := []string{"under30", "under60", "over60"}
	gotTimes := v.TimeValues()
	for i := range wantTimes {
		if gotTimes[i] != wantTimes[i] {
			t.Errorf("TimeValues()[%d] = %q, want %q", i, gotTimes[i], wantTimes[i])
		}
	}
}

func TestVocabularyAccessorsFailTogether(t *testing.T) {
	// A single parse backs every accessor, so a parse failure must surface
	// from all of them, not just the first one a caller happens to check.
	v := New()
	parseErr := errors.New("parse failed")
	v.once.Do(func() { v.err = parseErr })

	for name, get := range map[string]func() ([]Option, error){
		"Difficulties": v.Difficulties,
		"Times":        v.Times,
		"Tags":         v.Tags,
		"Sorts":        v.Sorts,
	} {
		if _, err := get(); !errors.Is(err, parseErr) {
			t.Errorf("%s() error = %v, want parse error", name, err)
		}
	}
}

func TestVocabularyReturnsCopies(t *testing.T) {
	v := New()
	first, err := v.Tags()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Value = "mutated"

	second, err := v.Tags()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Value == "mutated" {
		t.Error("Tags() should return an independent copy")
	}
}

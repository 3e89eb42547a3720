package search

import (
	"testing"
)

var genres = []string{
	"classical", "country", "dance", "electronic", "hiphop", "indie",
	"jazz", "latin", "metal", "pop", "rnb", "rock", "top",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"rok", "rock", true},
		{"hip", "hiphop", true},
		{"HIP-HOP", "hiphop", true},
		{"electro", "electronic", true},
		{"jaz", "jazz", true},
		{"classicle", "classical", true},
		{"", "", false},
		{"zzzzzzzzzzzz", "", false},
	}

	for _, tt := range tests {
		got, ok := Suggest(tt.input, genres)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Suggest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSuggest_NoCandidates(t *testing.T) {
	if _, ok := Suggest("rock", nil); ok {
		t.Error("expected no suggestion without candidates")
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	got := Filter("  ", genres)
	if len(got) != len(genres) {
		t.Fatalf("expected %d matches, got %d", len(genres), len(got))
	}
	for i, m := range got {
		if m.Name != genres[i] {
			t.Errorf("position %d: expected %q, got %q", i, genres[i], m.Name)
		}
	}
}

func TestFilter_Matches(t *testing.T) {
	got := Filter("RO", genres)

	names := make(map[string]bool)
	for _, m := range got {
		names[m.Name] = true
		if len(m.MatchedIndexes) != 2 {
			t.Errorf("%s: expected 2 matched indexes, got %v", m.Name, m.MatchedIndexes)
		}
	}
	if !names["rock"] || !names["electronic"] {
		t.Errorf("expected rock and electronic in %v", got)
	}
	if names["pop"] || names["jazz"] {
		t.Errorf("unexpected matches in %v", got)
	}
	if got[0].Name != "rock" {
		t.Errorf("expected rock ranked first, got %q", got[0].Name)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	if got := Filter("xyz", genres); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

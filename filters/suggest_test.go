package filters

import (
	"testing"

	"guaranihost/models"
)

func TestSuggestReturnsOriginalCandidate(t *testing.T) {
	cities := []string{"Asunción", "Encarnación", "Ciudad del Este"}
	if got := Suggest("asuncion", cities); got != "Asunción" {
		t.Fatalf("got %q", got)
	}
}

func TestSuggestRejectsUnrelated(t *testing.T) {
	if got := Suggest("zzzzzzzz", []string{"Asunción", "Luque"}); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Suggest("", []string{"Asunción"}); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Suggest("luque", nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestSimilarity(t *testing.T) {
	if s := Similarity("abc", "abc"); s != 1 {
		t.Errorf("identical = %v", s)
	}
	if s := Similarity("", ""); s != 1 {
		t.Errorf("empty = %v", s)
	}
	if s := Similarity("abcd", "wxyz"); s != 0 {
		t.Errorf("disjoint = %v", s)
	}
}

func TestDistinct(t *testing.T) {
	props := []models.Property{{City: "Asunción"}, {City: "asuncion"}, {City: ""}, {City: "Luque"}}
	got := Distinct(props, func(p models.Property) string { return p.City })
	if len(got) != 2 || got[0] != "Asunción" || got[1] != "Luque" {
		t.Fatalf("got %v", got)
	}
}

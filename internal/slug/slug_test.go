package slug

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlugify_Pipeline(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trim lower underscore",
			in:   []string{"  Hello   World  "},
			want: []string{"hello_world"},
		},
		{
			name: "transliteration",
			in:   []string{"naïve", "Übersicht"},
			want: []string{"naive", "ubersicht"},
		},
		{
			name: "punctuation stripped",
			in:   []string{"a.b,c!", "Q4 (final)"},
			want: []string{"abc", "q4_final"},
		},
		{
			name: "hyphen and underscore kept",
			in:   []string{"a-b_c"},
			want: []string{"a-b_c"},
		},
		{
			name: "empty input",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Slugify mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlugify_CaseFoldCollision(t *testing.T) {
	got := Slugify([]string{"A", "a"})
	want := []string{"a-1", "a-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify_AccentFoldCollision(t *testing.T) {
	got := Slugify([]string{"Café", "cafe"})
	want := []string{"cafe-1", "cafe-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify_TripleCollision(t *testing.T) {
	got := Slugify([]string{"x", "X", " x "})
	want := []string{"x-1", "x-2", "x-3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Нумерация идёт сканом по первому оставшемуся вхождению,
// а не по исходному индексу: чередующиеся дубликаты получают
// номера в порядке появления каждого значения.
func TestSlugify_FirstOccurrenceOrder(t *testing.T) {
	got := Slugify([]string{"b", "a", "b", "a"})
	want := []string{"b-1", "a-1", "b-2", "a-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify_EmptySlugParticipatesInDedup(t *testing.T) {
	got := Slugify([]string{"!!!", "???"})
	want := []string{"-1", "-2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify_PairwiseDistinct(t *testing.T) {
	inputs := [][]string{
		{"a", "a", "a", "a", "a"},
		{"Sheet 1", "sheet_1", "sheet-1", "SHEET  1"},
		{"", "", " ", "  "},
		{"Café", "cafe", "CAFE", "café"},
	}

	for i, in := range inputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			got := Slugify(in)
			if len(got) != len(in) {
				t.Fatalf("length changed: %d != %d", len(got), len(in))
			}
			seen := make(map[string]int)
			for j, s := range got {
				if prev, ok := seen[s]; ok {
					t.Errorf("duplicate slug %q at %d and %d", s, prev, j)
				}
				seen[s] = j
			}
		})
	}
}

func TestReverseMap(t *testing.T) {
	originals := []string{"Sheet One", "Sheet Two"}
	slugs := Slugify(originals)

	got := ReverseMap(originals, slugs)
	want := map[string]string{
		"sheet_one": "Sheet One",
		"sheet_two": "Sheet Two",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReverseMap_LastWriteWins(t *testing.T) {
	got := ReverseMap([]string{"First", "Second"}, []string{"same", "same"})
	if got["same"] != "Second" {
		t.Errorf("expected last write to win, got %q", got["same"])
	}
}

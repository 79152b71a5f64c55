package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shaiso/gridbones/internal/domain"
)

func testRefs() []domain.SheetRef {
	return []domain.SheetRef{
		{ID: 4583173393803140, Name: "sheet 1"},
		{ID: 2331373580117892, Name: "sheet 2"},
		{ID: 7777777777777777, Name: "Budget (Q4)"},
	}
}

func TestSheetTable_Listing(t *testing.T) {
	table := NewSheetTable(testRefs())

	wantNames := []string{"Budget (Q4)", "sheet 1", "sheet 2"}
	if diff := cmp.Diff(wantNames, table.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	wantSlugs := []string{"budget_q4", "sheet_1", "sheet_2"}
	if diff := cmp.Diff(wantSlugs, table.Slugs()); diff != "" {
		t.Errorf("slugs mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetTable_Resolve(t *testing.T) {
	table := NewSheetTable(testRefs())

	tests := []struct {
		name string
		arg  string
		want int64
	}{
		{name: "exact name", arg: "sheet 1", want: 4583173393803140},
		{name: "slug", arg: "budget_q4", want: 7777777777777777},
		{name: "position", arg: "3", want: 2331373580117892},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Resolve(tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSheetTable_ResolveNotFound(t *testing.T) {
	table := NewSheetTable(testRefs())

	for _, arg := range []string{"Sheet Not Found", "0", "4", "-1"} {
		if _, err := table.Resolve(arg); !errors.Is(err, ErrSheetNotFound) {
			t.Errorf("Resolve(%q): expected ErrSheetNotFound, got %v", arg, err)
		}
	}
}

func TestSheetTable_Empty(t *testing.T) {
	table := NewSheetTable(nil)
	if len(table.Names()) != 0 {
		t.Errorf("expected empty listing, got %v", table.Names())
	}
	if _, err := table.Resolve("1"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

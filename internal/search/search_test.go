package search

import (
	"testing"

	"github.com/marcus/basket/internal/models"
)

func testLists() []models.ShoppingList {
	return []models.ShoppingList{
		{Name: "Groceries", Items: []models.Item{{Name: "Milk"}, {Name: "Almond milk"}, {Name: "Eggs"}}},
		{Name: "Hardware", Items: []models.Item{{Name: "Masking tape"}}},
		{Name: "Empty"},
	}
}

func TestFindEmptyQuery(t *testing.T) {
	if got := Find("", testLists()); len(got) != 0 {
		t.Errorf("Find(\"\") = %v, want none", got)
	}
}

func TestFindPositions(t *testing.T) {
	got := Find("tape", testLists())
	if len(got) != 1 {
		t.Fatalf("Find(tape) = %v, want 1 match", got)
	}
	m := got[0]
	if m.List != 1 || m.Item != 0 || m.ListName != "Hardware" || m.Entry.Name != "Masking tape" {
		t.Errorf("match = %+v", m)
	}
}

func TestFindRanksBestFirst(t *testing.T) {
	got := Find("milk", testLists())
	if len(got) < 2 {
		t.Fatalf("Find(milk) = %v, want at least 2", got)
	}
	if got[0].Entry.Name != "Milk" {
		t.Errorf("best match = %q, want Milk", got[0].Entry.Name)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("results not sorted by score: %v", got)
		}
	}
}

func TestFindNoMatch(t *testing.T) {
	if got := Find("zzz", testLists()); len(got) != 0 {
		t.Errorf("Find(zzz) = %v", got)
	}
}

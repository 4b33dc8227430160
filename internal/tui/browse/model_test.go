package browse

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/kv"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/theme"
	"github.com/marcus/basket/internal/userstore"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, identity string, lists []models.ShoppingList) (Model, *userstore.Store) {
	t.Helper()
	db, err := kv.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := userstore.New(db)
	ctx := context.Background()
	if lists != nil {
		if err := store.Save(ctx, identity, lists); err != nil {
			t.Fatalf("seed lists: %v", err)
		}
	}

	m := NewModel(ctx, store, identity, theme.NewView().Palette())
	m = step(t, m, m.Init())
	return m, store
}

// step runs cmd synchronously and feeds its message back into the model.
func step(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func listWithItems(name string, n int) models.ShoppingList {
	l := models.ShoppingList{ID: name, Name: name}
	for i := 0; i < n; i++ {
		l.Items = append(l.Items, models.Item{ID: string(rune('a' + i)), Name: "item"})
	}
	return l
}

func TestAddItemDeniedAtFreeLimit(t *testing.T) {
	m, _ := newTestModel(t, "bob", []models.ShoppingList{listWithItems("Groceries", 5)})

	m, _ = press(m, runes("a"))
	if m.Adding() {
		t.Fatal("input should stay closed when the gate denies")
	}
	want := entitlement.CanAddItem("bob", m.Lists, 0).Message
	if m.Denial != want {
		t.Errorf("Denial = %q, want %q", m.Denial, want)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Denial != "" {
		t.Errorf("esc should dismiss denial, got %q", m.Denial)
	}
}

func TestAddItemPremiumUnlimited(t *testing.T) {
	m, _ := newTestModel(t, "Premium", []models.ShoppingList{listWithItems("Groceries", 12)})

	m, _ = press(m, runes("a"))
	if !m.Adding() {
		t.Fatal("premium user should get the input")
	}
	if m.Denial != "" {
		t.Errorf("unexpected denial %q", m.Denial)
	}
}

func TestNewListDeniedAtFreeLimit(t *testing.T) {
	lists := []models.ShoppingList{listWithItems("a", 0), listWithItems("b", 0), listWithItems("c", 0)}
	m, _ := newTestModel(t, "bob", lists)

	m, _ = press(m, runes("n"))
	if m.Adding() {
		t.Fatal("input should stay closed at the list limit")
	}
	if !strings.Contains(m.Denial, "limited to 3 lists") {
		t.Errorf("Denial = %q", m.Denial)
	}
}

func TestAddListAndItemPersist(t *testing.T) {
	m, store := newTestModel(t, "bob", nil)

	m, _ = press(m, runes("n"))
	m, _ = press(m, runes("Groceries"))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, cmd)

	if len(m.Lists) != 1 || m.Lists[0].Name != "Groceries" {
		t.Fatalf("Lists = %+v", m.Lists)
	}

	m, _ = press(m, runes("a"))
	m, _ = press(m, runes("Milk"))
	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, cmd)

	if m.Status != `added "Milk"` {
		t.Errorf("Status = %q", m.Status)
	}

	stored, err := store.Load(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(stored) != 1 || len(stored[0].Items) != 1 || stored[0].Items[0].Name != "Milk" {
		t.Errorf("stored = %+v", stored)
	}
}

func TestBlankNameIsNotSaved(t *testing.T) {
	m, store := newTestModel(t, "bob", nil)

	m, _ = press(m, runes("n"))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, cmd)

	if len(m.Lists) != 0 {
		t.Errorf("blank list should not be created: %+v", m.Lists)
	}
	if m.Status == "" {
		t.Error("expected a status explaining the rejection")
	}
	stored, _ := store.Load(context.Background(), "bob")
	if len(stored) != 0 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestToggleItem(t *testing.T) {
	m, store := newTestModel(t, "bob", []models.ShoppingList{listWithItems("Groceries", 2)})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActivePanel != PanelItems {
		t.Fatalf("enter should open the items panel")
	}
	m, _ = press(m, runes("j"))
	m, cmd := press(m, runes("x"))
	m = step(t, m, cmd)

	if !m.Lists[0].Items[1].Checked || m.Lists[0].Items[0].Checked {
		t.Errorf("items = %+v", m.Lists[0].Items)
	}
	stored, _ := store.Load(context.Background(), "bob")
	if !stored[0].Items[1].Checked {
		t.Error("checked state not persisted")
	}
}

func TestDeleteItemAndList(t *testing.T) {
	m, _ := newTestModel(t, "bob", []models.ShoppingList{listWithItems("A", 1), listWithItems("B", 0)})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := press(m, runes("d"))
	m = step(t, m, cmd)
	if len(m.Lists[0].Items) != 0 {
		t.Fatalf("item not removed: %+v", m.Lists[0].Items)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd = press(m, runes("d"))
	m = step(t, m, cmd)
	if len(m.Lists) != 1 || m.Lists[0].Name != "B" {
		t.Errorf("Lists = %+v", m.Lists)
	}
}

func TestCursorClamped(t *testing.T) {
	m, _ := newTestModel(t, "bob", []models.ShoppingList{listWithItems("A", 0), listWithItems("B", 0)})

	for i := 0; i < 5; i++ {
		m, _ = press(m, runes("j"))
	}
	if m.ListCursor != 1 {
		t.Errorf("ListCursor = %d, want 1", m.ListCursor)
	}
	for i := 0; i < 5; i++ {
		m, _ = press(m, runes("k"))
	}
	if m.ListCursor != 0 {
		t.Errorf("ListCursor = %d, want 0", m.ListCursor)
	}
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t, "bob", []models.ShoppingList{listWithItems("Groceries", 2)})

	if got := m.View(); got != "Loading..." {
		t.Errorf("View before size = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	view := m.View()
	for _, want := range []string{"Groceries", "bob", "Free"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = press(m, runes("?"))
	if !strings.Contains(m.View(), "check / uncheck") {
		t.Error("help view missing key list")
	}
}

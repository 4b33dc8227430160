package browse

import (
	"fmt"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/userstore"
)

// loadLists reads the current identity's lists
func (m Model) loadLists() tea.Cmd {
	return func() tea.Msg {
		lists, err := m.Store.Load(m.ctx, m.Identity)
		return ListsLoadedMsg{Lists: lists, Err: err}
	}
}

// working returns a copy of the lists deep enough that mutations do not
// touch the model's slice before the save succeeds.
func (m Model) working() []models.ShoppingList {
	out := make([]models.ShoppingList, len(m.Lists))
	for i, l := range m.Lists {
		l.Items = slices.Clone(l.Items)
		out[i] = l
	}
	return out
}

// save persists lists and reports status on success
func (m Model) save(lists []models.ShoppingList, status string) tea.Cmd {
	return func() tea.Msg {
		if err := m.Store.Save(m.ctx, m.Identity, lists); err != nil {
			slog.Warn("browse: save failed", "err", err)
			return SavedMsg{Err: err}
		}
		return SavedMsg{Lists: lists, Status: status}
	}
}

func (m Model) addList(name string) tea.Cmd {
	lists, list, err := userstore.AddList(m.working(), name)
	if err != nil {
		return statusCmd(err)
	}
	return m.save(lists, fmt.Sprintf("created %q", list.Name))
}

func (m Model) addItem(name string) tea.Cmd {
	lists := m.working()
	it, err := userstore.AddItem(lists, m.ListCursor, name, 0)
	if err != nil {
		return statusCmd(err)
	}
	return m.save(lists, fmt.Sprintf("added %q", it.Name))
}

func (m Model) toggleItem() tea.Cmd {
	if len(m.Lists) == 0 || len(m.Lists[m.ListCursor].Items) == 0 {
		return nil
	}
	lists := m.working()
	current := lists[m.ListCursor].Items[m.ItemCursor].Checked
	it, err := userstore.SetChecked(lists, m.ListCursor, m.ItemCursor, !current)
	if err != nil {
		return statusCmd(err)
	}
	verb := "unchecked"
	if it.Checked {
		verb = "checked"
	}
	return m.save(lists, fmt.Sprintf("%s %q", verb, it.Name))
}

func (m Model) deleteSelected() tea.Cmd {
	if len(m.Lists) == 0 {
		return nil
	}
	lists := m.working()
	if m.ActivePanel == PanelItems {
		it, err := userstore.RemoveItem(lists, m.ListCursor, m.ItemCursor)
		if err != nil {
			return statusCmd(err)
		}
		return m.save(lists, fmt.Sprintf("removed %q", it.Name))
	}
	lists, removed, err := userstore.RemoveList(lists, m.ListCursor)
	if err != nil {
		return statusCmd(err)
	}
	return m.save(lists, fmt.Sprintf("deleted list %q", removed.Name))
}

// statusMsg surfaces a validation error without treating it as fatal
type statusMsg string

func statusCmd(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg(err.Error()) }
}

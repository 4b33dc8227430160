// Package browse is the interactive list browser behind `basket browse`.
package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/theme"
	"github.com/marcus/basket/internal/userstore"
)

// Panel represents which panel is active
type Panel int

const (
	PanelLists Panel = iota
	PanelItems
)

// inputMode is what the text input is collecting, if anything
type inputMode int

const (
	inputNone inputMode = iota
	inputList
	inputItem
)

// Model is the Bubble Tea model for the browser
type Model struct {
	ctx      context.Context
	Store    *userstore.Store
	Identity string

	// Window dimensions
	Width  int
	Height int

	Lists []models.ShoppingList

	// UI state
	ActivePanel Panel
	ListCursor  int
	ItemCursor  int
	ShowHelp    bool
	Status      string // last action, shown in the footer
	Denial      string // gate message, shown until dismissed
	Err         error

	mode  inputMode
	input textinput.Model
}

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 10

// ListsLoadedMsg carries freshly loaded lists
type ListsLoadedMsg struct {
	Lists []models.ShoppingList
	Err   error
}

// SavedMsg reports the outcome of a save
type SavedMsg struct {
	Lists  []models.ShoppingList
	Status string
	Err    error
}

// NewModel creates a browser for identity's lists
func NewModel(ctx context.Context, store *userstore.Store, identity string, palette theme.Palette) Model {
	applyPalette(palette)

	ti := textinput.New()
	ti.CharLimit = 120
	ti.Prompt = "› "

	return Model{
		ctx:      ctx,
		Store:    store,
		Identity: identity,
		input:    ti,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadLists()
}

// Adding reports whether the text input is open
func (m Model) Adding() bool {
	return m.mode != inputNone
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case ListsLoadedMsg:
		m.Err = msg.Err
		if msg.Err == nil {
			m.Lists = msg.Lists
			m.clampCursors()
		}
		return m, nil

	case statusMsg:
		m.Status = string(msg)
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Lists = msg.Lists
		m.Status = msg.Status
		m.clampCursors()
		return m, nil
	}

	return m, nil
}

// handleKey processes key input while browsing
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.Denial != "" {
			m.Denial = ""
			return m, nil
		}
		if m.ActivePanel == PanelItems {
			m.ActivePanel = PanelLists
		}
		return m, nil

	case "tab":
		m.ActivePanel = (m.ActivePanel + 1) % 2
		return m, nil

	case "enter", "l", "right":
		if m.ActivePanel == PanelLists && len(m.Lists) > 0 {
			m.ActivePanel = PanelItems
			m.ItemCursor = 0
		}
		return m, nil

	case "h", "left":
		m.ActivePanel = PanelLists
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "n":
		if res := entitlement.CanCreateList(m.Identity, m.Lists); !res.Allowed {
			m.Denial = res.Message
			return m, nil
		}
		return m, m.openInput(inputList, "new list name")

	case "a":
		if len(m.Lists) == 0 {
			m.Status = "create a list first (n)"
			return m, nil
		}
		if res := entitlement.CanAddItem(m.Identity, m.Lists, m.ListCursor); !res.Allowed {
			m.Denial = res.Message
			return m, nil
		}
		return m, m.openInput(inputItem, "item name")

	case "x", " ":
		if m.ActivePanel != PanelItems {
			return m, nil
		}
		return m, m.toggleItem()

	case "d":
		return m, m.deleteSelected()

	case "r":
		return m, m.loadLists()

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

// handleInputKey processes key input while the text input is open
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.closeInput()
		if mode == inputList {
			return m, m.addList(value)
		}
		return m, m.addItem(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openInput(mode inputMode, placeholder string) tea.Cmd {
	m.mode = mode
	m.Denial = ""
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) moveCursor(delta int) {
	if m.ActivePanel == PanelLists {
		m.ListCursor += delta
		m.ItemCursor = 0
	} else {
		m.ItemCursor += delta
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.ListCursor = clamp(m.ListCursor, len(m.Lists))
	if len(m.Lists) == 0 {
		m.ItemCursor = 0
		m.ActivePanel = PanelLists
		return
	}
	m.ItemCursor = clamp(m.ItemCursor, len(m.Lists[m.ListCursor].Items))
}

func clamp(v, n int) int {
	if n == 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

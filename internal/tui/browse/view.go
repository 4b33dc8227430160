package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/basket/internal/entitlement"
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()

	bodyHeight := m.Height - 4
	listWidth := m.Width / 3
	itemWidth := m.Width - listWidth - 4

	lists := m.renderListsPanel(listWidth, bodyHeight)
	items := m.renderItemsPanel(itemWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, lists, items)

	base := lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())

	if m.Denial != "" {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			denialStyle.Render(m.Denial+"\n\n"+helpStyle.Render("esc to dismiss")))
	}
	return base
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder
	s.WriteString("basket (resize for full view)\n\n")
	for i, l := range m.Lists {
		marker := "  "
		if i == m.ListCursor {
			marker = "> "
		}
		s.WriteString(fmt.Sprintf("%s%s (%d)\n", marker, l.Name, len(l.Items)))
	}
	if m.Denial != "" {
		s.WriteString("\n" + m.Denial + "\n")
	}
	s.WriteString("\nq:quit ?:help")
	return s.String()
}

func (m Model) renderHeader() string {
	name := m.Identity
	if name == "" {
		name = "guest"
	}
	tier := entitlement.TierOf(m.Identity)
	badge := string(tier)
	if entitlement.IsPremium(m.Identity) {
		badge = "💎 " + badge
	}
	return headerStyle.Width(m.Width).Render(fmt.Sprintf("basket · %s · %s", name, badge))
}

func (m Model) renderListsPanel(width, height int) string {
	var s strings.Builder
	s.WriteString(panelTitleStyle.Render("Lists"))
	s.WriteString("\n")

	if len(m.Lists) == 0 {
		s.WriteString(subtleStyle.Render("no lists, press n"))
	}
	for i, l := range m.Lists {
		line := fmt.Sprintf("%d. %s", i+1, l.Name)
		count := fmt.Sprintf(" %d/%d", l.CheckedCount(), len(l.Items))
		line = ansi.Truncate(line, max(width-len(count)-4, 4), "…")
		if i == m.ListCursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		s.WriteString(line + subtleStyle.Render(count) + "\n")
	}

	style := panelStyle
	if m.ActivePanel == PanelLists {
		style = activePanelStyle
	}
	return style.Width(width).Height(height).Render(s.String())
}

func (m Model) renderItemsPanel(width, height int) string {
	var s strings.Builder

	if len(m.Lists) == 0 {
		s.WriteString(panelTitleStyle.Render("Items"))
	} else {
		list := m.Lists[m.ListCursor]
		s.WriteString(panelTitleStyle.Render(ansi.Truncate(list.Name, max(width-4, 4), "…")))
		s.WriteString("\n")
		if len(list.Items) == 0 {
			s.WriteString(subtleStyle.Render("empty, press a to add"))
		}
		for i, it := range list.Items {
			box := "[ ]"
			name := it.Name
			if it.Checked {
				box = doneStyle.Render("[x]")
				name = checkedStyle.Render(name)
			}
			if it.Quantity > 1 {
				name += subtleStyle.Render(fmt.Sprintf(" ×%d", it.Quantity))
			}
			cursor := "  "
			if m.ActivePanel == PanelItems && i == m.ItemCursor {
				cursor = selectedStyle.Render("› ")
			}
			s.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, name))
		}
	}

	if m.Adding() {
		s.WriteString("\n")
		s.WriteString(m.input.View())
	}

	style := panelStyle
	if m.ActivePanel == PanelItems {
		style = activePanelStyle
	}
	return style.Width(width).Height(height).Render(s.String())
}

func (m Model) renderFooter() string {
	if m.Err != nil {
		return errStyle.Render("Error: " + m.Err.Error())
	}
	keys := "n:new list  a:add item  x:check  d:delete  tab:switch  ?:help  q:quit"
	if m.Adding() {
		keys = "enter:save  esc:cancel"
	}
	if m.Status != "" {
		return subtleStyle.Render(m.Status) + "  " + helpStyle.Render(keys)
	}
	return helpStyle.Render(keys)
}

func (m Model) renderHelp() string {
	help := `basket browse

  j/k, ↑/↓    move
  enter, l    open list
  h, esc      back to lists
  tab         switch panel
  n           new list
  a           add item to selected list
  x, space    check / uncheck item
  d           delete selected item or list
  r           reload
  ?           toggle help
  q           quit`
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		panelStyle.Render(help))
}

// Package output provides styled terminal output helpers (success, error,
// denial, list and item formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/theme"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DefaultAccent))
	premiumStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	deniedStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1)

	palette = theme.NewView().Palette()
)

// UseTheme restyles accent-bearing output with the given palette.
func UseTheme(p theme.Palette) {
	palette = p
	accentStyle = lipgloss.NewStyle().Foreground(p.Accent)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	subtleStyle = lipgloss.NewStyle().Foreground(p.Muted)
	deniedStyle = deniedStyle.BorderForeground(p.AccentDark)
	if p.Dark {
		markdownStyle = "dark"
	} else {
		markdownStyle = ""
	}
}

// CurrentPalette returns the palette installed by UseTheme.
func CurrentPalette() theme.Palette {
	return palette
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Denied prints an entitlement denial. The message is shown verbatim.
func Denied(message string) {
	fmt.Println(FormatDenied(message))
}

// FormatDenied boxes a denial message without altering its text.
func FormatDenied(message string) string {
	return deniedStyle.Render(message)
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output
const (
	ErrCodeNotFound      = "not_found"
	ErrCodeInvalidInput  = "invalid_input"
	ErrCodeDenied        = "denied"
	ErrCodeNotSignedIn   = "not_signed_in"
	ErrCodeDatabaseError = "database_error"
)

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	result := map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
	data, _ := json.Marshal(result)
	fmt.Println(string(data))
}

// Badge renders the tier badge shown next to the user name.
func Badge(tier models.Tier) string {
	if tier == models.TierPremium {
		return premiumStyle.Render("💎 Premium")
	}
	return subtleStyle.Render("Free")
}

// FormatListShort formats a list as one numbered line, truncated to width
// when width > 0. Numbers are 1-based.
func FormatListShort(n int, list models.ShoppingList, width int) string {
	name := list.Name
	counts := fmt.Sprintf("%d items", len(list.Items))
	if done := list.CheckedCount(); done > 0 {
		counts = fmt.Sprintf("%d items, %d checked", len(list.Items), done)
	}
	if width > 0 {
		room := width - len(counts) - 8
		if room < 8 {
			room = 8
		}
		name = ansi.Truncate(name, room, "…")
	}
	return fmt.Sprintf("%s  %s  %s",
		accentStyle.Render(fmt.Sprintf("%2d.", n)),
		titleStyle.Render(name),
		subtleStyle.Render(counts))
}

// FormatItem formats an item as a checkbox line. Numbers are 1-based.
func FormatItem(n int, item models.Item) string {
	box := "[ ]"
	name := item.Name
	if item.Checked {
		box = successStyle.Render("[x]")
		name = subtleStyle.Strikethrough(true).Render(name)
	}
	line := fmt.Sprintf("  %s %2d. %s", box, n, name)
	if item.Quantity > 1 {
		line += subtleStyle.Render(fmt.Sprintf(" ×%d", item.Quantity))
	}
	return line
}

// FormatListLong formats a list header followed by every item.
func FormatListLong(n int, list models.ShoppingList) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%d. %s", n, list.Name)))
	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render(fmt.Sprintf("created %s · %d/%d checked",
		FormatTimeAgo(list.CreatedAt), list.CheckedCount(), len(list.Items))))
	sb.WriteString("\n")
	if len(list.Items) == 0 {
		sb.WriteString(subtleStyle.Render("  (no items)"))
		sb.WriteString("\n")
	}
	for i, it := range list.Items {
		sb.WriteString(FormatItem(i+1, it))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTimeAgo formats a time as a human-readable "ago" string
func FormatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// SectionHeader returns a formatted section header for CLI output
// e.g., "\nLIMITS:\n"
func SectionHeader(title string) string {
	return fmt.Sprintf("\n%s:\n", strings.ToUpper(title))
}

// BulletList formats items as a bulleted list with optional indentation
func BulletList(items []string, indent int) []string {
	prefix := strings.Repeat(" ", indent)
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = prefix + "- " + item
	}
	return result
}

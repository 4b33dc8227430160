package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/marcus/basket/internal/entitlement"
)

const defaultBarWidth = 30

// UsageBar renders list usage against the Free allowance as a progress bar
// in the current accent gradient.
func UsageBar(s entitlement.Summary, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	bar := progress.New(
		progress.WithGradient(string(palette.Accent), string(palette.AccentDark)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(s.Usage())
}

// FormatSummary renders the account limits panel.
func FormatSummary(s entitlement.Summary, width int) string {
	var sb strings.Builder

	name := s.Identity
	if name == "" {
		name = subtleStyle.Render("(not signed in)")
	}
	sb.WriteString(fmt.Sprintf("%s  %s\n", titleStyle.Render(name), Badge(s.Tier)))

	sb.WriteString(SectionHeader("limits"))
	if s.Unlimited {
		sb.WriteString(fmt.Sprintf("  Lists: %d (unlimited)\n", s.ListsUsed))
		sb.WriteString("  Items per list: unlimited\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("  Lists: %d/%d  %s\n", s.ListsUsed, s.MaxLists, UsageBar(s, width)))
	sb.WriteString(fmt.Sprintf("  Lists left: %d\n", s.ListsLeft))
	sb.WriteString(fmt.Sprintf("  Items per list: %d\n", s.MaxItemsPerList))
	return sb.String()
}

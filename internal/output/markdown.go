package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	narrowest     = 20
)

// markdownStyle is a glamour standard style name set by UseTheme; empty
// lets glamour detect the terminal background.
var markdownStyle string

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, then $COLUMNS, then 80.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return fallbackWidth
}

// RenderMarkdown renders text with glamour, wrapped at width columns.
// A width of 0 or less uses the terminal width.
func RenderMarkdown(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width <= 0 {
		width = TerminalWidth()
	}
	width = max(width, narrowest)

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if markdownStyle != "" {
		opts = append(opts, glamour.WithStandardStyle(markdownStyle))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}

	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

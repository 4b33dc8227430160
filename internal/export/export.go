// Package export writes a user's lists as JSON or Markdown.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcus/basket/internal/models"
)

// Document is the JSON export envelope.
type Document struct {
	Identity   string                `json:"identity"`
	Tier       models.Tier           `json:"tier"`
	ExportedAt time.Time             `json:"exported_at"`
	Lists      []models.ShoppingList `json:"lists"`
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	if doc.Lists == nil {
		doc.Lists = []models.ShoppingList{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// Markdown renders doc as a Markdown checklist.
func Markdown(doc Document) string {
	var sb strings.Builder

	owner := doc.Identity
	if owner == "" {
		owner = "guest"
	}
	fmt.Fprintf(&sb, "# Shopping lists for %s\n\n", owner)
	fmt.Fprintf(&sb, "_Exported %s_\n", doc.ExportedAt.Format("2006-01-02 15:04"))

	if len(doc.Lists) == 0 {
		sb.WriteString("\nNo lists yet.\n")
		return sb.String()
	}

	for _, list := range doc.Lists {
		fmt.Fprintf(&sb, "\n## %s\n\n", list.Name)
		if len(list.Items) == 0 {
			sb.WriteString("_empty_\n")
			continue
		}
		for _, it := range list.Items {
			mark := " "
			if it.Checked {
				mark = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s", mark, it.Name)
			if it.Quantity > 1 {
				fmt.Fprintf(&sb, " ×%d", it.Quantity)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// WriteMarkdown writes the Markdown rendering of doc.
func WriteMarkdown(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, Markdown(doc)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Write dispatches on format ("json" or "markdown").
func Write(w io.Writer, format string, doc Document) error {
	switch format {
	case "json":
		return WriteJSON(w, doc)
	case "markdown", "md":
		return WriteMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

package models

import (
	"time"
)

// Tier represents an account tier
type Tier string

const (
	TierFree    Tier = "Free"
	TierPremium Tier = "Premium"
)

// Feature is a premium-gated capability tag. Values outside the known
// constants are legal and treated as ungated.
type Feature string

const (
	FeatureDarkMode   Feature = "dark_mode"
	FeatureThemeColor Feature = "theme_color"
	FeatureExportData Feature = "export_data"
)

// FontSize represents a persisted font size class
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// IsValidFontSize reports whether s is a known font size class
func IsValidFontSize(s string) bool {
	switch FontSize(s) {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

// ShoppingList is one named list owned by a single identity
type ShoppingList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
}

// Item is a single entry on a shopping list
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity,omitempty"`
	Checked   bool      `json:"checked,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckedCount returns the number of checked items on the list
func (l ShoppingList) CheckedCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// Preferences holds the persisted presentation settings
type Preferences struct {
	DarkMode   bool     `json:"dark_mode"`
	ThemeColor string   `json:"theme_color,omitempty"`
	FontSize   FontSize `json:"font_size,omitempty"`
}

// Config represents the on-disk config file
type Config struct {
	ExportFormat  string `json:"export_format,omitempty"`  // json, markdown
	MarkdownWidth int    `json:"markdown_width,omitempty"` // 0 = terminal width
}

package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcus/basket/internal/kv"
	"github.com/marcus/basket/internal/models"
)

const (
	darkModeKey   = "darkMode"
	themeColorKey = "themeColor"
	fontSizeKey   = "fontSize"
)

// LoadPreferences reads the persisted presentation settings. Absent keys
// leave the zero value.
func LoadPreferences(ctx context.Context, store kv.Store) (models.Preferences, error) {
	var prefs models.Preferences

	dark, err := get(ctx, store, darkModeKey)
	if err != nil {
		return prefs, err
	}
	prefs.DarkMode = dark == "true"

	if prefs.ThemeColor, err = get(ctx, store, themeColorKey); err != nil {
		return prefs, err
	}

	size, err := get(ctx, store, fontSizeKey)
	if err != nil {
		return prefs, err
	}
	prefs.FontSize = models.FontSize(size)

	return prefs, nil
}

func get(ctx context.Context, store kv.Store, key string) (string, error) {
	v, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return v, nil
}

// SetDarkMode persists the dark mode flag. Off removes the key.
func SetDarkMode(ctx context.Context, store kv.Store, on bool) error {
	if !on {
		return store.Delete(ctx, darkModeKey)
	}
	return store.Set(ctx, darkModeKey, "true")
}

// SetThemeColor persists an accent color in #rrggbb form.
func SetThemeColor(ctx context.Context, store kv.Store, color string) error {
	if !ValidColor(color) {
		return fmt.Errorf("invalid color %q: want #rgb or #rrggbb", color)
	}
	return store.Set(ctx, themeColorKey, NormalizeColor(color))
}

// SetFontSize persists a font size class.
func SetFontSize(ctx context.Context, store kv.Store, size models.FontSize) error {
	if !models.IsValidFontSize(string(size)) {
		return fmt.Errorf("invalid font size %q: want small, medium or large", size)
	}
	return store.Set(ctx, fontSizeKey, string(size))
}

// ResetPreferences removes every presentation setting.
func ResetPreferences(ctx context.Context, store kv.Store) error {
	for _, key := range []string{darkModeKey, themeColorKey, fontSizeKey} {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

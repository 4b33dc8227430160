package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseHex accepts #rgb or #rrggbb, with or without the leading #.
func parseHex(color string) (colorful.Color, bool) {
	s := "#" + strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, false
	}
	if strings.ContainsFunc(s[1:], func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
	}) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	return c, err == nil
}

// ValidColor reports whether color is a #rgb or #rrggbb hex string.
func ValidColor(color string) bool {
	_, ok := parseHex(color)
	return ok
}

// NormalizeColor expands #rgb to #rrggbb and lowercases. Invalid input is
// returned trimmed but otherwise unchanged.
func NormalizeColor(color string) string {
	c, ok := parseHex(color)
	if !ok {
		return strings.TrimSpace(color)
	}
	return c.Hex()
}

// AdjustColor shifts each channel of a hex color by amount, clamping to
// [0,255], and re-encodes as #rrggbb. Short #rgb input is expanded first;
// input that does not parse as hex is treated as black.
func AdjustColor(color string, amount int) string {
	c, _ := parseHex(color)
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", clamp(int(r)+amount), clamp(int(g)+amount), clamp(int(b)+amount))
}

func clamp(v int) int {
	return max(0, min(255, v))
}

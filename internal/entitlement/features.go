package entitlement

import (
	"sort"
	"strings"

	"github.com/marcus/basket/internal/models"
)

// FeatureInfo describes a premium-gated feature.
type FeatureInfo struct {
	Feature     models.Feature
	Description string
	DenyMessage string
}

var (
	// DarkMode gates the dark presentation preference.
	DarkMode = FeatureInfo{
		Feature:     models.FeatureDarkMode,
		Description: "Dark presentation mode",
		DenyMessage: "Dark mode is a Premium feature.\n\nUpgrade to unlock! 💎",
	}

	// ThemeColor gates custom accent colors.
	ThemeColor = FeatureInfo{
		Feature:     models.FeatureThemeColor,
		Description: "Custom accent color",
		DenyMessage: "Custom theme colors are Premium features.\n\nUpgrade to unlock! 💎",
	}

	// ExportData gates exporting lists to a file.
	ExportData = FeatureInfo{
		Feature:     models.FeatureExportData,
		Description: "Export lists as JSON or Markdown",
		DenyMessage: "Data export is a Premium feature.\n\nUpgrade to unlock! 💎",
	}
)

var allFeatures = []FeatureInfo{
	DarkMode,
	ThemeColor,
	ExportData,
}

var featureIndex = buildFeatureIndex()

func buildFeatureIndex() map[models.Feature]FeatureInfo {
	index := make(map[models.Feature]FeatureInfo, len(allFeatures))
	for _, f := range allFeatures {
		index[f.Feature] = f
	}
	return index
}

func lookupFeature(f models.Feature) (FeatureInfo, bool) {
	info, ok := featureIndex[f]
	return info, ok
}

// ListFeatures returns all gated features sorted by tag.
func ListFeatures() []FeatureInfo {
	items := make([]FeatureInfo, len(allFeatures))
	copy(items, allFeatures)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Feature < items[j].Feature
	})
	return items
}

// ParseFeature normalizes a user-supplied tag. Dashes are accepted in place
// of underscores. The bool is false for tags outside the gated set; the
// returned Feature is still usable and will be allowed by CanUseFeature.
func ParseFeature(tag string) (models.Feature, bool) {
	f := models.Feature(strings.ReplaceAll(fold(tag), "-", "_"))
	_, ok := featureIndex[f]
	return f, ok
}


package entitlement

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/marcus/basket/internal/models"
)

func listsWithItems(counts ...int) []models.ShoppingList {
	lists := make([]models.ShoppingList, len(counts))
	for i, n := range counts {
		lists[i].Items = make([]models.Item, n)
	}
	return lists
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		identity string
		want     models.Tier
	}{
		{"premium", models.TierPremium},
		{"userpremium", models.TierPremium},
		{"PREMIUM", models.TierPremium},
		{"UserPremium", models.TierPremium},
		{" premium ", models.TierPremium},
		{"", models.TierFree},
		{"bob", models.TierFree},
		{"premium2", models.TierFree},
		{"user premium", models.TierFree},
	}

	for _, tt := range tests {
		if got := TierOf(tt.identity); got != tt.want {
			t.Errorf("TierOf(%q) = %s, want %s", tt.identity, got, tt.want)
		}
	}
}

func TestCanCreateList(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		lists    []models.ShoppingList
		allowed  bool
	}{
		{"free empty", "bob", nil, true},
		{"free two lists", "bob", listsWithItems(0, 0), true},
		{"free at limit", "bob", listsWithItems(0, 0, 0), false},
		{"free over limit", "bob", listsWithItems(0, 0, 0, 0), false},
		{"anonymous at limit", "", listsWithItems(0, 0, 0), false},
		{"premium at limit", "premium", listsWithItems(0, 0, 0), true},
		{"premium far over", "userpremium", listsWithItems(make([]int, 50)...), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanCreateList(tt.identity, tt.lists)
			if got.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", got.Allowed, tt.allowed)
			}
			if tt.allowed && got.Message != "" {
				t.Errorf("allowed result carries message %q", got.Message)
			}
			if !tt.allowed && !strings.Contains(got.Message, "limited to 3 lists") {
				t.Errorf("denial message should cite the limit: %q", got.Message)
			}
		})
	}
}

func TestCanAddItem(t *testing.T) {
	lists := listsWithItems(5, 4, 0)

	tests := []struct {
		name     string
		identity string
		index    int
		allowed  bool
	}{
		{"free full list", "bob", 0, false},
		{"free four items", "bob", 1, true},
		{"free empty list", "bob", 2, true},
		{"free index past end", "bob", 3, true},
		{"free negative index", "bob", -1, true},
		{"premium full list", "premium", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAddItem(tt.identity, lists, tt.index)
			if got.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", got.Allowed, tt.allowed)
			}
			if !tt.allowed && !strings.Contains(got.Message, "5 items per list") {
				t.Errorf("denial message should cite the limit: %q", got.Message)
			}
		})
	}
}

func TestCanUseFeature(t *testing.T) {
	for _, f := range []models.Feature{models.FeatureDarkMode, models.FeatureThemeColor, models.FeatureExportData} {
		got := CanUseFeature("bob", f)
		if got.Allowed {
			t.Errorf("free %s should be denied", f)
		}
		if !strings.Contains(got.Message, "Premium") {
			t.Errorf("free %s message should mention Premium: %q", f, got.Message)
		}
		if !CanUseFeature("premium", f).Allowed {
			t.Errorf("premium %s should be allowed", f)
		}
	}

	if !CanUseFeature("bob", "unknown_feature").Allowed {
		t.Error("unknown feature should be allowed for free tier")
	}
	if !CanUseFeature("", "").Allowed {
		t.Error("empty feature tag should be allowed")
	}
}

func TestFeatureMessagesAreDistinct(t *testing.T) {
	seen := map[string]models.Feature{}
	for _, f := range ListFeatures() {
		msg := CanUseFeature("", f.Feature).Message
		if prev, ok := seen[msg]; ok {
			t.Errorf("%s and %s share message %q", prev, f.Feature, msg)
		}
		seen[msg] = f.Feature
	}
}

func TestParseFeature(t *testing.T) {
	tests := []struct {
		tag   string
		want  models.Feature
		known bool
	}{
		{"dark_mode", models.FeatureDarkMode, true},
		{"Dark-Mode", models.FeatureDarkMode, true},
		{" export_data ", models.FeatureExportData, true},
		{"theme-color", models.FeatureThemeColor, true},
		{"font_size", "font_size", false},
		{"EXPORT-DATA", models.FeatureExportData, true},
		// U+017F folds to "s" but has no lowercase mapping
		{"ſtripe", "stripe", false},
	}

	for _, tt := range tests {
		got, ok := ParseFeature(tt.tag)
		if got != tt.want || ok != tt.known {
			t.Errorf("ParseFeature(%q) = %q, %v; want %q, %v", tt.tag, got, ok, tt.want, tt.known)
		}
	}
}

func TestListFeaturesSorted(t *testing.T) {
	fs := ListFeatures()
	if len(fs) != 3 {
		t.Fatalf("ListFeatures returned %d features, want 3", len(fs))
	}
	for i := 1; i < len(fs); i++ {
		if fs[i-1].Feature > fs[i].Feature {
			t.Errorf("features not sorted: %s before %s", fs[i-1].Feature, fs[i].Feature)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("free", func(t *testing.T) {
		s := Summarize("bob", listsWithItems(1, 2))
		if s.Tier != models.TierFree || s.Unlimited {
			t.Fatalf("unexpected tier: %+v", s)
		}
		if s.ListsUsed != 2 || s.ListsLeft != 1 || s.MaxLists != 3 || s.MaxItemsPerList != 5 {
			t.Errorf("unexpected counts: %+v", s)
		}
		if u := s.Usage(); u < 0.66 || u > 0.67 {
			t.Errorf("Usage = %v, want ~0.667", u)
		}
	})

	t.Run("free over limit clamps", func(t *testing.T) {
		s := Summarize("", listsWithItems(0, 0, 0, 0, 0))
		if s.ListsLeft != 0 {
			t.Errorf("ListsLeft = %d, want 0", s.ListsLeft)
		}
		if s.Usage() != 1 {
			t.Errorf("Usage = %v, want 1", s.Usage())
		}
	})

	t.Run("premium", func(t *testing.T) {
		s := Summarize("Premium", listsWithItems(0, 0, 0, 0))
		if !s.Unlimited || s.Tier != models.TierPremium {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if s.MaxLists != 0 || s.Usage() != 0 {
			t.Errorf("premium summary should carry no limits: %+v", s)
		}
	})
}

func TestSummaryJSONKeepsZeroListsLeft(t *testing.T) {
	data, err := json.Marshal(Summarize("bob", listsWithItems(0, 0, 0)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := got["lists_left"]; !ok || v != float64(0) {
		t.Errorf("lists_left = %v (present %v), want 0 in %s", v, ok, data)
	}
	if got["unlimited"] != false {
		t.Errorf("unlimited = %v, want false", got["unlimited"])
	}
}

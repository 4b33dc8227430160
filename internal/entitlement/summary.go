package entitlement

import "github.com/marcus/basket/internal/models"

// Summary is the account overview shown by `basket account`.
type Summary struct {
	Identity        string      `json:"identity"`
	Tier            models.Tier `json:"tier"`
	Unlimited       bool        `json:"unlimited"`
	ListsUsed       int         `json:"lists_used"`
	MaxLists        int         `json:"max_lists,omitempty"`
	ListsLeft       int         `json:"lists_left"`
	MaxItemsPerList int         `json:"max_items_per_list,omitempty"`
}

// Summarize reports usage against the Free limits. Premium summaries carry
// no limits. ListsLeft never goes negative, even for data stored past the
// limit through an ungated path.
func Summarize(identity string, lists []models.ShoppingList) Summary {
	s := Summary{
		Identity:  identity,
		Tier:      TierOf(identity),
		ListsUsed: len(lists),
	}
	if s.Tier == models.TierPremium {
		s.Unlimited = true
		return s
	}
	s.MaxLists = FreeLimits.MaxLists
	s.MaxItemsPerList = FreeLimits.MaxItemsPerList
	s.ListsLeft = max(FreeLimits.MaxLists-len(lists), 0)
	return s
}

// Usage returns the fraction of the list allowance in use, clamped to [0,1].
// Premium accounts always report 0.
func (s Summary) Usage() float64 {
	if s.Unlimited || s.MaxLists <= 0 {
		return 0
	}
	return min(float64(s.ListsUsed)/float64(s.MaxLists), 1)
}

// PremiumBenefits lists what an upgrade unlocks.
func PremiumBenefits() []string {
	return []string{
		"Unlimited lists & items",
		"No advertisements",
		"Dark mode & custom themes",
		"Export & backup data",
		"Priority support",
	}
}

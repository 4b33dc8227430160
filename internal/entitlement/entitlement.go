// Package entitlement decides whether an action is permitted for an identity
// given its tier and current data volume. Every function here is pure: the
// caller loads lists, asks the gate, and only then mutates storage.
package entitlement

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/models"
	"golang.org/x/text/cases"
)

// LimitPolicy caps Free-tier data volume.
type LimitPolicy struct {
	MaxLists        int
	MaxItemsPerList int
}

// FreeLimits applies to every identity outside the premium set.
var FreeLimits = LimitPolicy{
	MaxLists:        3,
	MaxItemsPerList: 5,
}

// premiumIdentities holds case-folded identities with Premium tier.
var premiumIdentities = map[string]struct{}{
	"userpremium": {},
	"premium":     {},
}

// Result is the outcome of a gate check. A denied Result carries a message
// meant to be shown to the user verbatim.
type Result struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

// Allow returns an allowed Result
func Allow() Result {
	return Result{Allowed: true}
}

// Deny returns a denied Result carrying msg
func Deny(msg string) Result {
	return Result{Allowed: false, Message: msg}
}

// fold trims s and applies Unicode case folding. Identities and feature
// tags are both compared in folded form.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// TierOf derives the tier from identity alone. An empty identity is Free.
func TierOf(identity string) models.Tier {
	if identity == "" {
		return models.TierFree
	}
	if _, ok := premiumIdentities[fold(identity)]; ok {
		return models.TierPremium
	}
	return models.TierFree
}

// IsPremium reports whether identity has the Premium tier
func IsPremium(identity string) bool {
	return TierOf(identity) == models.TierPremium
}

// CanCreateList checks the Free-tier list count limit.
func CanCreateList(identity string, lists []models.ShoppingList) Result {
	if IsPremium(identity) {
		return Allow()
	}
	if len(lists) >= FreeLimits.MaxLists {
		return Deny(fmt.Sprintf(
			"Free accounts are limited to %d lists.\n\nUpgrade to Premium for unlimited lists! 💎",
			FreeLimits.MaxLists))
	}
	return Allow()
}

// CanAddItem checks the Free-tier per-list item limit. An index that does not
// reference an existing list is allowed: there is nothing to overflow.
func CanAddItem(identity string, lists []models.ShoppingList, listIndex int) Result {
	if IsPremium(identity) {
		return Allow()
	}
	if listIndex < 0 || listIndex >= len(lists) {
		return Allow()
	}
	if len(lists[listIndex].Items) >= FreeLimits.MaxItemsPerList {
		return Deny(fmt.Sprintf(
			"Free accounts are limited to %d items per list.\n\nUpgrade to Premium for unlimited items! 💎",
			FreeLimits.MaxItemsPerList))
	}
	return Allow()
}

// CanUseFeature checks a premium-only feature. Unrecognized feature tags are
// allowed.
func CanUseFeature(identity string, feature models.Feature) Result {
	if IsPremium(identity) {
		return Allow()
	}
	info, ok := lookupFeature(feature)
	if !ok {
		return Allow()
	}
	return Deny(info.DenyMessage)
}

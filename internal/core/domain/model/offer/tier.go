package offer

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Tier represents the package level of an offer.
// Every offer publishes up to three tiers with increasing scope and price.
//
// Tier is a value object that validates the closed set of levels and
// provides string representations for persistence and display.
type Tier int

const (
	// TierUnknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	TierUnknown Tier = iota

	// TierBasic is the entry-level package of an offer.
	TierBasic

	// TierStandard is the mid-level package of an offer.
	TierStandard

	// TierPremium is the top-level package of an offer.
	TierPremium
)

// getTierStrings returns a map of Tier values to their string representations.
// All tiers are included for string conversion.
func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:  "unknown",
		TierBasic:    "basic",
		TierStandard: "standard",
		TierPremium:  "premium",
	}
}

// getValidTierStrings returns a map of only valid Tier values.
// Only valid tiers are included to support validation.
func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[Tier]string{
		TierBasic:    "basic",
		TierStandard: "standard",
		TierPremium:  "premium",
	}
}

// TierFromString parses a tier from its wire representation
// ("basic", "standard" or "premium"). Returns an error for any other value.
func TierFromString(s string) (Tier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause("tier", fmt.Errorf("%q is not a valid tier", s))
}

// Validate checks if the Tier value is valid.
//
// Valid tiers are: TierBasic, TierStandard, TierPremium.
// TierUnknown (0) and any other values are invalid.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
//
// Returns "basic", "standard" or "premium" for valid tiers and "unknown"
// for invalid tier values. Implements the fmt.Stringer interface and is
// safe to call on any Tier value.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Package compat produces plain-language compatibility explanations between
// two preference vectors. Pure functions, no numeric scoring: the 0-100
// score shown next to the explanation comes from the ranking service and is
// opaque input here.
package compat

import (
	"strings"

	"github.com/someday-app/matchengine/internal/domain/preference"
)

// Insight texts, ranked by tier within each dimension.
const (
	budgetExact = "Strong financial alignment - you share similar views on wedding spending, " +
		"a key predictor of long-term compatibility"
	budgetClose = "Close financial perspectives - your budget expectations are within a comfortable range"
	guestsExact = "Matching social styles - you both envision similar celebration sizes, " +
		"suggesting compatible approaches to community"
	venueExact = "Aesthetic harmony - your venue preferences reveal aligned personality traits and values"
	familyClose = "Compatible boundary styles - you share similar views on family involvement " +
		"in major decisions"
	fallback = "Complementary differences - your varied preferences could bring balance " +
		"and fresh perspectives to the relationship"
)

// Explain compares two vectors into one explanation paragraph. Insights keep
// a fixed field order (budget, guests, venue, family); when no dimension
// aligns, exactly one fallback insight is emitted, so the result is never
// empty.
func Explain(a, b preference.Vector) string {
	var insights []string

	if a.BudgetTier() == b.BudgetTier() {
		insights = append(insights, budgetExact)
	} else if budgetDistance(a.BudgetTier(), b.BudgetTier()) <= 1 {
		insights = append(insights, budgetClose)
	}

	// Guest count contributes on exact match only: close-but-different sizes
	// read as a disagreement to users, so no partial-credit tier.
	if a.GuestCount() == b.GuestCount() {
		insights = append(insights, guestsExact)
	}

	if a.VenueVibe() == b.VenueVibe() {
		insights = append(insights, venueExact)
	}

	if involvementDistance(a.FamilyInvolvement(), b.FamilyInvolvement()) <= 1 {
		insights = append(insights, familyClose)
	}

	if len(insights) == 0 {
		insights = append(insights, fallback)
	}

	return strings.Join(insights, ". ") + "."
}

// budgetDistance is the absolute index distance on the ordered 4-point scale.
// Invalid tiers are treated as maximally distant.
func budgetDistance(a, b preference.BudgetTier) int {
	const maxDistance = 3
	if a.Index() < 0 || b.Index() < 0 {
		return maxDistance + 1
	}
	d := a.Index() - b.Index()
	if d < 0 {
		d = -d
	}
	return d
}

func involvementDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d
}

// Package preference holds the wedding-vision preference vector: the
// four-field structured representation of a user's wedding-style preferences
// that drives narrative generation and compatibility scoring.
package preference

import (
	"errors"
	"fmt"
)

// ErrInvalidVector signals a preference vector with a missing or
// out-of-range field. Re-exported as domain.ErrInvalidVector; defined here
// to avoid an import cycle with the domain package.
var ErrInvalidVector = errors.New("invalid preference vector")

// BudgetTier is the wedding budget bracket (ordered scale).
type BudgetTier string

// Budget tier constants, from smallest to largest.
const (
	BudgetMicro    BudgetTier = "micro"    // under $5k
	BudgetModest   BudgetTier = "modest"   // $5k-$15k
	BudgetModerate BudgetTier = "moderate" // $15k-$40k
	BudgetLavish   BudgetTier = "lavish"   // $40k+
)

// IsValid checks if the tier is one of the supported values.
func (b BudgetTier) IsValid() bool {
	return b == BudgetMicro || b == BudgetModest || b == BudgetModerate || b == BudgetLavish
}

// Index returns the tier's position on the ordered scale, -1 if invalid.
func (b BudgetTier) Index() int {
	switch b {
	case BudgetMicro:
		return 0
	case BudgetModest:
		return 1
	case BudgetModerate:
		return 2
	case BudgetLavish:
		return 3
	}
	return -1
}

// GuestCount is the celebration size bracket (ordered scale).
type GuestCount string

// Guest count constants, from smallest to largest.
const (
	GuestsElopement GuestCount = "elopement" // just the two
	GuestsIntimate  GuestCount = "intimate"  // under 20
	GuestsMedium    GuestCount = "medium"    // 20-100
	GuestsLarge     GuestCount = "large"     // 100+
)

// IsValid checks if the count is one of the supported values.
func (g GuestCount) IsValid() bool {
	return g == GuestsElopement || g == GuestsIntimate || g == GuestsMedium || g == GuestsLarge
}

// Index returns the count's position on the ordered scale, -1 if invalid.
func (g GuestCount) Index() int {
	switch g {
	case GuestsElopement:
		return 0
	case GuestsIntimate:
		return 1
	case GuestsMedium:
		return 2
	case GuestsLarge:
		return 3
	}
	return -1
}

// VenueVibe is the venue atmosphere (unordered categorical; each value maps
// to one personality archetype).
type VenueVibe string

// Venue vibe constants.
const (
	VibeRustic    VenueVibe = "rustic"
	VibeModern    VenueVibe = "modern"
	VibeClassic   VenueVibe = "classic"
	VibeAdventure VenueVibe = "adventure"
)

// IsValid checks if the vibe is one of the supported values.
func (v VenueVibe) IsValid() bool {
	return v == VibeRustic || v == VibeModern || v == VibeClassic || v == VibeAdventure
}

// Family involvement bounds (inclusive).
const (
	MinInvolvement = 1
	MaxInvolvement = 5
)

// ClampInvolvement clamps a family involvement value to [1,5].
func ClampInvolvement(n int) int {
	if n < MinInvolvement {
		return MinInvolvement
	}
	if n > MaxInvolvement {
		return MaxInvolvement
	}
	return n
}

// Vector is the complete preference vector (immutable value object).
// Created once at onboarding completion; replaceable only by re-onboarding.
type Vector struct {
	budgetTier        BudgetTier
	guestCount        GuestCount
	venueVibe         VenueVibe
	familyInvolvement int
}

// New validates and creates a Vector. All four fields must be valid enum or
// range members; an incomplete vector fails with domain.ErrInvalidVector.
func New(budget BudgetTier, guests GuestCount, vibe VenueVibe, involvement int) (Vector, error) {
	if !budget.IsValid() {
		return Vector{}, fmt.Errorf("budget tier %q: %w", budget, ErrInvalidVector)
	}
	if !guests.IsValid() {
		return Vector{}, fmt.Errorf("guest count %q: %w", guests, ErrInvalidVector)
	}
	if !vibe.IsValid() {
		return Vector{}, fmt.Errorf("venue vibe %q: %w", vibe, ErrInvalidVector)
	}
	if involvement < MinInvolvement || involvement > MaxInvolvement {
		return Vector{}, fmt.Errorf(
			"family involvement %d out of range [%d,%d]: %w",
			involvement, MinInvolvement, MaxInvolvement, ErrInvalidVector,
		)
	}
	return Vector{
		budgetTier:        budget,
		guestCount:        guests,
		venueVibe:         vibe,
		familyInvolvement: involvement,
	}, nil
}

// Reconstruct creates a Vector without validation (storage hydration).
func Reconstruct(budget BudgetTier, guests GuestCount, vibe VenueVibe, involvement int) Vector {
	return Vector{
		budgetTier:        budget,
		guestCount:        guests,
		venueVibe:         vibe,
		familyInvolvement: involvement,
	}
}

// BudgetTier returns the budget bracket.
func (v Vector) BudgetTier() BudgetTier { return v.budgetTier }

// GuestCount returns the celebration size bracket.
func (v Vector) GuestCount() GuestCount { return v.guestCount }

// VenueVibe returns the venue atmosphere.
func (v Vector) VenueVibe() VenueVibe { return v.venueVibe }

// FamilyInvolvement returns the family involvement level (1-5).
func (v Vector) FamilyInvolvement() int { return v.familyInvolvement }

// IsComplete reports whether all four fields hold valid members. A vector
// built via New is always complete; a Reconstruct'ed one may not be.
func (v Vector) IsComplete() bool {
	return v.budgetTier.IsValid() && v.guestCount.IsValid() && v.venueVibe.IsValid() &&
		v.familyInvolvement >= MinInvolvement && v.familyInvolvement <= MaxInvolvement
}

// Validate returns domain.ErrInvalidVector if the vector is incomplete.
func (v Vector) Validate() error {
	_, err := New(v.budgetTier, v.guestCount, v.venueVibe, v.familyInvolvement)
	return err
}

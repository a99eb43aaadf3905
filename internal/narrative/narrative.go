// Package narrative converts a preference vector into a prose narrative and
// psychometric labels. Deterministic and pure: the narrative doubles as the
// embedding input for the external ranking service, so the same vector must
// always yield byte-identical output.
package narrative

import (
	"fmt"

	"github.com/someday-app/matchengine/internal/domain/preference"
)

// Generate returns the narrative paragraph for a complete vector. Fails with
// domain.ErrInvalidVector (wrapped) if the vector is incomplete.
func Generate(v preference.Vector) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"I envision %s %s. My ideal atmosphere %s. %s.",
		budgetClause(v.BudgetTier()),
		guestClause(v.GuestCount()),
		venueClause(v.VenueVibe()),
		familyClause(v.FamilyInvolvement()),
	), nil
}

func budgetClause(b preference.BudgetTier) string {
	switch b {
	case preference.BudgetMicro:
		return "an intimate, budget-conscious celebration under $5,000, prioritizing connection over spectacle"
	case preference.BudgetModest:
		return "a meaningful celebration between $5,000 and $15,000, valuing substance over extravagance"
	case preference.BudgetModerate:
		return "a beautiful, balanced celebration between $15,000 and $40,000, blending elegance with practicality"
	case preference.BudgetLavish:
		return "a grand celebration where budget is secondary to vision, creating an unforgettable experience"
	}
	return ""
}

func guestClause(g preference.GuestCount) string {
	switch g {
	case preference.GuestsElopement:
		return "with just the two of us, prioritizing intimacy over audience"
	case preference.GuestsIntimate:
		return "with only our closest loved ones (under 20 people), keeping the circle small and meaningful"
	case preference.GuestsMedium:
		return "with friends and family (20-100 people), balancing intimacy with community celebration"
	case preference.GuestsLarge:
		return "with everyone we love (100+ people), embracing a grand celebration of our community"
	}
	return ""
}

func venueClause(v preference.VenueVibe) string {
	switch v {
	case preference.VibeRustic:
		return "is authentic and connected to nature - think barns, vineyards, or forest clearings. I value genuineness over glamour"
	case preference.VibeModern:
		return "is sleek and contemporary - rooftops, galleries, or minimalist spaces. I appreciate efficiency and clean aesthetics"
	case preference.VibeClassic:
		return "is timeless and traditional - elegant ballrooms, historic estates, or classic churches. I honor heritage and established customs"
	case preference.VibeAdventure:
		return "is unconventional and experience-driven - mountaintops, beaches, or surprise destinations. I prioritize adventure over convention"
	}
	return ""
}

func familyClause(n int) string {
	switch preference.ClampInvolvement(n) {
	case 1:
		return "I strongly value independence and making decisions as a couple, with minimal family input on major choices"
	case 2:
		return "I prefer making decisions primarily as a couple, welcoming family opinions but maintaining boundaries"
	case 3:
		return "I balance family involvement with personal autonomy, valuing input while maintaining final say"
	case 4:
		return "I appreciate significant family involvement and consider their perspectives important in major decisions"
	default:
		return "I deeply value family input and tradition, seeing our families as integral to major life decisions"
	}
}

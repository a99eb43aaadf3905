package narrative

import "github.com/someday-app/matchengine/internal/domain/preference"

// Signals are the four categorical psychometric labels derived from a
// preference vector. Display-only: they never feed back into matching math.
type Signals struct {
	FinancialWorldview   string
	SocialStyle          string
	AestheticPersonality string
	BoundaryStyle        string
}

// PsychometricSignals returns one label per preference field. Total over all
// enum values; family involvement is clamped to [1,5].
func PsychometricSignals(v preference.Vector) Signals {
	return Signals{
		FinancialWorldview:   financialSignal(v.BudgetTier()),
		SocialStyle:          socialSignal(v.GuestCount()),
		AestheticPersonality: aestheticSignal(v.VenueVibe()),
		BoundaryStyle:        boundarySignal(v.FamilyInvolvement()),
	}
}

func financialSignal(b preference.BudgetTier) string {
	switch b {
	case preference.BudgetMicro:
		return "Pragmatic & minimalist"
	case preference.BudgetModest:
		return "Balanced & value-conscious"
	case preference.BudgetModerate:
		return "Quality-focused & practical"
	case preference.BudgetLavish:
		return "Experience-prioritizing & generous"
	}
	return "Balanced & value-conscious"
}

func socialSignal(g preference.GuestCount) string {
	switch g {
	case preference.GuestsElopement:
		return "Deeply private & couple-centric"
	case preference.GuestsIntimate:
		return "Selective & quality-focused connections"
	case preference.GuestsMedium:
		return "Community-oriented & balanced"
	case preference.GuestsLarge:
		return "Extroverted & inclusive"
	}
	return "Community-oriented & balanced"
}

func aestheticSignal(v preference.VenueVibe) string {
	switch v {
	case preference.VibeRustic:
		return "INFP - Authentic & nature-connected"
	case preference.VibeModern:
		return "INTJ - Efficient & status-aware"
	case preference.VibeClassic:
		return "ISFJ - Traditional & security-seeking"
	case preference.VibeAdventure:
		return "ESTP - Experience-driven & independent"
	}
	return "INFP - Authentic & nature-connected"
}

func boundarySignal(n int) string {
	switch preference.ClampInvolvement(n) {
	case 1:
		return "Highly autonomous"
	case 2:
		return "Independence-leaning"
	case 3:
		return "Balanced integration"
	case 4:
		return "Family-connected"
	default:
		return "Deeply family-integrated"
	}
}

package profile

import (
	"time"

	domprof "github.com/someday-app/matchengine/internal/domain/profile"
	"github.com/someday-app/matchengine/internal/domain/preference"
)

// profileDTO is the stored JSON shape of a profile.
type profileDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender"`
	Seeking           string    `json:"seeking"`
	Location          string    `json:"location"`
	BudgetTier        string    `json:"budget_tier"`
	GuestCount        string    `json:"guest_count"`
	VenueVibe         string    `json:"venue_vibe"`
	FamilyInvolvement int       `json:"family_involvement"`
	Narrative         string    `json:"narrative,omitempty"`
	Embedding         []float32 `json:"embedding,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toDTO(p *domprof.Profile) profileDTO {
	return profileDTO{
		ID:                p.ID(),
		Name:              p.Name(),
		Age:               p.Age(),
		Gender:            string(p.Gender()),
		Seeking:           string(p.Seeking()),
		Location:          p.Location(),
		BudgetTier:        string(p.Vector().BudgetTier()),
		GuestCount:        string(p.Vector().GuestCount()),
		VenueVibe:         string(p.Vector().VenueVibe()),
		FamilyInvolvement: p.Vector().FamilyInvolvement(),
		Narrative:         p.Narrative(),
		Embedding:         p.Embedding(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func fromDTO(d profileDTO) domprof.Profile {
	vec := preference.Reconstruct(
		preference.BudgetTier(d.BudgetTier),
		preference.GuestCount(d.GuestCount),
		preference.VenueVibe(d.VenueVibe),
		d.FamilyInvolvement,
	)
	return domprof.Reconstruct(
		d.ID, d.Name, d.Age,
		domprof.Gender(d.Gender), domprof.Gender(d.Seeking), d.Location,
		vec, d.Narrative, d.Embedding, d.CreatedAt, d.UpdatedAt,
	)
}

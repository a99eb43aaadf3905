package swipe

import (
	"time"

	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// recordDTO is the stored JSON shape of a swipe record.
type recordDTO struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	TargetID           string    `json:"target_id"`
	Liked              bool      `json:"liked"`
	CompatibilityScore float64   `json:"compatibility_score"`
	CreatedAt          time.Time `json:"created_at"`
}

func toDTO(r domswipe.Record) recordDTO {
	return recordDTO{
		ID:                 r.ID(),
		UserID:             r.UserID(),
		TargetID:           r.TargetID(),
		Liked:              r.Liked(),
		CompatibilityScore: r.CompatibilityScore(),
		CreatedAt:          r.CreatedAt(),
	}
}

func fromDTO(d recordDTO) domswipe.Record {
	return domswipe.Reconstruct(d.ID, d.UserID, d.TargetID, d.Liked, d.CompatibilityScore, d.CreatedAt)
}

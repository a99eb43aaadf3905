package match

import (
	"time"

	dommatch "github.com/someday-app/matchengine/internal/domain/match"
)

// matchDTO is the stored JSON shape of a match.
type matchDTO struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	CounterpartyID     string    `json:"counterparty_id"`
	CompatibilityScore float64   `json:"compatibility_score"`
	Explanation        string    `json:"explanation"`
	MatchedAt          time.Time `json:"matched_at"`
}

func toDTO(m dommatch.Match) matchDTO {
	return matchDTO{
		ID:                 m.ID(),
		UserID:             m.UserID(),
		CounterpartyID:     m.CounterpartyID(),
		CompatibilityScore: m.CompatibilityScore(),
		Explanation:        m.Explanation(),
		MatchedAt:          m.MatchedAt(),
	}
}

func fromDTO(d matchDTO) dommatch.Match {
	return dommatch.Reconstruct(
		d.ID, d.UserID, d.CounterpartyID, d.CompatibilityScore, d.Explanation, d.MatchedAt,
	)
}

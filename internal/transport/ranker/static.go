// Package ranker provides a static Ranker implementation for local and demo
// deployments. Production wires the external ranking service instead.
package ranker

import (
	"context"

	"github.com/someday-app/matchengine/internal/domain"
	"github.com/someday-app/matchengine/internal/domain/preference"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// Static serves a fixed, similarity-ordered candidate pool.
type Static struct {
	pool []domain.Candidate
}

// NewStatic creates a static ranker with the built-in demo pool.
func NewStatic() *Static {
	return &Static{pool: demoPool()}
}

// Rank implements usecase/feed.Ranker. The requesting user is filtered from
// the pool; the rest passes through in similarity order.
func (s *Static) Rank(_ context.Context, p domprof.Profile, limit int) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, 0, limit)
	for _, c := range s.pool {
		if c.ID == p.ID() {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func demoPool() []domain.Candidate {
	vec := func(b preference.BudgetTier, g preference.GuestCount, v preference.VenueVibe, f int) preference.Vector {
		return preference.Reconstruct(b, g, v, f)
	}
	return []domain.Candidate{
		{
			ID: "cand-1", Name: "Alex", Age: 28, Location: "Austin, TX", Similarity: 0.92,
			Vector: vec(preference.BudgetModest, preference.GuestsIntimate, preference.VibeRustic, 3),
		},
		{
			ID: "cand-2", Name: "Jordan", Age: 31, Location: "Austin, TX", Similarity: 0.87,
			Vector: vec(preference.BudgetModerate, preference.GuestsMedium, preference.VibeModern, 2),
		},
		{
			ID: "cand-3", Name: "Taylor", Age: 26, Location: "Austin, TX", Similarity: 0.85,
			Vector: vec(preference.BudgetMicro, preference.GuestsElopement, preference.VibeAdventure, 1),
		},
		{
			ID: "cand-4", Name: "Morgan", Age: 29, Location: "Austin, TX", Similarity: 0.83,
			Vector: vec(preference.BudgetLavish, preference.GuestsLarge, preference.VibeClassic, 5),
		},
		{
			ID: "cand-5", Name: "Riley", Age: 27, Location: "Austin, TX", Similarity: 0.81,
			Vector: vec(preference.BudgetModest, preference.GuestsMedium, preference.VibeRustic, 4),
		},
		{
			ID: "cand-6", Name: "Casey", Age: 30, Location: "Austin, TX", Similarity: 0.79,
			Vector: vec(preference.BudgetModerate, preference.GuestsIntimate, preference.VibeModern, 3),
		},
		{
			ID: "cand-7", Name: "Quinn", Age: 25, Location: "Austin, TX", Similarity: 0.77,
			Vector: vec(preference.BudgetMicro, preference.GuestsElopement, preference.VibeAdventure, 2),
		},
		{
			ID: "cand-8", Name: "Avery", Age: 32, Location: "Austin, TX", Similarity: 0.75,
			Vector: vec(preference.BudgetLavish, preference.GuestsMedium, preference.VibeClassic, 4),
		},
	}
}

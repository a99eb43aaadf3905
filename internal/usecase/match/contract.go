package match

import (
	"context"

	dommatch "github.com/someday-app/matchengine/internal/domain/match"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// Repository defines the storage contract for matches.
type Repository interface {
	// Create persists the match unless the pair already has one; it returns
	// the effective match and whether this call created it.
	Create(ctx context.Context, m dommatch.Match) (dommatch.Match, bool, error)
	GetByPair(ctx context.Context, a, b string) (dommatch.Match, error)
	ListByUser(ctx context.Context, userID string) ([]dommatch.Match, error)
}

// SwipeReader reads swipe records for reciprocity checks.
type SwipeReader interface {
	GetPair(ctx context.Context, userID, targetID string) (domswipe.Record, error)
}

// ProfileReader reads profiles for explanation generation and listing.
type ProfileReader interface {
	Get(ctx context.Context, id string) (domprof.Profile, error)
}

// Notifier dispatches match notifications. Fire and forget: failures are the
// notifier's problem and never roll back a match.
type Notifier interface {
	MatchCreated(ctx context.Context, userID, counterpartyID, matchID string)
}

package swipe

import (
	"context"

	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// Repository defines the storage contract for the swipe ledger.
type Repository interface {
	Create(ctx context.Context, rec domswipe.Record) error
	ExistsPair(ctx context.Context, userID, targetID string) (bool, error)
	Last(ctx context.Context, userID string) (domswipe.Record, error)
	Remove(ctx context.Context, rec domswipe.Record) error
}

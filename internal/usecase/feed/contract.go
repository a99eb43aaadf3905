package feed

import (
	"context"

	"github.com/someday-app/matchengine/internal/domain"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// Ranker is the external ranking service contract. The returned feed is
// already ordered by similarity and excludes candidates the user swiped on.
type Ranker interface {
	Rank(ctx context.Context, p domprof.Profile, limit int) ([]domain.Candidate, error)
}

// ProfileReader loads the requesting user's profile.
type ProfileReader interface {
	Get(ctx context.Context, id string) (domprof.Profile, error)
}

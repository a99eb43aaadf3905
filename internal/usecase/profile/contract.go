package profile

import (
	"context"

	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// Repository defines the storage contract for profiles.
type Repository interface {
	Upsert(ctx context.Context, p *domprof.Profile) error
	Get(ctx context.Context, id string) (domprof.Profile, error)
}

// Embedder vectorizes narrative text for the external ranking service.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

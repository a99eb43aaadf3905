// Package profile persists user profiles as JSON documents.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/someday-app/matchengine/internal/db"
	"github.com/someday-app/matchengine/internal/domain"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// store is the consumer interface for profiles (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
}

// Repo implements usecase/profile.Repository.
type Repo struct {
	store store
}

// New creates a profile repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or replaces a profile document.
func (r *Repo) Upsert(ctx context.Context, p *domprof.Profile) error {
	data, err := json.Marshal(toDTO(p))
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := r.store.JSONSet(ctx, profileKey(p.ID()), "$", data); err != nil {
		return fmt.Errorf("json.set profile %s: %w: %w", p.ID(), domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns a profile by ID.
func (r *Repo) Get(ctx context.Context, id string) (domprof.Profile, error) {
	raw, err := r.store.JSONGet(ctx, profileKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domprof.Profile{}, domain.ErrProfileNotFound
		}
		return domprof.Profile{}, fmt.Errorf("json.get profile %s: %w: %w", id, domain.ErrStoreUnavailable, err)
	}

	// JSON.GET with a $ path answers with an array of matches.
	var dtos []profileDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return domprof.Profile{}, fmt.Errorf("unmarshal profile %s: %w", id, err)
	}
	if len(dtos) == 0 {
		return domprof.Profile{}, domain.ErrProfileNotFound
	}
	return fromDTO(dtos[0]), nil
}

func profileKey(id string) string {
	return fmt.Sprintf("%sprofile:%s", domain.KeyPrefix, id)
}

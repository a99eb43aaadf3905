// Package profile implements onboarding completion: validate the preference
// vector, generate the wedding-vision narrative, embed it for the ranking
// service, and persist the profile.
package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/someday-app/matchengine/internal/logger"
	"github.com/someday-app/matchengine/internal/narrative"

	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// Service handles profile upsert and reads.
type Service struct {
	repo     Repository
	embedder Embedder
}

// New creates a profile service. embedder can be nil (embedding disabled).
func New(repo Repository, embedder Embedder) *Service {
	return &Service{repo: repo, embedder: embedder}
}

// Upsert finalizes onboarding for a profile: generates the narrative from the
// preference vector, embeds it, and persists. Embedding failure degrades
// instead of failing the upsert; the ranking service re-embeds on its side.
func (s *Service) Upsert(ctx context.Context, p *domprof.Profile) error {
	if err := p.Vector().Validate(); err != nil {
		return err
	}

	text, err := narrative.Generate(p.Vector())
	if err != nil {
		return fmt.Errorf("generate narrative: %w", err)
	}
	p.SetNarrative(text)

	if s.embedder != nil {
		emb, embErr := s.embedder.Embed(ctx, text)
		if embErr != nil {
			logger.FromContext(ctx).Warn("narrative embedding failed, saving profile without it",
				zap.String("profile_id", p.ID()), zap.Error(embErr))
		} else {
			p.SetEmbedding(emb)
		}
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

// Get returns a profile by ID.
func (s *Service) Get(ctx context.Context, id string) (domprof.Profile, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

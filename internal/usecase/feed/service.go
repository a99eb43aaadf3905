// Package feed serves the candidate feed: a thin pass-through over the
// external ranking service, gated on a complete profile.
package feed

import (
	"context"
	"fmt"

	"github.com/someday-app/matchengine/internal/domain"
)

// Service serves ranked candidate feeds.
type Service struct {
	ranker      Ranker
	profiles    ProfileReader
	defaultSize int
	maxSize     int
}

// New creates a feed service.
func New(ranker Ranker, profiles ProfileReader) *Service {
	return &Service{
		ranker:      ranker,
		profiles:    profiles,
		defaultSize: 20,
		maxSize:     100,
	}
}

// WithFeedSize configures feed size limits.
func (s *Service) WithFeedSize(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultSize = defaultSize
	}
	if maxSize > 0 {
		s.maxSize = maxSize
	}
	return s
}

// Candidates returns the ranked feed for a user. Requires a stored profile
// with a complete preference vector; the ranking itself lives behind the
// Ranker contract and passes through unchanged.
func (s *Service) Candidates(ctx context.Context, userID string, limit int) ([]domain.Candidate, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := p.Vector().Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", userID, err)
	}

	if limit <= 0 {
		limit = s.defaultSize
	}
	if limit > s.maxSize {
		limit = s.maxSize
	}

	candidates, err := s.ranker.Rank(ctx, p, limit)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}
	return candidates, nil
}

// Package match implements the match detector: reciprocal-like detection and
// idempotent Match materialization with a generated explanation.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/someday-app/matchengine/internal/compat"
	"github.com/someday-app/matchengine/internal/domain"
	dommatch "github.com/someday-app/matchengine/internal/domain/match"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// Entry is one row of a user's match list.
type Entry struct {
	Match dommatch.Match
	// Counterparty is nil when the counterparty profile no longer exists.
	Counterparty *domprof.Profile
}

// Service detects mutual likes and materializes matches.
type Service struct {
	repo     Repository
	swipes   SwipeReader
	profiles ProfileReader
	notifier Notifier
}

// New creates a match service.
func New(repo Repository, swipes SwipeReader, profiles ProfileReader, notifier Notifier) *Service {
	return &Service{repo: repo, swipes: swipes, profiles: profiles, notifier: notifier}
}

// Evaluate runs match detection for a freshly recorded swipe. Returns nil
// when no match exists or can exist yet. A match requires a real reciprocal
// like on both ledgers; evaluation is idempotent, the pre-existing match for
// a pair is returned as-is.
func (s *Service) Evaluate(ctx context.Context, rec domswipe.Record) (*dommatch.Match, error) {
	if !rec.Liked() {
		return nil, nil
	}

	reciprocal, err := s.swipes.GetPair(ctx, rec.TargetID(), rec.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reciprocity check: %w", err)
	}
	if !reciprocal.Liked() {
		return nil, nil
	}

	existing, err := s.repo.GetByPair(ctx, rec.UserID(), rec.TargetID())
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, domain.ErrMatchNotFound) {
		return nil, fmt.Errorf("lookup existing match: %w", err)
	}

	user, err := s.loadProfile(ctx, rec.UserID())
	if err != nil {
		return nil, err
	}
	counterparty, err := s.loadProfile(ctx, rec.TargetID())
	if err != nil {
		return nil, err
	}

	explanation := compat.Explain(user.Vector(), counterparty.Vector())
	m, err := dommatch.New(rec.UserID(), rec.TargetID(), rec.CompatibilityScore(), explanation)
	if err != nil {
		return nil, fmt.Errorf("build match: %w", err)
	}

	effective, created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("persist match: %w", err)
	}
	if created && s.notifier != nil {
		s.notifier.MatchCreated(ctx, effective.UserID(), effective.CounterpartyID(), effective.ID())
		s.notifier.MatchCreated(ctx, effective.CounterpartyID(), effective.UserID(), effective.ID())
	}
	return &effective, nil
}

// List returns the user's matches, newest first, with the counterparty
// profile attached when it still exists.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	matches, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		counterpartyID := m.CounterpartyID()
		if counterpartyID == userID {
			counterpartyID = m.UserID()
		}

		entry := Entry{Match: m}
		p, err := s.profiles.Get(ctx, counterpartyID)
		if err == nil {
			entry.Counterparty = &p
		} else if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("load counterparty %s: %w", counterpartyID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadProfile fetches a profile and refuses incomplete vectors: they must
// never reach explanation generation.
func (s *Service) loadProfile(ctx context.Context, id string) (domprof.Profile, error) {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}
	if err := p.Vector().Validate(); err != nil {
		return domprof.Profile{}, fmt.Errorf("profile %s: %w", id, err)
	}
	return p, nil
}

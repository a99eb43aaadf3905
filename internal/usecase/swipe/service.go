// Package swipe implements the swipe ledger: per-user append-only swipe
// history with duplicate rejection and single-level undo.
package swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/someday-app/matchengine/internal/domain"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// Service handles swipe recording and undo.
type Service struct {
	repo Repository
}

// New creates a swipe service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record persists one swipe decision and makes it the user's last swipe.
// A second swipe on an already-decided target fails domain.ErrDuplicateSwipe;
// the existing decision stays authoritative.
func (s *Service) Record(
	ctx context.Context, userID, targetID string, liked bool, compatibilityScore float64,
) (domswipe.Record, error) {
	exists, err := s.repo.ExistsPair(ctx, userID, targetID)
	if err != nil {
		return domswipe.Record{}, fmt.Errorf("check swipe pair: %w", err)
	}
	if exists {
		return domswipe.Record{}, fmt.Errorf(
			"swipe %s -> %s: %w", userID, targetID, domain.ErrDuplicateSwipe,
		)
	}

	rec, err := domswipe.New(userID, targetID, liked, compatibilityScore)
	if err != nil {
		return domswipe.Record{}, fmt.Errorf("build swipe: %w", err)
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return domswipe.Record{}, fmt.Errorf("persist swipe: %w", err)
	}
	return rec, nil
}

// UndoLast removes the user's most recent swipe and clears the undo pointer.
// Only one level: a second consecutive undo is a no-op and returns nil.
// The removed target becomes swipeable again.
func (s *Service) UndoLast(ctx context.Context, userID string) (*domswipe.Record, error) {
	rec, err := s.repo.Last(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load last swipe: %w", err)
	}

	if err := s.repo.Remove(ctx, rec); err != nil {
		return nil, fmt.Errorf("remove swipe: %w", err)
	}
	return &rec, nil
}

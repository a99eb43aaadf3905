package domain

import (
	"errors"

	"github.com/someday-app/matchengine/internal/domain/preference"
)

var (
	// ErrInvalidVector signals a preference vector with a missing or
	// out-of-range field. Not retryable; onboarding must complete first.
	// Same value as preference.ErrInvalidVector (defined there to avoid an
	// import cycle), so errors.Is matches either name.
	ErrInvalidVector = preference.ErrInvalidVector
	// ErrDuplicateSwipe signals a second swipe on an already-decided candidate.
	// The existing decision is authoritative.
	ErrDuplicateSwipe = errors.New("duplicate swipe")
	// ErrStoreUnavailable signals a failed or timed-out persistence call.
	// Retryable with backoff by the caller; the engine never retries internally.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrProfileNotFound signals a missing profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrSwipeNotFound signals a missing swipe record.
	ErrSwipeNotFound = errors.New("swipe not found")
	// ErrMatchNotFound signals a missing match.
	ErrMatchNotFound = errors.New("match not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

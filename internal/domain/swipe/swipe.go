// Package swipe holds the swipe record aggregate: a single like/pass
// decision by one user about one candidate.
package swipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is one swipe decision (immutable once created; the only lifecycle
// mutation is full deletion by undo). The compatibility score is a snapshot
// taken at swipe time and never recomputed retroactively.
type Record struct {
	id                 string
	userID             string
	targetID           string
	liked              bool
	compatibilityScore float64
	createdAt          time.Time
}

// New validates and creates a Record with a fresh identifier.
func New(userID, targetID string, liked bool, compatibilityScore float64) (Record, error) {
	if userID == "" {
		return Record{}, fmt.Errorf("user ID is required")
	}
	if targetID == "" {
		return Record{}, fmt.Errorf("target ID is required")
	}
	if userID == targetID {
		return Record{}, fmt.Errorf("cannot swipe on yourself")
	}
	if compatibilityScore < 0 || compatibilityScore > 100 {
		return Record{}, fmt.Errorf("compatibility score %f out of range [0,100]", compatibilityScore)
	}
	return Record{
		id:                 uuid.NewString(),
		userID:             userID,
		targetID:           targetID,
		liked:              liked,
		compatibilityScore: compatibilityScore,
		createdAt:          time.Now().UTC(),
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(
	id, userID, targetID string, liked bool, compatibilityScore float64, createdAt time.Time,
) Record {
	return Record{
		id: id, userID: userID, targetID: targetID, liked: liked,
		compatibilityScore: compatibilityScore, createdAt: createdAt,
	}
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// UserID returns the swiping user.
func (r Record) UserID() string { return r.userID }

// TargetID returns the swiped-on candidate.
func (r Record) TargetID() string { return r.targetID }

// Liked reports whether the decision was a like.
func (r Record) Liked() bool { return r.liked }

// CompatibilityScore returns the 0-100 score snapshot taken at swipe time.
func (r Record) CompatibilityScore() float64 { return r.compatibilityScore }

// CreatedAt returns the swipe timestamp.
func (r Record) CreatedAt() time.Time { return r.createdAt }

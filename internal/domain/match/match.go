// Package match holds the match aggregate: the materialized state where both
// parties in a pair have independently liked each other.
package match

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Match is a confirmed mutual like. Append-only: created once by the match
// detector with a generated explanation that is never regenerated; there is
// no unmatch.
type Match struct {
	id                 string
	userID             string
	counterpartyID     string
	compatibilityScore float64
	explanation        string
	matchedAt          time.Time
}

// New validates and creates a Match with a fresh identifier.
func New(userID, counterpartyID string, compatibilityScore float64, explanation string) (Match, error) {
	if userID == "" || counterpartyID == "" {
		return Match{}, fmt.Errorf("both party IDs are required")
	}
	if userID == counterpartyID {
		return Match{}, fmt.Errorf("cannot match a user with themselves")
	}
	if compatibilityScore < 0 || compatibilityScore > 100 {
		return Match{}, fmt.Errorf("compatibility score %f out of range [0,100]", compatibilityScore)
	}
	if explanation == "" {
		return Match{}, fmt.Errorf("explanation is required")
	}
	return Match{
		id:                 uuid.NewString(),
		userID:             userID,
		counterpartyID:     counterpartyID,
		compatibilityScore: compatibilityScore,
		explanation:        explanation,
		matchedAt:          time.Now().UTC(),
	}, nil
}

// Reconstruct creates a Match without validation (storage hydration).
func Reconstruct(
	id, userID, counterpartyID string, compatibilityScore float64,
	explanation string, matchedAt time.Time,
) Match {
	return Match{
		id: id, userID: userID, counterpartyID: counterpartyID,
		compatibilityScore: compatibilityScore, explanation: explanation,
		matchedAt: matchedAt,
	}
}

// ID returns the match identifier.
func (m Match) ID() string { return m.id }

// UserID returns the first party (the user whose swipe triggered detection).
func (m Match) UserID() string { return m.userID }

// CounterpartyID returns the second party.
func (m Match) CounterpartyID() string { return m.counterpartyID }

// CompatibilityScore returns the 0-100 score copied from the triggering
// swipe's snapshot.
func (m Match) CompatibilityScore() float64 { return m.compatibilityScore }

// Explanation returns the generated compatibility explanation.
func (m Match) Explanation() string { return m.explanation }

// MatchedAt returns the match timestamp.
func (m Match) MatchedAt() time.Time { return m.matchedAt }

// PairKey returns the order-independent key for a pair of users. Both
// (a,b) and (b,a) map to the same key, which is what makes duplicate-match
// detection symmetric.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

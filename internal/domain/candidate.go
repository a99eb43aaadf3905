// Package domain holds shared engine types and sentinel errors.
package domain

import "github.com/someday-app/matchengine/internal/domain/preference"

// Candidate is one entry of the ranked discovery feed. The similarity score
// comes from the external ranking service and is opaque to the engine.
type Candidate struct {
	ID         string
	Name       string
	Age        int
	Location   string
	Vector     preference.Vector
	Similarity float64 // [0,1], ranking-service output
}

// Package profile holds the user profile aggregate.
package profile

import (
	"fmt"
	"time"

	"github.com/someday-app/matchengine/internal/domain/preference"
)

// MinAge is the minimum profile age.
const MinAge = 18

// Gender is the profile gender identity.
type Gender string

// Gender constants.
const (
	Man       Gender = "man"
	Woman     Gender = "woman"
	NonBinary Gender = "non-binary"
)

// IsValid checks if the gender is one of the supported values.
func (g Gender) IsValid() bool {
	return g == Man || g == Woman || g == NonBinary
}

// Profile is the user profile aggregate. The preference vector is set once
// at onboarding completion and replaced only by re-onboarding.
type Profile struct {
	id        string
	name      string
	age       int
	gender    Gender
	seeking   Gender
	location  string
	vector    preference.Vector
	narrative string
	embedding []float32
	createdAt time.Time
	updatedAt time.Time
}

// New validates and creates a Profile. The ID is the opaque identity-provider
// subject; the engine trusts it as supplied.
func New(
	id, name string, age int, gender, seeking Gender, location string,
	vector preference.Vector,
) (Profile, error) {
	if id == "" {
		return Profile{}, fmt.Errorf("profile ID is required")
	}
	if name == "" {
		return Profile{}, fmt.Errorf("name is required")
	}
	if age < MinAge {
		return Profile{}, fmt.Errorf("age must be at least %d, got %d", MinAge, age)
	}
	if !gender.IsValid() {
		return Profile{}, fmt.Errorf("invalid gender %q", gender)
	}
	if !seeking.IsValid() {
		return Profile{}, fmt.Errorf("invalid seeking %q", seeking)
	}
	if err := vector.Validate(); err != nil {
		return Profile{}, err
	}

	now := time.Now().UTC()
	return Profile{
		id:        id,
		name:      name,
		age:       age,
		gender:    gender,
		seeking:   seeking,
		location:  location,
		vector:    vector,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct creates a Profile without validation (storage hydration).
func Reconstruct(
	id, name string, age int, gender, seeking Gender, location string,
	vector preference.Vector, narrative string, embedding []float32,
	createdAt, updatedAt time.Time,
) Profile {
	return Profile{
		id: id, name: name, age: age, gender: gender, seeking: seeking,
		location: location, vector: vector, narrative: narrative,
		embedding: embedding, createdAt: createdAt, updatedAt: updatedAt,
	}
}

// ID returns the opaque profile identifier.
func (p *Profile) ID() string { return p.id }

// Name returns the display name.
func (p *Profile) Name() string { return p.name }

// Age returns the age.
func (p *Profile) Age() int { return p.age }

// Gender returns the gender identity.
func (p *Profile) Gender() Gender { return p.gender }

// Seeking returns the sought gender.
func (p *Profile) Seeking() Gender { return p.seeking }

// Location returns the home location.
func (p *Profile) Location() string { return p.location }

// Vector returns the preference vector.
func (p *Profile) Vector() preference.Vector { return p.vector }

// Narrative returns the generated narrative paragraph.
func (p *Profile) Narrative() string { return p.narrative }

// Embedding returns the narrative embedding, nil if not embedded.
func (p *Profile) Embedding() []float32 { return p.embedding }

// CreatedAt returns the creation timestamp.
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last update timestamp.
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// SetNarrative sets the generated narrative in place.
func (p *Profile) SetNarrative(n string) {
	p.narrative = n
	p.updatedAt = time.Now().UTC()
}

// SetEmbedding sets the narrative embedding in place.
func (p *Profile) SetEmbedding(v []float32) {
	p.embedding = v
	p.updatedAt = time.Now().UTC()
}

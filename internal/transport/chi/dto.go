package chi

import (
	"fmt"
	"time"

	"github.com/someday-app/matchengine/internal/domain"
	dommatch "github.com/someday-app/matchengine/internal/domain/match"
	"github.com/someday-app/matchengine/internal/domain/preference"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
	"github.com/someday-app/matchengine/internal/narrative"
	matchuc "github.com/someday-app/matchengine/internal/usecase/match"
)

// errorCode is the machine-readable error code in error responses.
type errorCode string

const (
	codeBadRequest        errorCode = "bad_request"
	codeValidationFailed  errorCode = "validation_failed"
	codeInvalidVector     errorCode = "invalid_vector"
	codeDuplicateSwipe    errorCode = "duplicate_swipe"
	codeProfileNotFound   errorCode = "profile_not_found"
	codeStoreUnavailable  errorCode = "store_unavailable"
	codeEmbeddingProvider errorCode = "embedding_provider_error"
	codeInternalError     errorCode = "internal_error"
	codeUnauthorized      errorCode = "unauthorized"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// upsertProfileRequest is the PUT /profiles/{id} body.
type upsertProfileRequest struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	Seeking           string `json:"seeking"`
	Location          string `json:"location"`
	BudgetTier        string `json:"budget_tier"`
	GuestCount        string `json:"guest_count"`
	VenueVibe         string `json:"venue_vibe"`
	FamilyInvolvement int    `json:"family_involvement"`
}

type vectorResponse struct {
	BudgetTier        string `json:"budget_tier"`
	GuestCount        string `json:"guest_count"`
	VenueVibe         string `json:"venue_vibe"`
	FamilyInvolvement int    `json:"family_involvement"`
}

type signalsResponse struct {
	FinancialWorldview   string `json:"financial_worldview"`
	SocialStyle          string `json:"social_style"`
	AestheticPersonality string `json:"aesthetic_personality"`
	BoundaryStyle        string `json:"boundary_style"`
}

type profileResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Age       int              `json:"age"`
	Gender    string           `json:"gender"`
	Seeking   string           `json:"seeking"`
	Location  string           `json:"location,omitempty"`
	Vector    vectorResponse   `json:"vector"`
	Narrative string           `json:"narrative,omitempty"`
	Signals   *signalsResponse `json:"signals,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type candidateResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Age        int            `json:"age"`
	Location   string         `json:"location,omitempty"`
	Similarity float64        `json:"similarity"`
	Vector     vectorResponse `json:"vector"`
}

// recordSwipeRequest is the POST /profiles/{id}/swipes body.
type recordSwipeRequest struct {
	TargetID           string  `json:"target_id"`
	Liked              bool    `json:"liked"`
	CompatibilityScore float64 `json:"compatibility_score"`
}

type swipeResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	TargetID           string    `json:"target_id"`
	Liked              bool      `json:"liked"`
	CompatibilityScore float64   `json:"compatibility_score"`
	CreatedAt          time.Time `json:"created_at"`
}

type matchResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	CounterpartyID     string    `json:"counterparty_id"`
	CompatibilityScore float64   `json:"compatibility_score"`
	Explanation        string    `json:"explanation"`
	MatchedAt          time.Time `json:"matched_at"`
}

// recordSwipeResponse reports the swipe and, when it completed a pair, the
// match it produced.
type recordSwipeResponse struct {
	Swipe swipeResponse  `json:"swipe"`
	Match *matchResponse `json:"match,omitempty"`
}

type matchEntryResponse struct {
	Match        matchResponse    `json:"match"`
	Counterparty *profileResponse `json:"counterparty,omitempty"`
}

type matchListResponse struct {
	Items []matchEntryResponse `json:"items"`
	Total int                  `json:"total"`
}

type candidateListResponse struct {
	Items []candidateResponse `json:"items"`
	Total int                 `json:"total"`
}

func profileFromUpsert(id string, req upsertProfileRequest) (domprof.Profile, error) {
	vec, err := preference.New(
		preference.BudgetTier(req.BudgetTier),
		preference.GuestCount(req.GuestCount),
		preference.VenueVibe(req.VenueVibe),
		req.FamilyInvolvement,
	)
	if err != nil {
		return domprof.Profile{}, err
	}

	p, err := domprof.New(
		id, req.Name, req.Age,
		domprof.Gender(req.Gender), domprof.Gender(req.Seeking),
		req.Location, vec,
	)
	if err != nil {
		return domprof.Profile{}, fmt.Errorf("build profile: %w", err)
	}
	return p, nil
}

func vectorToResponse(v preference.Vector) vectorResponse {
	return vectorResponse{
		BudgetTier:        string(v.BudgetTier()),
		GuestCount:        string(v.GuestCount()),
		VenueVibe:         string(v.VenueVibe()),
		FamilyInvolvement: v.FamilyInvolvement(),
	}
}

func profileToResponse(p *domprof.Profile) profileResponse {
	resp := profileResponse{
		ID:        p.ID(),
		Name:      p.Name(),
		Age:       p.Age(),
		Gender:    string(p.Gender()),
		Seeking:   string(p.Seeking()),
		Location:  p.Location(),
		Vector:    vectorToResponse(p.Vector()),
		Narrative: p.Narrative(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
	if p.Vector().IsComplete() {
		sig := narrative.PsychometricSignals(p.Vector())
		resp.Signals = &signalsResponse{
			FinancialWorldview:   sig.FinancialWorldview,
			SocialStyle:          sig.SocialStyle,
			AestheticPersonality: sig.AestheticPersonality,
			BoundaryStyle:        sig.BoundaryStyle,
		}
	}
	return resp
}

func candidateToResponse(c domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:         c.ID,
		Name:       c.Name,
		Age:        c.Age,
		Location:   c.Location,
		Similarity: c.Similarity,
		Vector:     vectorToResponse(c.Vector),
	}
}

func swipeToResponse(rec domswipe.Record) swipeResponse {
	return swipeResponse{
		ID:                 rec.ID(),
		UserID:             rec.UserID(),
		TargetID:           rec.TargetID(),
		Liked:              rec.Liked(),
		CompatibilityScore: rec.CompatibilityScore(),
		CreatedAt:          rec.CreatedAt(),
	}
}

func matchToResponse(m dommatch.Match) matchResponse {
	return matchResponse{
		ID:                 m.ID(),
		UserID:             m.UserID(),
		CounterpartyID:     m.CounterpartyID(),
		CompatibilityScore: m.CompatibilityScore(),
		Explanation:        m.Explanation(),
		MatchedAt:          m.MatchedAt(),
	}
}

func matchEntryToResponse(e matchuc.Entry) matchEntryResponse {
	resp := matchEntryResponse{Match: matchToResponse(e.Match)}
	if e.Counterparty != nil {
		p := profileToResponse(e.Counterparty)
		resp.Counterparty = &p
	}
	return resp
}

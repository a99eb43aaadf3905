package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/someday-app/matchengine/internal/domain"
	dommatch "github.com/someday-app/matchengine/internal/domain/match"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
	feeduc "github.com/someday-app/matchengine/internal/usecase/feed"
	healthuc "github.com/someday-app/matchengine/internal/usecase/health"
	matchuc "github.com/someday-app/matchengine/internal/usecase/match"
	profileuc "github.com/someday-app/matchengine/internal/usecase/profile"
	swipeuc "github.com/someday-app/matchengine/internal/usecase/swipe"
)

// In-memory fakes implementing the usecase contracts, so handler tests
// exercise the full service stack without a store.

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domprof.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]domprof.Profile{}}
}

func (m *memProfileRepo) Upsert(_ context.Context, p *domprof.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID()] = *p
	return nil
}

func (m *memProfileRepo) Get(_ context.Context, id string) (domprof.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return domprof.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

type memSwipeRepo struct {
	mu      sync.Mutex
	records map[string]domswipe.Record // pair key "user->target"
	last    map[string]string          // userID -> pair key
}

func newMemSwipeRepo() *memSwipeRepo {
	return &memSwipeRepo{records: map[string]domswipe.Record{}, last: map[string]string{}}
}

func pair(userID, targetID string) string { return userID + "->" + targetID }

func (m *memSwipeRepo) Create(_ context.Context, rec domswipe.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pair(rec.UserID(), rec.TargetID())
	m.records[key] = rec
	m.last[rec.UserID()] = key
	return nil
}

func (m *memSwipeRepo) ExistsPair(_ context.Context, userID, targetID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[pair(userID, targetID)]
	return ok, nil
}

func (m *memSwipeRepo) GetPair(_ context.Context, userID, targetID string) (domswipe.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[pair(userID, targetID)]
	if !ok {
		return domswipe.Record{}, domain.ErrSwipeNotFound
	}
	return rec, nil
}

func (m *memSwipeRepo) Last(_ context.Context, userID string) (domswipe.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.last[userID]
	if !ok {
		return domswipe.Record{}, domain.ErrSwipeNotFound
	}
	return m.records[key], nil
}

func (m *memSwipeRepo) Remove(_ context.Context, rec domswipe.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pair(rec.UserID(), rec.TargetID())
	delete(m.records, key)
	if m.last[rec.UserID()] == key {
		delete(m.last, rec.UserID())
	}
	return nil
}

type memMatchRepo struct {
	mu      sync.Mutex
	byPair  map[string]dommatch.Match
	created int
}

func newMemMatchRepo() *memMatchRepo {
	return &memMatchRepo{byPair: map[string]dommatch.Match{}}
}

func (m *memMatchRepo) Create(_ context.Context, match dommatch.Match) (dommatch.Match, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dommatch.PairKey(match.UserID(), match.CounterpartyID())
	if existing, ok := m.byPair[key]; ok {
		return existing, false, nil
	}
	m.byPair[key] = match
	m.created++
	return match, true, nil
}

func (m *memMatchRepo) GetByPair(_ context.Context, a, b string) (dommatch.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	match, ok := m.byPair[dommatch.PairKey(a, b)]
	if !ok {
		return dommatch.Match{}, domain.ErrMatchNotFound
	}
	return match, nil
}

func (m *memMatchRepo) ListByUser(_ context.Context, userID string) ([]dommatch.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []dommatch.Match
	for _, match := range m.byPair {
		if match.UserID() == userID || match.CounterpartyID() == userID {
			out = append(out, match)
		}
	}
	return out, nil
}

type fakeRanker struct {
	candidates []domain.Candidate
}

func (f *fakeRanker) Rank(_ context.Context, _ domprof.Profile, limit int) ([]domain.Candidate, error) {
	if limit > len(f.candidates) {
		limit = len(f.candidates)
	}
	return f.candidates[:limit], nil
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

type testEnv struct {
	router      chirouter.Router
	profileRepo *memProfileRepo
	swipeRepo   *memSwipeRepo
	matchRepo   *memMatchRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	profileRepo := newMemProfileRepo()
	swipeRepo := newMemSwipeRepo()
	matchRepo := newMemMatchRepo()

	profileSvc := profileuc.New(profileRepo, nil)
	swipeSvc := swipeuc.New(swipeRepo)
	matchSvc := matchuc.New(matchRepo, swipeRepo, profileRepo, nil)
	feedSvc := feeduc.New(&fakeRanker{candidates: []domain.Candidate{
		{ID: "cand-1", Name: "Alex", Age: 28, Similarity: 0.92},
		{ID: "cand-2", Name: "Jordan", Age: 31, Similarity: 0.87},
	}}, profileRepo)
	healthSvc := healthuc.New(&fakePinger{}, nil)

	server := NewServer(profileSvc, swipeSvc, matchSvc, feedSvc, healthSvc, zap.NewNop())
	router := chirouter.NewRouter()
	server.RegisterRoutes(router)

	return &testEnv{
		router:      router,
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func validUpsertBody(name string) upsertProfileRequest {
	return upsertProfileRequest{
		Name:              name,
		Age:               29,
		Gender:            "woman",
		Seeking:           "man",
		Location:          "Austin, TX",
		BudgetTier:        "modest",
		GuestCount:        "intimate",
		VenueVibe:         "rustic",
		FamilyInvolvement: 3,
	}
}

func (e *testEnv) mustUpsert(t *testing.T, id, name string) {
	t.Helper()
	rr := e.do(t, http.MethodPut, "/api/v1/profiles/"+id, validUpsertBody(name))
	if rr.Code != http.StatusOK {
		t.Fatalf("upsert %s: status %d: %s", id, rr.Code, rr.Body.String())
	}
}

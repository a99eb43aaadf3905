package profile

import (
	"context"
	"testing"

	"github.com/someday-app/matchengine/internal/domain/preference"
	domprof "github.com/someday-app/matchengine/internal/domain/profile"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return []byte("[]"), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testProfile(t *testing.T) domprof.Profile {
	t.Helper()
	vec, err := preference.New(preference.BudgetModest, preference.GuestsIntimate, preference.VibeRustic, 3)
	if err != nil {
		t.Fatalf("unexpected error building vector: %v", err)
	}
	p, err := domprof.New("user-1", "Ada", 29, domprof.Woman, domprof.Man, "Lisbon", vec)
	if err != nil {
		t.Fatalf("unexpected error building profile: %v", err)
	}
	return p
}

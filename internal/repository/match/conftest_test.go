package match

import (
	"context"
	"testing"
	"time"

	dommatch "github.com/someday-app/matchengine/internal/domain/match"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	getFn     func(ctx context.Context, key string) ([]byte, error)
	setNXFn   func(ctx context.Context, key string, value []byte) (bool, error)
	hsetFn    func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn func(ctx context.Context, key string) (map[string]string, error)
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

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return true, nil
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms)
	return repo, ms
}

func testMatch(t *testing.T) dommatch.Match {
	t.Helper()
	return dommatch.Reconstruct(
		"match-1", "user-a", "user-b", 75,
		"You're budget-aligned. You want the same kind of atmosphere.",
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	)
}

func matchJSON(id, userID, counterpartyID, matchedAt string) string {
	return `[{"id":"` + id + `","user_id":"` + userID + `","counterparty_id":"` + counterpartyID + `",
		"compatibility_score":75,"explanation":"You're budget-aligned.",
		"matched_at":"` + matchedAt + `"}]`
}

package swipe

import (
	"context"
	"errors"
	"testing"

	"github.com/someday-app/matchengine/internal/db"
	"github.com/someday-app/matchengine/internal/domain"
)

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	rec := testRecord(t)

	var gotRecordKey, gotLedgerKey, gotLastKey string
	ms.jsonSetFn = func(_ context.Context, key, path string, _ []byte) error {
		gotRecordKey = key
		if path != "$" {
			t.Errorf("unexpected path: %s", path)
		}
		return nil
	}
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		gotLedgerKey = key
		if fields["user-b"] != "swipe-1" {
			t.Errorf("expected ledger field user-b=swipe-1, got %v", fields)
		}
		return nil
	}
	ms.setFn = func(_ context.Context, key string, value []byte) error {
		gotLastKey = key
		if string(value) != "swipe-1" {
			t.Errorf("expected last pointer swipe-1, got %s", value)
		}
		return nil
	}

	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRecordKey != "matchengine:swipe:swipe-1" {
		t.Errorf("unexpected record key: %s", gotRecordKey)
	}
	if gotLedgerKey != "matchengine:ledger:user-a" {
		t.Errorf("unexpected ledger key: %s", gotLedgerKey)
	}
	if gotLastKey != "matchengine:lastswipe:user-a" {
		t.Errorf("unexpected last key: %s", gotLastKey)
	}
}

func TestCreate_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonSetFn = func(_ context.Context, _ string, _ string, _ []byte) error {
		return errors.New("LOADING")
	}

	err := repo.Create(ctx, testRecord(t))
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

// --- ExistsPair ---

func TestExistsPair_Hit(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hgetFn = func(_ context.Context, key, field string) (string, error) {
		if key != "matchengine:ledger:user-a" {
			t.Errorf("unexpected key: %s", key)
		}
		if field != "user-b" {
			t.Errorf("unexpected field: %s", field)
		}
		return "swipe-1", nil
	}

	ok, err := repo.ExistsPair(ctx, "user-a", "user-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected exists=true")
	}
}

func TestExistsPair_Miss(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hgetFn = func(_ context.Context, _ string, _ string) (string, error) {
		return "", db.ErrFieldNotFound
	}

	ok, err := repo.ExistsPair(ctx, "user-a", "user-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected exists=false")
	}
}

// --- GetPair ---

func TestGetPair_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hgetFn = func(_ context.Context, _ string, _ string) (string, error) {
		return "swipe-1", nil
	}
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		if key != "matchengine:swipe:swipe-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return []byte(`[{"id":"swipe-1","user_id":"user-a","target_id":"user-b",
			"liked":true,"compatibility_score":75,"created_at":"2026-08-01T10:00:00Z"}]`), nil
	}

	rec, err := repo.GetPair(ctx, "user-a", "user-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != "swipe-1" {
		t.Fatalf("expected ID swipe-1, got %s", rec.ID())
	}
	if !rec.Liked() {
		t.Fatal("expected liked=true")
	}
	if rec.CompatibilityScore() != 75 {
		t.Fatalf("expected score 75, got %f", rec.CompatibilityScore())
	}
}

func TestGetPair_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.hgetFn = func(_ context.Context, _ string, _ string) (string, error) {
		return "", db.ErrFieldNotFound
	}

	_, err := repo.GetPair(ctx, "user-a", "user-b")
	if !errors.Is(err, domain.ErrSwipeNotFound) {
		t.Fatalf("expected ErrSwipeNotFound, got %v", err)
	}
}

// --- Last ---

func TestLast_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		if key != "matchengine:lastswipe:user-a" {
			t.Errorf("unexpected key: %s", key)
		}
		return []byte("swipe-1"), nil
	}
	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte(`[{"id":"swipe-1","user_id":"user-a","target_id":"user-b",
			"liked":false,"compatibility_score":40,"created_at":"2026-08-01T10:00:00Z"}]`), nil
	}

	rec, err := repo.Last(ctx, "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != "swipe-1" {
		t.Fatalf("expected ID swipe-1, got %s", rec.ID())
	}
	if rec.Liked() {
		t.Fatal("expected liked=false")
	}
}

func TestLast_NoPointer(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.Last(ctx, "user-a")
	if !errors.Is(err, domain.ErrSwipeNotFound) {
		t.Fatalf("expected ErrSwipeNotFound, got %v", err)
	}
}

// --- Remove ---

func TestRemove_ClearsPointerWhenLast(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	rec := testRecord(t)

	deleted := map[string]bool{}
	ms.delFn = func(_ context.Context, key string) error {
		deleted[key] = true
		return nil
	}
	ms.hdelFn = func(_ context.Context, key string, fields ...string) error {
		if key != "matchengine:ledger:user-a" {
			t.Errorf("unexpected ledger key: %s", key)
		}
		if len(fields) != 1 || fields[0] != "user-b" {
			t.Errorf("unexpected ledger fields: %v", fields)
		}
		return nil
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("swipe-1"), nil
	}

	if err := repo.Remove(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted["matchengine:swipe:swipe-1"] {
		t.Error("expected record deleted")
	}
	if !deleted["matchengine:lastswipe:user-a"] {
		t.Error("expected last pointer cleared")
	}
}

func TestRemove_KeepsPointerWhenNotLast(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	rec := testRecord(t)

	deleted := map[string]bool{}
	ms.delFn = func(_ context.Context, key string) error {
		deleted[key] = true
		return nil
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("swipe-2"), nil
	}

	if err := repo.Remove(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted["matchengine:lastswipe:user-a"] {
		t.Error("pointer to a different swipe must survive removal")
	}
}

// Package swipe persists the per-user swipe ledger: JSON records, a hash
// index keyed by target for pair lookups, and a per-user last-swipe pointer
// backing single-level undo.
package swipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/someday-app/matchengine/internal/db"
	"github.com/someday-app/matchengine/internal/domain"
	domswipe "github.com/someday-app/matchengine/internal/domain/swipe"
)

// store is the consumer interface for the swipe ledger (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HDel(ctx context.Context, key string, fields ...string) error
}

// Repo implements usecase/swipe.Repository and usecase/match.SwipeReader.
type Repo struct {
	store store
}

// New creates a swipe repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create persists a record, indexes it under (user, target) and makes it the
// user's last swipe. Runs under single-writer-per-user semantics: only the
// owning session mutates a user's ledger, so no cross-key transaction is
// needed here.
func (r *Repo) Create(ctx context.Context, rec domswipe.Record) error {
	data, err := json.Marshal(toDTO(rec))
	if err != nil {
		return fmt.Errorf("marshal swipe: %w", err)
	}

	if err := r.store.JSONSet(ctx, recordKey(rec.ID()), "$", data); err != nil {
		return storeErr("json.set swipe", err)
	}
	if err := r.store.HSet(ctx, ledgerKey(rec.UserID()), map[string]string{rec.TargetID(): rec.ID()}); err != nil {
		return storeErr("hset ledger", err)
	}
	if err := r.store.Set(ctx, lastKey(rec.UserID()), []byte(rec.ID())); err != nil {
		return storeErr("set last swipe", err)
	}
	return nil
}

// ExistsPair reports whether the user already swiped on the target.
func (r *Repo) ExistsPair(ctx context.Context, userID, targetID string) (bool, error) {
	_, err := r.store.HGet(ctx, ledgerKey(userID), targetID)
	if err != nil {
		if errors.Is(err, db.ErrFieldNotFound) {
			return false, nil
		}
		return false, storeErr("hget ledger", err)
	}
	return true, nil
}

// GetPair returns the record for (user, target), domain.ErrSwipeNotFound if absent.
func (r *Repo) GetPair(ctx context.Context, userID, targetID string) (domswipe.Record, error) {
	id, err := r.store.HGet(ctx, ledgerKey(userID), targetID)
	if err != nil {
		if errors.Is(err, db.ErrFieldNotFound) {
			return domswipe.Record{}, domain.ErrSwipeNotFound
		}
		return domswipe.Record{}, storeErr("hget ledger", err)
	}
	return r.getByID(ctx, id)
}

// Last returns the user's undo-eligible record, domain.ErrSwipeNotFound if
// the pointer is unset.
func (r *Repo) Last(ctx context.Context, userID string) (domswipe.Record, error) {
	id, err := r.store.Get(ctx, lastKey(userID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domswipe.Record{}, domain.ErrSwipeNotFound
		}
		return domswipe.Record{}, storeErr("get last swipe", err)
	}
	return r.getByID(ctx, string(id))
}

// Remove deletes a record and its ledger index entry. When the record is
// the user's last swipe, the undo pointer is cleared as well.
func (r *Repo) Remove(ctx context.Context, rec domswipe.Record) error {
	if err := r.store.Del(ctx, recordKey(rec.ID())); err != nil {
		return storeErr("del swipe", err)
	}
	if err := r.store.HDel(ctx, ledgerKey(rec.UserID()), rec.TargetID()); err != nil {
		return storeErr("hdel ledger", err)
	}

	last, err := r.store.Get(ctx, lastKey(rec.UserID()))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil
		}
		return storeErr("get last swipe", err)
	}
	if string(last) == rec.ID() {
		if err := r.store.Del(ctx, lastKey(rec.UserID())); err != nil {
			return storeErr("del last swipe", err)
		}
	}
	return nil
}

func (r *Repo) getByID(ctx context.Context, id string) (domswipe.Record, error) {
	raw, err := r.store.JSONGet(ctx, recordKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domswipe.Record{}, domain.ErrSwipeNotFound
		}
		return domswipe.Record{}, storeErr("json.get swipe", err)
	}

	var dtos []recordDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return domswipe.Record{}, fmt.Errorf("unmarshal swipe %s: %w", id, err)
	}
	if len(dtos) == 0 {
		return domswipe.Record{}, domain.ErrSwipeNotFound
	}
	return fromDTO(dtos[0]), nil
}

func recordKey(id string) string {
	return fmt.Sprintf("%sswipe:%s", domain.KeyPrefix, id)
}

func ledgerKey(userID string) string {
	return fmt.Sprintf("%sledger:%s", domain.KeyPrefix, userID)
}

func lastKey(userID string) string {
	return fmt.Sprintf("%slastswipe:%s", domain.KeyPrefix, userID)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

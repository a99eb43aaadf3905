// Package match persists matches: JSON documents guarded by an atomic
// pair-key reservation so concurrent detector evaluations cannot create two
// matches for the same pair.
package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/someday-app/matchengine/internal/db"
	"github.com/someday-app/matchengine/internal/domain"
	dommatch "github.com/someday-app/matchengine/internal/domain/match"
)

// store is the consumer interface for matches (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements usecase/match.Repository.
type Repo struct {
	store store
}

// New creates a match repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create persists a match unless the pair is already matched. The SETNX on
// the normalized pair key is the atomicity point: the loser of a concurrent
// race reads back the winner's match. Returns the effective match and
// whether this call created it.
func (r *Repo) Create(ctx context.Context, m dommatch.Match) (dommatch.Match, bool, error) {
	pairKey := pairGuardKey(m.UserID(), m.CounterpartyID())

	reserved, err := r.store.SetNX(ctx, pairKey, []byte(m.ID()))
	if err != nil {
		return dommatch.Match{}, false, storeErr("setnx match pair", err)
	}
	if !reserved {
		existing, getErr := r.GetByPair(ctx, m.UserID(), m.CounterpartyID())
		if getErr != nil {
			return dommatch.Match{}, false, getErr
		}
		return existing, false, nil
	}

	data, err := json.Marshal(toDTO(m))
	if err != nil {
		return dommatch.Match{}, false, fmt.Errorf("marshal match: %w", err)
	}
	if err := r.store.JSONSet(ctx, matchKey(m.ID()), "$", data); err != nil {
		return dommatch.Match{}, false, storeErr("json.set match", err)
	}

	// Index the match under both parties for listing.
	if err := r.store.HSet(ctx, userIndexKey(m.UserID()), map[string]string{m.CounterpartyID(): m.ID()}); err != nil {
		return dommatch.Match{}, false, storeErr("hset match index", err)
	}
	if err := r.store.HSet(ctx, userIndexKey(m.CounterpartyID()), map[string]string{m.UserID(): m.ID()}); err != nil {
		return dommatch.Match{}, false, storeErr("hset match index", err)
	}

	return m, true, nil
}

// GetByPair returns the match between two users regardless of argument
// order, domain.ErrMatchNotFound if the pair never matched.
func (r *Repo) GetByPair(ctx context.Context, a, b string) (dommatch.Match, error) {
	id, err := r.store.Get(ctx, pairGuardKey(a, b))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dommatch.Match{}, domain.ErrMatchNotFound
		}
		return dommatch.Match{}, storeErr("get match pair", err)
	}
	return r.getByID(ctx, string(id))
}

// ListByUser returns the user's matches, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]dommatch.Match, error) {
	index, err := r.store.HGetAll(ctx, userIndexKey(userID))
	if err != nil {
		return nil, storeErr("hgetall match index", err)
	}

	matches := make([]dommatch.Match, 0, len(index))
	for _, id := range index {
		m, err := r.getByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrMatchNotFound) {
				continue // index entry outlived the document
			}
			return nil, err
		}
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchedAt().After(matches[j].MatchedAt())
	})
	return matches, nil
}

func (r *Repo) getByID(ctx context.Context, id string) (dommatch.Match, error) {
	raw, err := r.store.JSONGet(ctx, matchKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dommatch.Match{}, domain.ErrMatchNotFound
		}
		return dommatch.Match{}, storeErr("json.get match", err)
	}

	var dtos []matchDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return dommatch.Match{}, fmt.Errorf("unmarshal match %s: %w", id, err)
	}
	if len(dtos) == 0 {
		return dommatch.Match{}, domain.ErrMatchNotFound
	}
	return fromDTO(dtos[0]), nil
}

func matchKey(id string) string {
	return fmt.Sprintf("%smatch:%s", domain.KeyPrefix, id)
}

func pairGuardKey(a, b string) string {
	return fmt.Sprintf("%smatchpair:%s", domain.KeyPrefix, dommatch.PairKey(a, b))
}

func userIndexKey(userID string) string {
	return fmt.Sprintf("%smatches:%s", domain.KeyPrefix, userID)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

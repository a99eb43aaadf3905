package redis

import (
	"time"

	"github.com/redis/rueidis"
)

// NewStoreForTest wraps an injected (mock) client for unit tests.
func NewStoreForTest(client rueidis.Client) *Store {
	return &Store{client: client, opTimeout: time.Second}
}

package cache

import "context"

// Store is the cache contract consumed by the gateway.
//
// Get reports a miss for absent and for expired entries. Set overwrites
// any prior value for the key and restarts its TTL clock. Size includes
// expired entries that have not been purged yet.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Size(ctx context.Context) (int, error)
}

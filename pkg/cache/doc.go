// Package cache provides the short-TTL response cache used by the
// market-data gateway.
//
// Two Store implementations are available:
//
//   - Memory: a process-local map with lazy expiry. Entries become
//     invisible once their TTL elapses and are deleted on the next read
//     attempt for their key; there is no background sweep, no eviction
//     policy and no size bound.
//   - Redis: the same contract backed by Redis, for deployments running
//     more than one process. The TTL is handed to Redis as the key expiry.
//
// Keys are built with Key so that semantically identical requests collide
// and distinct requests never do:
//
//	key := cache.Key{Operation: "coin", Params: []string{"BTC", "USD"}}
//	key.String() // "lcw:coin:BTC:USD"
//
// Store.Size reports the number of entries currently held, including
// entries that have expired but have not been purged yet. It must not be
// read as a live-entry count.
package cache

// Package cache provides the small TTL stores behind the contact relay's
// abuse controls: a generic [Cache] with an atomic set-if-absent ([Cache.Add])
// for duplicate suppression, and a fixed-window [Counter] for rate limiting.
//
// Each has an in-process implementation ([Memory], [MemoryCounter]) and a
// Redis one ([Redis], [RedisCounter]) for deployments with more than one
// instance.
//
//	seen := cache.NewMemory[time.Time](cache.WithMaxEntries(10000))
//	first, err := seen.Add(ctx, fingerprint, time.Now(), 10*time.Minute)
//
//	hits := cache.NewRedisCounter(client, cache.WithPrefix("ratelimit"))
//	n, reset, err := hits.Incr(ctx, clientIP, time.Minute)
//
// TTL semantics: a positive TTL expires after that duration, zero uses the
// store's default, negative never expires.
package cache

package cache

import "github.com/redis/go-redis/v9"

// CacheManager bundles the per-domain cache helpers. A nil redis client is
// allowed; every helper then degrades to a pass-through. User rows are never
// cached: the stored password hash is excluded from JSON and would not
// survive a cache round trip.
type CacheManager struct {
	Event    *CacheHelper
	Taxonomy *CacheHelper
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		Event:    NewCacheHelper(client, EventCacheConfig.Prefix),
		Taxonomy: NewCacheHelper(client, TaxonomyCacheConfig.Prefix),
	}
}

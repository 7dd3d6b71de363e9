package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern invalidates a cache pattern, logging instead of
// propagating failures.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete deletes cache keys, logging instead of propagating failures.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateEventCache drops all caches touched by a mutation of one event.
func InvalidateEventCache(ctx context.Context, cm *CacheManager, eventID, ownerID uint) {
	SafeDelete(ctx, cm.Event, fmt.Sprintf("id:%d", eventID))
	SafeInvalidatePattern(ctx, cm.Event, fmt.Sprintf("owner:%d:*", ownerID))
}

// InvalidateTaxonomyCache drops the category/tag listings.
func InvalidateTaxonomyCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Taxonomy, "*")
}

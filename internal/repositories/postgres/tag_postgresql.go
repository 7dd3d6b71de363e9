package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/StudyTrack/calendar-service/internal/cache"
	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
)

type TagPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewTagPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.TagRepository {
	return &TagPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

func (t *TagPostgreSQL) Create(ctx context.Context, tag *models.EventTag) error {
	if err := t.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	cache.InvalidateTaxonomyCache(ctx, t.cacheManager)
	return nil
}

func (t *TagPostgreSQL) GetByID(ctx context.Context, id uint) (*models.EventTag, error) {
	var tag models.EventTag
	if err := t.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &tag, nil
}

func (t *TagPostgreSQL) GetByName(ctx context.Context, name string) (*models.EventTag, error) {
	var tag models.EventTag
	if err := t.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}
	return &tag, nil
}

// GetByIDs resolves a batch of tag ids. Unresolved ids are silently omitted;
// the result only carries the matches.
func (t *TagPostgreSQL) GetByIDs(ctx context.Context, ids []uint) ([]*models.EventTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []*models.EventTag
	if err := t.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags by ids: %w", err)
	}
	return tags, nil
}

func (t *TagPostgreSQL) List(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventTag, error) {
	cacheKey := fmt.Sprintf("tags:%s", taxonomyFilterKey(filters))
	var tags []*models.EventTag

	err := t.cacheManager.Taxonomy.CacheOrExecute(ctx, cacheKey, &tags, cache.TaxonomyCacheConfig.TTL, func() (interface{}, error) {
		var dbTags []*models.EventTag
		query := applyTaxonomyFilters(t.db.WithContext(ctx), filters).Order("name ASC")
		if err := query.Find(&dbTags).Error; err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		return dbTags, nil
	})

	if err != nil {
		return nil, err
	}

	return tags, nil
}

func (t *TagPostgreSQL) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).Model(&models.EventTag{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}
	return count > 0, nil
}

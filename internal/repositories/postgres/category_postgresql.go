package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/StudyTrack/calendar-service/internal/cache"
	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
)

type CategoryPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCategoryPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.CategoryRepository {
	return &CategoryPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

func (c *CategoryPostgreSQL) Create(ctx context.Context, category *models.EventCategory) error {
	if err := c.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	cache.InvalidateTaxonomyCache(ctx, c.cacheManager)
	return nil
}

func (c *CategoryPostgreSQL) GetByID(ctx context.Context, id uint) (*models.EventCategory, error) {
	var category models.EventCategory
	if err := c.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (c *CategoryPostgreSQL) GetByName(ctx context.Context, name string) (*models.EventCategory, error) {
	var category models.EventCategory
	if err := c.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

func (c *CategoryPostgreSQL) List(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventCategory, error) {
	cacheKey := fmt.Sprintf("categories:%s", taxonomyFilterKey(filters))
	var categories []*models.EventCategory

	err := c.cacheManager.Taxonomy.CacheOrExecute(ctx, cacheKey, &categories, cache.TaxonomyCacheConfig.TTL, func() (interface{}, error) {
		var dbCategories []*models.EventCategory
		query := applyTaxonomyFilters(c.db.WithContext(ctx), filters).Order("name ASC")
		if err := query.Find(&dbCategories).Error; err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return dbCategories, nil
	})

	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *CategoryPostgreSQL) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&models.EventCategory{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return count > 0, nil
}

func (c *CategoryPostgreSQL) CountEvents(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&models.CalendarEvent{}).
		Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count category events: %w", err)
	}
	return count, nil
}

func applyTaxonomyFilters(query *gorm.DB, filters repositories.TaxonomyFilters) *gorm.DB {
	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}
	if filters.Name != nil {
		query = query.Where("name ILIKE ?", "%"+*filters.Name+"%")
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}

func taxonomyFilterKey(filters repositories.TaxonomyFilters) string {
	key := "all"
	if filters.Active != nil {
		key += fmt.Sprintf(":a=%t", *filters.Active)
	}
	if filters.Name != nil {
		key += ":n=" + *filters.Name
	}
	if filters.Limit > 0 || filters.Offset > 0 {
		key += fmt.Sprintf(":l=%d,o=%d", filters.Limit, filters.Offset)
	}
	return key
}

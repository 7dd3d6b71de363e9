package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/StudyTrack/calendar-service/internal/cache"
	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
)

type EventPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewEventPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.EventRepository {
	return &EventPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create persists a new event together with its in-memory tag links and
// invalidates the owner's listings.
func (e *EventPostgreSQL) Create(ctx context.Context, event *models.CalendarEvent) error {
	if err := e.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, e.cacheManager.Event, fmt.Sprintf("owner:%d:*", event.UserID))
	return nil
}

// GetByID retrieves an event with owner, category and tags, via cache.
func (e *EventPostgreSQL) GetByID(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var event models.CalendarEvent

	err := e.cacheManager.Event.CacheOrExecute(ctx, cacheKey, &event, cache.EventCacheConfig.TTL, func() (interface{}, error) {
		var dbEvent models.CalendarEvent
		err := e.db.WithContext(ctx).
			Preload("User").
			Preload("Category").
			Preload("Tags").
			First(&dbEvent, id).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get event: %w", err)
		}
		return &dbEvent, nil
	})

	if err != nil {
		return nil, err
	}

	return &event, nil
}

// Update overwrites the event's scalar columns and category link. Tag links
// are replaced separately via ReplaceTags.
func (e *EventPostgreSQL) Update(ctx context.Context, event *models.CalendarEvent) error {
	updates := map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"start_time":  event.StartTime,
		"end_time":    event.EndTime,
		"priority":    event.Priority,
		"status":      event.Status,
		"category_id": event.CategoryID,
		"updated_at":  event.UpdatedAt,
	}
	if event.Type == models.EventTypeAssignment {
		updates["subject"] = event.Subject
		updates["course_code"] = event.CourseCode
		updates["assignment_type"] = event.AssignmentType
		updates["total_points"] = event.TotalPoints
		updates["submission_method"] = event.SubmissionMethod
		updates["is_group_assignment"] = event.IsGroupAssignment
	}

	if err := e.db.WithContext(ctx).Model(&models.CalendarEvent{}).
		Where("id = ?", event.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	cache.InvalidateEventCache(ctx, e.cacheManager, event.ID, event.UserID)
	return nil
}

// Delete removes the event; the store detaches tag links via the join table.
func (e *EventPostgreSQL) Delete(ctx context.Context, event *models.CalendarEvent) error {
	if err := e.db.WithContext(ctx).Select("Tags").Delete(event).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	cache.InvalidateEventCache(ctx, e.cacheManager, event.ID, event.UserID)
	return nil
}

// ListByOwner returns all events owned by the user, cached per owner+filters.
func (e *EventPostgreSQL) ListByOwner(ctx context.Context, userID uint, filters repositories.EventFilters) ([]*models.CalendarEvent, error) {
	cacheKey := fmt.Sprintf("owner:%d:%s", userID, filterKey(filters))
	var events []*models.CalendarEvent

	err := e.cacheManager.Event.CacheOrExecute(ctx, cacheKey, &events, cache.EventCacheConfig.TTL, func() (interface{}, error) {
		query := e.db.WithContext(ctx).
			Preload("User").
			Preload("Category").
			Preload("Tags").
			Where("user_id = ?", userID)

		query = applyEventFilters(query, filters)

		var dbEvents []*models.CalendarEvent
		if err := query.Find(&dbEvents).Error; err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		return dbEvents, nil
	})

	if err != nil {
		return nil, err
	}

	return events, nil
}

// ReplaceTags overwrites the event's tag associations.
func (e *EventPostgreSQL) ReplaceTags(ctx context.Context, event *models.CalendarEvent, tags []*models.EventTag) error {
	if err := e.db.WithContext(ctx).Model(event).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("failed to replace event tags: %w", err)
	}
	event.Tags = tags
	cache.InvalidateEventCache(ctx, e.cacheManager, event.ID, event.UserID)
	return nil
}

func applyEventFilters(query *gorm.DB, filters repositories.EventFilters) *gorm.DB {
	if filters.Type != nil {
		query = query.Where("event_type = ?", *filters.Type)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	sortBy := filters.SortBy
	switch sortBy {
	case "start_time", "created_at", "title":
	default:
		sortBy = "start_time"
	}
	order := "ASC"
	if filters.SortOrder == "desc" {
		order = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}

func filterKey(filters repositories.EventFilters) string {
	key := "all"
	if filters.Type != nil {
		key += ":t=" + string(*filters.Type)
	}
	if filters.Status != nil {
		key += ":s=" + string(*filters.Status)
	}
	if filters.Priority != nil {
		key += ":p=" + string(*filters.Priority)
	}
	if filters.CategoryID != nil {
		key += fmt.Sprintf(":c=%d", *filters.CategoryID)
	}
	if filters.Limit > 0 || filters.Offset > 0 {
		key += fmt.Sprintf(":l=%d,o=%d", filters.Limit, filters.Offset)
	}
	if filters.SortBy != "" {
		key += ":sort=" + filters.SortBy + "," + filters.SortOrder
	}
	return key
}

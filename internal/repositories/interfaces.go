package repositories

import (
	"context"

	"github.com/StudyTrack/calendar-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type EventFilters struct {
	Type       *models.EventType     `json:"type"`
	Status     *models.EventStatus   `json:"status"`
	Priority   *models.EventPriority `json:"priority"`
	CategoryID *uint                 `json:"category_id"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
	SortBy     string                `json:"sort_by"`    // "start_time", "created_at", "title"
	SortOrder  string                `json:"sort_order"` // "asc", "desc"
}

type TaxonomyFilters struct {
	Active *bool   `json:"active"`
	Name   *string `json:"name"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// ===== REPOSITORY INTERFACES =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	Update(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, event *models.CalendarEvent) error
	GetByID(ctx context.Context, id uint) (*models.CalendarEvent, error)
	ListByOwner(ctx context.Context, userID uint, filters EventFilters) ([]*models.CalendarEvent, error)

	// ReplaceTags overwrites the event's tag set. An empty slice detaches all.
	ReplaceTags(ctx context.Context, event *models.CalendarEvent, tags []*models.EventTag) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.EventCategory) error
	GetByID(ctx context.Context, id uint) (*models.EventCategory, error)
	GetByName(ctx context.Context, name string) (*models.EventCategory, error)
	List(ctx context.Context, filters TaxonomyFilters) ([]*models.EventCategory, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountEvents(ctx context.Context, categoryID uint) (int64, error)
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.EventTag) error
	GetByID(ctx context.Context, id uint) (*models.EventTag, error)
	GetByName(ctx context.Context, name string) (*models.EventTag, error)

	// GetByIDs resolves a batch of ids, silently omitting those that do not exist.
	GetByIDs(ctx context.Context, ids []uint) ([]*models.EventTag, error)
	List(ctx context.Context, filters TaxonomyFilters) ([]*models.EventTag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
)

// MockRepository is an in-memory Repository aggregate for service tests.
type MockRepository struct {
	userRepo     *mockUserRepo
	eventRepo    *mockEventRepo
	categoryRepo *mockCategoryRepo
	tagRepo      *mockTagRepo
}

func NewMockRepository() *MockRepository {
	userRepo := &mockUserRepo{users: make(map[uint]*models.User)}
	return &MockRepository{
		userRepo:     userRepo,
		eventRepo:    &mockEventRepo{events: make(map[uint]*models.CalendarEvent), users: userRepo},
		categoryRepo: &mockCategoryRepo{categories: make(map[uint]*models.EventCategory)},
		tagRepo:      &mockTagRepo{tags: make(map[uint]*models.EventTag)},
	}
}

func (m *MockRepository) User() repositories.UserRepository         { return m.userRepo }
func (m *MockRepository) Event() repositories.EventRepository       { return m.eventRepo }
func (m *MockRepository) Category() repositories.CategoryRepository { return m.categoryRepo }
func (m *MockRepository) Tag() repositories.TagRepository           { return m.tagRepo }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }

// ===== USERS =====

type mockUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func (r *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

func (r *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

// ===== EVENTS =====

type mockEventRepo struct {
	events map[uint]*models.CalendarEvent
	nextID uint
	users  *mockUserRepo
}

func (r *mockEventRepo) Create(ctx context.Context, event *models.CalendarEvent) error {
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) Update(ctx context.Context, event *models.CalendarEvent) error {
	if _, ok := r.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) Delete(ctx context.Context, event *models.CalendarEvent) error {
	if _, ok := r.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.events, event.ID)
	return nil
}

func (r *mockEventRepo) GetByID(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if event.User == nil && r.users != nil {
		if owner, err := r.users.GetByID(ctx, event.UserID); err == nil {
			event.User = owner
		}
	}
	return event, nil
}

func (r *mockEventRepo) ListByOwner(ctx context.Context, userID uint, filters repositories.EventFilters) ([]*models.CalendarEvent, error) {
	var out []*models.CalendarEvent
	for _, event := range r.events {
		if event.UserID != userID {
			continue
		}
		if filters.Type != nil && event.Type != *filters.Type {
			continue
		}
		if filters.Status != nil && event.Status != *filters.Status {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (r *mockEventRepo) ReplaceTags(ctx context.Context, event *models.CalendarEvent, tags []*models.EventTag) error {
	if _, ok := r.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	event.Tags = tags
	r.events[event.ID].Tags = tags
	return nil
}

// ===== CATEGORIES =====

type mockCategoryRepo struct {
	categories map[uint]*models.EventCategory
	nextID     uint
}

func (r *mockCategoryRepo) Create(ctx context.Context, category *models.EventCategory) error {
	r.nextID++
	category.ID = r.nextID
	r.categories[category.ID] = category
	return nil
}

func (r *mockCategoryRepo) GetByID(ctx context.Context, id uint) (*models.EventCategory, error) {
	if category, ok := r.categories[id]; ok {
		return category, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCategoryRepo) GetByName(ctx context.Context, name string) (*models.EventCategory, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCategoryRepo) List(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventCategory, error) {
	var out []*models.EventCategory
	for _, category := range r.categories {
		if filters.Active != nil && category.Active != *filters.Active {
			continue
		}
		if filters.Name != nil && !strings.Contains(category.Name, *filters.Name) {
			continue
		}
		out = append(out, category)
	}
	return out, nil
}

func (r *mockCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.GetByName(ctx, name)
	return err == nil, nil
}

func (r *mockCategoryRepo) CountEvents(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

// ===== TAGS =====

type mockTagRepo struct {
	tags   map[uint]*models.EventTag
	nextID uint
}

func (r *mockTagRepo) Create(ctx context.Context, tag *models.EventTag) error {
	r.nextID++
	tag.ID = r.nextID
	r.tags[tag.ID] = tag
	return nil
}

func (r *mockTagRepo) GetByID(ctx context.Context, id uint) (*models.EventTag, error) {
	if tag, ok := r.tags[id]; ok {
		return tag, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTagRepo) GetByName(ctx context.Context, name string) (*models.EventTag, error) {
	for _, tag := range r.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTagRepo) GetByIDs(ctx context.Context, ids []uint) ([]*models.EventTag, error) {
	var out []*models.EventTag
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (r *mockTagRepo) List(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventTag, error) {
	var out []*models.EventTag
	for _, tag := range r.tags {
		if filters.Active != nil && tag.Active != *filters.Active {
			continue
		}
		out = append(out, tag)
	}
	return out, nil
}

func (r *mockTagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.GetByName(ctx, name)
	return err == nil, nil
}

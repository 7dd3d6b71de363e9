package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/validator"
)

// Request DTOs live next to their validation rules in the validator package.
type (
	RegisterRequest       = validator.RegisterRequest
	LoginRequest          = validator.LoginRequest
	EventCreateRequest    = validator.EventCreateRequest
	EventUpdateRequest    = validator.EventUpdateRequest
	CategoryCreateRequest = validator.CategoryCreateRequest
	TagCreateRequest      = validator.TagCreateRequest
)

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token    string          `json:"token"`
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

// Identity is the verified principal extracted from a bearer token.
type Identity struct {
	Username string
	Role     models.UserRole
}

// AuthService issues and verifies stateless bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ValidateToken(token string) (*Identity, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

// EventService owns the calendar event lifecycle.
type EventService interface {
	Create(ctx context.Context, req *EventCreateRequest, ownerUsername string) (*models.CalendarEvent, error)
	Update(ctx context.Context, id uint, req *EventUpdateRequest, callerUsername string) (*models.CalendarEvent, error)
	Delete(ctx context.Context, id uint, callerUsername string) error
	Get(ctx context.Context, id uint) (*models.CalendarEvent, error)
	ListByUser(ctx context.Context, username string, filters repositories.EventFilters) ([]*models.CalendarEvent, error)
	Upcoming(ctx context.Context, username string) ([]*models.CalendarEvent, error)
	Today(ctx context.Context, username string) ([]*models.CalendarEvent, error)
}

// TaxonomyService manages the shared categories and tags.
type TaxonomyService interface {
	CreateCategory(ctx context.Context, req *CategoryCreateRequest) (*models.EventCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.EventCategory, error)
	ListCategories(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventCategory, error)
	CreateTag(ctx context.Context, req *TagCreateRequest) (*models.EventTag, error)
	GetTag(ctx context.Context, id uint) (*models.EventTag, error)
	ListTags(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventTag, error)
}

// ExportService renders a user's events as a spreadsheet.
type ExportService interface {
	ExportUserEvents(ctx context.Context, username string) (*excelize.File, error)
}

// ServiceManager wires the services together and manages their lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Event() EventService
	Taxonomy() TaxonomyService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

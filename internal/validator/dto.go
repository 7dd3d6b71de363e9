package validator

import (
	"time"

	"github.com/StudyTrack/calendar-service/internal/models"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Username  string           `json:"username" validate:"required,min=3,max=50"`
	Email     string           `json:"email" validate:"required,email,max=255"`
	Password  string           `json:"password" validate:"required,min=6,max=72"`
	FirstName string           `json:"first_name" validate:"omitempty,max=50"`
	LastName  string           `json:"last_name" validate:"omitempty,max=50"`
	Role      *models.UserRole `json:"role" validate:"omitempty,user_role"`
}

// LoginRequest carries one-time credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EventCreateRequest is the payload for creating a calendar event. EventType
// selects the variant; the assignment fields are only consulted when it is
// ASSIGNMENT.
type EventCreateRequest struct {
	Title       string               `json:"title" validate:"required,event_title"`
	Description string               `json:"description" validate:"omitempty,max=2000"`
	StartTime   *time.Time           `json:"start_time" validate:"required"`
	EndTime     *time.Time           `json:"end_time" validate:"required"`
	Priority    models.EventPriority `json:"priority" validate:"omitempty,event_priority"`
	Status      models.EventStatus   `json:"status" validate:"omitempty,event_status"`
	EventType   models.EventType     `json:"event_type" validate:"required,event_type"`
	CategoryID  *uint                `json:"category_id"`
	TagIDs      []uint               `json:"tag_ids"`

	// Assignment-specific fields
	Subject           string                 `json:"subject" validate:"omitempty,max=100"`
	CourseCode        string                 `json:"course_code" validate:"omitempty,max=30"`
	AssignmentType    *models.AssignmentType `json:"assignment_type" validate:"omitempty,assignment_type"`
	TotalPoints       *int                   `json:"total_points" validate:"omitempty,min=0,max=1000"`
	SubmissionMethod  string                 `json:"submission_method" validate:"omitempty,max=50"`
	IsGroupAssignment bool                   `json:"is_group_assignment"`
}

// EventUpdateRequest is the payload for updating an event. Scalar fields are
// always overwritten. CategoryID and TagIDs distinguish absent from explicit:
// nil leaves the association untouched, a non-nil value overwrites it (an
// explicitly empty tag list detaches every tag). The variant and its
// assignment payload are fixed at creation and not updatable.
type EventUpdateRequest struct {
	Title       string               `json:"title" validate:"required,event_title"`
	Description string               `json:"description" validate:"omitempty,max=2000"`
	StartTime   *time.Time           `json:"start_time" validate:"required"`
	EndTime     *time.Time           `json:"end_time" validate:"required"`
	Priority    models.EventPriority `json:"priority" validate:"omitempty,event_priority"`
	Status      models.EventStatus   `json:"status" validate:"omitempty,event_status"`
	CategoryID  *uint                `json:"category_id"`
	TagIDs      *[]uint              `json:"tag_ids"`
}

// CategoryCreateRequest creates an event category.
type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ColorHex    string `json:"color_hex" validate:"omitempty,color_hex"`
}

// TagCreateRequest creates an event tag.
type TagCreateRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ColorHex string `json:"color_hex" validate:"omitempty,color_hex"`
}

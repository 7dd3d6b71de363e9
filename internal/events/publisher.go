package events

import (
	"context"
	"time"
)

// Event types emitted by the calendar service.
const (
	EventTypeCalendarEventCreated = "calendar.event_created"
	EventTypeCalendarEventUpdated = "calendar.event_updated"
	EventTypeCalendarEventDeleted = "calendar.event_deleted"
	EventTypeUserRegistered       = "calendar.user_registered"
)

const (
	eventSource  = "calendar-service"
	eventVersion = "1.0"
)

// Event is the envelope published to the message broker.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EventPublisher publishes domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event *Event) error
	Close() error
}

// CalendarEventData is the payload for event lifecycle notifications.
type CalendarEventData struct {
	EventID   uint      `json:"event_id"`
	EventType string    `json:"event_type"`
	Title     string    `json:"title"`
	OwnerID   uint      `json:"owner_id"`
	Owner     string    `json:"owner"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// UserRegisteredData is the payload for registration notifications.
type UserRegisteredData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

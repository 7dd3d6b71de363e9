package models

import "time"

const DefaultCategoryColor = "#2196F3"

// EventCategory groups calendar events. The reverse Events collection exists
// for counting only; it never owns the events.
type EventCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Description string `json:"description" gorm:"type:text"`
	ColorHex    string `json:"color_hex" gorm:"column:color_hex;not null;default:#2196F3;size:7"`
	Active      bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Events []CalendarEvent `json:"-" gorm:"foreignKey:CategoryID"`
}

func (EventCategory) TableName() string {
	return "event_categories"
}

func (c *EventCategory) EventCount() int {
	return len(c.Events)
}

func (c *EventCategory) HasEvents() bool {
	return len(c.Events) > 0
}

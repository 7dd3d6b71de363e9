package models

import "time"

const DefaultTagColor = "#FF9800"

type EventTag struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:100"`
	ColorHex string `json:"color_hex" gorm:"column:color_hex;not null;default:#FF9800;size:7"`
	Active   bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Events []*CalendarEvent `json:"-" gorm:"many2many:event_tag_links"`
}

func (EventTag) TableName() string {
	return "event_tags"
}

// Same reports id-based identity; unpersisted tags only match themselves.
func (t *EventTag) Same(other *EventTag) bool {
	if t == other {
		return t != nil
	}
	if t == nil || other == nil {
		return false
	}
	return t.ID != 0 && t.ID == other.ID
}

func (t *EventTag) EventCount() int {
	return len(t.Events)
}

func (t *EventTag) HasEvents() bool {
	return len(t.Events) > 0
}

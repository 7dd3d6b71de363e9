package models

import (
	"fmt"
	"time"
)

// EventType discriminates the closed set of calendar event variants. The
// string values double as the wire discriminator accepted on event creation.
type EventType string

const (
	EventTypeGeneral    EventType = "GENERAL"
	EventTypeAssignment EventType = "ASSIGNMENT"
)

func (t EventType) Valid() bool {
	return t == EventTypeGeneral || t == EventTypeAssignment
}

type EventPriority string

const (
	PriorityLow    EventPriority = "LOW"
	PriorityMedium EventPriority = "MEDIUM"
	PriorityHigh   EventPriority = "HIGH"
	PriorityUrgent EventPriority = "URGENT"
)

// Level maps priorities onto a comparable scale.
func (p EventPriority) Level() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

func (p EventPriority) HigherThan(other EventPriority) bool {
	return p.Level() > other.Level()
}

func (p EventPriority) Valid() bool {
	return p.Level() > 0
}

type EventStatus string

const (
	StatusScheduled  EventStatus = "SCHEDULED"
	StatusInProgress EventStatus = "IN_PROGRESS"
	StatusCompleted  EventStatus = "COMPLETED"
	StatusCancelled  EventStatus = "CANCELLED"
	StatusPostponed  EventStatus = "POSTPONED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusPostponed:
		return true
	}
	return false
}

func (s EventStatus) IsActive() bool {
	return s == StatusScheduled || s == StatusInProgress
}

func (s EventStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s EventStatus) IsCancelled() bool {
	return s == StatusCancelled || s == StatusPostponed
}

type AssignmentType string

const (
	AssignmentHomework      AssignmentType = "HOMEWORK"
	AssignmentQuiz          AssignmentType = "QUIZ"
	AssignmentExam          AssignmentType = "EXAM"
	AssignmentProject       AssignmentType = "PROJECT"
	AssignmentPresentation  AssignmentType = "PRESENTATION"
	AssignmentLabReport     AssignmentType = "LAB_REPORT"
	AssignmentResearchPaper AssignmentType = "RESEARCH_PAPER"
	AssignmentEssay         AssignmentType = "ESSAY"
	AssignmentDiscussion    AssignmentType = "DISCUSSION"
	AssignmentParticipation AssignmentType = "PARTICIPATION"
)

func (t AssignmentType) Valid() bool {
	switch t {
	case AssignmentHomework, AssignmentQuiz, AssignmentExam, AssignmentProject,
		AssignmentPresentation, AssignmentLabReport, AssignmentResearchPaper,
		AssignmentEssay, AssignmentDiscussion, AssignmentParticipation:
		return true
	}
	return false
}

// DisplayName returns the human-readable label for the assignment kind.
func (t AssignmentType) DisplayName() string {
	switch t {
	case AssignmentHomework:
		return "Homework"
	case AssignmentQuiz:
		return "Quiz"
	case AssignmentExam:
		return "Exam"
	case AssignmentProject:
		return "Project"
	case AssignmentPresentation:
		return "Presentation"
	case AssignmentLabReport:
		return "Lab Report"
	case AssignmentResearchPaper:
		return "Research Paper"
	case AssignmentEssay:
		return "Essay"
	case AssignmentDiscussion:
		return "Discussion"
	case AssignmentParticipation:
		return "Participation"
	}
	return string(t)
}

func (t AssignmentType) IsMajorAssessment() bool {
	return t == AssignmentExam || t == AssignmentProject || t == AssignmentResearchPaper
}

func (t AssignmentType) IsMinorAssessment() bool {
	return t == AssignmentHomework || t == AssignmentQuiz || t == AssignmentParticipation
}

// AssignmentFields is the variant-specific payload of an ASSIGNMENT event.
// All columns live in the calendar_events table (single-table layout keyed by
// the event_type discriminator) and stay NULL for GENERAL events.
type AssignmentFields struct {
	Subject           *string         `json:"subject,omitempty" gorm:"size:100"`
	CourseCode        *string         `json:"course_code,omitempty" gorm:"column:course_code;size:30"`
	AssignmentType    *AssignmentType `json:"assignment_type,omitempty" gorm:"column:assignment_type;size:30"`
	TotalPoints       *int            `json:"total_points,omitempty" gorm:"column:total_points"`
	SubmissionMethod  *string         `json:"submission_method,omitempty" gorm:"column:submission_method;size:50"`
	IsGroupAssignment *bool           `json:"is_group_assignment,omitempty" gorm:"column:is_group_assignment"`
}

// CalendarEvent is the tagged union over the GENERAL and ASSIGNMENT variants.
// Variant-specific behavior dispatches on Type rather than on dynamic method
// overrides; the variant set is closed.
type CalendarEvent struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Type        EventType     `json:"event_type" gorm:"column:event_type;not null;index;size:20"`
	Title       string        `json:"title" gorm:"not null;size:200"`
	Description string        `json:"description" gorm:"type:text"`
	StartTime   time.Time     `json:"start_time" gorm:"column:start_time;not null;index"`
	EndTime     time.Time     `json:"end_time" gorm:"column:end_time;not null"`
	Priority    EventPriority `json:"priority" gorm:"not null;default:MEDIUM;size:20"`
	Status      EventStatus   `json:"status" gorm:"not null;default:SCHEDULED;size:20"`

	// Owner is set once at creation and never reassigned.
	UserID uint  `json:"user_id" gorm:"not null;index"`
	User   *User `json:"owner,omitempty" gorm:"foreignKey:UserID"`

	CategoryID *uint          `json:"category_id,omitempty"`
	Category   *EventCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Tags []*EventTag `json:"tags" gorm:"many2many:event_tag_links"`

	AssignmentFields

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// EventType returns the fixed discriminator label for the variant.
func (e *CalendarEvent) EventType() string {
	if e.Type == EventTypeAssignment {
		return string(EventTypeAssignment)
	}
	return string(EventTypeGeneral)
}

func (e *CalendarEvent) IsAssignment() bool {
	return e.Type == EventTypeAssignment
}

// Same reports id-based identity. Two unpersisted events (zero id) are never
// the same unless they are the same pointer.
func (e *CalendarEvent) Same(other *CalendarEvent) bool {
	if e == other {
		return e != nil
	}
	if e == nil || other == nil {
		return false
	}
	return e.ID != 0 && e.ID == other.ID
}

// Overlapping reports whether two events share any time, counting touching
// boundaries (a.end == b.start) as overlap.
func (e *CalendarEvent) Overlapping(other *CalendarEvent) bool {
	return !(e.EndTime.Before(other.StartTime) || e.StartTime.After(other.EndTime))
}

func (e *CalendarEvent) DurationMinutes() int64 {
	return int64(e.EndTime.Sub(e.StartTime).Minutes())
}

func (e *CalendarEvent) IsToday(now time.Time) bool {
	y1, m1, d1 := e.StartTime.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (e *CalendarEvent) IsUpcoming(now time.Time) bool {
	return e.StartTime.After(now)
}

// AddTag links the tag to the event and registers the event on the tag's
// reverse collection, keeping both sides of the relation consistent in memory.
func (e *CalendarEvent) AddTag(tag *EventTag) {
	if tag == nil || e.HasTag(tag) {
		return
	}
	e.Tags = append(e.Tags, tag)
	tag.Events = append(tag.Events, e)
}

// RemoveTag detaches the tag from both sides of the relation.
func (e *CalendarEvent) RemoveTag(tag *EventTag) {
	if tag == nil {
		return
	}
	for i, t := range e.Tags {
		if t.Same(tag) {
			e.Tags = append(e.Tags[:i], e.Tags[i+1:]...)
			for j, ev := range tag.Events {
				if ev.Same(e) {
					tag.Events = append(tag.Events[:j], tag.Events[j+1:]...)
					break
				}
			}
			return
		}
	}
}

func (e *CalendarEvent) HasTag(tag *EventTag) bool {
	for _, t := range e.Tags {
		if t.Same(tag) {
			return true
		}
	}
	return false
}

// Overdue reports whether an assignment has passed its due time while still
// scheduled. Always false for GENERAL events.
func (e *CalendarEvent) Overdue(now time.Time) bool {
	if e.Type != EventTypeAssignment {
		return false
	}
	return now.After(e.EndTime) && e.Status == StatusScheduled
}

// DaysUntilDue returns whole days between now and the due time, floored at 0.
// Always 0 for GENERAL events.
func (e *CalendarEvent) DaysUntilDue(now time.Time) int64 {
	if e.Type != EventTypeAssignment || now.After(e.EndTime) {
		return 0
	}
	return int64(e.EndTime.Sub(now).Hours() / 24)
}

// Summary renders a one-line description, dispatching on the variant tag.
func (e *CalendarEvent) Summary() string {
	if e.Type == EventTypeAssignment {
		subject, course := "", ""
		if e.Subject != nil {
			subject = *e.Subject
		}
		if e.CourseCode != nil {
			course = *e.CourseCode
		}
		return fmt.Sprintf("%s - %s (%s)", subject, e.Title, course)
	}
	return fmt.Sprintf("%s (%s - %s)", e.Title,
		e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}

package models

import (
	"testing"
	"time"
)

func generalEvent(start, end time.Time) *CalendarEvent {
	return &CalendarEvent{
		Type:      EventTypeGeneral,
		Title:     "Study group",
		StartTime: start,
		EndTime:   end,
		Priority:  PriorityMedium,
		Status:    StatusScheduled,
	}
}

func assignmentEvent(start, end time.Time) *CalendarEvent {
	subject := "Mathematics"
	course := "MATH301"
	return &CalendarEvent{
		Type:      EventTypeAssignment,
		Title:     "Final exam",
		StartTime: start,
		EndTime:   end,
		Priority:  PriorityHigh,
		Status:    StatusScheduled,
		AssignmentFields: AssignmentFields{
			Subject:    &subject,
			CourseCode: &course,
		},
	}
}

func TestCalendarEvent_Overlapping(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{
			name: "disjoint",
			a:    [2]time.Time{base, base.Add(time.Hour)},
			b:    [2]time.Time{base.Add(2 * time.Hour), base.Add(3 * time.Hour)},
			want: false,
		},
		{
			name: "contained",
			a:    [2]time.Time{base, base.Add(4 * time.Hour)},
			b:    [2]time.Time{base.Add(time.Hour), base.Add(2 * time.Hour)},
			want: true,
		},
		{
			name: "partial",
			a:    [2]time.Time{base, base.Add(2 * time.Hour)},
			b:    [2]time.Time{base.Add(time.Hour), base.Add(3 * time.Hour)},
			want: true,
		},
		{
			// One ends at 11:00, the other starts at 11:00.
			name: "touching boundaries count",
			a:    [2]time.Time{base, base.Add(2 * time.Hour)},
			b:    [2]time.Time{base.Add(2 * time.Hour), base.Add(3 * time.Hour)},
			want: true,
		},
		{
			name: "one minute apart",
			a:    [2]time.Time{base, base.Add(2 * time.Hour)},
			b:    [2]time.Time{base.Add(2*time.Hour + time.Minute), base.Add(3 * time.Hour)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := generalEvent(tt.a[0], tt.a[1])
			b := generalEvent(tt.b[0], tt.b[1])
			if got := a.Overlapping(b); got != tt.want {
				t.Errorf("Overlapping() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := b.Overlapping(a); got != tt.want {
				t.Errorf("Overlapping() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalendarEvent_VariantDispatch(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	general := generalEvent(start, end)
	assignment := assignmentEvent(start, end)

	if general.EventType() != "GENERAL" || general.IsAssignment() {
		t.Errorf("GENERAL event dispatches wrong: %s", general.EventType())
	}
	if assignment.EventType() != "ASSIGNMENT" || !assignment.IsAssignment() {
		t.Errorf("ASSIGNMENT event dispatches wrong: %s", assignment.EventType())
	}

	if got := assignment.Summary(); got != "Mathematics - Final exam (MATH301)" {
		t.Errorf("Unexpected assignment summary: %q", got)
	}
}

func TestCalendarEvent_Same(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	a := generalEvent(start, start.Add(time.Hour))
	b := generalEvent(start, start.Add(time.Hour))

	// Two unpersisted events are distinct even with equal fields.
	if a.Same(b) {
		t.Error("Zero-id events must only match themselves")
	}
	if !a.Same(a) {
		t.Error("An event is the same as itself")
	}

	a.ID, b.ID = 7, 7
	if !a.Same(b) {
		t.Error("Events with equal ids are the same")
	}

	var nilEvent *CalendarEvent
	if a.Same(nilEvent) {
		t.Error("Nothing is the same as nil")
	}
}

func TestCalendarEvent_TodayAndUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	morning := generalEvent(
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	)
	tomorrow := generalEvent(
		time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
	)

	if !morning.IsToday(now) {
		t.Error("Morning event is today")
	}
	if morning.IsUpcoming(now) {
		t.Error("Past event is not upcoming")
	}
	if tomorrow.IsToday(now) {
		t.Error("Tomorrow's event is not today")
	}
	if !tomorrow.IsUpcoming(now) {
		t.Error("Tomorrow's event is upcoming")
	}
}

func TestCalendarEvent_TagLinks(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	event := generalEvent(start, start.Add(time.Hour))
	event.ID = 1
	tag := &EventTag{ID: 5, Name: "urgent"}

	event.AddTag(tag)
	if !event.HasTag(tag) {
		t.Fatal("Tag not linked")
	}
	if len(tag.Events) != 1 {
		t.Fatal("Reverse side not linked")
	}

	// Adding twice is a no-op.
	event.AddTag(tag)
	if len(event.Tags) != 1 {
		t.Errorf("Expected 1 tag after duplicate add, got %d", len(event.Tags))
	}

	event.RemoveTag(tag)
	if event.HasTag(tag) {
		t.Error("Tag still linked after remove")
	}
	if len(tag.Events) != 0 {
		t.Error("Reverse side still linked after remove")
	}
}

func TestCalendarEvent_AssignmentDeadlines(t *testing.T) {
	due := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	assignment := assignmentEvent(due.Add(-time.Hour), due)
	general := generalEvent(due.Add(-time.Hour), due)

	before := due.Add(-49 * time.Hour)
	after := due.Add(time.Minute)

	if assignment.Overdue(before) {
		t.Error("Not overdue before the deadline")
	}
	if !assignment.Overdue(after) {
		t.Error("Overdue after the deadline while still scheduled")
	}
	if general.Overdue(after) {
		t.Error("GENERAL events are never overdue")
	}

	assignment.Status = StatusCompleted
	if assignment.Overdue(after) {
		t.Error("Completed assignments are not overdue")
	}
	assignment.Status = StatusScheduled

	if got := assignment.DaysUntilDue(before); got != 2 {
		t.Errorf("Expected 2 days until due, got %d", got)
	}
	if got := assignment.DaysUntilDue(after); got != 0 {
		t.Errorf("Past-due floors at 0, got %d", got)
	}
	if got := general.DaysUntilDue(before); got != 0 {
		t.Errorf("GENERAL events report 0, got %d", got)
	}
}

func TestEventPriority_Ordering(t *testing.T) {
	if !PriorityUrgent.HigherThan(PriorityHigh) {
		t.Error("URGENT outranks HIGH")
	}
	if PriorityLow.HigherThan(PriorityMedium) {
		t.Error("LOW does not outrank MEDIUM")
	}
	if EventPriority("BOGUS").Valid() {
		t.Error("Unknown priority must be invalid")
	}
}

func TestEventStatus_Lifecycle(t *testing.T) {
	if !StatusScheduled.IsActive() || !StatusInProgress.IsActive() {
		t.Error("SCHEDULED and IN_PROGRESS are active")
	}
	if !StatusCompleted.IsCompleted() {
		t.Error("COMPLETED is completed")
	}
	if !StatusCancelled.IsCancelled() || !StatusPostponed.IsCancelled() {
		t.Error("CANCELLED and POSTPONED count as cancelled")
	}
}

package validator

import (
	"testing"
	"time"

	"github.com/StudyTrack/calendar-service/internal/models"
)

func validEventCreate() *EventCreateRequest {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	return &EventCreateRequest{
		Title:     "Study group",
		EventType: models.EventTypeGeneral,
		StartTime: &start,
		EndTime:   &end,
	}
}

func TestBusinessValidator_ValidateEventCreate(t *testing.T) {
	bv := NewBusinessValidator()

	t.Run("Valid", func(t *testing.T) {
		if errs := bv.ValidateEventCreate(validEventCreate()); len(errs) > 0 {
			t.Errorf("Expected no errors, got %v", errs)
		}
	})

	t.Run("MissingTimes", func(t *testing.T) {
		req := validEventCreate()
		req.StartTime = nil
		if errs := bv.ValidateEventCreate(req); len(errs) == 0 {
			t.Error("Expected an error for missing start_time")
		}
	})

	t.Run("BlankTitle", func(t *testing.T) {
		req := validEventCreate()
		req.Title = "   "
		if errs := bv.ValidateEventCreate(req); len(errs) == 0 {
			t.Error("Expected an error for whitespace-only title")
		}
	})

	t.Run("UnknownEventType", func(t *testing.T) {
		req := validEventCreate()
		req.EventType = "MEETING"
		if errs := bv.ValidateEventCreate(req); len(errs) == 0 {
			t.Error("Expected an error for unknown event type")
		}
	})

	t.Run("AssignmentWithoutSubject", func(t *testing.T) {
		req := validEventCreate()
		req.EventType = models.EventTypeAssignment
		errs := bv.ValidateEventCreate(req)
		if len(errs) == 0 {
			t.Fatal("Expected an error for assignment without subject")
		}
		if errs[0].Field != "subject" {
			t.Errorf("Expected the subject field flagged, got %s", errs[0].Field)
		}
	})

	t.Run("AssignmentWithSubject", func(t *testing.T) {
		req := validEventCreate()
		req.EventType = models.EventTypeAssignment
		req.Subject = "Mathematics"
		if errs := bv.ValidateEventCreate(req); len(errs) > 0 {
			t.Errorf("Expected no errors, got %v", errs)
		}
	})

	t.Run("NegativePoints", func(t *testing.T) {
		req := validEventCreate()
		req.EventType = models.EventTypeAssignment
		req.Subject = "Mathematics"
		points := -5
		req.TotalPoints = &points
		if errs := bv.ValidateEventCreate(req); len(errs) == 0 {
			t.Error("Expected an error for negative points")
		}
	})
}

func TestBusinessValidator_CustomRules(t *testing.T) {
	bv := NewBusinessValidator()

	t.Run("ColorHex", func(t *testing.T) {
		for hex, want := range map[string]bool{
			"#2196F3": true,
			"#abcdef": true,
			"2196F3":  false,
			"#12345":  false,
			"#GGGGGG": false,
		} {
			req := &CategoryCreateRequest{Name: "Labs", ColorHex: hex}
			errs := bv.Validate(req)
			if got := len(errs) == 0; got != want {
				t.Errorf("color %q: valid=%v, want %v (%v)", hex, got, want, errs)
			}
		}
	})

	t.Run("UserRole", func(t *testing.T) {
		bogus := models.UserRole("SUPERUSER")
		req := &RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "correct-horse",
			Role:     &bogus,
		}
		if errs := bv.Validate(req); len(errs) == 0 {
			t.Error("Expected an error for unknown role")
		}
	})
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/StudyTrack/calendar-service/internal/events"
	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/validator"
)

type eventService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator

	// now is swapped in tests to pin the today/upcoming windows.
	now func() time.Time
}

func NewEventService(repo repositories.Repository, eventPublisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) EventService {
	return &eventService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
		now:            time.Now,
	}
}

// Create builds an event of the requested variant for the owner. Category and
// tag references that do not resolve are dropped rather than rejected.
func (s *eventService) Create(ctx context.Context, req *EventCreateRequest, ownerUsername string) (*models.CalendarEvent, error) {
	s.logger.Info("Creating event", "owner", ownerUsername, "title", req.Title, "event_type", req.EventType)

	if errs := s.validator.GetBusinessValidator().ValidateEventCreate(req); len(errs) > 0 {
		return nil, errs
	}

	owner, err := s.repo.User().GetByUsername(ctx, ownerUsername)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	event := &models.CalendarEvent{
		Type:        req.EventType,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   *req.StartTime,
		EndTime:     *req.EndTime,
		Priority:    models.PriorityMedium,
		Status:      models.StatusScheduled,
		UserID:      owner.ID,
	}
	if req.Priority != "" {
		event.Priority = req.Priority
	}
	if req.Status != "" {
		event.Status = req.Status
	}

	if req.EventType == models.EventTypeAssignment {
		kind := models.AssignmentHomework
		if req.AssignmentType != nil {
			kind = *req.AssignmentType
		}
		event.AssignmentFields = models.AssignmentFields{
			Subject:           &req.Subject,
			TotalPoints:       req.TotalPoints,
			AssignmentType:    &kind,
			IsGroupAssignment: &req.IsGroupAssignment,
		}
		if req.CourseCode != "" {
			event.CourseCode = &req.CourseCode
		}
		if req.SubmissionMethod != "" {
			event.SubmissionMethod = &req.SubmissionMethod
		}
	}

	if req.CategoryID != nil {
		category, err := s.repo.Category().GetByID(ctx, *req.CategoryID)
		if err != nil && !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category != nil {
			event.CategoryID = &category.ID
		}
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.repo.Tag().GetByIDs(ctx, req.TagIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tags: %w", err)
		}
		event.Tags = tags
	}

	if err := s.repo.Event().Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event created", "event_id", event.ID, "owner", ownerUsername)
	s.publishEventNotification(ctx, events.EventTypeCalendarEventCreated, event, ownerUsername)

	return s.Get(ctx, event.ID)
}

// Update overwrites the event's scalar fields and, when present in the
// request, its category and tag links. The variant and assignment payload
// set at creation are never touched.
func (s *eventService) Update(ctx context.Context, id uint, req *EventUpdateRequest, callerUsername string) (*models.CalendarEvent, error) {
	if errs := s.validator.GetBusinessValidator().ValidateEventUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	event, err := s.getOwnedEvent(ctx, id, callerUsername, "update")
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartTime = *req.StartTime
	event.EndTime = *req.EndTime
	if req.Priority != "" {
		event.Priority = req.Priority
	}
	if req.Status != "" {
		event.Status = req.Status
	}

	// A nil CategoryID leaves the link untouched. A set one is re-resolved;
	// an id that no longer exists clears the link.
	if req.CategoryID != nil {
		category, err := s.repo.Category().GetByID(ctx, *req.CategoryID)
		if err != nil && !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category != nil {
			event.CategoryID = &category.ID
		} else {
			event.CategoryID = nil
		}
	}

	event.UpdatedAt = s.now()

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Event().Update(ctx, event); err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}

		// A nil TagIDs leaves the links untouched; an explicit empty list
		// detaches every tag.
		if req.TagIDs != nil {
			tags, err := txRepo.Tag().GetByIDs(ctx, *req.TagIDs)
			if err != nil {
				return fmt.Errorf("failed to resolve tags: %w", err)
			}
			if err := txRepo.Event().ReplaceTags(ctx, event, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Event updated", "event_id", event.ID, "caller", callerUsername)
	s.publishEventNotification(ctx, events.EventTypeCalendarEventUpdated, event, callerUsername)

	return s.Get(ctx, event.ID)
}

func (s *eventService) Delete(ctx context.Context, id uint, callerUsername string) error {
	event, err := s.getOwnedEvent(ctx, id, callerUsername, "delete")
	if err != nil {
		return err
	}

	if err := s.repo.Event().Delete(ctx, event); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Info("Event deleted", "event_id", id, "caller", callerUsername)
	s.publishEventNotification(ctx, events.EventTypeCalendarEventDeleted, event, callerUsername)

	return nil
}

// Get returns the event regardless of who owns it. Reads are open to any
// authenticated caller; only mutations are restricted to the owner.
func (s *eventService) Get(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	event, err := s.repo.Event().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListByUser(ctx context.Context, username string, filters repositories.EventFilters) ([]*models.CalendarEvent, error) {
	user, err := s.repo.User().GetByUsername(ctx, username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return s.repo.Event().ListByOwner(ctx, user.ID, filters)
}

// Upcoming returns the user's events starting after the current instant,
// soonest first.
func (s *eventService) Upcoming(ctx context.Context, username string) ([]*models.CalendarEvent, error) {
	all, err := s.ListByUser(ctx, username, repositories.EventFilters{SortBy: "start_time"})
	if err != nil {
		return nil, err
	}

	now := s.now()
	upcoming := make([]*models.CalendarEvent, 0, len(all))
	for _, event := range all {
		if event.IsUpcoming(now) {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}

// Today returns the user's events whose start falls on the current calendar
// day.
func (s *eventService) Today(ctx context.Context, username string) ([]*models.CalendarEvent, error) {
	all, err := s.ListByUser(ctx, username, repositories.EventFilters{SortBy: "start_time"})
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := make([]*models.CalendarEvent, 0, len(all))
	for _, event := range all {
		if event.IsToday(now) {
			today = append(today, event)
		}
	}
	return today, nil
}

// getOwnedEvent loads the event and verifies the caller owns it.
func (s *eventService) getOwnedEvent(ctx context.Context, id uint, callerUsername, action string) (*models.CalendarEvent, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.User.Username != callerUsername {
		return nil, NewOwnershipError(callerUsername, id, "event", action)
	}
	return event, nil
}

// publishEventNotification emits a domain event. Publishing is best-effort:
// a broker failure is logged and never fails the request.
func (s *eventService) publishEventNotification(ctx context.Context, eventType string, event *models.CalendarEvent, username string) {
	err := s.eventPublisher.PublishEvent(ctx, &events.Event{
		Type: eventType,
		Data: events.CalendarEventData{
			EventID:   event.ID,
			EventType: event.EventType(),
			Title:     event.Title,
			OwnerID:   event.UserID,
			Owner:     username,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
		},
	})
	if err != nil {
		s.logger.Warn("Failed to publish event notification", "event_id", event.ID, "event_type", eventType, "error", err)
	}
}

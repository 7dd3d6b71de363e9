package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
)

const exportSheet = "Events"

var exportHeader = []string{
	"ID", "Type", "Title", "Description", "Start", "End",
	"Priority", "Status", "Category", "Tags",
	"Subject", "Course Code", "Assignment Type", "Total Points",
}

type exportService struct {
	eventService EventService
	logger       *slog.Logger
}

func NewExportService(eventService EventService, logger *slog.Logger) ExportService {
	return &exportService{
		eventService: eventService,
		logger:       logger,
	}
}

// ExportUserEvents renders all of the user's events into a single-sheet
// workbook, soonest first.
func (s *exportService) ExportUserEvents(ctx context.Context, username string) (*excelize.File, error) {
	eventList, err := s.eventService.ListByUser(ctx, username, repositories.EventFilters{SortBy: "start_time"})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), exportSheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, event := range eventList {
		row := exportRow(event)
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write event %d: %w", event.ID, err)
			}
		}
	}

	s.logger.Info("Events exported", "username", username, "count", len(eventList))
	return f, nil
}

func exportRow(event *models.CalendarEvent) []interface{} {
	categoryName := ""
	if event.Category != nil {
		categoryName = event.Category.Name
	}

	tagNames := make([]string, 0, len(event.Tags))
	for _, tag := range event.Tags {
		tagNames = append(tagNames, tag.Name)
	}

	row := []interface{}{
		event.ID,
		event.EventType(),
		event.Title,
		event.Description,
		event.StartTime.Format("2006-01-02 15:04"),
		event.EndTime.Format("2006-01-02 15:04"),
		string(event.Priority),
		string(event.Status),
		categoryName,
		strings.Join(tagNames, ", "),
	}

	if event.IsAssignment() {
		row = append(row,
			stringOrEmpty(event.Subject),
			stringOrEmpty(event.CourseCode),
			assignmentTypeOrEmpty(event.AssignmentType),
			pointsOrEmpty(event.TotalPoints),
		)
	} else {
		row = append(row, "", "", "", "")
	}

	return row
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func assignmentTypeOrEmpty(t *models.AssignmentType) string {
	if t == nil {
		return ""
	}
	return t.DisplayName()
}

func pointsOrEmpty(points *int) interface{} {
	if points == nil {
		return ""
	}
	return *points
}

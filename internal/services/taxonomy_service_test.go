package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/validator"
)

func newTestTaxonomyService() TaxonomyService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewTaxonomyService(NewMockRepository(), logger, validator.New())
}

func TestTaxonomyService_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateWithDefaults", func(t *testing.T) {
		svc := newTestTaxonomyService()
		category, err := svc.CreateCategory(ctx, &CategoryCreateRequest{Name: "Lectures"})
		if err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		if category.ColorHex != models.DefaultCategoryColor {
			t.Errorf("Expected default color %s, got %s", models.DefaultCategoryColor, category.ColorHex)
		}
		if !category.Active {
			t.Error("New categories start active")
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		svc := newTestTaxonomyService()
		if _, err := svc.CreateCategory(ctx, &CategoryCreateRequest{Name: "Lectures"}); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		_, err := svc.CreateCategory(ctx, &CategoryCreateRequest{Name: "Lectures"})
		if !errors.Is(err, ErrCategoryNameTaken) {
			t.Errorf("Expected ErrCategoryNameTaken, got %v", err)
		}
	})

	t.Run("InvalidColor", func(t *testing.T) {
		svc := newTestTaxonomyService()
		_, err := svc.CreateCategory(ctx, &CategoryCreateRequest{Name: "Labs", ColorHex: "blue"})
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			t.Errorf("Expected validation errors for bad color, got %v", err)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		svc := newTestTaxonomyService()
		_, err := svc.GetCategory(ctx, 404)
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Errorf("Expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestTaxonomyService_Tags(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndList", func(t *testing.T) {
		svc := newTestTaxonomyService()
		tag, err := svc.CreateTag(ctx, &TagCreateRequest{Name: "urgent", ColorHex: "#FF0000"})
		if err != nil {
			t.Fatalf("CreateTag failed: %v", err)
		}
		if tag.ColorHex != "#FF0000" {
			t.Errorf("Explicit color ignored: %s", tag.ColorHex)
		}

		tags, err := svc.ListTags(ctx, repositories.TaxonomyFilters{})
		if err != nil {
			t.Fatalf("ListTags failed: %v", err)
		}
		if len(tags) != 1 {
			t.Errorf("Expected 1 tag, got %d", len(tags))
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		svc := newTestTaxonomyService()
		if _, err := svc.CreateTag(ctx, &TagCreateRequest{Name: "urgent"}); err != nil {
			t.Fatalf("CreateTag failed: %v", err)
		}
		_, err := svc.CreateTag(ctx, &TagCreateRequest{Name: "urgent"})
		if !errors.Is(err, ErrTagNameTaken) {
			t.Errorf("Expected ErrTagNameTaken, got %v", err)
		}
	})
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/repositories"
	"github.com/StudyTrack/calendar-service/internal/validator"
)

type taxonomyService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTaxonomyService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) TaxonomyService {
	return &taxonomyService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req *CategoryCreateRequest) (*models.EventCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.repo.Category().ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, ErrCategoryNameTaken
	}

	category := &models.EventCategory{
		Name:        req.Name,
		Description: req.Description,
		ColorHex:    models.DefaultCategoryColor,
		Active:      true,
	}
	if req.ColorHex != "" {
		category.ColorHex = req.ColorHex
	}

	if err := s.repo.Category().Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *taxonomyService) GetCategory(ctx context.Context, id uint) (*models.EventCategory, error) {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *taxonomyService) ListCategories(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventCategory, error) {
	return s.repo.Category().List(ctx, filters)
}

func (s *taxonomyService) CreateTag(ctx context.Context, req *TagCreateRequest) (*models.EventTag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.repo.Tag().ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}
	if taken {
		return nil, ErrTagNameTaken
	}

	tag := &models.EventTag{
		Name:     req.Name,
		ColorHex: models.DefaultTagColor,
		Active:   true,
	}
	if req.ColorHex != "" {
		tag.ColorHex = req.ColorHex
	}

	if err := s.repo.Tag().Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	s.logger.Info("Tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

func (s *taxonomyService) GetTag(ctx context.Context, id uint) (*models.EventTag, error) {
	tag, err := s.repo.Tag().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

func (s *taxonomyService) ListTags(ctx context.Context, filters repositories.TaxonomyFilters) ([]*models.EventTag, error) {
	return s.repo.Tag().List(ctx, filters)
}

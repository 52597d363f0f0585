package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
)

type categoryService struct {
	BaseService
	repo portsrepo.CategoryRepository
}

func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &categoryService{repo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID int64, kind *domain.CategoryKind) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx, userID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID, userID int64) (*domain.Category, error) {
	category, err := s.repo.FindVisibleCategory(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		s.LogError(ctx, err, "Failed to get category", slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if err := s.checkParent(ctx, category); err != nil {
		return nil, err
	}
	category.IsSystem = false
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("name", category.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// UpdateCategory only changes categories the user owns; system categories are reported as missing.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, category domain.Category) (*domain.Category, error) {
	userID := *category.UserID
	existing, err := s.GetCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	if !existing.EditableBy(userID) {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	if category.ParentCategoryID != nil && *category.ParentCategoryID == categoryID {
		return nil, apperrors.NewFieldError("parentCategoryId", "a category cannot be its own parent")
	}
	if err := s.checkParent(ctx, category); err != nil {
		return nil, err
	}

	category.ID = categoryID
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		s.LogError(ctx, err, "Failed to update category", slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return s.GetCategory(ctx, categoryID, userID)
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	if err := s.repo.DeleteCategory(ctx, categoryID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("category not found")
		}
		s.LogError(ctx, err, "Failed to delete category", slog.Int64("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *categoryService) checkParent(ctx context.Context, category domain.Category) error {
	if category.ParentCategoryID == nil {
		return nil
	}
	parent, err := s.repo.FindVisibleCategory(ctx, *category.ParentCategoryID, *category.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("parentCategoryId", "parent category not found")
		}
		return fmt.Errorf("failed to check parent category: %w", err)
	}
	if parent.Kind != category.Kind {
		return apperrors.NewFieldError("parentCategoryId", "parent category must be of the same kind")
	}
	return nil
}

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

// notFoundAs replaces a repository ErrNotFound with a resource specific message.
func notFoundAs(err error, resource string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(resource + " not found")
	}
	return err
}

type tagService struct {
	BaseService
	repo portsrepo.TagRepository
}

func NewTagService(repo portsrepo.TagRepository) portssvc.TagSvc {
	return &tagService{repo: repo}
}

var _ portssvc.TagSvc = (*tagService)(nil)

func (s *tagService) ListTags(ctx context.Context, userID int64) ([]domain.Tag, error) {
	tags, err := s.repo.ListTags(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags")
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) GetTag(ctx context.Context, tagID, userID int64) (*domain.Tag, error) {
	tag, err := s.repo.FindTagByID(ctx, tagID, userID)
	if err != nil {
		return nil, notFoundAs(err, "tag")
	}
	return tag, nil
}

func (s *tagService) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	created, err := s.repo.CreateTag(ctx, tag)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a tag with this name already exists")
		}
		s.LogError(ctx, err, "Failed to create tag", slog.String("name", tag.Name))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

func (s *tagService) UpdateTag(ctx context.Context, tagID int64, tag domain.Tag) (*domain.Tag, error) {
	tag.ID = tagID
	if err := s.repo.UpdateTag(ctx, tag); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a tag with this name already exists")
		}
		return nil, notFoundAs(err, "tag")
	}
	return s.GetTag(ctx, tagID, tag.UserID)
}

func (s *tagService) DeleteTag(ctx context.Context, tagID, userID int64) error {
	return notFoundAs(s.repo.DeleteTag(ctx, tagID, userID), "tag")
}

type payeeService struct {
	BaseService
	repo         portsrepo.PayeeRepository
	categoryRepo portsrepo.CategoryRepository
}

func NewPayeeService(repo portsrepo.PayeeRepository, categoryRepo portsrepo.CategoryRepository) portssvc.PayeeSvc {
	return &payeeService{repo: repo, categoryRepo: categoryRepo}
}

var _ portssvc.PayeeSvc = (*payeeService)(nil)

func (s *payeeService) ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error) {
	payees, err := s.repo.ListPayees(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payees")
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	return payees, nil
}

func (s *payeeService) GetPayee(ctx context.Context, payeeID, userID int64) (*domain.Payee, error) {
	payee, err := s.repo.FindPayeeByID(ctx, payeeID, userID)
	if err != nil {
		return nil, notFoundAs(err, "payee")
	}
	return payee, nil
}

func (s *payeeService) CreatePayee(ctx context.Context, payee domain.Payee) (*domain.Payee, error) {
	if err := s.checkDefaultCategory(ctx, payee); err != nil {
		return nil, err
	}
	created, err := s.repo.CreatePayee(ctx, payee)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payee", slog.String("name", payee.Name))
		return nil, fmt.Errorf("failed to create payee: %w", err)
	}
	return created, nil
}

func (s *payeeService) UpdatePayee(ctx context.Context, payeeID int64, payee domain.Payee) (*domain.Payee, error) {
	if err := s.checkDefaultCategory(ctx, payee); err != nil {
		return nil, err
	}
	payee.ID = payeeID
	if err := s.repo.UpdatePayee(ctx, payee); err != nil {
		return nil, notFoundAs(err, "payee")
	}
	return s.GetPayee(ctx, payeeID, payee.UserID)
}

func (s *payeeService) DeletePayee(ctx context.Context, payeeID, userID int64) error {
	return notFoundAs(s.repo.DeletePayee(ctx, payeeID, userID), "payee")
}

func (s *payeeService) checkDefaultCategory(ctx context.Context, payee domain.Payee) error {
	if payee.DefaultCategoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindVisibleCategory(ctx, *payee.DefaultCategoryID, payee.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("defaultCategoryId", "category not found")
		}
		return fmt.Errorf("failed to check default category: %w", err)
	}
	return nil
}

type paymentMethodService struct {
	BaseService
	repo portsrepo.PaymentMethodRepository
}

func NewPaymentMethodService(repo portsrepo.PaymentMethodRepository) portssvc.PaymentMethodSvc {
	return &paymentMethodService{repo: repo}
}

var _ portssvc.PaymentMethodSvc = (*paymentMethodService)(nil)

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	methods, err := s.repo.ListPaymentMethods(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, paymentMethodID, userID int64) (*domain.PaymentMethod, error) {
	method, err := s.repo.FindVisiblePaymentMethod(ctx, paymentMethodID, userID)
	if err != nil {
		return nil, notFoundAs(err, "payment method")
	}
	return method, nil
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	method.IsSystem = false
	created, err := s.repo.CreatePaymentMethod(ctx, method)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment method", slog.String("name", method.Name))
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	return created, nil
}

// UpdatePaymentMethod and DeletePaymentMethod never touch system methods.
func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, paymentMethodID int64, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	method.ID = paymentMethodID
	if err := s.repo.UpdatePaymentMethod(ctx, method); err != nil {
		return nil, notFoundAs(err, "payment method")
	}
	return s.GetPaymentMethod(ctx, paymentMethodID, *method.UserID)
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, paymentMethodID, userID int64) error {
	return notFoundAs(s.repo.DeletePaymentMethod(ctx, paymentMethodID, userID), "payment method")
}

package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// TagRepository persists tags. Names are unique per user.
type TagRepository interface {
	ListTags(ctx context.Context, userID int64) ([]domain.Tag, error)
	FindTagByID(ctx context.Context, tagID, userID int64) (*domain.Tag, error)
	CountOwnedTags(ctx context.Context, userID int64, tagIDs []int64) (int, error)
	CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, tagID, userID int64) error
}

// PayeeRepository persists payees.
type PayeeRepository interface {
	ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error)
	FindPayeeByID(ctx context.Context, payeeID, userID int64) (*domain.Payee, error)
	CreatePayee(ctx context.Context, payee domain.Payee) (*domain.Payee, error)
	UpdatePayee(ctx context.Context, payee domain.Payee) error
	DeletePayee(ctx context.Context, payeeID, userID int64) error
}

// PaymentMethodRepository persists payment methods. System methods are read-only.
type PaymentMethodRepository interface {
	ListPaymentMethods(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
	FindVisiblePaymentMethod(ctx context.Context, paymentMethodID, userID int64) (*domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, paymentMethodID, userID int64) error
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var assertErr = errors.New("boom")

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	repo         *MockTransactionRepository
	accountRepo  *MockAccountRepository
	categoryRepo *MockCategoryRepository
	tagRepo      *MockTagRepository
	service      portssvc.TransactionSvcFacade
	yenAccount   *domain.Account
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.tagRepo = new(MockTagRepository)
	suite.service = services.NewTransactionService(suite.repo, suite.accountRepo,
		services.WithTransactionCategoryRepository(suite.categoryRepo),
		services.WithTransactionTagRepository(suite.tagRepo),
	)
	suite.yenAccount = &domain.Account{
		ID:         4,
		UserID:     1,
		CurrencyID: 5,
		Currency:   &domain.Currency{ID: 5, Code: "JPY", DecimalPlaces: 0},
	}
}

func (suite *TransactionServiceTestSuite) expectTx() {
	suite.repo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.repo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesToAccountCurrency() {
	txn := domain.Transaction{
		UserID:          1,
		AccountID:       4,
		TransactionType: domain.TransactionExpense,
		Amount:          dec("10.50"),
		CurrencyID:      1,
		ExchangeRate:    dec("150.123"),
		TransactionDate: date(2024, 3, 1),
	}
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(4), int64(1)).Return(suite.yenAccount, nil).Once()
	suite.expectTx()
	suite.repo.On("CreateTransactionTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		// 10.50 × 150.123 = 1576.2915, rounded to 0 places
		return t.AmountInAccountCurrency.Equal(dec("1576")) && t.CurrencyID == 1
	})).Return(&domain.Transaction{ID: 77, AmountInAccountCurrency: dec("1576")}, nil).Once()

	created, err := suite.service.CreateTransaction(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.Equal(int64(77), created.ID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_KeepsThreeDecimalPlaces() {
	dinarAccount := &domain.Account{
		ID:         9,
		UserID:     1,
		CurrencyID: 7,
		Currency:   &domain.Currency{ID: 7, Code: "KWD", DecimalPlaces: 3},
	}
	txn := domain.Transaction{
		UserID:          1,
		AccountID:       9,
		TransactionType: domain.TransactionExpense,
		Amount:          dec("1.2345"),
		CurrencyID:      7,
		ExchangeRate:    dec("1"),
		TransactionDate: date(2024, 3, 1),
	}
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(9), int64(1)).Return(dinarAccount, nil).Once()
	suite.expectTx()
	suite.repo.On("CreateTransactionTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(dec("1.2345")) && t.AmountInAccountCurrency.Equal(dec("1.235"))
	})).Return(&domain.Transaction{ID: 78, AmountInAccountCurrency: dec("1.235")}, nil).Once()

	created, err := suite.service.CreateTransaction(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.True(created.AmountInAccountCurrency.Equal(dec("1.235")))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsCurrencyAndRate() {
	txn := domain.Transaction{
		UserID:          1,
		AccountID:       4,
		TransactionType: domain.TransactionIncome,
		Amount:          dec("2500"),
		TransactionDate: date(2024, 3, 1),
		TagIDs:          []int64{2, 2, 3},
	}
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(4), int64(1)).Return(suite.yenAccount, nil).Once()
	suite.tagRepo.On("CountOwnedTags", mock.Anything, int64(1), []int64{2, 3}).Return(2, nil).Once()
	suite.expectTx()
	suite.repo.On("CreateTransactionTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.CurrencyID == 5 && t.ExchangeRate.Equal(dec("1")) && t.AmountInAccountCurrency.Equal(dec("2500")) && len(t.TagIDs) == 2
	})).Return(&domain.Transaction{ID: 78}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
	suite.tagRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotOwned() {
	txn := domain.Transaction{UserID: 1, AccountID: 99, Amount: dec("1")}
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(99), int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateTransaction(suite.ctx, txn)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvisibleCategory() {
	txn := domain.Transaction{UserID: 1, AccountID: 4, CategoryID: int64Ptr(42), Amount: dec("1")}
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(4), int64(1)).Return(suite.yenAccount, nil).Once()
	suite.categoryRepo.On("FindVisibleCategory", mock.Anything, int64(42), int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, txn)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("categoryId", verr.Fields[0].Field)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RenormalizesAndKeepsRuleLink() {
	existing := &domain.Transaction{
		ID:                     8,
		UserID:                 1,
		AccountID:              4,
		IsRecurring:            true,
		RecurringTransactionID: int64Ptr(11),
	}
	update := domain.Transaction{
		UserID:          1,
		AccountID:       4,
		TransactionType: domain.TransactionExpense,
		Amount:          dec("99.6"),
		ExchangeRate:    dec("1"),
		TransactionDate: date(2024, 3, 2),
	}
	suite.repo.On("FindTransactionByID", mock.Anything, int64(8), int64(1)).Return(existing, nil).Once()
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(4), int64(1)).Return(suite.yenAccount, nil).Once()
	suite.expectTx()
	suite.repo.On("UpdateTransactionTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ID == 8 && t.IsRecurring && *t.RecurringTransactionID == 11 && t.AmountInAccountCurrency.Equal(dec("100"))
	}), false).Return(nil).Once()
	suite.repo.On("FindTransactionByID", mock.Anything, int64(8), int64(1)).Return(existing, nil).Once()

	_, err := suite.service.UpdateTransaction(suite.ctx, 8, update)

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	suite.repo.On("DeleteTransaction", mock.Anything, int64(8), int64(1)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(suite.ctx, 8, 1)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	repo         *MockAccountRepository
	currencyRepo *MockCurrencyRepository
	service      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockAccountRepository)
	suite.currencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(suite.repo, services.WithCurrencyRepository(suite.currencyRepo))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StartsAtInitialBalance() {
	input := domain.Account{UserID: 1, Name: "Wallet", CurrencyID: 1, InitialBalance: dec("250.00")}
	stored := &domain.Account{ID: 4, UserID: 1, Name: "Wallet", CurrencyID: 1, InitialBalance: dec("250.00"), CurrentBalance: dec("250.00")}

	suite.currencyRepo.On("FindCurrencyByID", mock.Anything, int64(1)).Return(&domain.Currency{ID: 1, IsActive: true}, nil).Once()
	suite.repo.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.CurrentBalance.Equal(dec("250"))
	})).Return(stored, nil).Once()
	suite.repo.On("FindAccountByID", mock.Anything, int64(4), int64(1)).Return(stored, nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, input)

	suite.Require().NoError(err)
	suite.Equal(int64(4), account.ID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	suite.currencyRepo.On("FindCurrencyByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(suite.ctx, domain.Account{UserID: 1, CurrencyID: 99})

	suite.Nil(account)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("currencyId", verr.Fields[0].Field)
	suite.repo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InactiveCurrency() {
	suite.currencyRepo.On("FindCurrencyByID", mock.Anything, int64(7)).Return(&domain.Currency{ID: 7, IsActive: false}, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, domain.Account{UserID: 1, CurrencyID: 7})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotOwned() {
	suite.repo.On("FindAccountByID", mock.Anything, int64(4), int64(2)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAccount(suite.ctx, 4, domain.Account{UserID: 2, CurrencyID: 1})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	suite.repo.On("DeleteAccount", mock.Anything, int64(4), int64(1)).Return(nil).Once()

	suite.NoError(suite.service.DeleteAccount(suite.ctx, 4, 1))
	suite.repo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

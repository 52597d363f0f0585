package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/SscSPs/personal_finance_api/internal/handlers"
	"github.com/SscSPs/personal_finance_api/internal/platform/config"
	"github.com/SscSPs/personal_finance_api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUserID int64 = 42

type envelope[T any] struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    T                      `json:"data"`
	Errors  []apperrors.FieldError `json:"errors"`
}

func decodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to unmarshal response body: %s", w.Body.String())
	return body
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	cfg           *config.Config
	mockAccount   *MockAccountService
	mockTxn       *MockTransactionService
	mockBudget    *MockBudgetService
	mockRecurring *MockRecurringService
	mockUser      *MockUserService
	mockReporting *MockReportingService
	categoryRepo  *MockCategoryRepository
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-test",
		AuthRateLimit:     "100-M",
		IsProduction:      true,
	}
	suite.mockAccount = new(MockAccountService)
	suite.mockTxn = new(MockTransactionService)
	suite.mockBudget = new(MockBudgetService)
	suite.mockRecurring = new(MockRecurringService)
	suite.mockUser = new(MockUserService)
	suite.mockReporting = new(MockReportingService)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.router = suite.newRouter()
}

func (suite *HandlerTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	handlers.RegisterRoutes(r, suite.cfg, &portssvc.ServiceContainer{
		User:        suite.mockUser,
		Token:       services.NewTokenService(suite.cfg),
		Account:     suite.mockAccount,
		Category:    services.NewCategoryService(suite.categoryRepo),
		Transaction: suite.mockTxn,
		Budget:      suite.mockBudget,
		Recurring:   suite.mockRecurring,
		Reporting:   suite.mockReporting,
	}, nil)
	return r
}

// generateTestToken signs a token the real AuthMiddleware accepts.
func (suite *HandlerTestSuite) generateTestToken(userID int64) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, time.Hour, "finance-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlerTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) assertFieldError(w *httptest.ResponseRecorder, field string) {
	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	body := decodeEnvelope[any](suite.T(), w)
	suite.False(body.Success)
	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	suite.Contains(fields, field)
}

// --- Health & auth ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestRegister_Success() {
	suite.mockUser.On("Register", mock.Anything, domain.User{
		Username: "alice",
		Email:    "alice@example.com",
	}, "secret1").Return(&domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "alice",
		"email":    "Alice@Example.com",
		"password": "secret1",
	}, false)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	body := decodeEnvelope[dto.AuthResponse](suite.T(), w)
	suite.True(body.Success)
	suite.Equal(int64(7), body.Data.User.ID)

	claims, err := utils.ParseAndValidateJWT(body.Data.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("7", claims.Subject)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegister_ValidationErrors() {
	w := suite.do(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "alice",
		"email":    "not-an-email",
		"password": "123",
	}, false)

	suite.assertFieldError(w, "email")
	body := decodeEnvelope[any](suite.T(), w)
	suite.Len(body.Errors, 2)
	suite.mockUser.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	suite.mockUser.On("Register", mock.Anything, mock.Anything, "secret1").
		Return(nil, fmt.Errorf("create user: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret1",
	}, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.False(decodeEnvelope[any](suite.T(), w).Success)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUser.On("Authenticate", mock.Anything, "bob@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "bob@example.com",
		"password": "wrong",
	}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.cfg.AuthRateLimit = "2-M"
	suite.router = suite.newRouter()
	suite.mockUser.On("Authenticate", mock.Anything, "bob@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Twice()

	payload := map[string]any{"email": "bob@example.com", "password": "wrong"}
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/auth/login", payload, false).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/auth/login", payload, false).Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodPost, "/api/auth/login", payload, false).Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMe() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/auth/me", nil, false).Code)

	suite.mockUser.On("GetUserByID", mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Username: "carol"}, nil).Once()
	w := suite.do(http.MethodGet, "/api/auth/me", nil, true)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("carol", decodeEnvelope[dto.UserResponse](suite.T(), w).Data.Username)
}

func (suite *HandlerTestSuite) TestAPIRequiresToken() {
	w := suite.do(http.MethodGet, "/api/budgets", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBudget.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything, mock.Anything)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestDeleteAccount() {
	suite.mockAccount.On("DeleteAccount", mock.Anything, int64(5), testUserID).Return(nil).Once()
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/accounts/5", nil, true).Code)

	suite.mockAccount.On("DeleteAccount", mock.Anything, int64(6), testUserID).Return(apperrors.ErrNotFound).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/accounts/6", nil, true).Code)
}

// --- Profile ---

func (suite *HandlerTestSuite) TestUpdateProfile() {
	last := "Lovelace"
	suite.mockUser.On("UpdateProfile", mock.Anything, testUserID, mock.MatchedBy(func(u domain.ProfileUpdate) bool {
		return u.LastName != nil && *u.LastName == "Lovelace" && u.FirstName == nil && u.PasswordHash == nil
	}), mock.MatchedBy(func(p *string) bool {
		return p != nil && *p == "longenough"
	})).Return(&domain.User{ID: testUserID, Username: "ada", LastName: &last}, nil).Once()

	w := suite.do(http.MethodPut, "/api/users/profile", map[string]any{"lastName": "Lovelace", "password": "longenough"}, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeEnvelope[dto.UserResponse](suite.T(), w)
	suite.True(body.Success)
	suite.Equal("Lovelace", *body.Data.LastName)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateProfile_Validation() {
	w := suite.do(http.MethodPut, "/api/users/profile", map[string]any{"password": "abc", "defaultCurrencyId": 0}, true)

	suite.assertFieldError(w, "password")
	suite.mockUser.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Categories ---

func (suite *HandlerTestSuite) TestDeleteCategory_NotOwned() {
	// Another user's category and a system category are both filtered out by the delete query.
	suite.categoryRepo.On("DeleteCategory", mock.Anything, int64(3), testUserID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/categories/3", nil, true)

	suite.Equal(http.StatusNotFound, w.Code, w.Body.String())
	body := decodeEnvelope[any](suite.T(), w)
	suite.False(body.Success)
	suite.Equal("category not found", body.Message)
	suite.categoryRepo.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteCategory_Owned() {
	suite.categoryRepo.On("DeleteCategory", mock.Anything, int64(11), testUserID).Return(nil).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/categories/11", nil, true).Code)
}

func (suite *HandlerTestSuite) TestGetAccount_InvalidID() {
	w := suite.do(http.MethodGet, "/api/accounts/abc", nil, true)
	suite.assertFieldError(w, "id")
	suite.mockAccount.AssertNotCalled(suite.T(), "GetAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_DefaultsFromRequest() {
	suite.mockAccount.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.UserID == testUserID && a.Name == "Wallet" && a.CurrencyID == 1 &&
			a.InitialBalance.Equal(decimal.NewFromInt(50)) && a.CurrentBalance.Equal(decimal.NewFromInt(50)) &&
			a.IsActive && a.IsIncludedInTotal
	})).Return(&domain.Account{ID: 9, Name: "Wallet", CurrencyID: 1, InitialBalance: decimal.NewFromInt(50), CurrentBalance: decimal.NewFromInt(50)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/accounts", `{"name":"Wallet","accountType":"cash","currencyId":1,"initialBalance":"50"}`, true)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal(int64(9), decodeEnvelope[dto.AccountResponse](suite.T(), w).Data.ID)
	suite.mockAccount.AssertExpectations(suite.T())
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestListTransactions_FiltersAndPagination() {
	expense := domain.TransactionExpense
	suite.mockTxn.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.UserID == testUserID && f.Page.Page == 2 && f.Limit == 10 &&
			f.TransactionType != nil && *f.TransactionType == expense &&
			f.StartDate != nil && domain.FormatDate(*f.StartDate) == "2024-01-01" &&
			f.Search == "coffee"
	})).Return([]domain.Transaction{{ID: 1, TransactionType: expense}}, int64(25), nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions?page=2&limit=10&transactionType=expense&startDate=2024-01-01&search=coffee", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeEnvelope[dto.ListTransactionsResponse](suite.T(), w)
	suite.Len(body.Data.Transactions, 1)
	suite.Equal(dto.Pagination{Total: 25, Page: 2, Limit: 10, Pages: 3}, body.Data.Pagination)
	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultPage() {
	suite.mockTxn.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Page.Page == 1 && f.Limit == dto.DefaultTransactionLimit
	})).Return([]domain.Transaction{}, int64(0), nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions", nil, true)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(0, decodeEnvelope[dto.ListTransactionsResponse](suite.T(), w).Data.Pagination.Pages)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/transactions?limit=500", nil, true)
	suite.assertFieldError(w, "limit")
}

func (suite *HandlerTestSuite) TestCreateTransaction_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/transactions", map[string]any{
		"accountId":       1,
		"transactionType": "expense",
		"amount":          "0",
		"transactionDate": "15/01/2024",
	}, true)

	suite.assertFieldError(w, "amount")
	suite.assertFieldError(w, "transactionDate")
	suite.mockTxn.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ServiceFieldError() {
	suite.mockTxn.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.UserID == testUserID && t.Amount.Equal(decimal.RequireFromString("10.50")) &&
			t.ExchangeRate.IsZero() && domain.FormatDate(t.TransactionDate) == "2024-01-15"
	})).Return(nil, apperrors.NewFieldError("categoryId", "category not found")).Once()

	w := suite.do(http.MethodPost, "/api/transactions", `{"accountId":1,"categoryId":3,"transactionType":"expense","amount":10.50,"transactionDate":"2024-01-15"}`, true)

	suite.assertFieldError(w, "categoryId")
	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockTxn.On("GetTransaction", mock.Anything, int64(77), testUserID).
		Return(nil, fmt.Errorf("transaction 77: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/transactions/77", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Resource not found", decodeEnvelope[any](suite.T(), w).Message)
}

func (suite *HandlerTestSuite) TestUnhandledErrorIsGeneric() {
	suite.mockTxn.On("GetTransaction", mock.Anything, int64(1), testUserID).
		Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodGet, "/api/transactions/1", nil, true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := decodeEnvelope[any](suite.T(), w)
	suite.Equal("Internal server error", body.Message)
	suite.NotContains(w.Body.String(), "connection reset")
}

// --- Budgets ---

func (suite *HandlerTestSuite) TestListBudgets_IncludesSpend() {
	suite.mockBudget.On("ListBudgets", mock.Anything, testUserID).Return([]domain.BudgetWithSpend{{
		Budget: domain.Budget{
			ID:             3,
			Name:           "Groceries",
			Amount:         decimal.NewFromInt(1000),
			PeriodType:     domain.PeriodMonthly,
			StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			AlertThreshold: decimal.NewFromInt(80),
		},
		BudgetSpend: domain.BudgetSpend{
			Spent:          decimal.NewFromInt(1100),
			Percentage:     decimal.NewFromInt(110),
			AlertTriggered: true,
		},
	}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/budgets", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeEnvelope[dto.ListBudgetsResponse](suite.T(), w)
	suite.Require().Len(body.Data.Budgets, 1)
	b := body.Data.Budgets[0]
	suite.True(b.Spent.Equal(decimal.NewFromInt(1100)))
	suite.True(b.Percentage.Equal(decimal.NewFromInt(110)))
	suite.True(b.AlertTriggered)
	suite.Equal("2024-01-01", b.StartDate)
	suite.Equal([]int64{}, b.AccountIDs)
}

func (suite *HandlerTestSuite) TestCreateBudget_EndBeforeStart() {
	w := suite.do(http.MethodPost, "/api/budgets", map[string]any{
		"name":       "Trip",
		"amount":     "500",
		"currencyId": 1,
		"periodType": "custom",
		"startDate":  "2024-03-10",
		"endDate":    "2024-03-01",
	}, true)

	suite.assertFieldError(w, "endDate")
	suite.mockBudget.AssertNotCalled(suite.T(), "CreateBudget", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateBudget_DefaultsAlertThreshold() {
	suite.mockBudget.On("CreateBudget", mock.Anything, mock.MatchedBy(func(b domain.Budget) bool {
		return b.UserID == testUserID && b.AlertThreshold.Equal(decimal.NewFromInt(80)) &&
			len(b.AccountIDs) == 2 && b.IsActive && b.EndDate == nil
	})).Return(&domain.BudgetWithSpend{Budget: domain.Budget{ID: 11, Name: "Food"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/budgets", map[string]any{
		"name":       "Food",
		"amount":     "400",
		"currencyId": 1,
		"periodType": "monthly",
		"startDate":  "2024-03-01",
		"accountIds": []int64{1, 2},
	}, true)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.mockBudget.AssertExpectations(suite.T())
}

// --- Recurring ---

func (suite *HandlerTestSuite) TestListRecurring_ProcessesFirst() {
	suite.mockRecurring.On("ProcessOnList").Return(true).Once()
	suite.mockRecurring.On("ProcessDue", mock.Anything, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == testUserID
	}), mock.AnythingOfType("time.Time")).Return(&domain.ProcessResult{Generated: 1}, nil).Once()
	suite.mockRecurring.On("ListRecurring", mock.Anything, testUserID).Return([]domain.RecurringTransaction{
		{ID: 1, Frequency: domain.FrequencyMonthly, IntervalValue: 1},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/recurring-transactions", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockRecurring.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListRecurring_ProcessingFailureStillLists() {
	suite.mockRecurring.On("ProcessOnList").Return(true).Once()
	suite.mockRecurring.On("ProcessDue", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()
	suite.mockRecurring.On("ListRecurring", mock.Anything, testUserID).Return([]domain.RecurringTransaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/recurring-transactions", nil, true)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestProcessRecurring_WithDate() {
	day := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockRecurring.On("ProcessDue", mock.Anything, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == testUserID
	}), day).Return(&domain.ProcessResult{
		Generated: 2,
		Reminded:  1,
		Failed: []domain.RuleFailure{
			{RuleID: 9, Err: apperrors.NewBadRequestError("account 4 is no longer available")},
			{RuleID: 10, Err: fmt.Errorf("failed to lock rule: %w", errors.New("conn reset by peer"))},
		},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/recurring-transactions/process?date=2024-03-31", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeEnvelope[dto.ProcessResultResponse](suite.T(), w)
	suite.Equal(2, body.Data.Generated)
	suite.Equal(1, body.Data.Reminded)
	suite.Equal([]dto.RuleFailureResponse{
		{RuleID: 9, Error: "account 4 is no longer available"},
		{RuleID: 10, Error: "internal error"},
	}, body.Data.Failed)
}

func (suite *HandlerTestSuite) TestProcessRecurring_BadDate() {
	w := suite.do(http.MethodPost, "/api/recurring-transactions/process?date=2024-02-30", nil, true)
	suite.assertFieldError(w, "date")
	suite.mockRecurring.AssertNotCalled(suite.T(), "ProcessDue", mock.Anything, mock.Anything, mock.Anything)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestStatistics() {
	suite.mockReporting.On("GetStatistics", mock.Anything, mock.MatchedBy(func(f domain.StatisticsFilter) bool {
		return f.UserID == testUserID && f.AccountID != nil && *f.AccountID == 4 &&
			f.StartDate != nil && f.EndDate != nil
	})).Return(&domain.Statistics{
		Income:  decimal.NewFromInt(3000),
		Expense: decimal.RequireFromString("1250.50"),
		Balance: decimal.RequireFromString("1749.50"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/reports/statistics?startDate=2024-01-01&endDate=2024-01-31&accountId=4", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeEnvelope[dto.StatisticsResponse](suite.T(), w)
	suite.True(body.Data.Balance.Equal(decimal.RequireFromString("1749.50")))
}

func (suite *HandlerTestSuite) TestStatistics_RangeInverted() {
	w := suite.do(http.MethodGet, "/api/reports/statistics?startDate=2024-02-01&endDate=2024-01-31", nil, true)
	suite.assertFieldError(w, "endDate")
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

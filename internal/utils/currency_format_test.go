package utils_test

import (
	"testing"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		places int
		want   string
	}{
		{"same currency", "100", "1", 2, "100"},
		{"rounds half up", "10.005", "1", 2, "10.01"},
		{"converts with rate", "1500", "0.0067", 2, "10.05"},
		{"zero decimal currency", "12.6", "1", 0, "13"},
		{"three decimal currency", "1.23456", "2", 3, "2.469"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.NormalizeAmount(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate), tt.places)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestNormalizeTransaction(t *testing.T) {
	txn := domain.Transaction{Amount: decimal.RequireFromString("99.999")}

	utils.NormalizeTransaction(&txn, domain.Account{})

	assert.True(t, decimal.NewFromInt(1).Equal(txn.ExchangeRate), "missing rate defaults to 1")
	assert.Equal(t, "100", txn.AmountInAccountCurrency.String(), "defaults to two places without a joined currency")

	txn.ExchangeRate = decimal.RequireFromString("0.5")
	utils.NormalizeTransaction(&txn, domain.Account{Currency: &domain.Currency{DecimalPlaces: 0}})
	assert.Equal(t, "50", txn.AmountInAccountCurrency.String())
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "5.000", utils.FormatWithPrecision(decimal.NewFromInt(5), 3))
}

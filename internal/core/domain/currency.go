package domain

// DefaultDecimalPlaces is used when a currency does not specify its precision.
const DefaultDecimalPlaces = 2

// Currency represents a supported currency in the domain.
type Currency struct {
	ID            int64
	Code          string // e.g. "USD"
	Name          string
	Symbol        string
	DecimalPlaces int
	IsActive      bool
}

package models

// Currency is a row of the currencies table.
type Currency struct {
	ID            int64  `db:"id"`
	Code          string `db:"code"`
	Name          string `db:"name"`
	Symbol        string `db:"symbol"`
	DecimalPlaces int    `db:"decimal_places"`
	IsActive      bool   `db:"is_active"`
}

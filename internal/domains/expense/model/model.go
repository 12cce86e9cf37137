package model

import (
	"time"

	"pms/shared/model"
)

const (
	TableName  = "expenses"
	EntityName = "expense"

	FieldID            = "id"
	FieldDate          = "date"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldPaymentMethod = "payment_method"
	FieldReceipt       = "receipt"
	FieldCreatedAt     = "created_at"
)

const (
	CategoryMaintenance = "maintenance"
	CategorySupplies    = "supplies"
	CategoryUtilities   = "utilities"
	CategoryStaff       = "staff"
	CategoryMarketing   = "marketing"
	CategoryTaxes       = "taxes"
	CategoryOther       = "other"
)

var Categories = []string{
	CategoryMaintenance, CategorySupplies, CategoryUtilities, CategoryStaff,
	CategoryMarketing, CategoryTaxes, CategoryOther,
}

type Expense struct {
	ID            string    `db:"id"`
	Date          time.Time `db:"date"`
	Category      string    `db:"category"`
	Amount        float64   `db:"amount"`
	Description   string    `db:"description"`
	PaymentMethod string    `db:"payment_method"`
	Receipt       string    `db:"receipt"`
	model.Metadata
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// Summarize totals expenses per category in Categories order. Every category is reported.
func Summarize(expenses []Expense) ([]CategoryTotal, float64) {
	index := make(map[string]int, len(Categories))
	totals := make([]CategoryTotal, len(Categories))

	for i, category := range Categories {
		index[category] = i
		totals[i].Category = category
	}

	total := 0.0

	for _, expense := range expenses {
		i, ok := index[expense.Category]
		if !ok {
			i = index[CategoryOther]
		}

		totals[i].Amount += expense.Amount
		totals[i].Count++
		total += expense.Amount
	}

	return totals, total
}

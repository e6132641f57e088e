package domain

import "time"

// Expense is an expenditure logged against collected funds. Expenses are
// insert-only through the API.
type Expense struct {
	ID          string
	Title       string
	Amount      int64
	Category    string
	SpentAt     time.Time
	Description string
	CreatedAt   time.Time
}

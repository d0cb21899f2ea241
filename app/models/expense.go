package models

// Expense categories offered by the UI. Like order status, the field is
// stored as plain text.
const (
	CategoryMaterial  = "material"
	CategoryBill      = "bill"
	CategoryTransport = "transport"
	CategoryOther     = "other"
)

// Expense represents a standalone cost record, not tied to any order.
// Expenses are the only entity that supports deletion.
type Expense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // ISO date, user-supplied
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend entry on a trip. Amounts are decimal, never
// float: currency values must survive JSON round-trips exactly.
type Expense struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Date     Date            `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// PackingItem is one entry on the packing checklist.
type PackingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	Category string `json:"category,omitempty"`
}

// DocumentItem is a link or note kept in the trip's toolbox
// (booking references, visa scans, map links).
type DocumentItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"` // e.g. "link", "note"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Package expense is a small in-memory expense log: add entries, list
// them, sum them, filter by category. Nothing is persisted; a Tracker
// lives and dies with the process that owns it.
package expense

import (
	"strings"

	"github.com/samber/lo"
)

// Expense is a single logged spend.
type Expense struct {
	Amount   float64
	Category string
}

// Tracker accumulates expenses in insertion order.
type Tracker struct {
	expenses []Expense
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Add appends an expense to the log.
func (t *Tracker) Add(amount float64, category string) {
	t.expenses = append(t.expenses, Expense{Amount: amount, Category: category})
}

// All returns the logged expenses in insertion order. The returned slice
// is a copy; mutating it does not affect the tracker.
func (t *Tracker) All() []Expense {
	out := make([]Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}

// Total sums the amounts of all logged expenses.
func (t *Tracker) Total() float64 {
	return lo.SumBy(t.expenses, func(e Expense) float64 {
		return e.Amount
	})
}

// ByCategory returns the expenses whose category matches, ignoring case.
func (t *Tracker) ByCategory(category string) []Expense {
	return lo.Filter(t.expenses, func(e Expense, _ int) bool {
		return strings.EqualFold(e.Category, category)
	})
}

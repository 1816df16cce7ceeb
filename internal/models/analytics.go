package models

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SpendStatus classifies how a subcategory's spending relates to its
// allocation for the month.
type SpendStatus string

const (
	StatusNeutral SpendStatus = "neutral" // no allocation for the month
	StatusUnder   SpendStatus = "under"   // below 80% of the allocation
	StatusWarning SpendStatus = "warning" // at 80% up to and including 100%
	StatusOver    SpendStatus = "over"    // above 100%
)

// warningThreshold is the share of the allocation at which a subcategory
// flips from under to warning.
var warningThreshold = decimal.NewFromFloat(0.8)

// Analytics is the derived view of a month: every subcategory with its
// spent/remaining/status figures, rolled up to categories and grand totals.
// It is recomputed on every read and never persisted.
type Analytics struct {
	Month types.Month `json:"month"`

	Income       decimal.Decimal `json:"income"`       // declared income for the month
	ActualIncome decimal.Decimal `json:"actualIncome"` // sum of income transactions

	TotalBudgeted decimal.Decimal `json:"totalBudgeted"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`

	// Remaining is measured against the declared income, not the allocations
	Remaining decimal.Decimal `json:"remaining"`

	// NeedsAllocation is the unallocated income, negative when over-allocated
	NeedsAllocation decimal.Decimal `json:"needsAllocation"`

	Categories []CategoryAnalytics `json:"categories"`
}

// CategoryAnalytics sums up a category's subcategories for the month.
// Categories are not status-classified, only subcategories are.
type CategoryAnalytics struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	MilestoneID   *uuid.UUID             `json:"milestoneId,omitempty"`
	TotalBudgeted decimal.Decimal        `json:"totalBudgeted"`
	TotalSpent    decimal.Decimal        `json:"totalSpent"`
	Remaining     decimal.Decimal        `json:"remaining"`
	Subcategories []SubcategoryAnalytics `json:"subcategories"`
}

// SubcategoryAnalytics is the per-subcategory derivation for the month.
type SubcategoryAnalytics struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Name        string          `json:"name"`
	MilestoneID *uuid.UUID      `json:"milestoneId,omitempty"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	Status      SpendStatus     `json:"status"`
}

// Analytics derives the month's analytics tree from the loaded budget and
// the month's transactions. It is a pure computation, nothing is read from
// or written to the database.
func (b MonthlyBudget) Analytics(transactions []Transaction) Analytics {
	result := Analytics{
		Month:      b.Month,
		Income:     b.Income,
		Categories: make([]CategoryAnalytics, 0, len(b.Categories)),
	}

	// Attribute expenses to their subcategory, sum up income on the side
	spentBy := make(map[uuid.UUID]decimal.Decimal)
	for _, transaction := range transactions {
		switch transaction.Type {
		case TransactionIncome:
			result.ActualIncome = result.ActualIncome.Add(transaction.Amount)
		case TransactionExpense:
			if transaction.SubcategoryID != nil {
				id := *transaction.SubcategoryID
				spentBy[id] = spentBy[id].Add(transaction.Amount)
			}
		}
	}

	for _, category := range b.Categories {
		categoryAnalytics := CategoryAnalytics{
			ID:            category.ID,
			Name:          category.Name,
			MilestoneID:   category.MilestoneID,
			Subcategories: make([]SubcategoryAnalytics, 0, len(category.Subcategories)),
		}

		for _, subcategory := range category.Subcategories {
			spent := spentBy[subcategory.ID]
			subcategoryAnalytics := SubcategoryAnalytics{
				ID:          subcategory.ID,
				CategoryID:  subcategory.CategoryID,
				Name:        subcategory.Name,
				MilestoneID: subcategory.MilestoneID,
				Budgeted:    subcategory.Budgeted,
				Spent:       spent,
				Remaining:   subcategory.Budgeted.Sub(spent),
				Status:      classify(subcategory.Budgeted, spent),
			}

			if subcategory.Budgeted.IsPositive() {
				subcategoryAnalytics.PercentUsed = spent.Div(subcategory.Budgeted).Mul(decimal.NewFromInt(100))
			}

			categoryAnalytics.TotalBudgeted = categoryAnalytics.TotalBudgeted.Add(subcategory.Budgeted)
			categoryAnalytics.TotalSpent = categoryAnalytics.TotalSpent.Add(spent)
			categoryAnalytics.Subcategories = append(categoryAnalytics.Subcategories, subcategoryAnalytics)
		}

		categoryAnalytics.Remaining = categoryAnalytics.TotalBudgeted.Sub(categoryAnalytics.TotalSpent)

		result.TotalBudgeted = result.TotalBudgeted.Add(categoryAnalytics.TotalBudgeted)
		result.TotalSpent = result.TotalSpent.Add(categoryAnalytics.TotalSpent)
		result.Categories = append(result.Categories, categoryAnalytics)
	}

	result.Remaining = result.Income.Sub(result.TotalSpent)
	result.NeedsAllocation = result.Income.Sub(result.TotalBudgeted)

	return result
}

// classify buckets spending against the allocation. The boundaries are
// inclusive toward the higher-severity bucket: exactly 100% is warning,
// exactly 80% is warning, too.
func classify(budgeted, spent decimal.Decimal) SpendStatus {
	if !budgeted.IsPositive() {
		return StatusNeutral
	}

	if spent.GreaterThan(budgeted) {
		return StatusOver
	}

	if spent.GreaterThanOrEqual(budgeted.Mul(warningThreshold)) {
		return StatusWarning
	}

	return StatusUnder
}

package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryBudget is a category's allocation for a single month. Absence of a
// row means an allocation of 0, history is never mutated by later months.
type CategoryBudget struct {
	Timestamps
	CategoryID uuid.UUID       `gorm:"primaryKey"`
	Category   Category        `json:"-"`
	Month      types.Month     `gorm:"primaryKey"`
	Budgeted   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrCategoryBudgetMonthNotUnique = errors.New("you can not create multiple monthly budgets for the same category and month")
	ErrBudgetedAmountNegative       = errors.New("budgeted amounts must be zero or positive")
)

func (b *CategoryBudget) BeforeSave(_ *gorm.DB) error {
	if b.Budgeted.IsNegative() {
		return ErrBudgetedAmountNegative
	}

	return nil
}

// SetCategoryBudget upserts the category's allocation for the month.
func SetCategoryBudget(db *gorm.DB, categoryID uuid.UUID, month types.Month, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrBudgetedAmountNegative
	}

	err := db.First(&Category{}, categoryID).Error
	if err != nil {
		return err
	}

	// Resetting deleted_at revives a row that was soft deleted earlier,
	// otherwise the upsert would update a row no query can see
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"budgeted", "updated_at", "deleted_at"}),
	}).Create(&CategoryBudget{
		CategoryID: categoryID,
		Month:      month,
		Budgeted:   amount,
	}).Error
}

// categoryBudgets returns the allocations of all given categories for the
// month, keyed by category ID. Categories without a row are absent.
func categoryBudgets(db *gorm.DB, month types.Month, categoryIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []CategoryBudget
	err := db.Where("month = ?", month).Where("category_id IN ?", categoryIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgeted := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		budgeted[row.CategoryID] = row.Budgeted
	}

	return budgeted, nil
}

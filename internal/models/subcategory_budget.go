package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubcategoryBudget is a subcategory's allocation for a single month.
type SubcategoryBudget struct {
	Timestamps
	SubcategoryID uuid.UUID       `gorm:"primaryKey"`
	Subcategory   Subcategory     `json:"-"`
	Month         types.Month     `gorm:"primaryKey"`
	Budgeted      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrSubcategoryBudgetMonthNotUnique = errors.New("you can not create multiple monthly budgets for the same subcategory and month")

func (b *SubcategoryBudget) BeforeSave(_ *gorm.DB) error {
	if b.Budgeted.IsNegative() {
		return ErrBudgetedAmountNegative
	}

	return nil
}

// SetSubcategoryBudget upserts the subcategory's allocation for the month.
func SetSubcategoryBudget(db *gorm.DB, subcategoryID uuid.UUID, month types.Month, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrBudgetedAmountNegative
	}

	err := db.First(&Subcategory{}, subcategoryID).Error
	if err != nil {
		return err
	}

	// Resetting deleted_at revives a row that was soft deleted earlier,
	// otherwise the upsert would update a row no query can see
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subcategory_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"budgeted", "updated_at", "deleted_at"}),
	}).Create(&SubcategoryBudget{
		SubcategoryID: subcategoryID,
		Month:         month,
		Budgeted:      amount,
	}).Error
}

// subcategoryBudgets returns the allocations of all subcategories of the
// given categories for the month, keyed by subcategory ID.
func subcategoryBudgets(db *gorm.DB, month types.Month, subcategoryIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []SubcategoryBudget
	err := db.Where("month = ?", month).Where("subcategory_id IN ?", subcategoryIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgeted := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		budgeted[row.SubcategoryID] = row.Budgeted
	}

	return budgeted, nil
}

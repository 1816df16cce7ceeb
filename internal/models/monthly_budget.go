package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlyBudget is the income declaration for one profile and month plus,
// once loaded, the category tree with that month's allocations.
type MonthlyBudget struct {
	DefaultModel
	ProfileID uuid.UUID       `gorm:"uniqueIndex:monthly_budget_profile_month"`
	Profile   Profile         `json:"-"`
	Month     types.Month     `gorm:"uniqueIndex:monthly_budget_profile_month"`
	Income    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	// Categories is filled by MonthlyBudgetForMonth, it is not a column.
	Categories []BudgetCategory `gorm:"-"`
}

// BudgetCategory is a category with its allocation for the loaded month.
type BudgetCategory struct {
	Category
	Budgeted      decimal.Decimal
	Subcategories []BudgetSubcategory
}

// BudgetSubcategory is a subcategory with its allocation for the loaded month.
type BudgetSubcategory struct {
	Subcategory
	Budgeted decimal.Decimal
}

var (
	ErrMonthlyBudgetMonthNotUnique = errors.New("you can not create multiple budgets for the same profile and month")
	ErrIncomeNegative              = errors.New("the income must be zero or positive")
)

func (b *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	if b.Income.IsNegative() {
		return ErrIncomeNegative
	}

	return nil
}

// Save upserts the income for the budget's profile and month.
func (b MonthlyBudget) Save(db *gorm.DB) error {
	if b.Income.IsNegative() {
		return ErrIncomeNegative
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"income", "updated_at", "deleted_at"}),
	}).Create(&MonthlyBudget{
		ProfileID: b.ProfileID,
		Month:     b.Month,
		Income:    b.Income,
	}).Error
}

// MonthlyBudgetForMonth loads the budget for the month, creating the row
// with an income of 0 on first access.
//
// Milestone reconciliation runs first so that the returned category tree
// reflects the currently active milestones. A reconciliation failure is
// logged and the load continues with whatever categories exist, the next
// load retries it.
func MonthlyBudgetForMonth(db *gorm.DB, profileID uuid.UUID, month types.Month) (MonthlyBudget, error) {
	err := SyncMilestones(db, profileID, month, time.Now().In(time.UTC))
	if err != nil {
		log.Error().Err(err).Str("month", month.String()).Msg("milestone reconciliation failed")
	}

	var budget MonthlyBudget
	err = db.FirstOrCreate(&budget, MonthlyBudget{ProfileID: profileID, Month: month}).Error
	if err != nil {
		return MonthlyBudget{}, err
	}

	var categories []Category
	err = db.Where(&Category{ProfileID: profileID}).Order("created_at ASC").Find(&categories).Error
	if err != nil {
		return MonthlyBudget{}, err
	}

	categoryIDs := make([]uuid.UUID, 0, len(categories))
	subcategoriesFor := make(map[uuid.UUID][]Subcategory, len(categories))
	var subcategoryIDs []uuid.UUID

	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)

		subcategories, err := category.Subcategories(db)
		if err != nil {
			return MonthlyBudget{}, err
		}

		subcategoriesFor[category.ID] = subcategories
		for _, subcategory := range subcategories {
			subcategoryIDs = append(subcategoryIDs, subcategory.ID)
		}
	}

	categoryBudgeted, err := categoryBudgets(db, month, categoryIDs)
	if err != nil {
		return MonthlyBudget{}, err
	}

	subcategoryBudgeted, err := subcategoryBudgets(db, month, subcategoryIDs)
	if err != nil {
		return MonthlyBudget{}, err
	}

	// Categories and subcategories without an allocation row for this month
	// default to a budgeted amount of 0
	budget.Categories = make([]BudgetCategory, 0, len(categories))
	for _, category := range categories {
		budgetCategory := BudgetCategory{
			Category:      category,
			Budgeted:      categoryBudgeted[category.ID],
			Subcategories: make([]BudgetSubcategory, 0, len(subcategoriesFor[category.ID])),
		}

		for _, subcategory := range subcategoriesFor[category.ID] {
			budgetCategory.Subcategories = append(budgetCategory.Subcategories, BudgetSubcategory{
				Subcategory: subcategory,
				Budgeted:    subcategoryBudgeted[subcategory.ID],
			})
		}

		budget.Categories = append(budget.Categories, budgetCategory)
	}

	return budget, nil
}

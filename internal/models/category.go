package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups subcategories. The budgeted amount of a category for a
// month is the sum of its subcategories' allocations for that month, it is
// never stored on the category itself.
type Category struct {
	DefaultModel
	ProfileID uuid.UUID `gorm:"uniqueIndex:category_profile_name"`
	Profile   Profile   `json:"-"`
	Name      string    `gorm:"uniqueIndex:category_profile_name"`

	// MilestoneID optionally links the category to a milestone
	MilestoneID *uuid.UUID
}

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the profile")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
)

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Subcategories returns the subcategories of the category, ordered by name.
func (c Category) Subcategories(db *gorm.DB) ([]Subcategory, error) {
	var subcategories []Subcategory
	err := db.Where(&Subcategory{CategoryID: c.ID}).Order("name ASC").Find(&subcategories).Error
	if err != nil {
		return nil, err
	}

	return subcategories, nil
}

// HasTransactions reports whether any transaction references one of the
// category's subcategories. Used to warn before a destructive delete.
func (c Category) HasTransactions(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&Transaction{}).
		Joins("JOIN subcategories ON subcategories.id = transactions.subcategory_id AND subcategories.deleted_at IS NULL").
		Where("subcategories.category_id = ?", c.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteCascading deletes the category with everything that hangs off it:
// the subcategories' transactions, the monthly allocations for both levels
// and the subcategories themselves. All of it happens in one database
// transaction so a partial delete can never be observed.
//
// The deletes are hard deletes. A soft-deleted row would still occupy the
// unique (profile, name) slot and the name could never be used again.
func (c Category) DeleteCascading(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		subcategories, err := c.Subcategories(tx)
		if err != nil {
			return err
		}

		for _, subcategory := range subcategories {
			err = tx.Unscoped().Where(&Transaction{SubcategoryID: &subcategory.ID}).Delete(&Transaction{}).Error
			if err != nil {
				return err
			}

			err = tx.Unscoped().Where("subcategory_id = ?", subcategory.ID).Delete(&SubcategoryBudget{}).Error
			if err != nil {
				return err
			}
		}

		err = tx.Unscoped().Where("category_id = ?", c.ID).Delete(&CategoryBudget{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where(&Subcategory{CategoryID: c.ID}).Delete(&Subcategory{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&Category{}, c.ID).Error
	})
}

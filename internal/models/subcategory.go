package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory is the level transactions and monthly allocations attach to.
type Subcategory struct {
	DefaultModel
	CategoryID uuid.UUID `gorm:"uniqueIndex:subcategory_category_name"`
	Category   Category  `json:"-"`
	Name       string    `gorm:"uniqueIndex:subcategory_category_name"`

	// MilestoneID links a subcategory under the synthetic milestone category
	// to the milestone it mirrors. Reconciliation matches on this ID, not on
	// the name, so renaming a milestone cannot orphan or conflate rows.
	MilestoneID *uuid.UUID
}

var (
	ErrSubcategoryNameNotUnique = errors.New("the subcategory name must be unique for the category")
	ErrSubcategoryNameEmpty     = errors.New("the subcategory name must not be empty")
)

func (s *Subcategory) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.Name == "" {
		return ErrSubcategoryNameEmpty
	}

	return nil
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Subcategory)
	return tx.First(&Category{}, toSave.CategoryID).Error
}

// Delete removes the subcategory with its transactions and monthly
// allocations in one database transaction. Like Category.DeleteCascading
// the deletes are hard deletes, the name stays usable for a later
// subcategory of the same category.
func (s Subcategory) Delete(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&Transaction{SubcategoryID: &s.ID}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where("subcategory_id = ?", s.ID).Delete(&SubcategoryBudget{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&Subcategory{}, s.ID).Error
	})
}

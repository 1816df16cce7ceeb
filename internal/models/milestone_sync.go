package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MilestoneCategoryName is the name of the synthetic category that mirrors
// the active savings milestones. At most one exists per profile.
const MilestoneCategoryName = "Milestones"

// SyncMilestones reconciles the synthetic milestone category with the
// profile's active milestones:
//
//   - no active milestones: the category is deleted with everything in it
//   - otherwise the category is created if absent, its allocation for the
//     month is set to the summed monthly savings and one subcategory per
//     active milestone is upserted, keyed by milestone ID
//   - subcategories whose milestone is gone or expired are deleted
//
// The whole reconciliation runs in one database transaction. Running it
// twice with unchanged milestones leaves the category tree untouched.
func SyncMilestones(db *gorm.DB, profileID uuid.UUID, month types.Month, today time.Time) error {
	active, err := ActiveMilestones(db, profileID, today)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var category Category
		err := tx.Where(&Category{ProfileID: profileID, Name: MilestoneCategoryName}).First(&category).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if len(active) == 0 {
			if found {
				return category.DeleteCascading(tx)
			}
			return nil
		}

		if !found {
			category = Category{ProfileID: profileID, Name: MilestoneCategoryName}
			err = tx.Create(&category).Error
			if err != nil {
				return err
			}
		}

		total := decimal.Zero
		for _, milestone := range active {
			total = total.Add(milestone.MonthlySavingsNeeded())
		}

		err = SetCategoryBudget(tx, category.ID, month, total)
		if err != nil {
			return err
		}

		subcategories, err := category.Subcategories(tx)
		if err != nil {
			return err
		}

		existing := make(map[uuid.UUID]Subcategory, len(subcategories))
		names := make(map[string]uuid.UUID, len(subcategories))
		for _, subcategory := range subcategories {
			if subcategory.MilestoneID != nil {
				existing[*subcategory.MilestoneID] = subcategory
			}
			names[subcategory.Name] = subcategory.ID
		}

		for _, milestone := range active {
			subcategory, ok := existing[milestone.ID]
			if !ok {
				subcategory = Subcategory{
					CategoryID:  category.ID,
					Name:        subcategoryName(milestone, names),
					MilestoneID: &milestone.ID,
				}
				err = tx.Create(&subcategory).Error
				if err != nil {
					return err
				}
				names[subcategory.Name] = subcategory.ID
			} else if subcategory.Name != milestone.Name {
				// Follow milestone renames, unless the new name is taken
				if id, taken := names[milestone.Name]; !taken || id == subcategory.ID {
					err = tx.Model(&subcategory).Update("name", milestone.Name).Error
					if err != nil {
						return err
					}
				}
			}

			err = SetSubcategoryBudget(tx, subcategory.ID, month, milestone.MonthlySavingsNeeded())
			if err != nil {
				return err
			}
		}

		// Remove subcategories no longer backed by an active milestone
		activeIDs := make(map[uuid.UUID]bool, len(active))
		for _, milestone := range active {
			activeIDs[milestone.ID] = true
		}

		for _, subcategory := range subcategories {
			if subcategory.MilestoneID == nil || activeIDs[*subcategory.MilestoneID] {
				continue
			}

			err = subcategory.Delete(tx)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// subcategoryName returns the milestone's name, disambiguated when a
// sibling subcategory already uses it. Milestone names are not unique, the
// subcategory names within a category are.
func subcategoryName(milestone Milestone, names map[string]uuid.UUID) string {
	if _, taken := names[milestone.Name]; !taken {
		return milestone.Name
	}

	return fmt.Sprintf("%s (%.8s)", milestone.Name, milestone.ID)
}

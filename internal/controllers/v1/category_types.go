package v1

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" example:"Food" default:""` // Name of the category
}

func (editable CategoryEditable) model(profileID uuid.UUID) models.Category {
	return models.Category{
		ProfileID: profileID,
		Name:      editable.Name,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	MilestoneID *uuid.UUID `json:"milestoneId,omitempty"` // Set on the synthetic milestone category

	// These fields are computed
	HasTransactions bool          `json:"hasTransactions"` // Do transactions reference one of the category's subcategories?
	Subcategories   []Subcategory `json:"subcategories"`   // Subcategories of the category
}

func newCategory(db *gorm.DB, model models.Category) (Category, error) {
	hasTransactions, err := model.HasTransactions(db)
	if err != nil {
		return Category{}, err
	}

	category := Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		MilestoneID:     model.MilestoneID,
		HasTransactions: hasTransactions,
		Subcategories:   make([]Subcategory, 0),
	}

	subcategories, err := model.Subcategories(db)
	if err != nil {
		return Category{}, err
	}

	for _, subcategory := range subcategories {
		category.Subcategories = append(category.Subcategories, newSubcategory(subcategory))
	}

	return category, nil
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the Category
	Error *string   `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of Categories
	Error *string    `json:"error"` // The error, if any occurred
}

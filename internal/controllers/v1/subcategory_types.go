package v1

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
)

// SubcategoryEditable represents all user configurable parameters
type SubcategoryEditable struct {
	Name       string    `json:"name" example:"Groceries" default:""`                        // Name of the subcategory
	CategoryID uuid.UUID `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the subcategory belongs to
}

func (editable SubcategoryEditable) model() models.Subcategory {
	return models.Subcategory{
		CategoryID: editable.CategoryID,
		Name:       editable.Name,
	}
}

type Subcategory struct {
	models.DefaultModel
	SubcategoryEditable
	MilestoneID *uuid.UUID `json:"milestoneId,omitempty"` // Set on subcategories mirroring a milestone
}

func newSubcategory(model models.Subcategory) Subcategory {
	return Subcategory{
		DefaultModel: model.DefaultModel,
		SubcategoryEditable: SubcategoryEditable{
			Name:       model.Name,
			CategoryID: model.CategoryID,
		},
		MilestoneID: model.MilestoneID,
	}
}

type SubcategoryResponse struct {
	Data  *Subcategory `json:"data"`  // Data for the Subcategory
	Error *string      `json:"error"` // The error, if any occurred
}

type SubcategoryListResponse struct {
	Data  []Subcategory `json:"data"`  // List of Subcategories
	Error *string       `json:"error"` // The error, if any occurred
}

package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MilestoneEditable represents all user configurable parameters
type MilestoneEditable struct {
	Name          string          `json:"name" example:"New car" default:""`          // Name of the milestone
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"12000.00"`            // The amount to save up to
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"2000.00"`            // The amount saved so far
	StartDate     time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`   // When saving started
	TargetDate    time.Time       `json:"targetDate" example:"2024-07-01T00:00:00Z"`  // When the target amount should be reached
}

func (editable MilestoneEditable) model(profileID uuid.UUID) models.Milestone {
	return models.Milestone{
		ProfileID:     profileID,
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		StartDate:     editable.StartDate,
		TargetDate:    editable.TargetDate,
	}
}

type Milestone struct {
	models.DefaultModel
	MilestoneEditable

	// Metrics are computed from the current date on every read
	Metrics models.MilestoneMetrics `json:"metrics"`
}

func newMilestone(model models.Milestone, now time.Time) Milestone {
	return Milestone{
		DefaultModel: model.DefaultModel,
		MilestoneEditable: MilestoneEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			StartDate:     model.StartDate,
			TargetDate:    model.TargetDate,
		},
		Metrics: model.WithMetrics(now),
	}
}

type MilestoneResponse struct {
	Data  *Milestone `json:"data"`  // Data for the Milestone
	Error *string    `json:"error"` // The error, if any occurred
}

type MilestoneListResponse struct {
	Data  []Milestone `json:"data"`  // List of Milestones
	Error *string     `json:"error"` // The error, if any occurred
}

package models

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// daysPerMonth is the average length of a calendar month, used to turn a
// day span into a number of saving months.
const daysPerMonth = 30.44

// Milestone is a savings goal with a target amount and a deadline.
type Milestone struct {
	DefaultModel
	ProfileID     uuid.UUID
	Profile       Profile `json:"-"`
	Name          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate     time.Time
	TargetDate    time.Time
}

// MilestoneMetrics are derived figures for display. They are computed on
// every read and never stored.
type MilestoneMetrics struct {
	ProgressPercentage   decimal.Decimal `json:"progressPercentage"`
	DaysRemaining        int             `json:"daysRemaining"`
	DaysElapsed          int             `json:"daysElapsed"`
	TotalDays            int             `json:"totalDays"`
	MonthlySavingsNeeded decimal.Decimal `json:"monthlySavingsNeeded"`
}

var (
	ErrMilestoneNameEmpty               = errors.New("the milestone name must not be empty")
	ErrMilestoneTargetAmountNotPositive = errors.New("the milestone target amount must be larger than zero")
	ErrMilestoneCurrentAmountNegative   = errors.New("the milestone current amount must be zero or positive")
	ErrMilestoneDatesInverted           = errors.New("the milestone target date must be after its start date")
)

// BeforeSave validates the milestone and normalizes its dates to UTC.
func (m *Milestone) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if m.Name == "" {
		return ErrMilestoneNameEmpty
	}

	if !m.TargetAmount.IsPositive() {
		return ErrMilestoneTargetAmountNotPositive
	}

	if m.CurrentAmount.IsNegative() {
		return ErrMilestoneCurrentAmountNegative
	}

	m.StartDate = m.StartDate.In(time.UTC)
	m.TargetDate = m.TargetDate.In(time.UTC)

	if !m.TargetDate.After(m.StartDate) {
		return ErrMilestoneDatesInverted
	}

	return nil
}

// AfterFind updates the dates to use UTC as timezone, not +0000.
func (m *Milestone) AfterFind(_ *gorm.DB) (err error) {
	m.StartDate = m.StartDate.In(time.UTC)
	m.TargetDate = m.TargetDate.In(time.UTC)
	return nil
}

// ActiveMilestones returns the profile's milestones whose target date has
// not passed, newest first.
func ActiveMilestones(db *gorm.DB, profileID uuid.UUID, today time.Time) ([]Milestone, error) {
	var milestones []Milestone
	err := db.
		Where(&Milestone{ProfileID: profileID}).
		Where("target_date >= date(?)", today.Truncate(24*time.Hour)).
		Order("created_at DESC").
		Find(&milestones).Error
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

// MonthlySavingsNeeded is the amount to put aside each month to reach the
// target amount by the target date, pacing from the start date. The result
// never goes below zero, an overfunded milestone simply needs nothing.
func (m Milestone) MonthlySavingsNeeded() decimal.Decimal {
	return savingsPerMonth(m.TargetAmount.Sub(m.CurrentAmount), daysBetween(m.StartDate, m.TargetDate))
}

// WithMetrics computes the display metrics for the milestone. Unlike
// MonthlySavingsNeeded, the savings pace here is measured from now, not
// from the start date.
func (m Milestone) WithMetrics(now time.Time) MilestoneMetrics {
	daysRemaining := max(0, daysBetween(now, m.TargetDate))

	progress := m.CurrentAmount.Div(m.TargetAmount).Mul(decimal.NewFromInt(100))
	if progress.GreaterThan(decimal.NewFromInt(100)) {
		progress = decimal.NewFromInt(100)
	}

	return MilestoneMetrics{
		ProgressPercentage:   progress,
		DaysRemaining:        daysRemaining,
		DaysElapsed:          max(0, daysBetween(m.StartDate, now)),
		TotalDays:            daysBetween(m.StartDate, m.TargetDate),
		MonthlySavingsNeeded: savingsPerMonth(m.TargetAmount.Sub(m.CurrentAmount), daysRemaining),
	}
}

// daysBetween returns the number of days from one instant to another,
// rounded up.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// savingsPerMonth spreads the remaining amount over the day span, with a
// minimum of one month so imminent deadlines do not divide by zero.
func savingsPerMonth(remaining decimal.Decimal, days int) decimal.Decimal {
	if remaining.IsNegative() {
		return decimal.Zero
	}

	months := max(1, int(math.Ceil(float64(days)/daysPerMonth)))
	return remaining.Div(decimal.NewFromInt(int64(months))).Round(2)
}

package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncToday = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

func (suite *TestSuiteStandard) milestoneCategory(profileID uuid.UUID) (models.Category, bool) {
	var category models.Category
	err := models.DB.Where("profile_id = ? AND name = ?", profileID, models.MilestoneCategoryName).First(&category).Error
	return category, err == nil
}

func (suite *TestSuiteStandard) TestSyncMilestonesCreatesCategory() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	milestone := suite.createTestMilestone(models.Milestone{
		ProfileID:     profile.ID,
		Name:          "New car",
		TargetAmount:  decimal.NewFromFloat(12000),
		CurrentAmount: decimal.NewFromFloat(2000),
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	err := models.SyncMilestones(models.DB, profile.ID, month, syncToday)
	require.Nil(suite.T(), err)

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found, "milestone category was not created")

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), subcategories, 1)
	assert.Equal(suite.T(), "New car", subcategories[0].Name)
	require.NotNil(suite.T(), subcategories[0].MilestoneID)
	assert.Equal(suite.T(), milestone.ID, *subcategories[0].MilestoneID)

	var categoryBudget models.CategoryBudget
	err = models.DB.First(&categoryBudget, "category_id = ? AND month = ?", category.ID, month).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), categoryBudget.Budgeted.Equal(decimal.NewFromFloat(1666.67)), "category budget is %s", categoryBudget.Budgeted)

	var subcategoryBudget models.SubcategoryBudget
	err = models.DB.First(&subcategoryBudget, "subcategory_id = ? AND month = ?", subcategories[0].ID, month).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), subcategoryBudget.Budgeted.Equal(decimal.NewFromFloat(1666.67)), "subcategory budget is %s", subcategoryBudget.Budgeted)
}

func (suite *TestSuiteStandard) TestSyncMilestonesIdempotent() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	_ = suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromFloat(5000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)
	first, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)

	var firstBudget models.CategoryBudget
	require.Nil(suite.T(), models.DB.First(&firstBudget, "category_id = ? AND month = ?", category.ID, month).Error)

	// A second run with unchanged milestones must not change anything
	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	categoryAgain, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)
	assert.Equal(suite.T(), category.ID, categoryAgain.ID)

	second, err := categoryAgain.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), second, len(first))
	assert.Equal(suite.T(), first[0].ID, second[0].ID)

	var secondBudget models.CategoryBudget
	require.Nil(suite.T(), models.DB.First(&secondBudget, "category_id = ? AND month = ?", category.ID, month).Error)
	assert.True(suite.T(), firstBudget.Budgeted.Equal(secondBudget.Budgeted))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategoryBudget{}).Where("category_id = ?", category.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count, "category budget rows must not multiply")
}

func (suite *TestSuiteStandard) TestSyncMilestonesSums() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	_ = suite.createTestMilestone(models.Milestone{
		ProfileID:     profile.ID,
		Name:          "New car",
		TargetAmount:  decimal.NewFromFloat(12000),
		CurrentAmount: decimal.NewFromFloat(2000),
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	_ = suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Vacation",
		TargetAmount: decimal.NewFromFloat(1200),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), subcategories, 2)

	// 10000/6 + 1200/6
	var categoryBudget models.CategoryBudget
	require.Nil(suite.T(), models.DB.First(&categoryBudget, "category_id = ? AND month = ?", category.ID, month).Error)
	assert.True(suite.T(), categoryBudget.Budgeted.Equal(decimal.NewFromFloat(1866.67)), "category budget is %s", categoryBudget.Budgeted)
}

func (suite *TestSuiteStandard) TestSyncMilestonesRemovesStale() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	keep := suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Keep",
		TargetAmount: decimal.NewFromFloat(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	drop := suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Drop",
		TargetAmount: decimal.NewFromFloat(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))
	require.Nil(suite.T(), models.DB.Delete(&models.Milestone{}, drop.ID).Error)
	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), subcategories, 1)
	assert.Equal(suite.T(), keep.ID, *subcategories[0].MilestoneID)
}

func (suite *TestSuiteStandard) TestSyncMilestonesDeletesCategoryWithoutActive() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	milestone := suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Only one",
		TargetAmount: decimal.NewFromFloat(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))
	_, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)

	require.Nil(suite.T(), models.DB.Delete(&models.Milestone{}, milestone.ID).Error)
	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	_, found = suite.milestoneCategory(profile.ID)
	assert.False(suite.T(), found, "milestone category must be removed when no milestone is active")
}

func (suite *TestSuiteStandard) TestSyncMilestonesRecreatesCategory() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	milestone := suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "First try",
		TargetAmount: decimal.NewFromFloat(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	require.Nil(suite.T(), models.DB.Delete(&models.Milestone{}, milestone.ID).Error)
	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))
	_, found := suite.milestoneCategory(profile.ID)
	require.False(suite.T(), found)

	// A new milestone brings the category back, the earlier removal must
	// not block re-creating it
	_ = suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Second try",
		TargetAmount: decimal.NewFromFloat(2000),
		StartDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found, "milestone category was not recreated")

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), subcategories, 1)
	assert.Equal(suite.T(), "Second try", subcategories[0].Name)
}

func (suite *TestSuiteStandard) TestSyncMilestonesNoMilestones() {
	profile := suite.createTestProfile()

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, types.NewMonth(2024, 2), syncToday))

	_, found := suite.milestoneCategory(profile.ID)
	assert.False(suite.T(), found)
}

func (suite *TestSuiteStandard) TestSyncMilestonesFollowsRename() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	milestone := suite.createTestMilestone(models.Milestone{
		ProfileID:    profile.ID,
		Name:         "Old name",
		TargetAmount: decimal.NewFromFloat(1000),
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	require.Nil(suite.T(), models.DB.Model(&milestone).Update("name", "New name").Error)
	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), subcategories, 1, "rename must not create a second subcategory")
	assert.Equal(suite.T(), "New name", subcategories[0].Name)
}

func (suite *TestSuiteStandard) TestSyncMilestonesNameCollision() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 2)

	for range 2 {
		_ = suite.createTestMilestone(models.Milestone{
			ProfileID:    profile.ID,
			Name:         "Same name",
			TargetAmount: decimal.NewFromFloat(1000),
			StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TargetDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	require.Nil(suite.T(), models.SyncMilestones(models.DB, profile.ID, month, syncToday))

	category, found := suite.milestoneCategory(profile.ID)
	require.True(suite.T(), found)

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), subcategories, 2, "milestones sharing a name must not be conflated")
}

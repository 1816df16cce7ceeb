package models_test

import (
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCategoryTrimmedName() {
	profile := suite.createTestProfile()

	category := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "  Food  "})
	assert.Equal(suite.T(), "Food", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	profile := suite.createTestProfile()

	err := models.DB.Create(&models.Category{ProfileID: profile.ID, Name: "   "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerProfile() {
	profile := suite.createTestProfile()
	_ = suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})

	err := models.DB.Create(&models.Category{ProfileID: profile.ID, Name: "Food"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// The same name is fine on another profile
	other := suite.createTestProfile()
	err = models.DB.Create(&models.Category{ProfileID: other.ID, Name: "Food"}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSubcategoryNameUniquePerCategory() {
	profile := suite.createTestProfile()
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})
	_ = suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID, Name: "Groceries"})

	err := models.DB.Create(&models.Subcategory{CategoryID: category.ID, Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSubcategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestSubcategoryRequiresCategory() {
	subcategory := models.Subcategory{Name: "Orphan"}
	err := models.DB.Create(&subcategory).Error
	assert.NotNil(suite.T(), err, "creating a subcategory without a category must fail")
}

func (suite *TestSuiteStandard) TestCategoryHasTransactions() {
	profile := suite.createTestProfile()
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})
	subcategory := suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID})

	has, err := category.HasTransactions(models.DB)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), has)

	_ = suite.createTestTransaction(models.Transaction{
		ProfileID:     profile.ID,
		Amount:        decimal.NewFromFloat(12.5),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
	})

	has, err = category.HasTransactions(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), has)
}

func (suite *TestSuiteStandard) TestCategoryDeleteCascading() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 3)

	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})
	subcategory := suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID})

	require.Nil(suite.T(), models.SetCategoryBudget(models.DB, category.ID, month, decimal.NewFromFloat(100)))
	require.Nil(suite.T(), models.SetSubcategoryBudget(models.DB, subcategory.ID, month, decimal.NewFromFloat(100)))
	transaction := suite.createTestTransaction(models.Transaction{
		ProfileID:     profile.ID,
		Amount:        decimal.NewFromFloat(20),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
	})

	require.Nil(suite.T(), category.DeleteCascading(models.DB))

	var err error
	err = models.DB.First(&models.Category{}, category.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = models.DB.First(&models.Subcategory{}, subcategory.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = models.DB.First(&models.Transaction{}, transaction.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategoryBudget{}).Where("category_id = ?", category.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	require.Nil(suite.T(), models.DB.Model(&models.SubcategoryBudget{}).Where("subcategory_id = ?", subcategory.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestSubcategoryDelete() {
	profile := suite.createTestProfile()
	month := types.NewMonth(2024, 3)

	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})
	keep := suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID})
	remove := suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID})

	require.Nil(suite.T(), models.SetSubcategoryBudget(models.DB, remove.ID, month, decimal.NewFromFloat(50)))
	transaction := suite.createTestTransaction(models.Transaction{
		ProfileID:     profile.ID,
		Amount:        decimal.NewFromFloat(5),
		Type:          models.TransactionExpense,
		SubcategoryID: &remove.ID,
	})

	require.Nil(suite.T(), remove.Delete(models.DB))

	err := models.DB.First(&models.Transaction{}, transaction.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// Siblings and the category itself are untouched
	assert.Nil(suite.T(), models.DB.First(&models.Subcategory{}, keep.ID).Error)
	assert.Nil(suite.T(), models.DB.First(&models.Category{}, category.ID).Error)
}

func (suite *TestSuiteStandard) TestCategoryNameReusableAfterDelete() {
	profile := suite.createTestProfile()

	category := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})
	_ = suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID, Name: "Groceries"})
	require.Nil(suite.T(), models.SetCategoryBudget(models.DB, category.ID, types.NewMonth(2024, 3), decimal.NewFromFloat(100)))

	require.Nil(suite.T(), category.DeleteCascading(models.DB))

	// The deleted rows must not keep occupying the unique name slots
	recreated := models.Category{ProfileID: profile.ID, Name: "Food"}
	require.Nil(suite.T(), models.DB.Create(&recreated).Error)
	assert.Nil(suite.T(), models.DB.Create(&models.Subcategory{CategoryID: recreated.ID, Name: "Groceries"}).Error)

	// The fresh category starts without allocations from its predecessor
	require.Nil(suite.T(), models.SetCategoryBudget(models.DB, recreated.ID, types.NewMonth(2024, 3), decimal.NewFromFloat(40)))
}

func (suite *TestSuiteStandard) TestSubcategoryNameReusableAfterDelete() {
	profile := suite.createTestProfile()
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})

	subcategory := suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID, Name: "Groceries"})
	require.Nil(suite.T(), subcategory.Delete(models.DB))

	assert.Nil(suite.T(), models.DB.Create(&models.Subcategory{CategoryID: category.ID, Name: "Groceries"}).Error)
}

func (suite *TestSuiteStandard) TestCategorySubcategoriesOrdered() {
	profile := suite.createTestProfile()
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID})

	_ = suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID, Name: "Zoo"})
	_ = suite.createTestSubcategory(models.Subcategory{CategoryID: category.ID, Name: "Aquarium"})

	subcategories, err := category.Subcategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), subcategories, 2)
	assert.Equal(suite.T(), "Aquarium", subcategories[0].Name)
	assert.Equal(suite.T(), "Zoo", subcategories[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryValidation() {
	category := models.Category{Name: ""}
	assert.ErrorIs(suite.T(), category.BeforeSave(&gorm.DB{}), models.ErrCategoryNameEmpty)

	subcategory := models.Subcategory{Name: " "}
	assert.ErrorIs(suite.T(), subcategory.BeforeSave(&gorm.DB{}), models.ErrSubcategoryNameEmpty)
}

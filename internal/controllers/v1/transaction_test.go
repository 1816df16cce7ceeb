package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsCRUD() {
	headers := suite.signUp()
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	subcategory := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Date:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(14.50),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
		Description:   "Saturday groceries",
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/"+transaction.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Saturday groceries", response.Data.Description)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.50)))

	r = test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]string{
		"description": "Sunday groceries",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Sunday groceries", response.Data.Description)
	require.NotNil(suite.T(), response.Data.SubcategoryID, "a partial update must not clear the subcategory")
	assert.Equal(suite.T(), subcategory.ID, *response.Data.SubcategoryID)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/transactions/"+transaction.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/"+transaction.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsInvalid() {
	headers := suite.signUp()
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	subcategory := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"zero amount", v1.TransactionEditable{Type: models.TransactionExpense, SubcategoryID: &subcategory.ID}, http.StatusBadRequest},
		{"negative amount", v1.TransactionEditable{Amount: decimal.NewFromFloat(-5), Type: models.TransactionExpense, SubcategoryID: &subcategory.ID}, http.StatusBadRequest},
		{"expense without subcategory", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), Type: models.TransactionExpense}, http.StatusBadRequest},
		{"income with subcategory", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), Type: models.TransactionIncome, SubcategoryID: &subcategory.ID}, http.StatusBadRequest},
		{"unknown type", v1.TransactionEditable{Amount: decimal.NewFromFloat(5), Type: "transfer", SubcategoryID: &subcategory.ID}, http.StatusBadRequest},
		{"empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/transactions", tt.body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsTypeChangeClearsSubcategory() {
	headers := suite.signUp()
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	subcategory := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount:        decimal.NewFromFloat(100),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
	})

	// Switching the type to income requires clearing the reference in the
	// same request
	r := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{
		"type": models.TransactionIncome,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/transactions/"+transaction.ID.String(), map[string]any{
		"type":          models.TransactionIncome,
		"subcategoryId": nil,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.TransactionIncome, response.Data.Type)
	assert.Nil(suite.T(), response.Data.SubcategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	headers := suite.signUp()
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	groceries := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})
	dining := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Dining out", CategoryID: category.ID})

	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Date:          time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(10),
		Type:          models.TransactionExpense,
		SubcategoryID: &groceries.ID,
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Date:          time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(20),
		Type:          models.TransactionExpense,
		SubcategoryID: &dining.ID,
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(3000),
		Type:   models.TransactionIncome,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 3},
		{"by month", "?month=2024-02", 2},
		{"by other month", "?month=2024-04", 0},
		{"by type", "?type=income", 1},
		{"by subcategory", "?subcategory=" + dining.ID.String(), 1},
		{"combined", "?month=2024-02&type=expense&subcategory=" + groceries.ID.String(), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "/v1/transactions"+tt.query, nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	// Newest first
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.True(suite.T(), response.Data[0].Date.After(response.Data[1].Date))
	assert.True(suite.T(), response.Data[1].Date.After(response.Data[2].Date))
}

func (suite *TestSuiteStandard) TestTransactionsInvalidMonthFilter() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=not-a-month", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	headers := suite.signUp()
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Food"})
	subcategory := suite.createTestSubcategory(headers, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})

	for i := 0; i < 5; i++ {
		_ = suite.createTestTransaction(headers, v1.TransactionEditable{
			Date:          time.Date(2024, 2, 1+i, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromFloat(float64(i + 1)),
			Type:          models.TransactionExpense,
			SubcategoryID: &subcategory.ID,
		})
	}

	tests := []struct {
		query  string
		count  int
		offset uint
		limit  int
	}{
		{"", 5, 0, 50},
		{"?limit=2", 2, 0, 2},
		{"?offset=4", 1, 4, 50},
		{"?offset=2&limit=2", 2, 2, 2},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("query %q", tt.query), func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "/v1/transactions"+tt.query, nil, headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, tt.offset, response.Pagination.Offset)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
			assert.Equal(t, int64(5), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsScopedToProfile() {
	jane := suite.signUp()
	john := suite.signUp()

	category := suite.createTestCategory(jane, v1.CategoryEditable{Name: "Food"})
	subcategory := suite.createTestSubcategory(jane, v1.SubcategoryEditable{Name: "Groceries", CategoryID: category.ID})
	transaction := suite.createTestTransaction(jane, v1.TransactionEditable{
		Amount:        decimal.NewFromFloat(10),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
	})

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		r := test.Request(suite.T(), suite.router, method, "/v1/transactions/"+transaction.ID.String(), nil, john)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	// Booking against another profile's subcategory reads as not found
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Amount:        decimal.NewFromFloat(10),
		Type:          models.TransactionExpense,
		SubcategoryID: &subcategory.ID,
	}, john)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", nil, john)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

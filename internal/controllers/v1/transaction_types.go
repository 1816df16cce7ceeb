package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date          time.Time              `json:"date" example:"2024-02-15T00:00:00Z"`       // Date of the transaction, defaults to the current time
	Amount        decimal.Decimal        `json:"amount" example:"14.50"`                    // Amount, always positive
	Type          models.TransactionType `json:"type" example:"expense"`                    // "income" or "expense"
	SubcategoryID *uuid.UUID             `json:"subcategoryId"`                             // Required for expenses, must be unset for income
	Description   string                 `json:"description" example:"Saturday groceries"` // Free text
}

func (editable TransactionEditable) model(profileID uuid.UUID) models.Transaction {
	return models.Transaction{
		ProfileID:     profileID,
		Date:          editable.Date,
		Amount:        editable.Amount,
		Type:          editable.Type,
		SubcategoryID: editable.SubcategoryID,
		Description:   editable.Description,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:          model.Date,
			Amount:        model.Amount,
			Type:          model.Type,
			SubcategoryID: model.SubcategoryID,
			Description:   model.Description,
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the Transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of Transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Month       time.Time    `form:"month" time_format:"2006-01" time_utc:"1"` // By month in YYYY-MM format
	Type        string       `form:"type"`                                     // By transaction type
	Subcategory pp_uuid.UUID `form:"subcategory"`                              // By ID of the subcategory
	Offset      uint         `form:"offset"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit       int          `form:"limit"`                                    // Maximum number of Transactions to return. Defaults to 50.
}

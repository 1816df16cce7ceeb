package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense booking. It belongs to exactly
// the month its date falls into.
type Transaction struct {
	DefaultModel
	ProfileID uuid.UUID
	Profile   Profile `json:"-"`
	Date      time.Time
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type      TransactionType

	// Set for expenses, always nil for income
	SubcategoryID *uuid.UUID
	Subcategory   Subcategory `json:"-"`

	Description string
}

var (
	ErrTransactionAmountNotPositive   = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid         = errors.New("the transaction type must be income or expense")
	ErrTransactionSubcategoryRequired = errors.New("expense transactions must reference a subcategory")
	ErrTransactionSubcategoryOnIncome = errors.New("income transactions can not reference a subcategory")
)

// BeforeSave validates the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	switch t.Type {
	case TransactionExpense:
		if t.SubcategoryID == nil || *t.SubcategoryID == uuid.Nil {
			return ErrTransactionSubcategoryRequired
		}
	case TransactionIncome:
		if t.SubcategoryID != nil {
			return ErrTransactionSubcategoryOnIncome
		}
	default:
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	if toSave.SubcategoryID != nil {
		return tx.First(&Subcategory{}, *toSave.SubcategoryID).Error
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// TransactionsForMonth returns the profile's transactions within the
// calendar month, newest first.
//
// The month is a half-open date range so that short months and leap days
// are handled by the database, not by string comparison.
func TransactionsForMonth(db *gorm.DB, profileID uuid.UUID, month types.Month) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{ProfileID: profileID}).
		Where("date >= date(?) AND date < date(?)", month.FirstDay(), month.AddDate(0, 1).FirstDay()).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type RevenueType string

// RevenueTypeNone representa transações sem classificação de receita (tratadas como serviço no DRE)
const (
	RevenueTypeNone    RevenueType = ""
	RevenueTypeService RevenueType = "service"
	RevenueTypeProduct RevenueType = "product"
)

type FiscalAccountType string

const (
	FiscalAccountTypeClinicService FiscalAccountType = "clinic_service"
	FiscalAccountTypeMarketplace   FiscalAccountType = "marketplace"
	FiscalAccountTypeProfessional  FiscalAccountType = "professional"
)

type Transaction struct {
	ID              string          `json:"id"`
	Type            TransactionType `json:"type"`
	RevenueType     RevenueType     `json:"revenue_type"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	FiscalAccountID *string         `json:"fiscal_account_id"`
	UnitID          *string         `json:"unit_id"`
}

func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return NewInvalidRecordError("transaction", t.ID, "amount must not be negative")
	}

	switch t.Type {
	case TransactionTypeIncome, TransactionTypeExpense:
	default:
		return NewInvalidRecordError("transaction", t.ID, "unknown type "+string(t.Type))
	}

	switch t.RevenueType {
	case RevenueTypeNone, RevenueTypeService, RevenueTypeProduct:
	default:
		return NewInvalidRecordError("transaction", t.ID, "unknown revenue type "+string(t.RevenueType))
	}

	return nil
}

func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsServiceRevenue considera receitas sem classificação como receita de serviço
func (t Transaction) IsServiceRevenue() bool {
	return t.IsIncome() && (t.RevenueType == RevenueTypeService || t.RevenueType == RevenueTypeNone)
}

func (t Transaction) IsProductRevenue() bool {
	return t.IsIncome() && t.RevenueType == RevenueTypeProduct
}

type FiscalAccount struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Type FiscalAccountType `json:"type"`
}

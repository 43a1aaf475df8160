package domain

import "github.com/shopspring/decimal"

// DRELine é um nó da árvore do demonstrativo de resultados
type DRELine struct {
	Code     string          `json:"code"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Children []DRELine       `json:"children,omitempty"`
}

// Statement é o DRE gerencial calculado a partir das transações
type Statement struct {
	FiscalAccountID    string          `json:"fiscal_account_id,omitempty"`
	ServiceRevenue     decimal.Decimal `json:"service_revenue"`
	ProductRevenue     decimal.Decimal `json:"product_revenue"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	ServiceTaxes       decimal.Decimal `json:"service_taxes"`
	ProductTaxes       decimal.Decimal `json:"product_taxes"`
	TotalTaxes         decimal.Decimal `json:"total_taxes"`
	NetRevenue         decimal.Decimal `json:"net_revenue"`
	VariableCosts      decimal.Decimal `json:"variable_costs"`
	ContributionMargin decimal.Decimal `json:"contribution_margin"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	Profit             decimal.Decimal `json:"profit"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
	Lines              []DRELine       `json:"lines"`
	Period             *Period         `json:"period,omitempty"`
	Skipped            int             `json:"skipped"`
}

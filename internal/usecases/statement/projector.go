// Package statement monta o DRE gerencial (demonstrativo de resultados) a partir das transações
package statement

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/aggregate"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

const uncategorized = "Outros"

// Códigos das linhas do DRE
const (
	LineRevenue            = "revenue"
	LineServiceRevenue     = "revenue.service"
	LineProductRevenue     = "revenue.product"
	LineTaxes              = "taxes"
	LineServiceTaxes       = "taxes.service"
	LineProductTaxes       = "taxes.product"
	LineNetRevenue         = "net_revenue"
	LineVariableCosts      = "variable_costs"
	LineContributionMargin = "contribution_margin"
	LineExpenses           = "expenses"
	LineProfit             = "profit"
)

type Config struct {
	ServiceTaxRate    decimal.Decimal
	ProductTaxRate    decimal.Decimal
	VariableCostRatio decimal.Decimal
}

func NewConfig(cfg *config.Config) Config {
	return Config{
		ServiceTaxRate:    utils.RateFromFloat(cfg.Reporting.ServiceTaxRate),
		ProductTaxRate:    utils.RateFromFloat(cfg.Reporting.ProductTaxRate),
		VariableCostRatio: utils.RateFromFloat(cfg.Reporting.VariableCostRatio),
	}
}

type Projector struct {
	cfg Config
}

func NewProjector(cfg Config) *Projector {
	return &Projector{cfg: cfg}
}

type Input struct {
	Transactions    []domain.Transaction
	FiscalAccounts  []domain.FiscalAccount
	FiscalAccountID string
	UnitID          string
	Period          *domain.Period
}

// IsConsolidated indica se nenhuma conta fiscal específica foi selecionada
func IsConsolidated(fiscalAccountID string) bool {
	return fiscalAccountID == "" || fiscalAccountID == domain.AllUnits
}

// InScope aplica a regra de escopo por conta fiscal. Na visão consolidada entram as transações
// sem conta e as de contas não profissionais; contas do tipo profissional ficam de fora.
func InScope(tx domain.Transaction, fiscalAccountID string, accounts map[string]domain.FiscalAccount) bool {
	if !IsConsolidated(fiscalAccountID) {
		return tx.FiscalAccountID != nil && *tx.FiscalAccountID == fiscalAccountID
	}

	if tx.FiscalAccountID == nil || *tx.FiscalAccountID == "" {
		return true
	}

	account, ok := accounts[*tx.FiscalAccountID]
	if !ok {
		return true
	}

	return account.Type != domain.FiscalAccountTypeProfessional
}

func inUnit(tx domain.Transaction, unitID string) bool {
	if unitID == "" || unitID == domain.AllUnits || tx.UnitID == nil {
		return true
	}
	return *tx.UnitID == unitID
}

func amount(tx domain.Transaction) decimal.Decimal {
	return tx.Amount
}

// Project calcula o DRE na ordem fixa: receita, impostos, receita líquida, margem de
// contribuição, despesas e lucro. Conjuntos vazios resultam em zeros.
func (p *Projector) Project(input Input) *domain.Statement {
	accounts := make(map[string]domain.FiscalAccount, len(input.FiscalAccounts))
	for _, account := range input.FiscalAccounts {
		accounts[account.ID] = account
	}

	statement := &domain.Statement{Period: input.Period}
	if !IsConsolidated(input.FiscalAccountID) {
		statement.FiscalAccountID = input.FiscalAccountID
	}

	scoped := make([]domain.Transaction, 0, len(input.Transactions))
	for _, tx := range input.Transactions {
		if err := tx.Validate(); err != nil {
			statement.Skipped++
			continue
		}

		if !input.Period.Contains(tx.Date) || !inUnit(tx, input.UnitID) {
			continue
		}

		if InScope(tx, input.FiscalAccountID, accounts) {
			scoped = append(scoped, tx)
		}
	}

	statement.ServiceRevenue = aggregate.SumWhere(scoped, domain.Transaction.IsServiceRevenue, amount)
	statement.ProductRevenue = aggregate.SumWhere(scoped, domain.Transaction.IsProductRevenue, amount)
	statement.TotalRevenue = statement.ServiceRevenue.Add(statement.ProductRevenue)

	statement.ServiceTaxes = statement.ServiceRevenue.Mul(p.cfg.ServiceTaxRate)
	statement.ProductTaxes = statement.ProductRevenue.Mul(p.cfg.ProductTaxRate)
	statement.TotalTaxes = statement.ServiceTaxes.Add(statement.ProductTaxes)

	statement.NetRevenue = statement.TotalRevenue.Sub(statement.TotalTaxes)
	statement.VariableCosts = statement.TotalRevenue.Mul(p.cfg.VariableCostRatio)
	statement.ContributionMargin = statement.NetRevenue.Sub(statement.VariableCosts)

	expenses := aggregate.Filter(scoped, domain.Transaction.IsExpense)
	statement.TotalExpenses = aggregate.SumWhere(expenses, nil, amount)

	statement.Profit = statement.ContributionMargin.Sub(statement.TotalExpenses)
	statement.ProfitMargin = aggregate.Percentage(statement.Profit, statement.TotalRevenue)

	statement.Lines = p.lines(statement, expenses)

	return statement
}

func (p *Projector) lines(s *domain.Statement, expenses []domain.Transaction) []domain.DRELine {
	byCategory := aggregate.GroupBy(expenses, func(tx domain.Transaction) string {
		if tx.Category == "" {
			return uncategorized
		}
		return tx.Category
	})

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	expenseLines := make([]domain.DRELine, 0, len(categories))
	for _, category := range categories {
		expenseLines = append(expenseLines, domain.DRELine{
			Code:   LineExpenses + "." + category,
			Label:  category,
			Amount: aggregate.SumWhere(byCategory[category], nil, amount),
		})
	}

	return []domain.DRELine{
		{
			Code:   LineRevenue,
			Label:  "Receita Bruta",
			Amount: s.TotalRevenue,
			Children: []domain.DRELine{
				{Code: LineServiceRevenue, Label: "Serviços", Amount: s.ServiceRevenue},
				{Code: LineProductRevenue, Label: "Produtos", Amount: s.ProductRevenue},
			},
		},
		{
			Code:   LineTaxes,
			Label:  "(-) Impostos",
			Amount: s.TotalTaxes,
			Children: []domain.DRELine{
				{Code: LineServiceTaxes, Label: "Impostos sobre Serviços", Amount: s.ServiceTaxes},
				{Code: LineProductTaxes, Label: "Impostos sobre Produtos", Amount: s.ProductTaxes},
			},
		},
		{Code: LineNetRevenue, Label: "Receita Líquida", Amount: s.NetRevenue},
		{Code: LineVariableCosts, Label: "(-) Custos Variáveis", Amount: s.VariableCosts},
		{Code: LineContributionMargin, Label: "Margem de Contribuição", Amount: s.ContributionMargin},
		{Code: LineExpenses, Label: "(-) Despesas", Amount: s.TotalExpenses, Children: expenseLines},
		{Code: LineProfit, Label: "Lucro Líquido", Amount: s.Profit},
	}
}

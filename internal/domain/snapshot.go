package domain

import (
	"time"
)

// AllUnits é o valor sentinela para o escopo consolidado de todas as unidades
const AllUnits = "all"

// Period é um intervalo fechado no início e aberto no fim
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se o instante está dentro do período; período nulo contém tudo
func (p *Period) Contains(t time.Time) bool {
	if p == nil {
		return true
	}

	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}

	if !p.End.IsZero() && !t.Before(p.End) {
		return false
	}

	return true
}

// MonthPeriod retorna o período do mês que contém a data
func MonthPeriod(date time.Time) Period {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

type ReportFilters struct {
	UnitID          string
	FiscalAccountID string
	Period          *Period
}

// Unit retorna a unidade do filtro considerando o sentinela "all"
func (f ReportFilters) Unit() string {
	if f.UnitID == "" {
		return AllUnits
	}
	return f.UnitID
}

// Snapshot é a fotografia somente leitura dos registros usada em uma projeção
type Snapshot struct {
	UnitID             string              `json:"unit_id"`
	Period             *Period             `json:"period,omitempty"`
	Appointments       []Appointment       `json:"appointments"`
	Transactions       []Transaction       `json:"transactions"`
	Staff              []StaffMember       `json:"staff"`
	TreatmentPlans     []TreatmentPlan     `json:"treatment_plans"`
	Leads              []Lead              `json:"leads"`
	FiscalAccounts     []FiscalAccount     `json:"fiscal_accounts"`
	PayrollAdjustments []PayrollAdjustment `json:"payroll_adjustments"`
}

// AdjustmentsByStaff indexa os ajustes de folha por profissional
func (s *Snapshot) AdjustmentsByStaff() map[string]PayrollAdjustment {
	adjustments := make(map[string]PayrollAdjustment, len(s.PayrollAdjustments))
	for _, adjustment := range s.PayrollAdjustments {
		adjustments[adjustment.StaffID] = adjustment
	}
	return adjustments
}

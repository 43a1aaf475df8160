package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type StaffMember struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	UnitID         *string          `json:"unit_id"`
	AllowedUnits   []string         `json:"allowed_units"`
}

// WorksAt informa se o profissional atende na unidade informada
func (s StaffMember) WorksAt(unitID string) bool {
	if unitID == "" || unitID == AllUnits {
		return true
	}

	if s.UnitID != nil && *s.UnitID == unitID {
		return true
	}

	return slices.Contains(s.AllowedUnits, unitID)
}

// PayrollAdjustment são valores informados externamente para o fechamento da folha
type PayrollAdjustment struct {
	StaffID  string          `json:"staff_id"`
	Month    string          `json:"month"` // Formato mm-yyyy
	Advances decimal.Decimal `json:"advances"`
	Salary   decimal.Decimal `json:"salary"`
	Bonus    decimal.Decimal `json:"bonus"`
}

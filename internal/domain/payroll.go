package domain

import "github.com/shopspring/decimal"

type PayrollRow struct {
	StaffID         string          `json:"staff_id"`
	StaffName       string          `json:"staff_name"`
	Appointments    int             `json:"appointments"`
	TotalServices   decimal.Decimal `json:"total_services"`
	CommissionRate  decimal.Decimal `json:"commission_rate"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	Advances        decimal.Decimal `json:"advances"`
	Salary          decimal.Decimal `json:"salary"`
	Bonus           decimal.Decimal `json:"bonus"`
	NetPayable      decimal.Decimal `json:"net_payable"`
}

type PayrollReport struct {
	Rows    []PayrollRow `json:"rows"`
	Totals  PayrollRow   `json:"totals"`
	Period  *Period      `json:"period,omitempty"`
	Skipped int          `json:"skipped"`
}

// Row retorna a linha do profissional informado
func (r *PayrollReport) Row(staffID string) (PayrollRow, bool) {
	for _, row := range r.Rows {
		if row.StaffID == staffID {
			return row, true
		}
	}
	return PayrollRow{}, false
}

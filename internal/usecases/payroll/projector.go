// Package payroll calcula a comissão e o valor líquido a pagar de cada profissional
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/aggregate"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

type Config struct {
	// DefaultCommissionRate é aplicada quando o cadastro do profissional não informa taxa
	DefaultCommissionRate decimal.Decimal
}

func NewConfig(cfg *config.Config) Config {
	return Config{
		DefaultCommissionRate: utils.RateFromFloat(cfg.Reporting.DefaultCommissionRate),
	}
}

type Projector struct {
	cfg Config
}

func NewProjector(cfg Config) *Projector {
	return &Projector{cfg: cfg}
}

// Input reúne o que a folha consome; Adjustments vem de fora e vale zero quando ausente
type Input struct {
	Staff        []domain.StaffMember
	Appointments []domain.Appointment
	Adjustments  map[string]domain.PayrollAdjustment
	Period       *domain.Period
	UnitID       string
}

func (p *Projector) rateFor(staff domain.StaffMember) decimal.Decimal {
	if staff.CommissionRate != nil {
		return *staff.CommissionRate
	}
	return p.cfg.DefaultCommissionRate
}

// Project soma o valor dos atendimentos concluídos por profissional e aplica a taxa de comissão.
// O líquido (comissão - adiantamentos + salário + bônus) pode ser negativo e não é truncado.
func (p *Projector) Project(input Input) *domain.PayrollReport {
	report := &domain.PayrollReport{
		Rows:   make([]domain.PayrollRow, 0, len(input.Staff)),
		Period: input.Period,
	}

	completed := make([]domain.Appointment, 0, len(input.Appointments))
	for _, appointment := range input.Appointments {
		if err := appointment.Validate(); err != nil {
			report.Skipped++
			continue
		}

		if appointment.IsCompleted() && input.Period.Contains(appointment.StartTime) {
			completed = append(completed, appointment)
		}
	}

	byStaff := aggregate.GroupBy(completed, func(a domain.Appointment) string { return a.StaffID })

	totals := domain.PayrollRow{StaffName: "Total"}
	for _, staff := range input.Staff {
		if !staff.WorksAt(input.UnitID) {
			continue
		}

		appointments := byStaff[staff.ID]
		gross := aggregate.SumWhere(appointments, nil, func(a domain.Appointment) decimal.Decimal { return a.Price })
		rate := p.rateFor(staff)
		commission := utils.RoundCurrency(gross.Mul(rate))
		adjustment := input.Adjustments[staff.ID]

		row := domain.PayrollRow{
			StaffID:         staff.ID,
			StaffName:       staff.Name,
			Appointments:    len(appointments),
			TotalServices:   gross,
			CommissionRate:  rate,
			CommissionValue: commission,
			Advances:        adjustment.Advances,
			Salary:          adjustment.Salary,
			Bonus:           adjustment.Bonus,
			NetPayable:      NetPayable(commission, adjustment),
		}
		report.Rows = append(report.Rows, row)

		totals.Appointments += row.Appointments
		totals.TotalServices = totals.TotalServices.Add(row.TotalServices)
		totals.CommissionValue = totals.CommissionValue.Add(row.CommissionValue)
		totals.Advances = totals.Advances.Add(row.Advances)
		totals.Salary = totals.Salary.Add(row.Salary)
		totals.Bonus = totals.Bonus.Add(row.Bonus)
		totals.NetPayable = totals.NetPayable.Add(row.NetPayable)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].StaffName < report.Rows[j].StaffName
	})
	report.Totals = totals

	return report
}

// NetPayable calcula comissão - adiantamentos + salário + bônus
func NetPayable(commission decimal.Decimal, adjustment domain.PayrollAdjustment) decimal.Decimal {
	return commission.
		Sub(adjustment.Advances).
		Add(adjustment.Salary).
		Add(adjustment.Bonus)
}

// Package funnel agrupa planos de tratamento e leads por etapa do funil
package funnel

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/aggregate"
)

type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

type Input struct {
	TreatmentPlans []domain.TreatmentPlan
	Leads          []domain.Lead
	UnitID         string
}

// Project retorna as contagens por etapa sempre com todas as etapas na ordem canônica
func (p *Projector) Project(input Input) *domain.FunnelReport {
	report := &domain.FunnelReport{}

	plans := make([]domain.TreatmentPlan, 0, len(input.TreatmentPlans))
	for _, plan := range input.TreatmentPlans {
		if err := plan.Validate(); err != nil || !plan.PipelineStage.Valid() {
			report.Skipped++
			continue
		}

		if input.UnitID == "" || input.UnitID == domain.AllUnits || plan.UnitID == input.UnitID {
			plans = append(plans, plan)
		}
	}

	leads := make([]domain.Lead, 0, len(input.Leads))
	for _, lead := range input.Leads {
		if !lead.Stage.Valid() || lead.Value.IsNegative() {
			report.Skipped++
			continue
		}
		leads = append(leads, lead)
	}

	report.TreatmentPlans = PlanFunnel(plans)
	report.Leads = LeadFunnel(leads)

	return report
}

// PlanFunnel calcula o funil de planos; conversão é Fechado / total
func PlanFunnel(plans []domain.TreatmentPlan) domain.Funnel {
	byStage := aggregate.GroupBy(plans, func(p domain.TreatmentPlan) domain.PipelineStage { return p.PipelineStage })

	funnel := domain.Funnel{Total: len(plans)}
	for _, stage := range domain.PipelineStages() {
		funnel.Buckets = append(funnel.Buckets, domain.FunnelBucket{
			Stage: string(stage),
			Count: len(byStage[stage]),
			Value: aggregate.SumWhere(byStage[stage], nil, domain.TreatmentPlan.Total),
		})
	}

	funnel.Conversion = conversion(len(byStage[domain.PipelineStageClosed]), funnel.Total)

	return funnel
}

// LeadFunnel calcula o funil comercial; conversão é Ganho / total
func LeadFunnel(leads []domain.Lead) domain.Funnel {
	byStage := aggregate.GroupBy(leads, func(l domain.Lead) domain.LeadStage { return l.Stage })

	funnel := domain.Funnel{Total: len(leads)}
	for _, stage := range domain.LeadStages() {
		funnel.Buckets = append(funnel.Buckets, domain.FunnelBucket{
			Stage: string(stage),
			Count: len(byStage[stage]),
			Value: aggregate.SumWhere(byStage[stage], nil, func(l domain.Lead) decimal.Decimal { return l.Value }),
		})
	}

	funnel.Conversion = conversion(len(byStage[domain.LeadStageWon]), funnel.Total)

	return funnel
}

func conversion(converted, total int) decimal.Decimal {
	return aggregate.Percentage(decimal.NewFromInt(int64(converted)), decimal.NewFromInt(int64(total))).Round(2)
}

package funnel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func plan(id, unitID string, stage domain.PipelineStage, price string) domain.TreatmentPlan {
	return domain.TreatmentPlan{
		ID:     id,
		UnitID: unitID,
		Items: []domain.TreatmentPlanItem{
			{ServiceName: "Limpeza de pele", Quantity: 2, UnitPrice: dec(price), TotalPrice: dec(price).Mul(decimal.NewFromInt(2))},
		},
		PipelineStage: stage,
		Status:        domain.PlanStatusPrescribed,
	}
}

func TestProjector_Project(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		validate func(t *testing.T, report *domain.FunnelReport)
	}{
		{
			name:  "Conjunto vazio mantém todas as etapas",
			input: Input{},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				require.Len(t, report.TreatmentPlans.Buckets, 4)
				for i, stage := range domain.PipelineStages() {
					assert.Equal(t, string(stage), report.TreatmentPlans.Buckets[i].Stage)
					assert.Zero(t, report.TreatmentPlans.Buckets[i].Count)
				}
				assert.True(t, report.TreatmentPlans.Conversion.IsZero())

				require.Len(t, report.Leads.Buckets, 6)
				assert.True(t, report.Leads.Conversion.IsZero())
			},
		},
		{
			name: "Contagem, valor e conversão dos planos",
			input: Input{
				TreatmentPlans: []domain.TreatmentPlan{
					plan("p1", "u1", domain.PipelineStageNew, "100"),
					plan("p2", "u1", domain.PipelineStageNew, "50"),
					plan("p3", "u1", domain.PipelineStageClosed, "300"),
					plan("p4", "u1", domain.PipelineStageNegotiating, "10"),
				},
			},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				funnel := report.TreatmentPlans
				assert.Equal(t, 4, funnel.Total)

				novo, ok := funnel.Bucket(string(domain.PipelineStageNew))
				require.True(t, ok)
				assert.Equal(t, 2, novo.Count)
				assert.True(t, dec("300").Equal(novo.Value))

				presented, _ := funnel.Bucket(string(domain.PipelineStagePresented))
				assert.Zero(t, presented.Count)

				assert.True(t, dec("25").Equal(funnel.Conversion))
			},
		},
		{
			name: "Desconto reduz o valor da etapa",
			input: Input{
				TreatmentPlans: []domain.TreatmentPlan{
					func() domain.TreatmentPlan {
						p := plan("p1", "u1", domain.PipelineStageClosed, "100")
						p.Discount = dec("20")
						return p
					}(),
				},
			},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				closed, _ := report.TreatmentPlans.Bucket(string(domain.PipelineStageClosed))
				assert.True(t, dec("180").Equal(closed.Value))
				assert.True(t, dec("100").Equal(report.TreatmentPlans.Conversion))
			},
		},
		{
			name: "Filtro por unidade",
			input: Input{
				TreatmentPlans: []domain.TreatmentPlan{
					plan("p1", "u1", domain.PipelineStageNew, "100"),
					plan("p2", "u2", domain.PipelineStageNew, "100"),
				},
				UnitID: "u1",
			},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				assert.Equal(t, 1, report.TreatmentPlans.Total)
			},
		},
		{
			name: "Planos e leads inválidos são ignorados",
			input: Input{
				TreatmentPlans: []domain.TreatmentPlan{
					plan("p1", "u1", "Arquivado", "100"),
					{ID: "p2", PipelineStage: domain.PipelineStageNew, Items: []domain.TreatmentPlanItem{{Quantity: 1, SessionsUsed: 2}}},
					plan("p3", "u1", domain.PipelineStageNew, "100"),
				},
				Leads: []domain.Lead{
					{ID: "l1", Stage: "Arquivado"},
					{ID: "l2", Stage: domain.LeadStageNew, Value: dec("-1")},
				},
			},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				assert.Equal(t, 4, report.Skipped)
				assert.Equal(t, 1, report.TreatmentPlans.Total)
				assert.Zero(t, report.Leads.Total)
			},
		},
		{
			name: "Conversão de leads considera Ganho",
			input: Input{
				Leads: []domain.Lead{
					{ID: "l1", Stage: domain.LeadStageWon, Value: dec("1000")},
					{ID: "l2", Stage: domain.LeadStageLost, Value: dec("500")},
					{ID: "l3", Stage: domain.LeadStageProposal, Value: dec("700")},
				},
			},
			validate: func(t *testing.T, report *domain.FunnelReport) {
				assert.Equal(t, "33.33", report.Leads.Conversion.StringFixed(2))
				won, _ := report.Leads.Bucket(string(domain.LeadStageWon))
				assert.True(t, dec("1000").Equal(won.Value))
				assert.Equal(t, string(domain.LeadStageLost), report.Leads.Buckets[5].Stage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewProjector().Project(tt.input)
			tt.validate(t, report)
		})
	}
}

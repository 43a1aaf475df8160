package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

func newPlan(stage domain.PipelineStage, status domain.PlanStatus) domain.TreatmentPlan {
	return domain.TreatmentPlan{
		ID:       "plan-1",
		ClientID: "client-1",
		UnitID:   "unit-1",
		Items: []domain.TreatmentPlanItem{
			{ServiceName: "Botox", Quantity: 1, UnitPrice: decimal.NewFromInt(900), TotalPrice: decimal.NewFromInt(900)},
		},
		Status:        status,
		PipelineStage: stage,
	}
}

func TestTransitionPlan(t *testing.T) {
	rules := DefaultPlanRules()

	tests := []struct {
		name       string
		plan       domain.TreatmentPlan
		target     domain.PipelineStage
		strict     bool
		wantStage  domain.PipelineStage
		wantStatus domain.PlanStatus
		changed    bool
		wantErr    error
	}{
		{
			name:       "Fechado define status closed",
			plan:       newPlan(domain.PipelineStageNegotiating, domain.PlanStatusNegotiating),
			target:     domain.PipelineStageClosed,
			wantStage:  domain.PipelineStageClosed,
			wantStatus: domain.PlanStatusClosed,
			changed:    true,
		},
		{
			name:       "Fechado preserva partially_paid",
			plan:       newPlan(domain.PipelineStageNegotiating, domain.PlanStatusPartiallyPaid),
			target:     domain.PipelineStageClosed,
			wantStage:  domain.PipelineStageClosed,
			wantStatus: domain.PlanStatusPartiallyPaid,
			changed:    true,
		},
		{
			name:       "Fechado preserva completed",
			plan:       newPlan(domain.PipelineStageNew, domain.PlanStatusCompleted),
			target:     domain.PipelineStageClosed,
			wantStage:  domain.PipelineStageClosed,
			wantStatus: domain.PlanStatusCompleted,
			changed:    true,
		},
		{
			name:       "Em Negociação define negotiating",
			plan:       newPlan(domain.PipelineStagePresented, domain.PlanStatusPrescribed),
			target:     domain.PipelineStageNegotiating,
			wantStage:  domain.PipelineStageNegotiating,
			wantStatus: domain.PlanStatusNegotiating,
			changed:    true,
		},
		{
			name:       "Novo define prescribed",
			plan:       newPlan(domain.PipelineStageClosed, domain.PlanStatusClosed),
			target:     domain.PipelineStageNew,
			wantStage:  domain.PipelineStageNew,
			wantStatus: domain.PlanStatusPrescribed,
			changed:    true,
		},
		{
			name:       "Apresentado mantém o status",
			plan:       newPlan(domain.PipelineStageNew, domain.PlanStatusLost),
			target:     domain.PipelineStagePresented,
			wantStage:  domain.PipelineStagePresented,
			wantStatus: domain.PlanStatusLost,
			changed:    true,
		},
		{
			name:       "Salto direto Novo para Fechado é permitido no modo padrão",
			plan:       newPlan(domain.PipelineStageNew, domain.PlanStatusPrescribed),
			target:     domain.PipelineStageClosed,
			wantStage:  domain.PipelineStageClosed,
			wantStatus: domain.PlanStatusClosed,
			changed:    true,
		},
		{
			name:       "Modo estrito permite retrocesso",
			plan:       newPlan(domain.PipelineStageClosed, domain.PlanStatusClosed),
			target:     domain.PipelineStageNew,
			strict:     true,
			wantStage:  domain.PipelineStageNew,
			wantStatus: domain.PlanStatusPrescribed,
			changed:    true,
		},
		{
			name:       "Etapa atual não altera nada",
			plan:       newPlan(domain.PipelineStageClosed, domain.PlanStatusPartiallyPaid),
			target:     domain.PipelineStageClosed,
			wantStage:  domain.PipelineStageClosed,
			wantStatus: domain.PlanStatusPartiallyPaid,
		},
		{
			name:       "Etapa desconhecida",
			plan:       newPlan(domain.PipelineStageNew, domain.PlanStatusPrescribed),
			target:     "Arquivado",
			wantStage:  domain.PipelineStageNew,
			wantStatus: domain.PlanStatusPrescribed,
			wantErr:    ErrInvalidStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, changed, err := TransitionPlan(tt.plan, tt.target, rules, tt.strict)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.wantStage, updated.PipelineStage)
			assert.Equal(t, tt.wantStatus, updated.Status)
		})
	}
}

func TestTransitionPlan_StrictRejectsSkip(t *testing.T) {
	plan := newPlan(domain.PipelineStageNew, domain.PlanStatusPrescribed)

	_, changed, err := TransitionPlan(plan, domain.PipelineStageClosed, DefaultPlanRules(), true)

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.False(t, changed)
	assert.Equal(t, string(domain.PipelineStageNew), transitionErr.From)
	assert.Equal(t, string(domain.PipelineStageClosed), transitionErr.To)
}

func TestTransitionPlan_DoesNotMutateInput(t *testing.T) {
	plan := newPlan(domain.PipelineStageNew, domain.PlanStatusPrescribed)
	original := plan.Clone()

	updated, _, err := TransitionPlan(plan, domain.PipelineStageNegotiating, DefaultPlanRules(), false)
	require.NoError(t, err)

	updated.Items[0].SessionsUsed = 1
	assert.Equal(t, original, plan)
}

func TestTransitionPlan_Idempotent(t *testing.T) {
	plan := newPlan(domain.PipelineStageNegotiating, domain.PlanStatusNegotiating)

	updated, changed, err := TransitionPlan(plan, domain.PipelineStageNegotiating, DefaultPlanRules(), false)
	require.NoError(t, err)

	assert.False(t, changed)
	assert.Equal(t, plan, updated)
}

func TestNewPlanRules(t *testing.T) {
	rules := NewPlanRules(config.Pipeline{
		StatusNew:         "prescribed",
		StatusNegotiating: "negotiating",
		StatusClosed:      "closed",
		PreserveOnClosed:  []string{"partially_paid", "completed"},
	})

	assert.Equal(t, DefaultPlanRules(), rules)
	assert.Equal(t, domain.PlanStatusLost, rules.StatusFor(domain.PipelineStagePresented, domain.PlanStatusLost))
}

func TestTransitionLead(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.LeadStage
		target     domain.LeadStage
		strict     bool
		wantStatus domain.LeadStatus
		wantErr    bool
	}{
		{name: "Ganho marca won", from: domain.LeadStageProposal, target: domain.LeadStageWon, wantStatus: domain.LeadStatusWon},
		{name: "Perdido marca lost", from: domain.LeadStageNew, target: domain.LeadStageLost, wantStatus: domain.LeadStatusLost},
		{name: "Reabrir lead volta para open", from: domain.LeadStageLost, target: domain.LeadStageContacted, wantStatus: domain.LeadStatusOpen},
		{name: "Modo estrito aceita Perdido de qualquer etapa", from: domain.LeadStageNew, target: domain.LeadStageLost, strict: true, wantStatus: domain.LeadStatusLost},
		{name: "Modo estrito recusa salto", from: domain.LeadStageNew, target: domain.LeadStageWon, strict: true, wantStatus: domain.LeadStatusOpen, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := domain.Lead{ID: "lead-1", Stage: tt.from, Status: domain.LeadStatusOpen}

			updated, changed, err := TransitionLead(lead, tt.target, tt.strict)
			if tt.wantErr {
				var transitionErr *TransitionError
				assert.ErrorAs(t, err, &transitionErr)
				assert.False(t, changed)
				return
			}

			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.target, updated.Stage)
			assert.Equal(t, tt.wantStatus, updated.Status)
		})
	}
}

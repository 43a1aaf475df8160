package pipeline

import (
	"slices"

	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

// PlanRules mapeia cada etapa ao status aplicado na entrada. Etapa sem status
// mapeado mantém o status atual; status em Preserve não são rebaixados ao entrar na etapa.
type PlanRules struct {
	StatusByStage map[domain.PipelineStage]domain.PlanStatus
	Preserve      map[domain.PipelineStage][]domain.PlanStatus
}

func DefaultPlanRules() PlanRules {
	return PlanRules{
		StatusByStage: map[domain.PipelineStage]domain.PlanStatus{
			domain.PipelineStageNew:         domain.PlanStatusPrescribed,
			domain.PipelineStageNegotiating: domain.PlanStatusNegotiating,
			domain.PipelineStageClosed:      domain.PlanStatusClosed,
		},
		Preserve: map[domain.PipelineStage][]domain.PlanStatus{
			domain.PipelineStageClosed: {domain.PlanStatusPartiallyPaid, domain.PlanStatusCompleted},
		},
	}
}

// NewPlanRules monta as regras a partir da configuração
func NewPlanRules(cfg config.Pipeline) PlanRules {
	rules := PlanRules{
		StatusByStage: map[domain.PipelineStage]domain.PlanStatus{},
		Preserve:      map[domain.PipelineStage][]domain.PlanStatus{},
	}

	statuses := map[domain.PipelineStage]string{
		domain.PipelineStageNew:         cfg.StatusNew,
		domain.PipelineStagePresented:   cfg.StatusPresented,
		domain.PipelineStageNegotiating: cfg.StatusNegotiating,
		domain.PipelineStageClosed:      cfg.StatusClosed,
	}
	for stage, status := range statuses {
		if status != "" {
			rules.StatusByStage[stage] = domain.PlanStatus(status)
		}
	}

	for _, status := range cfg.PreserveOnClosed {
		rules.Preserve[domain.PipelineStageClosed] = append(rules.Preserve[domain.PipelineStageClosed], domain.PlanStatus(status))
	}

	return rules
}

// StatusFor retorna o status resultante ao entrar na etapa
func (r PlanRules) StatusFor(target domain.PipelineStage, current domain.PlanStatus) domain.PlanStatus {
	status, ok := r.StatusByStage[target]
	if !ok {
		return current
	}

	if slices.Contains(r.Preserve[target], current) {
		return current
	}

	return status
}

// LeadStatusFor mapeia a etapa do lead ao status comercial
func LeadStatusFor(stage domain.LeadStage) domain.LeadStatus {
	switch stage {
	case domain.LeadStageWon:
		return domain.LeadStatusWon
	case domain.LeadStageLost:
		return domain.LeadStatusLost
	}
	return domain.LeadStatusOpen
}

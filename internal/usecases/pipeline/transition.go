package pipeline

import (
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

// skipsStage informa se o avanço pula alguma etapa intermediária; retrocessos são livres
func skipsStage(from, to int) bool {
	if from < 0 {
		return false
	}
	return to > from+1
}

// TransitionPlan aplica a etapa ao plano sem efeitos colaterais. Retorna changed=false
// e o plano intacto quando a etapa já é a atual.
func TransitionPlan(plan domain.TreatmentPlan, target domain.PipelineStage, rules PlanRules, strict bool) (domain.TreatmentPlan, bool, error) {
	if !target.Valid() {
		return plan, false, ErrInvalidStage
	}

	if plan.PipelineStage == target {
		return plan, false, nil
	}

	if strict && skipsStage(plan.PipelineStage.Index(), target.Index()) {
		return plan, false, &TransitionError{
			EntityID: plan.ID,
			From:     string(plan.PipelineStage),
			To:       string(target),
			Reason:   "forward transitions must not skip stages",
		}
	}

	updated := plan.Clone()
	updated.PipelineStage = target
	updated.Status = rules.StatusFor(target, plan.Status)

	return updated, true, nil
}

// TransitionLead aplica a etapa ao lead; Ganho e Perdido encerram a negociação
func TransitionLead(lead domain.Lead, target domain.LeadStage, strict bool) (domain.Lead, bool, error) {
	if !target.Valid() {
		return lead, false, ErrInvalidStage
	}

	if lead.Stage == target {
		return lead, false, nil
	}

	// Perdido pode ser alcançado de qualquer etapa
	if strict && target != domain.LeadStageLost && skipsStage(lead.Stage.Index(), target.Index()) {
		return lead, false, &TransitionError{
			EntityID: lead.ID,
			From:     string(lead.Stage),
			To:       string(target),
			Reason:   "forward transitions must not skip stages",
		}
	}

	updated := lead
	updated.Stage = target
	updated.Status = LeadStatusFor(target)

	return updated, true, nil
}

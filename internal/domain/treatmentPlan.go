package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PipelineStage string

const (
	PipelineStageNew         PipelineStage = "Novo"
	PipelineStagePresented   PipelineStage = "Apresentado"
	PipelineStageNegotiating PipelineStage = "Em Negociação"
	PipelineStageClosed      PipelineStage = "Fechado"
)

// PipelineStages retorna as etapas do funil de planos de tratamento na ordem canônica
func PipelineStages() []PipelineStage {
	return []PipelineStage{
		PipelineStageNew,
		PipelineStagePresented,
		PipelineStageNegotiating,
		PipelineStageClosed,
	}
}

// Index retorna a posição da etapa no funil ou -1 quando desconhecida
func (s PipelineStage) Index() int {
	switch s {
	case PipelineStageNew:
		return 0
	case PipelineStagePresented:
		return 1
	case PipelineStageNegotiating:
		return 2
	case PipelineStageClosed:
		return 3
	}
	return -1
}

func (s PipelineStage) Valid() bool {
	return s.Index() >= 0
}

type PlanStatus string

const (
	PlanStatusPrescribed    PlanStatus = "prescribed"
	PlanStatusNegotiating   PlanStatus = "negotiating"
	PlanStatusClosed        PlanStatus = "closed"
	PlanStatusPartiallyPaid PlanStatus = "partially_paid"
	PlanStatusCompleted     PlanStatus = "completed"
	PlanStatusLost          PlanStatus = "lost"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusPrescribed,
		PlanStatusNegotiating,
		PlanStatusClosed,
		PlanStatusPartiallyPaid,
		PlanStatusCompleted,
		PlanStatusLost:
		return true
	}
	return false
}

type TreatmentPlanItem struct {
	ServiceName  string          `json:"service_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	SessionsUsed int             `json:"sessions_used"`
}

func (i TreatmentPlanItem) Validate() error {
	if i.Quantity < 0 || i.SessionsUsed < 0 || i.SessionsUsed > i.Quantity {
		return NewInvalidRecordError("treatment_plan_item", i.ServiceName, "sessions_used must be between 0 and quantity")
	}

	if !i.TotalPrice.Equal(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))) {
		return NewInvalidRecordError("treatment_plan_item", i.ServiceName, "total_price must equal quantity * unit_price")
	}

	return nil
}

type TreatmentPlan struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	UnitID        string              `json:"unit_id"`
	Items         []TreatmentPlanItem `json:"items"`
	Discount      decimal.Decimal     `json:"discount"`
	Status        PlanStatus          `json:"status"`
	PipelineStage PipelineStage       `json:"pipeline_stage"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Total soma os itens do plano e subtrai o desconto
func (p TreatmentPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.TotalPrice)
	}
	return total.Sub(p.Discount)
}

func (p TreatmentPlan) Validate() error {
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return NewInvalidRecordError("treatment_plan", p.ID, err.Error())
		}
	}

	if p.Discount.IsNegative() {
		return NewInvalidRecordError("treatment_plan", p.ID, "discount must not be negative")
	}

	return nil
}

// Clone copia o plano, incluindo os itens, para que alterações não vazem para o snapshot
func (p TreatmentPlan) Clone() TreatmentPlan {
	clone := p
	if p.Items != nil {
		clone.Items = make([]TreatmentPlanItem, len(p.Items))
		copy(clone.Items, p.Items)
	}
	return clone
}

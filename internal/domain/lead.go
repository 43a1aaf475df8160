package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeadStage string

const (
	LeadStageNew       LeadStage = "Novo"
	LeadStageContacted LeadStage = "Contatado"
	LeadStageDemo      LeadStage = "Demonstração"
	LeadStageProposal  LeadStage = "Proposta"
	LeadStageWon       LeadStage = "Ganho"
	LeadStageLost      LeadStage = "Perdido"
)

// LeadStages retorna as etapas do funil comercial na ordem canônica
func LeadStages() []LeadStage {
	return []LeadStage{
		LeadStageNew,
		LeadStageContacted,
		LeadStageDemo,
		LeadStageProposal,
		LeadStageWon,
		LeadStageLost,
	}
}

func (s LeadStage) Index() int {
	switch s {
	case LeadStageNew:
		return 0
	case LeadStageContacted:
		return 1
	case LeadStageDemo:
		return 2
	case LeadStageProposal:
		return 3
	case LeadStageWon:
		return 4
	case LeadStageLost:
		return 5
	}
	return -1
}

func (s LeadStage) Valid() bool {
	return s.Index() >= 0
}

type LeadStatus string

const (
	LeadStatusOpen LeadStatus = "open"
	LeadStatusWon  LeadStatus = "won"
	LeadStatusLost LeadStatus = "lost"
)

type Lead struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Stage     LeadStage       `json:"stage"`
	Status    LeadStatus      `json:"status"`
	UpdatedAt time.Time       `json:"updated_at"`
}

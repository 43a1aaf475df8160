package domain

import "time"

type EntityType string

const (
	EntityTypeTreatmentPlan EntityType = "treatment_plan"
	EntityTypeLead          EntityType = "lead"
)

// StageChange registra uma transição de etapa aplicada a uma entidade do funil
type StageChange struct {
	ID         string     `json:"id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	StatusFrom string     `json:"status_from"`
	StatusTo   string     `json:"status_to"`
	ChangedBy  string     `json:"changed_by"`
	ChangedAt  time.Time  `json:"changed_at"`
}

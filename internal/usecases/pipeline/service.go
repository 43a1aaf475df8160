// Package pipeline controla as transições de etapa dos funis de planos de tratamento e de leads
package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/clinic-insights-api/infrastructure/repository"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
	"github.com/vfg2006/clinic-insights-api/pkg/metrics"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

const (
	resultApplied  = "applied"
	resultNoop     = "noop"
	resultRejected = "rejected"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Mover interface {
	MovePlan(ctx context.Context, id string, target domain.PipelineStage, actor *domain.Claims) (*domain.TreatmentPlan, error)
	MoveLead(ctx context.Context, id string, target domain.LeadStage, changedBy string) (*domain.Lead, error)
}

var _ Mover = (*Service)(nil)

type Service struct {
	repository repository.PipelineRepository
	rules      PlanRules
	strict     bool
	now        func() time.Time
	generateID func() (string, error)
}

func NewService(cfg *config.Config, pipelineRepository repository.PipelineRepository) *Service {
	return &Service{
		repository: pipelineRepository,
		rules:      NewPlanRules(cfg.Pipeline),
		strict:     cfg.Pipeline.StrictTransitions,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

// MovePlan carrega o plano, aplica a etapa e grava a entidade completa em uma única chamada.
// Transição para a etapa atual devolve o plano sem gravar nada. Usuários que não são admin
// só movem planos das suas unidades; actor nil é uma chamada interna.
func (s *Service) MovePlan(ctx context.Context, id string, target domain.PipelineStage, actor *domain.Claims) (*domain.TreatmentPlan, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": id,
		"stage":     string(target),
	})

	if id == "" {
		return nil, ErrEntityIDRequired
	}

	if !target.Valid() {
		metrics.StageTransition(string(domain.EntityTypeTreatmentPlan), string(target), resultRejected)
		return nil, ErrInvalidStage
	}

	plan, err := s.repository.GetTreatmentPlan(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar plano de tratamento")
	}

	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if !canMovePlan(actor, plan.UnitID) {
		metrics.StageTransition(string(domain.EntityTypeTreatmentPlan), string(target), resultRejected)
		logger.WithField("unit_id", plan.UnitID).Warn("Usuário sem acesso à unidade do plano")
		return nil, ErrUnitNotAllowed
	}

	changedBy := ""
	if actor != nil {
		changedBy = actor.UserID
	}

	updated, changed, err := TransitionPlan(*plan, target, s.rules, s.strict)
	if err != nil {
		metrics.StageTransition(string(domain.EntityTypeTreatmentPlan), string(target), resultRejected)
		logger.WithError(err).Warn("Transição de etapa recusada")
		return nil, err
	}

	if !changed {
		metrics.StageTransition(string(domain.EntityTypeTreatmentPlan), string(target), resultNoop)
		return plan, nil
	}

	updated.UpdatedAt = s.now()

	change, err := s.stageChange(domain.EntityTypeTreatmentPlan, id, changedBy, updated.UpdatedAt)
	if err != nil {
		return nil, err
	}
	change.From, change.To = string(plan.PipelineStage), string(updated.PipelineStage)
	change.StatusFrom, change.StatusTo = string(plan.Status), string(updated.Status)

	if err := s.repository.UpdateTreatmentPlan(ctx, &updated, change); err != nil {
		logger.WithError(err).Error("Erro ao gravar transição do plano")
		return nil, errors.Wrap(ErrUpdateEntity, err.Error())
	}

	metrics.StageTransition(string(domain.EntityTypeTreatmentPlan), string(target), resultApplied)
	logger.Infof("Plano movido de %s para %s", change.From, change.To)

	return &updated, nil
}

// MoveLead segue o mesmo contrato de MovePlan para o funil comercial
func (s *Service) MoveLead(ctx context.Context, id string, target domain.LeadStage, changedBy string) (*domain.Lead, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": id,
		"stage":     string(target),
	})

	if id == "" {
		return nil, ErrEntityIDRequired
	}

	if !target.Valid() {
		metrics.StageTransition(string(domain.EntityTypeLead), string(target), resultRejected)
		return nil, ErrInvalidStage
	}

	lead, err := s.repository.GetLead(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lead")
	}

	if lead == nil {
		return nil, ErrLeadNotFound
	}

	updated, changed, err := TransitionLead(*lead, target, s.strict)
	if err != nil {
		metrics.StageTransition(string(domain.EntityTypeLead), string(target), resultRejected)
		logger.WithError(err).Warn("Transição de etapa recusada")
		return nil, err
	}

	if !changed {
		metrics.StageTransition(string(domain.EntityTypeLead), string(target), resultNoop)
		return lead, nil
	}

	updated.UpdatedAt = s.now()

	change, err := s.stageChange(domain.EntityTypeLead, id, changedBy, updated.UpdatedAt)
	if err != nil {
		return nil, err
	}
	change.From, change.To = string(lead.Stage), string(updated.Stage)
	change.StatusFrom, change.StatusTo = string(lead.Status), string(updated.Status)

	if err := s.repository.UpdateLead(ctx, &updated, change); err != nil {
		logger.WithError(err).Error("Erro ao gravar transição do lead")
		return nil, errors.Wrap(ErrUpdateEntity, err.Error())
	}

	metrics.StageTransition(string(domain.EntityTypeLead), string(target), resultApplied)
	logger.Infof("Lead movido de %s para %s", change.From, change.To)

	return &updated, nil
}

func canMovePlan(actor *domain.Claims, unitID string) bool {
	return actor == nil || actor.IsAdmin() || actor.CanAccessUnit(unitID)
}

func (s *Service) stageChange(entityType domain.EntityType, entityID, changedBy string, changedAt time.Time) (*domain.StageChange, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	return &domain.StageChange{
		ID:         id,
		EntityType: entityType,
		EntityID:   entityID,
		ChangedBy:  changedBy,
		ChangedAt:  changedAt,
	}, nil
}

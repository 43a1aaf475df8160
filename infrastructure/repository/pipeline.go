package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/clinic-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

var (
	treatmentPlanColumns = []string{"id", "client_id", "unit_id", "items", "discount", "status", "pipeline_stage", "updated_at"}
	leadColumns          = []string{"id", "name", "value", "stage", "status", "updated_at"}
)

// PipelineRepository lê e grava as entidades do funil. Cada Update grava a entidade
// completa e o registro de histórico na mesma transação.
type PipelineRepository interface {
	GetTreatmentPlan(ctx context.Context, id string) (*domain.TreatmentPlan, error)
	UpdateTreatmentPlan(ctx context.Context, plan *domain.TreatmentPlan, change *domain.StageChange) error
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	UpdateLead(ctx context.Context, lead *domain.Lead, change *domain.StageChange) error
}

type pipelineRepository struct {
	conn postgres.Conn
}

func NewPipelineRepository(conn postgres.Conn) PipelineRepository {
	return &pipelineRepository{
		conn: conn,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTreatmentPlan(row scanner) (*domain.TreatmentPlan, error) {
	var plan domain.TreatmentPlan
	var unitID sql.NullString
	var items []byte

	if err := row.Scan(
		&plan.ID,
		&plan.ClientID,
		&unitID,
		&items,
		&plan.Discount,
		&plan.Status,
		&plan.PipelineStage,
		&plan.UpdatedAt,
	); err != nil {
		return nil, err
	}
	plan.UnitID = unitID.String

	if len(items) > 0 {
		if err := json.Unmarshal(items, &plan.Items); err != nil {
			return nil, errors.Wrapf(err, "itens inválidos no plano %s", plan.ID)
		}
	}

	return &plan, nil
}

func scanLead(row scanner) (*domain.Lead, error) {
	var lead domain.Lead

	if err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Value,
		&lead.Stage,
		&lead.Status,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *pipelineRepository) GetTreatmentPlan(ctx context.Context, id string) (*domain.TreatmentPlan, error) {
	query, args, err := squirrel.
		Select(treatmentPlanColumns...).
		From(treatmentPlansTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	plan, err := scanTreatmentPlan(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar plano %s", id)
	}

	return plan, nil
}

func (r *pipelineRepository) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	query, args, err := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	lead, err := scanLead(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar lead %s", id)
	}

	return lead, nil
}

func (r *pipelineRepository) UpdateTreatmentPlan(ctx context.Context, plan *domain.TreatmentPlan, change *domain.StageChange) error {
	items, err := json.Marshal(plan.Items)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar itens do plano")
	}

	query, args, err := squirrel.
		Update(treatmentPlansTable).
		Set("client_id", plan.ClientID).
		Set("unit_id", nullIfEmpty(plan.UnitID)).
		Set("items", string(items)).
		Set("discount", plan.Discount).
		Set("status", plan.Status).
		Set("pipeline_stage", plan.PipelineStage).
		Set("updated_at", plan.UpdatedAt).
		Where(squirrel.Eq{"id": plan.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if err := execOne(ctx, tx, query, args...); err != nil {
			return errors.Wrapf(err, "erro ao atualizar plano %s", plan.ID)
		}
		return insertStageChange(ctx, tx, change)
	})
}

func (r *pipelineRepository) UpdateLead(ctx context.Context, lead *domain.Lead, change *domain.StageChange) error {
	query, args, err := squirrel.
		Update(leadsTable).
		Set("name", lead.Name).
		Set("value", lead.Value).
		Set("stage", lead.Stage).
		Set("status", lead.Status).
		Set("updated_at", lead.UpdatedAt).
		Where(squirrel.Eq{"id": lead.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if err := execOne(ctx, tx, query, args...); err != nil {
			return errors.Wrapf(err, "erro ao atualizar lead %s", lead.ID)
		}
		return insertStageChange(ctx, tx, change)
	})
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func execOne(ctx context.Context, tx postgres.Queryer, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func insertStageChange(ctx context.Context, tx postgres.Queryer, change *domain.StageChange) error {
	if change == nil {
		return nil
	}

	query, args, err := squirrel.
		Insert(stageHistoryTable).
		Columns("id", "entity_type", "entity_id", "from_stage", "to_stage", "status_from", "status_to", "changed_by", "changed_at").
		Values(change.ID, change.EntityType, change.EntityID, change.From, change.To, change.StatusFrom, change.StatusTo, change.ChangedBy, change.ChangedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao registrar histórico de etapa")
	}

	return nil
}

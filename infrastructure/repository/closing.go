package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/clinic-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

type ClosingRepository interface {
	SaveOrUpdateClosing(ctx context.Context, closing *domain.MonthlyClosing) error
	GetClosingsByMonth(ctx context.Context, month string) ([]domain.MonthlyClosing, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}

type closingRepository struct {
	conn postgres.Queryer
}

func NewClosingRepository(conn postgres.Queryer) ClosingRepository {
	return &closingRepository{
		conn: conn,
	}
}

// SaveOrUpdateClosing grava o fechamento da unidade no mês, substituindo o anterior se existir
func (r *closingRepository) SaveOrUpdateClosing(ctx context.Context, closing *domain.MonthlyClosing) error {
	payroll, err := json.Marshal(closing.Payroll)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar folha")
	}

	statement, err := json.Marshal(closing.Statement)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar DRE")
	}

	now := time.Now()
	query, args, err := squirrel.
		Insert(monthlyClosingTable).
		Columns("unit_id", "month", "payroll", "statement", "created_at", "updated_at").
		Values(closing.UnitID, closing.Month, string(payroll), string(statement), now, now).
		Suffix(`ON CONFLICT (unit_id, month) DO UPDATE SET
			payroll = EXCLUDED.payroll,
			statement = EXCLUDED.statement,
			updated_at = EXCLUDED.updated_at
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&closing.ID); err != nil {
		return errors.Wrapf(err, "erro ao salvar fechamento da unidade %s", closing.UnitID)
	}
	closing.UpdatedAt = now

	return nil
}

func (r *closingRepository) GetClosingsByMonth(ctx context.Context, month string) ([]domain.MonthlyClosing, error) {
	query, args, err := squirrel.
		Select("id", "unit_id", "month", "payroll", "statement", "created_at", "updated_at").
		From(monthlyClosingTable).
		Where(squirrel.Eq{"month": month}).
		OrderBy("unit_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar fechamentos")
	}
	defer rows.Close()

	closings := []domain.MonthlyClosing{}
	for rows.Next() {
		var closing domain.MonthlyClosing
		var payroll, statement []byte
		if err := rows.Scan(
			&closing.ID,
			&closing.UnitID,
			&closing.Month,
			&payroll,
			&statement,
			&closing.CreatedAt,
			&closing.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fechamento")
		}

		if len(payroll) > 0 {
			if err := json.Unmarshal(payroll, &closing.Payroll); err != nil {
				return nil, errors.Wrap(err, "erro ao desserializar folha")
			}
		}

		if len(statement) > 0 {
			if err := json.Unmarshal(statement, &closing.Statement); err != nil {
				return nil, errors.Wrap(err, "erro ao desserializar DRE")
			}
		}

		closings = append(closings, closing)
	}

	return closings, rows.Err()
}

func (r *closingRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(unitsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar unidades")
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		var unit domain.Unit
		if err := rows.Scan(&unit.ID, &unit.Name); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	return units, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/clinic-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

// SnapshotRepository carrega a fotografia somente leitura usada pelas projeções
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context, filters domain.ReportFilters) (*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Queryer
}

func NewSnapshotRepository(conn postgres.Queryer) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context, filters domain.ReportFilters) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{
		UnitID: filters.Unit(),
		Period: filters.Period,
	}

	var err error
	if snapshot.Appointments, err = r.appointments(ctx, filters); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar atendimentos")
	}

	if snapshot.Transactions, err = r.transactions(ctx, filters); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar transações")
	}

	if snapshot.Staff, err = r.staff(ctx, filters); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar profissionais")
	}

	if snapshot.TreatmentPlans, err = r.treatmentPlans(ctx, filters); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar planos de tratamento")
	}

	if snapshot.Leads, err = r.leads(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar leads")
	}

	if snapshot.FiscalAccounts, err = r.fiscalAccounts(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar contas fiscais")
	}

	if snapshot.PayrollAdjustments, err = r.payrollAdjustments(ctx, filters); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar ajustes de folha")
	}

	return snapshot, nil
}

func scoped(filters domain.ReportFilters) bool {
	return filters.Unit() != domain.AllUnits
}

func withPeriod(query squirrel.SelectBuilder, column string, period *domain.Period) squirrel.SelectBuilder {
	if period == nil {
		return query
	}

	if !period.Start.IsZero() {
		query = query.Where(squirrel.GtOrEq{column: period.Start})
	}

	if !period.End.IsZero() {
		query = query.Where(squirrel.Lt{column: period.End})
	}

	return query
}

func (r *snapshotRepository) query(ctx context.Context, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.conn.QueryContext(ctx, query, args...)
}

func (r *snapshotRepository) appointments(ctx context.Context, filters domain.ReportFilters) ([]domain.Appointment, error) {
	builder := squirrel.
		Select("id", "client_id", "staff_id", "room_id", "unit_id", "service_name", "price", "start_time", "end_time", "status").
		From(appointmentsTable).
		OrderBy("start_time ASC")

	if scoped(filters) {
		builder = builder.Where(squirrel.Eq{"unit_id": filters.UnitID})
	}
	builder = withPeriod(builder, "start_time", filters.Period)

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		var a domain.Appointment
		var roomID, unitID sql.NullString
		if err := rows.Scan(
			&a.ID,
			&a.ClientID,
			&a.StaffID,
			&roomID,
			&unitID,
			&a.ServiceName,
			&a.Price,
			&a.StartTime,
			&a.EndTime,
			&a.Status,
		); err != nil {
			return nil, err
		}
		a.RoomID = roomID.String
		a.UnitID = unitID.String
		appointments = append(appointments, a)
	}

	return appointments, rows.Err()
}

func (r *snapshotRepository) transactions(ctx context.Context, filters domain.ReportFilters) ([]domain.Transaction, error) {
	builder := squirrel.
		Select("id", "type", "revenue_type", "amount", "date", "status", "description", "category", "fiscal_account_id", "unit_id").
		From(transactionsTable).
		OrderBy("date ASC")

	if scoped(filters) {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"unit_id": filters.UnitID},
			squirrel.Eq{"unit_id": nil},
		})
	}
	builder = withPeriod(builder, "date", filters.Period)

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		var revenueType, status, description, category sql.NullString
		var fiscalAccountID, unitID sql.NullString
		if err := rows.Scan(
			&t.ID,
			&t.Type,
			&revenueType,
			&t.Amount,
			&t.Date,
			&status,
			&description,
			&category,
			&fiscalAccountID,
			&unitID,
		); err != nil {
			return nil, err
		}
		// revenue_type nulo equivale a RevenueTypeNone
		t.RevenueType = domain.RevenueType(revenueType.String)
		t.Status = status.String
		t.Description = description.String
		t.Category = category.String
		t.FiscalAccountID = nullableString(fiscalAccountID)
		t.UnitID = nullableString(unitID)
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func (r *snapshotRepository) staff(ctx context.Context, filters domain.ReportFilters) ([]domain.StaffMember, error) {
	builder := squirrel.
		Select("id", "name", "role", "commission_rate", "unit_id", "allowed_units").
		From(staffTable).
		OrderBy("name ASC")

	if scoped(filters) {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"unit_id": filters.UnitID},
			squirrel.Expr("? = ANY(allowed_units)", filters.UnitID),
		})
	}

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []domain.StaffMember{}
	for rows.Next() {
		var s domain.StaffMember
		var rate decimal.NullDecimal
		var unitID sql.NullString
		var allowedUnits pq.StringArray
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Role,
			&rate,
			&unitID,
			&allowedUnits,
		); err != nil {
			return nil, err
		}
		if rate.Valid {
			s.CommissionRate = &rate.Decimal
		}
		s.UnitID = nullableString(unitID)
		s.AllowedUnits = allowedUnits
		staff = append(staff, s)
	}

	return staff, rows.Err()
}

func (r *snapshotRepository) treatmentPlans(ctx context.Context, filters domain.ReportFilters) ([]domain.TreatmentPlan, error) {
	builder := squirrel.
		Select(treatmentPlanColumns...).
		From(treatmentPlansTable).
		OrderBy("updated_at DESC")

	if scoped(filters) {
		builder = builder.Where(squirrel.Eq{"unit_id": filters.UnitID})
	}

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []domain.TreatmentPlan{}
	for rows.Next() {
		plan, err := scanTreatmentPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}

	return plans, rows.Err()
}

func (r *snapshotRepository) leads(ctx context.Context) ([]domain.Lead, error) {
	builder := squirrel.
		Select(leadColumns...).
		From(leadsTable).
		OrderBy("updated_at DESC")

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []domain.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

func (r *snapshotRepository) fiscalAccounts(ctx context.Context) ([]domain.FiscalAccount, error) {
	builder := squirrel.
		Select("id", "name", "type").
		From(fiscalAccountsTable).
		OrderBy("name ASC")

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.FiscalAccount{}
	for rows.Next() {
		var account domain.FiscalAccount
		if err := rows.Scan(&account.ID, &account.Name, &account.Type); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// payrollAdjustments busca os ajustes do mês de início do período (ou do mês corrente)
func (r *snapshotRepository) payrollAdjustments(ctx context.Context, filters domain.ReportFilters) ([]domain.PayrollAdjustment, error) {
	reference := time.Now()
	if filters.Period != nil && !filters.Period.Start.IsZero() {
		reference = filters.Period.Start
	}

	builder := squirrel.
		Select("staff_id", "month", "advances", "salary", "bonus").
		From(payrollAdjustmentsTable).
		Where(squirrel.Eq{"month": utils.FormatMonth(reference)})

	rows, err := r.query(ctx, builder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments := []domain.PayrollAdjustment{}
	for rows.Next() {
		var a domain.PayrollAdjustment
		if err := rows.Scan(&a.StaffID, &a.Month, &a.Advances, &a.Salary, &a.Bonus); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, rows.Err()
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

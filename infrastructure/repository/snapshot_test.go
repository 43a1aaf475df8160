package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

var (
	appointmentRowColumns = []string{"id", "client_id", "staff_id", "room_id", "unit_id", "service_name", "price", "start_time", "end_time", "status"}
	transactionRowColumns = []string{"id", "type", "revenue_type", "amount", "date", "status", "description", "category", "fiscal_account_id", "unit_id"}
	staffRowColumns       = []string{"id", "name", "role", "commission_rate", "unit_id", "allowed_units"}
)

func expectEmptyTail(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM fiscal_accounts")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM payroll_adjustments WHERE month = $1")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"staff_id", "month", "advances", "salary", "bonus"}))
}

func TestLoadSnapshot(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  domain.ReportFilters
		setup    func(mock sqlmock.Sqlmock)
		wantErr  string
		validate func(t *testing.T, snapshot *domain.Snapshot)
	}{
		{
			name: "Colunas nulas viram valores vazios",
			filters: domain.ReportFilters{
				UnitID: "unit-1",
				Period: &domain.Period{Start: start, End: end},
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE unit_id = $1 AND start_time >= $2 AND start_time < $3 ORDER BY start_time ASC")).
					WithArgs("unit-1", start, end).
					WillReturnRows(sqlmock.NewRows(appointmentRowColumns).
						AddRow("apt-1", "client-1", "staff-1", nil, nil, "Limpeza", "150.00", morning, morning.Add(time.Hour), "completed"))

				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE (unit_id = $1 OR unit_id IS NULL) AND date >= $2 AND date < $3")).
					WithArgs("unit-1", start, end).
					WillReturnRows(sqlmock.NewRows(transactionRowColumns).
						AddRow("tx-1", "expense", nil, "80.00", morning, nil, nil, nil, nil, nil).
						AddRow("tx-2", "income", "service", "150.00", morning, "paid", "Limpeza", "Serviços", "fa-1", "unit-1"))

				mock.ExpectQuery(regexp.QuoteMeta("FROM staff_members WHERE (unit_id = $1 OR $2 = ANY(allowed_units)) ORDER BY name ASC")).
					WithArgs("unit-1", "unit-1").
					WillReturnRows(sqlmock.NewRows(staffRowColumns).
						AddRow("staff-1", "Ana", "dentist", nil, nil, []byte("{unit-1,unit-2}")).
						AddRow("staff-2", "Bruno", "hygienist", "0.3", "unit-1", nil))

				mock.ExpectQuery(regexp.QuoteMeta("FROM treatment_plans WHERE unit_id = $1 ORDER BY updated_at DESC")).
					WithArgs("unit-1").
					WillReturnRows(sqlmock.NewRows(treatmentPlanColumns).
						AddRow("plan-1", "client-1", nil, nil, "0", "prescribed", "Novo", morning))

				mock.ExpectQuery(regexp.QuoteMeta("FROM leads ORDER BY updated_at DESC")).
					WillReturnRows(sqlmock.NewRows(leadColumns).
						AddRow("lead-1", "Carla", "900.00", "Novo", "open", morning))

				mock.ExpectQuery(regexp.QuoteMeta("FROM fiscal_accounts")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).AddRow("fa-1", "Clínica", "clinic_service"))

				mock.ExpectQuery(regexp.QuoteMeta("FROM payroll_adjustments WHERE month = $1")).
					WithArgs("01-2024").
					WillReturnRows(sqlmock.NewRows([]string{"staff_id", "month", "advances", "salary", "bonus"}).
						AddRow("staff-1", "01-2024", "100", "2000", "0"))
			},
			validate: func(t *testing.T, snapshot *domain.Snapshot) {
				assert.Equal(t, "unit-1", snapshot.UnitID)

				require.Len(t, snapshot.Appointments, 1)
				assert.Empty(t, snapshot.Appointments[0].RoomID)
				assert.Empty(t, snapshot.Appointments[0].UnitID)
				assert.Equal(t, "150", snapshot.Appointments[0].Price.String())

				require.Len(t, snapshot.Transactions, 2)
				expense := snapshot.Transactions[0]
				assert.Equal(t, domain.RevenueType(""), expense.RevenueType)
				assert.Empty(t, expense.Status)
				assert.Empty(t, expense.Description)
				assert.Empty(t, expense.Category)
				assert.Nil(t, expense.FiscalAccountID)
				assert.Nil(t, expense.UnitID)
				income := snapshot.Transactions[1]
				require.NotNil(t, income.FiscalAccountID)
				assert.Equal(t, "fa-1", *income.FiscalAccountID)
				assert.Equal(t, "Serviços", income.Category)

				require.Len(t, snapshot.Staff, 2)
				assert.Nil(t, snapshot.Staff[0].CommissionRate)
				assert.Nil(t, snapshot.Staff[0].UnitID)
				assert.Equal(t, []string{"unit-1", "unit-2"}, snapshot.Staff[0].AllowedUnits)
				require.NotNil(t, snapshot.Staff[1].CommissionRate)
				assert.Equal(t, "0.3", snapshot.Staff[1].CommissionRate.String())

				require.Len(t, snapshot.TreatmentPlans, 1)
				assert.Empty(t, snapshot.TreatmentPlans[0].UnitID)
				assert.Empty(t, snapshot.TreatmentPlans[0].Items)

				assert.Len(t, snapshot.Leads, 1)
				assert.Len(t, snapshot.FiscalAccounts, 1)
				require.Len(t, snapshot.PayrollAdjustments, 1)
				assert.Equal(t, "2000", snapshot.PayrollAdjustments[0].Salary.String())
			},
		},
		{
			name:    "Todas as unidades sem período",
			filters: domain.ReportFilters{UnitID: domain.AllUnits},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments ORDER BY start_time ASC")).
					WillReturnRows(sqlmock.NewRows(appointmentRowColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions ORDER BY date ASC")).
					WillReturnRows(sqlmock.NewRows(transactionRowColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM staff_members ORDER BY name ASC")).
					WillReturnRows(sqlmock.NewRows(staffRowColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM treatment_plans ORDER BY updated_at DESC")).
					WillReturnRows(sqlmock.NewRows(treatmentPlanColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM leads ORDER BY updated_at DESC")).
					WillReturnRows(sqlmock.NewRows(leadColumns))
				expectEmptyTail(mock)
			},
			validate: func(t *testing.T, snapshot *domain.Snapshot) {
				assert.Equal(t, domain.AllUnits, snapshot.UnitID)
				assert.NotNil(t, snapshot.Appointments)
				assert.Empty(t, snapshot.Appointments)
				assert.NotNil(t, snapshot.PayrollAdjustments)
			},
		},
		{
			name:    "Falha ao carregar transações",
			filters: domain.ReportFilters{UnitID: "unit-1"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).
					WillReturnRows(sqlmock.NewRows(appointmentRowColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: "erro ao carregar transações",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			tt.setup(mock)

			snapshot, err := NewSnapshotRepository(conn).LoadSnapshot(context.Background(), tt.filters)

			require.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, snapshot)
		})
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/closing"
	closingMocks "github.com/vfg2006/clinic-insights-api/internal/usecases/closing/mocks"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
	pipelineMocks "github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline/mocks"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/clinic-insights-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	admin     = &domain.Claims{UserID: "admin-1", UserRoleID: middleware.RoleAdmin}
	manager   = &domain.Claims{UserID: "manager-1", UserRoleID: middleware.RoleManager, UserUnits: []string{"unit-1"}}
	reception = &domain.Claims{UserID: "reception-1", UserRoleID: middleware.RoleReception, UserUnits: []string{"unit-1"}}
)

func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestReports(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		setup      func(reporter *reportingMocks.MockReporter)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Ocupação com período inclusivo",
			claims: reception,
			target: "/v1/reports/occupancy?unit=unit-1&start=2024-01-01&end=2024-01-31",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().Occupancy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.ReportFilters) (*domain.Heatmap, error) {
						assert.Equal(t, "unit-1", filters.UnitID)
						require.NotNil(t, filters.Period)
						assert.True(t, filters.Period.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
						assert.True(t, filters.Period.End.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
						return &domain.Heatmap{SlotCapacity: 3, Total: 7}, nil
					})
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"slot_capacity":3`)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			},
		},
		{
			name:   "Funil sem unidade usa o consolidado",
			claims: admin,
			target: "/v1/reports/funnel",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().Funnel(gomock.Any(), domain.ReportFilters{UnitID: domain.AllUnits}).
					Return(&domain.FunnelReport{TreatmentPlans: domain.Funnel{Total: 4, Conversion: decimal.NewFromInt(25)}}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"total":4`)
			},
		},
		{
			name:       "Recepção não acessa folha",
			claims:     reception,
			target:     "/v1/reports/payroll?unit=unit-1",
			wantStatus: http.StatusForbidden,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "AUTH_003")
			},
		},
		{
			name:       "Gestor sem acesso à unidade",
			claims:     manager,
			target:     "/v1/reports/statement?unit=unit-2",
			wantStatus: http.StatusForbidden,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "AUTH_004")
			},
		},
		{
			name:   "DRE com conta fiscal",
			claims: manager,
			target: "/v1/reports/statement?unit=unit-1&fiscal_account=fa-1",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().Statement(gomock.Any(), domain.ReportFilters{UnitID: "unit-1", FiscalAccountID: "fa-1"}).
					Return(&domain.Statement{FiscalAccountID: "fa-1"}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"fiscal_account_id":"fa-1"`)
			},
		},
		{
			name:       "Data inválida",
			claims:     admin,
			target:     "/v1/reports/occupancy?start=01/01/2024",
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "VAL_003")
			},
		},
		{
			name:       "Início depois do fim",
			claims:     admin,
			target:     "/v1/reports/occupancy?start=2024-02-01&end=2024-01-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Falha ao carregar dados",
			claims: admin,
			target: "/v1/reports/payroll",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().Payroll(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrLoadSnapshot)
			},
			wantStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "REP_001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingMocks.NewMockReporter(ctrl)
			if tt.setup != nil {
				tt.setup(reporter)
			}

			rec := serve(Reports(reporter, time.UTC), tt.claims, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestPipeline(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		body       string
		setup      func(mover *pipelineMocks.MockMover)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "Plano movido",
			target: "/v1/treatment-plans/plan-1/stage",
			body:   `{"stage":"Em Negociação"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MovePlan(gomock.Any(), "plan-1", domain.PipelineStageNegotiating, admin).
					Return(&domain.TreatmentPlan{ID: "plan-1", PipelineStage: domain.PipelineStageNegotiating, Status: domain.PlanStatusNegotiating}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"negotiating"`,
		},
		{
			name:       "Corpo inválido",
			target:     "/v1/treatment-plans/plan-1/stage",
			body:       `{"stage":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_001",
		},
		{
			name:   "Etapa desconhecida",
			target: "/v1/treatment-plans/plan-1/stage",
			body:   `{"stage":"Arquivado"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MovePlan(gomock.Any(), "plan-1", domain.PipelineStage("Arquivado"), admin).
					Return(nil, pipeline.ErrInvalidStage)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "PIPE_001",
		},
		{
			name:   "Plano inexistente",
			target: "/v1/treatment-plans/plan-9/stage",
			body:   `{"stage":"Fechado"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MovePlan(gomock.Any(), "plan-9", domain.PipelineStageClosed, admin).
					Return(nil, pipeline.ErrPlanNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "PIPE_002",
		},
		{
			name:   "Salto recusado no modo estrito",
			target: "/v1/treatment-plans/plan-1/stage",
			body:   `{"stage":"Fechado"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MovePlan(gomock.Any(), "plan-1", domain.PipelineStageClosed, admin).
					Return(nil, &pipeline.TransitionError{EntityID: "plan-1", From: "Novo", To: "Fechado", Reason: "skips stages"})
			},
			wantStatus: http.StatusConflict,
			wantBody:   "PIPE_003",
		},
		{
			name:   "Recepção de outra unidade",
			claims: reception,
			target: "/v1/treatment-plans/plan-2/stage",
			body:   `{"stage":"Apresentado"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MovePlan(gomock.Any(), "plan-2", domain.PipelineStagePresented, reception).
					Return(nil, pipeline.ErrUnitNotAllowed)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "AUTH_004",
		},
		{
			name:   "Lead movido para ganho",
			target: "/v1/leads/lead-1/stage",
			body:   `{"stage":"Ganho"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MoveLead(gomock.Any(), "lead-1", domain.LeadStageWon, "admin-1").
					Return(&domain.Lead{ID: "lead-1", Stage: domain.LeadStageWon, Status: domain.LeadStatusWon}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"won"`,
		},
		{
			name:   "Erro ao gravar",
			target: "/v1/leads/lead-1/stage",
			body:   `{"stage":"Ganho"}`,
			setup: func(mover *pipelineMocks.MockMover) {
				mover.EXPECT().MoveLead(gomock.Any(), "lead-1", domain.LeadStageWon, "admin-1").
					Return(nil, pipeline.ErrUpdateEntity)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mover := pipelineMocks.NewMockMover(ctrl)
			if tt.setup != nil {
				tt.setup(mover)
			}

			claims := tt.claims
			if claims == nil {
				claims = admin
			}

			rec := serve(Pipeline(mover), claims, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGetMonthlyClosings(t *testing.T) {
	lastUpdate := time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		setup      func(reader *closingMocks.MockClosingReader)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "Mês ausente",
			claims:     admin,
			target:     "/v1/reports/closings?year=2024",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Mês fora do intervalo",
			claims:     admin,
			target:     "/v1/reports/closings?month=13&year=2024",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Gestor vê apenas suas unidades",
			claims: manager,
			target: "/v1/reports/closings?month=1&year=2024",
			setup: func(reader *closingMocks.MockClosingReader) {
				reader.EXPECT().GetClosings(gomock.Any(), "01-2024").Return(&domain.MonthlyClosingResponse{
					Closings: []domain.MonthlyClosing{
						{UnitID: "unit-1", Month: "01-2024"},
						{UnitID: "unit-2", Month: "01-2024"},
					},
					LastUpdate: lastUpdate,
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response domain.MonthlyClosingResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				require.Len(t, response.Closings, 1)
				assert.Equal(t, "unit-1", response.Closings[0].UnitID)
				assert.True(t, response.LastUpdate.Equal(lastUpdate))
			},
		},
		{
			name:   "Mês rejeitado pelo serviço",
			claims: admin,
			target: "/v1/reports/closings?month=1&year=2024",
			setup: func(reader *closingMocks.MockClosingReader) {
				reader.EXPECT().GetClosings(gomock.Any(), "01-2024").Return(nil, closing.ErrInvalidMonth)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Erro no repositório",
			claims: admin,
			target: "/v1/reports/closings?month=1&year=2024",
			setup: func(reader *closingMocks.MockClosingReader) {
				reader.EXPECT().GetClosings(gomock.Any(), "01-2024").Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := closingMocks.NewMockClosingReader(ctrl)
			if tt.setup != nil {
				tt.setup(reader)
			}

			rec := serve(Closings(reader), tt.claims, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name          string
		claims        *domain.Claims
		method        string
		target        string
		wantStatus    int
		wantTriggered int
		wantBody      string
	}{
		{name: "Dispara fechamento", claims: admin, method: http.MethodPost, target: "/v1/cron/monthly-closing/run", wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "Dispara todos", claims: admin, method: http.MethodPost, target: "/v1/cron/all/run", wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "Tipo desconhecido", claims: admin, method: http.MethodPost, target: "/v1/cron/meta/run", wantStatus: http.StatusNotFound, wantBody: "REP_002"},
		{name: "Gestor não dispara", claims: manager, method: http.MethodPost, target: "/v1/cron/all/run", wantStatus: http.StatusForbidden},
		{name: "Status", claims: admin, method: http.MethodGet, target: "/v1/cron/status", wantStatus: http.StatusOK, wantBody: "monthly-closing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}

			rec := serve(CronJobs(CronJobServices{MonthlyClosing: job}), tt.claims, tt.method, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), nil, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

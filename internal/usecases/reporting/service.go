// Package reporting carrega o snapshot do período e executa as projeções de indicadores
package reporting

import (
	"context"
	"encoding/hex"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/clinic-insights-api/infrastructure/repository"
	"github.com/vfg2006/clinic-insights-api/internal/cache"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/funnel"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/occupancy"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/payroll"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/statement"
	"github.com/vfg2006/clinic-insights-api/pkg/aggregate"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
	"github.com/vfg2006/clinic-insights-api/pkg/metrics"
	"golang.org/x/crypto/blake2b"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ReportOccupancy = "occupancy"
	ReportPayroll   = "payroll"
	ReportStatement = "statement"
	ReportFunnel    = "funnel"
)

var ErrLoadSnapshot = errors.New("error loading snapshot")

//go:generate mockgen -source=service.go -destination=mocks/reporter.go -package=mocks

type Reporter interface {
	Occupancy(ctx context.Context, filters domain.ReportFilters) (*domain.Heatmap, error)
	Payroll(ctx context.Context, filters domain.ReportFilters) (*domain.PayrollReport, error)
	Statement(ctx context.Context, filters domain.ReportFilters) (*domain.Statement, error)
	Funnel(ctx context.Context, filters domain.ReportFilters) (*domain.FunnelReport, error)
}

var _ Reporter = (*Service)(nil)

type Service struct {
	snapshots repository.SnapshotRepository
	occupancy *occupancy.Projector
	payroll   *payroll.Projector
	statement *statement.Projector
	funnel    *funnel.Projector
	cache     *cache.TTL
}

// NewService cria o serviço de relatórios sem cache
func NewService(cfg *config.Config, snapshotRepository repository.SnapshotRepository) *Service {
	return &Service{
		snapshots: snapshotRepository,
		occupancy: occupancy.NewProjector(occupancy.NewConfig(cfg)),
		payroll:   payroll.NewProjector(payroll.NewConfig(cfg)),
		statement: statement.NewProjector(statement.NewConfig(cfg)),
		funnel:    funnel.NewProjector(),
	}
}

// WithCache habilita a memoização dos resultados por hash do snapshot
func (s *Service) WithCache(c *cache.TTL) *Service {
	s.cache = c
	return s
}

func (s *Service) Occupancy(ctx context.Context, filters domain.ReportFilters) (*domain.Heatmap, error) {
	return project(ctx, s, ReportOccupancy, filters, func(snapshot *domain.Snapshot) (*domain.Heatmap, int) {
		unit := filters.Unit()
		appointments := aggregate.Filter(snapshot.Appointments, func(a domain.Appointment) bool {
			return unit == domain.AllUnits || a.UnitID == unit
		})

		heatmap := s.occupancy.Project(appointments, filters.Period)
		return heatmap, heatmap.Skipped
	})
}

func (s *Service) Payroll(ctx context.Context, filters domain.ReportFilters) (*domain.PayrollReport, error) {
	return project(ctx, s, ReportPayroll, filters, func(snapshot *domain.Snapshot) (*domain.PayrollReport, int) {
		unit := filters.Unit()
		appointments := aggregate.Filter(snapshot.Appointments, func(a domain.Appointment) bool {
			return unit == domain.AllUnits || a.UnitID == unit
		})

		report := s.payroll.Project(payroll.Input{
			Staff:        snapshot.Staff,
			Appointments: appointments,
			Adjustments:  snapshot.AdjustmentsByStaff(),
			Period:       filters.Period,
			UnitID:       unit,
		})
		return report, report.Skipped
	})
}

func (s *Service) Statement(ctx context.Context, filters domain.ReportFilters) (*domain.Statement, error) {
	return project(ctx, s, ReportStatement, filters, func(snapshot *domain.Snapshot) (*domain.Statement, int) {
		result := s.statement.Project(statement.Input{
			Transactions:    snapshot.Transactions,
			FiscalAccounts:  snapshot.FiscalAccounts,
			FiscalAccountID: filters.FiscalAccountID,
			UnitID:          filters.Unit(),
			Period:          filters.Period,
		})
		return result, result.Skipped
	})
}

func (s *Service) Funnel(ctx context.Context, filters domain.ReportFilters) (*domain.FunnelReport, error) {
	return project(ctx, s, ReportFunnel, filters, func(snapshot *domain.Snapshot) (*domain.FunnelReport, int) {
		report := s.funnel.Project(funnel.Input{
			TreatmentPlans: snapshot.TreatmentPlans,
			Leads:          snapshot.Leads,
			UnitID:         filters.Unit(),
		})
		return report, report.Skipped
	})
}

// project carrega o snapshot, consulta o cache e executa a projeção. Falhas do cache
// apenas geram log; o resultado é sempre recalculável a partir do snapshot.
func project[T any](
	ctx context.Context,
	s *Service,
	kind string,
	filters domain.ReportFilters,
	compute func(*domain.Snapshot) (*T, int),
) (*T, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report":  kind,
		"unit_id": filters.Unit(),
	})
	startedAt := time.Now()

	snapshot, err := s.snapshots.LoadSnapshot(ctx, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar snapshot")
		return nil, errors.Wrap(ErrLoadSnapshot, err.Error())
	}

	if snapshot == nil {
		snapshot = &domain.Snapshot{UnitID: filters.Unit(), Period: filters.Period}
	}

	var key string
	if s.cache != nil {
		key, err = CacheKey(kind, filters, snapshot)
		if err != nil {
			logger.WithError(err).Warn("Erro ao calcular chave de cache")
		} else if data, ok := s.cache.Get(key); ok {
			var cached T
			if err := json.Unmarshal(data, &cached); err == nil {
				metrics.CacheHit(kind)
				return &cached, nil
			}
			logger.Warn("Entrada de cache inválida, recalculando")
		}
	}

	result, skipped := compute(snapshot)
	metrics.ObserveProjection(kind, startedAt, skipped)

	if skipped > 0 {
		logger.Warnf("%d registros inválidos ignorados na projeção", skipped)
	}

	if s.cache != nil && key != "" {
		metrics.CacheMiss(kind)
		if data, err := json.Marshal(result); err == nil {
			s.cache.Set(key, data)
		} else {
			logger.WithError(err).Warn("Erro ao serializar resultado para cache")
		}
	}

	return result, nil
}

// CacheKey identifica a projeção pelo tipo, filtros e conteúdo do snapshot
func CacheKey(kind string, filters domain.ReportFilters, snapshot *domain.Snapshot) (string, error) {
	payload, err := json.Marshal(struct {
		Kind     string               `json:"kind"`
		Filters  domain.ReportFilters `json:"filters"`
		Snapshot *domain.Snapshot     `json:"snapshot"`
	}{kind, filters, snapshot})
	if err != nil {
		return "", err
	}

	sum := blake2b.Sum256(payload)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}

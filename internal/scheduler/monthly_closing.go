// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-insights-api/infrastructure/repository"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

type MonthlyClosingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlyClosingService congela a folha e o DRE do mês anterior de cada unidade
type MonthlyClosingService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyClosingConfig
	location            *time.Location
	closingRepo         repository.ClosingRepository
	reporter            reporting.Reporter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncMonth       string
}

func NewMonthlyClosingService(
	closingRepo repository.ClosingRepository,
	reporter reporting.Reporter,
	cfg *config.Config,
) *MonthlyClosingService {
	closingConfig := MonthlyClosingConfig{
		CronSchedule: cfg.MonthlyClosing.CronSchedule,
		SyncEnabled:  cfg.MonthlyClosing.Enabled,
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closingConfig.CronSchedule,
		"sync_enabled":  closingConfig.SyncEnabled,
	}).Info("Configuração do agendador de fechamento mensal carregada")

	return &MonthlyClosingService{
		scheduler:   gocron.NewScheduler(location),
		config:      closingConfig,
		location:    location,
		closingRepo: closingRepo,
		reporter:    reporter,
		now:         time.Now,
	}
}

// Start agenda o fechamento e para o agendador quando o contexto for cancelado
func (s *MonthlyClosingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CloseMonth(ctx, s.PreviousMonth()); err != nil {
			logrus.WithError(err).Error("Erro no fechamento mensal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// PreviousMonth retorna o período do mês anterior à data atual no fuso configurado
func (s *MonthlyClosingService) PreviousMonth() domain.Period {
	now := s.now().In(s.location)
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
	return domain.MonthPeriod(firstDay.AddDate(0, -1, 0))
}

// CloseMonth calcula e grava o fechamento de cada unidade no período. Falha em uma
// unidade não interrompe as demais; o erro retornado resume as falhas.
func (s *MonthlyClosingService) CloseMonth(ctx context.Context, period domain.Period) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	month := utils.FormatMonth(period.Start)
	logger := logrus.WithField("month", month)
	logger.Info("Iniciando fechamento mensal")

	units, err := s.closingRepo.ListUnits(ctx)
	if err != nil {
		return fmt.Errorf("erro ao listar unidades: %w", err)
	}

	if len(units) == 0 {
		logger.Info("Nenhuma unidade encontrada para fechamento mensal")
	}

	failed := 0
	for _, unit := range units {
		if err := s.closeUnit(ctx, unit, month, period); err != nil {
			failed++
			logger.WithError(err).WithField("unit_id", unit.ID).Error("Erro ao fechar unidade")
		}
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncMonth = month
	s.syncMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"units":  len(units),
		"failed": failed,
	}).Info("Fechamento mensal concluído")

	if failed > 0 {
		return fmt.Errorf("fechamento mensal de %s falhou em %d de %d unidades", month, failed, len(units))
	}

	return nil
}

func (s *MonthlyClosingService) closeUnit(ctx context.Context, unit domain.Unit, month string, period domain.Period) error {
	filters := domain.ReportFilters{
		UnitID: unit.ID,
		Period: &period,
	}

	payroll, err := s.reporter.Payroll(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao calcular folha: %w", err)
	}

	statement, err := s.reporter.Statement(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao calcular DRE: %w", err)
	}

	return s.closingRepo.SaveOrUpdateClosing(ctx, &domain.MonthlyClosing{
		UnitID:    unit.ID,
		Month:     month,
		Payroll:   payroll,
		Statement: statement,
	})
}

// TriggerManualSync inicia manualmente o fechamento do mês anterior
func (s *MonthlyClosingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento mensal manual")
	go func() {
		if err := s.CloseMonth(context.Background(), s.PreviousMonth()); err != nil {
			logrus.WithError(err).Error("Erro no fechamento mensal manual")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyClosingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_month":        s.lastSyncMonth,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

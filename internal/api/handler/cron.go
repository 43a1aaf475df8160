package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/clinic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
)

// Tipos de job agendado que podem ser executados manualmente
const (
	CronJobTypeMonthlyClosing = "monthly-closing"
	CronJobTypeAll            = "all"
)

type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser disparados manualmente
type CronJobServices struct {
	MonthlyClosing CronJob
}

// RunCronJob executa manualmente um job agendado
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyClosing, CronJobTypeAll:
			if services.MonthlyClosing == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento mensal não disponível", nil)
				return
			}
			services.MonthlyClosing.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: monthly-closing, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MonthlyClosing != nil {
			status[CronJobTypeMonthlyClosing] = services.MonthlyClosing.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	})
}

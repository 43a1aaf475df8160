package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
)

// reportHandler valida filtros e acesso à unidade e responde o resultado da projeção
func reportHandler[T any](name string, location *time.Location, run func(context.Context, domain.ReportFilters) (*T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", name)

		filters, err := parseFilters(r, location)
		if err == nil {
			err = authorizeUnit(r, filters.UnitID)
		}
		if err != nil {
			logger.WithError(err).Warn("reports: filtros recusados")
			writeFilterError(w, err)
			return
		}

		result, err := run(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("reports: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrReportUnavailable, "Não foi possível gerar o relatório", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetOccupancy(reporter reporting.Reporter, location *time.Location) http.Handler {
	return reportHandler(reporting.ReportOccupancy, location, reporter.Occupancy)
}

func GetPayroll(reporter reporting.Reporter, location *time.Location) http.Handler {
	return reportHandler(reporting.ReportPayroll, location, reporter.Payroll)
}

func GetStatement(reporter reporting.Reporter, location *time.Location) http.Handler {
	return reportHandler(reporting.ReportStatement, location, reporter.Statement)
}

func GetFunnel(reporter reporting.Reporter, location *time.Location) http.Handler {
	return reportHandler(reporting.ReportFunnel, location, reporter.Funnel)
}

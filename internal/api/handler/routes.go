package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/clinic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/closing"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-insights-api/pkg/metrics"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Reports(reporter reporting.Reporter, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/occupancy",
			Method:      http.MethodGet,
			Handler:     GetOccupancy(reporter, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/payroll",
			Method:      http.MethodGet,
			Handler:     GetPayroll(reporter, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/statement",
			Method:      http.MethodGet,
			Handler:     GetStatement(reporter, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/funnel",
			Method:      http.MethodGet,
			Handler:     GetFunnel(reporter, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Closings(service closing.ClosingReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/closings",
			Method:      http.MethodGet,
			Handler:     GetMonthlyClosings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Pipeline(mover pipeline.Mover) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/treatment-plans/:id/stage",
			Method:      http.MethodPut,
			Handler:     MoveTreatmentPlan(mover),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id/stage",
			Method:      http.MethodPut,
			Handler:     MoveLead(mover),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

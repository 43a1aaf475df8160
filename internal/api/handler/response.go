package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errInvalidPeriod = errors.New("a data de início não pode ser posterior à data de fim")
	errUnitForbidden = errors.New("usuário sem acesso à unidade")
)

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// parseFilters lê unit, fiscal_account, start e end (yyyy-mm-dd, fim inclusivo) da query
func parseFilters(r *http.Request, location *time.Location) (domain.ReportFilters, error) {
	query := r.URL.Query()

	filters := domain.ReportFilters{
		UnitID:          query.Get("unit"),
		FiscalAccountID: query.Get("fiscal_account"),
	}
	filters.UnitID = filters.Unit()

	start, err := utils.ParseDate(query.Get("start"), location)
	if err != nil {
		return filters, err
	}

	end, err := utils.ParseDate(query.Get("end"), location)
	if err != nil {
		return filters, err
	}

	if start == nil && end == nil {
		return filters, nil
	}

	period := &domain.Period{}
	if start != nil {
		period.Start = *start
	}
	if end != nil {
		period.End = end.AddDate(0, 0, 1)
	}

	if start != nil && end != nil && !period.Start.Before(period.End) {
		return filters, errInvalidPeriod
	}

	filters.Period = period
	return filters, nil
}

// authorizeUnit confere se o usuário autenticado pode consultar a unidade do filtro
func authorizeUnit(r *http.Request, unitID string) error {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok || claims.UserRoleID == middleware.RoleAdmin {
		return nil
	}

	if !claims.CanAccessUnit(unitID) {
		return errUnitForbidden
	}
	return nil
}

func writeFilterError(w http.ResponseWriter, err error) {
	if errors.Is(err, errUnitForbidden) {
		apiErrors.WriteError(w, apiErrors.ErrUnitNotAllowed, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos", apiErrors.FromError(err, apiErrors.ErrInvalidFormat))
}

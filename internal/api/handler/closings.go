package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/closing"
	"github.com/vfg2006/clinic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
)

// GetMonthlyClosings retorna os fechamentos congelados de um mês (month=MM&year=YYYY)
func GetMonthlyClosings(service closing.ClosingReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		monthStr := r.URL.Query().Get("month")
		yearStr := r.URL.Query().Get("year")

		if monthStr == "" || yearStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mês e ano são obrigatórios", nil)
			return
		}

		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, deve ser entre 1 e 12", nil)
			return
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 2000 || year > 2100 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		response, err := service.GetClosings(r.Context(), fmt.Sprintf("%02d-%d", month, year))
		if errors.Is(err, closing.ErrInvalidMonth) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use mm-yyyy", nil)
			return
		}
		if err != nil {
			logger.WithError(err).Error("closings: erro ao buscar fechamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fechamentos", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, visibleClosings(r, response))
	})
}

// visibleClosings remove os fechamentos de unidades que o usuário não pode consultar
func visibleClosings(r *http.Request, response *domain.MonthlyClosingResponse) *domain.MonthlyClosingResponse {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok || claims.UserRoleID == middleware.RoleAdmin {
		return response
	}

	filtered := &domain.MonthlyClosingResponse{
		Closings:   make([]domain.MonthlyClosing, 0, len(response.Closings)),
		LastUpdate: response.LastUpdate,
	}
	for _, monthlyClosing := range response.Closings {
		if claims.CanAccessUnit(monthlyClosing.UnitID) {
			filtered.Closings = append(filtered.Closings, monthlyClosing)
		}
	}
	return filtered
}

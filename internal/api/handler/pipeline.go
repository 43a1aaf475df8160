package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
	"github.com/vfg2006/clinic-insights-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-insights-api/pkg/log"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
)

type stageRequest struct {
	Stage string `json:"stage"`
}

func decodeStageRequest(r *http.Request) (string, string, error) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	var request stageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return id, "", err
	}

	return id, request.Stage, nil
}

func changedBy(r *http.Request) string {
	if claims, ok := middleware.UserFromContext(r.Context()); ok {
		return claims.UserID
	}
	return ""
}

// MoveTreatmentPlan altera a etapa de um plano de tratamento
func MoveTreatmentPlan(mover pipeline.Mover) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, stage, err := decodeStageRequest(r)
		if err != nil {
			logger.WithError(err).Warn("pipeline: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		claims, _ := middleware.UserFromContext(r.Context())

		plan, err := mover.MovePlan(r.Context(), id, domain.PipelineStage(stage), claims)
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, plan)
	})
}

// MoveLead altera a etapa de um lead do CRM
func MoveLead(mover pipeline.Mover) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, stage, err := decodeStageRequest(r)
		if err != nil {
			logger.WithError(err).Warn("pipeline: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		lead, err := mover.MoveLead(r.Context(), id, domain.LeadStage(stage), changedBy(r))
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, lead)
	})
}

func writePipelineError(w http.ResponseWriter, logger log.Logger, err error) {
	var transitionErr *pipeline.TransitionError

	switch {
	case errors.Is(err, pipeline.ErrEntityIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não informado", nil)
	case errors.Is(err, pipeline.ErrInvalidStage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStage, "Etapa desconhecida", nil)
	case errors.Is(err, pipeline.ErrUnitNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrUnitNotAllowed, "Usuário sem acesso à unidade do plano", nil)
	case errors.Is(err, pipeline.ErrPlanNotFound), errors.Is(err, pipeline.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEntityNotFound, err.Error(), nil)
	case errors.As(err, &transitionErr):
		apiErrors.WriteError(w, apiErrors.ErrTransitionRejected, "Transição de etapa recusada", map[string]string{
			"from":   transitionErr.From,
			"to":     transitionErr.To,
			"reason": transitionErr.Reason,
		})
	default:
		logger.WithError(err).Error("pipeline: erro ao alterar etapa")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao alterar etapa", nil)
	}
}

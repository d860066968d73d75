package list_transactions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/service/finance"
)

const (
	msgInvalidNegocioID = "ID do negócio inválido"
	msgInvalidPeriod    = "período inválido: informe startDate e endDate no formato AAAA-MM-DD"
	msgMissingUserID    = "cabeçalho X-User-ID obrigatório"
	msgNegocioNotFound  = "negócio não encontrado"
	msgAccessDenied     = "acesso negado"
)

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/negocios/{negocioId}/transactions?startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /negocios/{id}/transactions - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/transactions - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	req, err := parsePeriodRequest(negocioID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/transactions - Invalid period: negocio_id=%d, error=%v",
			negocioID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListTransactions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrNegocioNotFound):
			h.logger.Warn("GET /negocios/{id}/transactions - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, finance.ErrAccessDenied):
			h.logger.Warn("GET /negocios/{id}/transactions - Access denied: user_id=%d, negocio_id=%d",
				userID, negocioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("GET /negocios/{id}/transactions - Invalid period: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /negocios/{id}/transactions - Failed to list transactions: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /negocios/{id}/transactions - Transactions retrieved successfully: negocio_id=%d, count=%d",
		negocioID, len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

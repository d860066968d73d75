package create_transaction

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
	msgInvalidNegocioID   = "ID do negócio inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidTransaction = "dados da transação inválidos"
	msgMissingUserID      = "cabeçalho X-User-ID obrigatório"
	msgNegocioNotFound    = "negócio não encontrado"
	msgAccessDenied       = "acesso negado"
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

// Handle POST /api/v1/negocios/{negocioId}/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /negocios/{id}/transactions - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /negocios/{id}/transactions - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	var req CreateTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /negocios/{id}/transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /negocios/{id}/transactions - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTransaction)
		return
	}

	result, err := h.service.CreateTransaction(r.Context(), negocioID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrNegocioNotFound):
			h.logger.Warn("POST /negocios/{id}/transactions - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, finance.ErrAccessDenied):
			h.logger.Warn("POST /negocios/{id}/transactions - Access denied: user_id=%d, negocio_id=%d",
				userID, negocioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("POST /negocios/{id}/transactions - Invalid transaction: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondBadRequest(w, msgInvalidTransaction)

		default:
			h.logger.Error("POST /negocios/{id}/transactions - Failed to create transaction: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /negocios/{id}/transactions - Transaction created successfully: id=%d, negocio_id=%d",
		result.ID, negocioID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/agendavip/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidNegocioID       = "ID do negócio inválido"
	msgInvalidProfessionalID  = "ID do profissional inválido"
	msgMissingProfessionalID  = "ID do profissional é obrigatório"
	msgInvalidServiceID       = "ID do serviço inválido"
	msgMissingServiceID       = "ID do serviço é obrigatório"
	msgMissingDate            = "data é obrigatória"
	msgInvalidDate            = "formato de data inválido, esperado YYYY-MM-DD"
	msgNegocioNotFound        = "negócio não encontrado"
	msgProfessionalNotFound   = "profissional não encontrado"
	msgServiceNotFound        = "serviço não encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/negocios/{negocioId}/available-slots
// Query params: professionalId (required), serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем negocioId из URL
	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/available-slots - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	// Извлекаем professionalId из query параметров
	professionalIDStr := r.URL.Query().Get("professionalId")
	if professionalIDStr == "" {
		h.logger.Warn("GET /negocios/{id}/available-slots - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /negocios/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /negocios/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(negocioID, professionalID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNegocioNotFound):
			h.logger.Warn("GET /negocios/{id}/available-slots - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /negocios/{id}/available-slots - Professional not found: negocio_id=%d, professional_id=%d",
				negocioID, professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /negocios/{id}/available-slots - Service not found: negocio_id=%d, service_id=%d",
				negocioID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /negocios/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /negocios/{id}/available-slots - Failed to get slots: negocio_id=%d, professional_id=%d, service_id=%d, error=%v",
				negocioID, professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /negocios/{id}/available-slots - Slots retrieved successfully: negocio_id=%d, professional_id=%d, service_id=%d, slots_count=%d",
		negocioID, professionalID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

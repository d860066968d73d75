package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	createBooking "github.com/agendavip/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidNegocioID     = "ID do negócio inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDateOrTime    = "data ou horário inválido, esperado YYYY-MM-DD e HH:MM"
	msgSlotNotAvailable     = "este horário não está mais disponível"
	msgNegocioNotFound      = "negócio não encontrado"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotFound      = "serviço não encontrado"
	msgServiceNotPerformed  = "o profissional não realiza este serviço"
	msgServiceNotBookable   = "este serviço não está disponível para agendamento"
	msgInvalidPhone         = "telefone inválido, informe DDD e número"
	msgInvalidInput         = "dados inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/negocios/{negocioId}/appointments
// Публичный эндпоинт страницы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /negocios/{id}/appointments - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /negocios/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(negocioID)
	if err != nil {
		h.logger.Warn("POST /negocios/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /negocios/{id}/appointments - Slot not available: negocio_id=%d, professional_id=%d, date=%s, time=%s",
				negocioID, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrNegocioNotFound):
			h.logger.Warn("POST /negocios/{id}/appointments - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /negocios/{id}/appointments - Professional not found: negocio_id=%d, professional_id=%d",
				negocioID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /negocios/{id}/appointments - Service not found: negocio_id=%d, service_id=%d",
				negocioID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotPerformed):
			h.logger.Warn("POST /negocios/{id}/appointments - Service not performed: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotPerformed)

		case errors.Is(err, createBooking.ErrServiceNotBookable):
			h.logger.Warn("POST /negocios/{id}/appointments - Service not bookable: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotBookable)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /negocios/{id}/appointments - Invalid phone: negocio_id=%d", negocioID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /negocios/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /negocios/{id}/appointments - Failed to create appointment: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /negocios/{id}/appointments - Appointment created successfully: appointment_id=%d, negocio_id=%d, client_id=%d",
		result.ID, negocioID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

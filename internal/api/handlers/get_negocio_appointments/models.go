package get_negocio_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// Поддерживаемые фильтры: professionalId, startDate, endDate, status, includeInactive
func ToServiceRequest(negocioID, userID int64, query url.Values) (*models.GetNegocioAppointmentsRequest, error) {
	req := &models.GetNegocioAppointmentsRequest{
		UserID:    userID,
		NegocioID: negocioID,
	}

	if professionalIDStr := query.Get("professionalId"); professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

package get_finance_summary

import (
	"fmt"
	"net/url"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/internal/service/finance/models"
)

// parsePeriodRequest разбирает обязательные query параметры startDate и endDate
func parsePeriodRequest(negocioID int64, userID int64, query url.Values) (*models.GetSummaryRequest, error) {
	startDateStr := query.Get("startDate")
	if startDateStr == "" {
		return nil, fmt.Errorf("startDate is required")
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q: %w", startDateStr, err)
	}

	endDateStr := query.Get("endDate")
	if endDateStr == "" {
		return nil, fmt.Errorf("endDate is required")
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q: %w", endDateStr, err)
	}

	return &models.GetSummaryRequest{
		UserID:    userID,
		NegocioID: negocioID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

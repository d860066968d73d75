package create_booking

import (
	"fmt"
	"strings"

	"github.com/agendavip/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.NegocioID <= 0 {
		return fmt.Errorf("%w: negocioID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	return nil
}

// normalizePhone приводит телефон к нормализованному виду: только цифры
// Скобки, дефисы, пробелы и префикс "+" отбрасываются
// Бразильские номера содержат 10 цифр (стационарные) или 11 (мобильные)
func normalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) < domain.MinPhoneDigits || len(normalized) > domain.MaxPhoneDigits {
		return "", fmt.Errorf("%w: expected %d-%d digits, got %d",
			ErrInvalidPhone, domain.MinPhoneDigits, domain.MaxPhoneDigits, len(normalized))
	}

	return normalized, nil
}

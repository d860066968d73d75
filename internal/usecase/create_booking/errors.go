package create_booking

import "errors"

var (
	// ErrNegocioNotFound возвращается, когда негосио не найден
	ErrNegocioNotFound = errors.New("create_booking: negocio not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден в негосио
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в негосио
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotPerformed возвращается, когда профессионал не выполняет услугу
	ErrServiceNotPerformed = errors.New("create_booking: professional does not perform this service")

	// ErrServiceNotBookable возвращается, когда у услуги нет корректной длительности
	ErrServiceNotBookable = errors.New("create_booking: service has no valid duration")

	// ErrInvalidPhone возвращается, когда телефон клиента не нормализуется в 10-11 цифр
	ErrInvalidPhone = errors.New("create_booking: invalid client phone")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_booking: invalid appointment date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

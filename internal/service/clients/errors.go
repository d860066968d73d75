package clients

import "errors"

var (
	// ErrNegocioNotFound возвращается, когда негосио не найден
	ErrNegocioNotFound = errors.New("negocio not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

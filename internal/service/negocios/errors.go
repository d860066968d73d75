package negocios

import "errors"

var (
	// ErrNegocioNotFound возвращается, когда негосио не найден
	ErrNegocioNotFound = errors.New("negocio not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidHours возвращается при некорректном расписании работы
	ErrInvalidHours = errors.New("invalid operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

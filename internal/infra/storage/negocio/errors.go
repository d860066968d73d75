package negocio

import "errors"

var (
	// ErrNegocioNotFound возвращается, когда негосио не найден
	ErrNegocioNotFound = errors.New("negocio.repository: negocio not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("negocio.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("negocio.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("negocio.repository: failed to scan row")

	// ErrEncodeHours возвращается при ошибке сериализации расписания в JSONB
	ErrEncodeHours = errors.New("negocio.repository: failed to encode operating hours")
)

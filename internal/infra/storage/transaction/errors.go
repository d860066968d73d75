package transaction

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда операция не найдена
	ErrTransactionNotFound = errors.New("transaction.repository: transaction not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("transaction.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("transaction.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("transaction.repository: failed to scan row")
)

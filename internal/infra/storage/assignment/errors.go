package assignment

import "errors"

var (
	// ErrDuplicateAssignment возвращается, когда строка (slot, date, advert)
	// уже существует — уникальный индекс сработал при гонке одобрений
	ErrDuplicateAssignment = errors.New("assignment.repository: duplicate slot assignment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)

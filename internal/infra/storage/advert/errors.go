package advert

import "errors"

var (
	// ErrAdvertNotFound возвращается, когда объявление не найдено
	ErrAdvertNotFound = errors.New("advert.repository: advert not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("advert.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("advert.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("advert.repository: failed to scan row")
)

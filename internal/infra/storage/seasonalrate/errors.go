package seasonalrate

import "errors"

var (
	// ErrRateNotFound возвращается, когда сезонный тариф не найден
	ErrRateNotFound = errors.New("seasonalrate.repository: seasonal rate not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seasonalrate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("seasonalrate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("seasonalrate.repository: failed to scan row")
)

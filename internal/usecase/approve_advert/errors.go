package approve_advert

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

var (
	// ErrAdvertNotFound возвращается, когда объявление не найдено
	ErrAdvertNotFound = errors.New("approve_advert: advert not found")

	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("approve_advert: slot not found")

	// ErrNotPending возвращается при попытке одобрить объявление не в статусе pending
	ErrNotPending = errors.New("approve_advert: advert is not pending")

	// ErrSlotConflict возвращается, когда слот недоступен хотя бы на одну дату окна
	ErrSlotConflict = errors.New("approve_advert: slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_advert: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_advert: internal error")
)

// ConflictError несет дату и тип первого конфликта, остановившего одобрение.
// Разворачивается в ErrSlotConflict, поэтому обработчики проверяют его
// через errors.Is и достают детали через errors.As.
type ConflictError struct {
	Conflict domain.Conflict
}

// Error возвращает описание конфликта
func (e *ConflictError) Error() string {
	return fmt.Sprintf("approve_advert: slot conflict: %s", e.Conflict.Detail())
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}

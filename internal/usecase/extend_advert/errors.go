package extend_advert

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

var (
	// ErrAdvertNotFound возвращается, когда объявление не найдено
	ErrAdvertNotFound = errors.New("extend_advert: advert not found")

	// ErrNotApproved возвращается при попытке продлить объявление,
	// которое ни разу не было одобрено (нет назначенного слота)
	ErrNotApproved = errors.New("extend_advert: advert was never approved")

	// ErrSlotConflict возвращается, когда слот недоступен хотя бы на одну новую дату
	ErrSlotConflict = errors.New("extend_advert: slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_advert: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_advert: internal error")
)

// ConflictError несет дату и тип первого конфликта в окне продления
type ConflictError struct {
	Conflict domain.Conflict
}

// Error возвращает описание конфликта
func (e *ConflictError) Error() string {
	return fmt.Sprintf("extend_advert: slot conflict: %s", e.Conflict.Detail())
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}

package check_availability

import "errors"

var (
	// ErrAdvertNotFound возвращается, когда объявление не найдено
	ErrAdvertNotFound = errors.New("check_availability: advert not found")

	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("check_availability: slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

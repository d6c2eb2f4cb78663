package adverts

import "errors"

var (
	// ErrAdvertNotFound возвращается, когда объявление не найдено
	ErrAdvertNotFound = errors.New("adverts.service: advert not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("adverts.service: access denied")

	// ErrCannotDecline возвращается при попытке отклонить объявление не в статусе pending
	ErrCannotDecline = errors.New("adverts.service: advert cannot be declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("adverts.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("adverts.service: internal error")
)

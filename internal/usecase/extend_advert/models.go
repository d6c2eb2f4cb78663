package extend_advert

import "time"

// Request модель запроса на продление объявления.
//
// Повтор запроса с теми же параметрами после частичного сбоя безопасен
// для строк занятости (ON CONFLICT DO NOTHING), но amount_paid при этом
// будет добавлен повторно — см. известный пробел в DESIGN.md.
type Request struct {
	AdvertID        int64   // ID объявления (должно быть одобрено хотя бы раз)
	AdditionalDays  int     // Количество дней продления
	ExtraAmountPaid float64 // Доплата за продление (по умолчанию 0)
}

// Response модель ответа с новыми параметрами расписания
type Response struct {
	ID               int64
	Status           string
	NewEndDate       time.Time
	NewDaysPaid      int
	NewRemainingDays int
	AmountPaid       float64
}

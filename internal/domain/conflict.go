package domain

import (
	"fmt"
	"time"
)

// ConflictKind тип конфликта при проверке доступности слота
type ConflictKind string

const (
	// ConflictCapacity слот на эту дату уже занят максимальным числом объявлений
	ConflictCapacity ConflictKind = "capacity"

	// ConflictCategory в слоте на эту дату уже есть объявление той же категории
	ConflictCategory ConflictKind = "category"
)

// Conflict описывает один конфликт на одну дату.
// Для category-конфликтов ConflictingClient содержит имя клиента,
// уже занимающего слот — оператору нужно это для выбора другого слота.
type Conflict struct {
	Date              time.Time
	Kind              ConflictKind
	ConflictingClient string
}

// Detail возвращает человекочитаемое описание конфликта
func (c Conflict) Detail() string {
	switch c.Kind {
	case ConflictCapacity:
		return fmt.Sprintf("slot is fully booked on %s", c.Date.Format(DateFormat))
	case ConflictCategory:
		return fmt.Sprintf("slot already hosts a same-category advert by %s on %s",
			c.ConflictingClient, c.Date.Format(DateFormat))
	default:
		return "unknown conflict"
	}
}

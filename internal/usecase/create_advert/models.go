package create_advert

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// Request модель запроса на подачу объявления менеджером по продажам
type Request struct {
	ClientName    string          // Клиент, для которого размещается реклама
	Category      domain.Category // Категория из фиксированного набора
	Caption       string          // Рекламный текст
	MediaRef      *string         // Ссылка на креатив (опционально)
	AmountPaid    float64         // Оплаченная сумма
	PaymentMethod string          // Способ оплаты
	DaysPaid      int             // Оплаченная длительность размещения в днях
	PaymentDate   time.Time       // Дата оплаты
	StartDate     time.Time       // Желаемая дата начала (без времени)
	CreatedBy     int64           // ID менеджера по продажам
}

// Response модель ответа с созданным объявлением
type Response struct {
	ID         int64
	ClientName string
	Category   domain.Category
	Caption    string
	Status     string
	AmountPaid float64
	DaysPaid   int
	StartDate  time.Time
	CreatedBy  int64
	CreatedAt  time.Time
}

package check_availability

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	AdvertID int64 // ID объявления, для которого ищется слот
	SlotID   int64 // ID кандидатного слота
}

// Response результат проверки доступности.
// Available == true тогда и только тогда, когда конфликтов нет
// ни на одной дате окна.
type Response struct {
	Available bool
	SlotID    int64
	StartDate time.Time
	DayCount  int
	Conflicts []domain.Conflict
}

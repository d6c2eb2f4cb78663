package approve_advert

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// Request модель запроса на одобрение объявления
type Request struct {
	AdvertID   int64 // ID объявления в статусе pending
	SlotID     int64 // ID назначаемого слота
	ApproverID int64 // ID администратора, одобряющего объявление
}

// Response модель ответа с активированным объявлением
type Response struct {
	ID            int64
	ClientName    string
	Category      domain.Category
	Status        string
	SlotID        int64
	StartDate     time.Time
	EndDate       time.Time
	DaysPaid      int
	RemainingDays int
	AmountPaid    float64
	ApprovedBy    int64
	ApprovedAt    time.Time
	InvoiceID     int64
}

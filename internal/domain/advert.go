package domain

import "time"

// AdvertStatus represents the status of an advert
type AdvertStatus string

const (
	StatusPending   AdvertStatus = "pending"
	StatusActive    AdvertStatus = "active"
	StatusExpired   AdvertStatus = "expired"
	StatusCancelled AdvertStatus = "cancelled"
)

// Category advert category. Two adverts of the same category
// may never share a slot on the same calendar date.
type Category string

const (
	CategoryFinance       Category = "finance"
	CategoryTechnology    Category = "technology"
	CategoryRetail        Category = "retail"
	CategoryAutomotive    Category = "automotive"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryFood          Category = "food"
	CategoryEducation     Category = "education"
)

// Categories fixed set of valid advert categories
var Categories = []Category{
	CategoryFinance,
	CategoryTechnology,
	CategoryRetail,
	CategoryAutomotive,
	CategoryHealth,
	CategoryEntertainment,
	CategoryFood,
	CategoryEducation,
}

// IsValid returns true if the category belongs to the fixed set
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Advert represents one advertising campaign booking
type Advert struct {
	ID         int64
	ClientName string
	Category   Category
	Caption    string
	MediaRef   *string

	AmountPaid    float64
	PaymentMethod string
	DaysPaid      int
	PaymentDate   time.Time

	// StartDate is a calendar date (no time component).
	// EndDate, SlotID and RemainingDays are nil until the advert is approved.
	StartDate     time.Time
	EndDate       *time.Time
	SlotID        *int64
	RemainingDays *int

	Status AdvertStatus

	CreatedBy  int64
	ApprovedBy *int64
	ApprovedAt *time.Time

	DeclineReason *string
	DeclineNotes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the advert awaits approval
func (a *Advert) IsPending() bool {
	return a.Status == StatusPending
}

// IsActive returns true if the advert currently occupies a slot
func (a *Advert) IsActive() bool {
	return a.Status == StatusActive
}

// IsExpired returns true if the advert's run has ended
func (a *Advert) IsExpired() bool {
	return a.Status == StatusExpired
}

// WasApproved returns true if the advert has ever been assigned a slot.
// Only approved adverts can be extended.
func (a *Advert) WasApproved() bool {
	return a.SlotID != nil
}

// CanBeDeclined returns true if the advert can still be declined
func (a *Advert) CanBeDeclined() bool {
	return a.Status == StatusPending
}

// CanBeDeletedBy returns true if the given user may hard-delete the advert.
// A sales rep may delete only their own pending advert; admins may delete anything.
func (a *Advert) CanBeDeletedBy(userID int64, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return a.CreatedBy == userID && a.Status == StatusPending
}

// AdvertFilter фильтр для получения списка объявлений
type AdvertFilter struct {
	Status     *AdvertStatus // Фильтр по статусу (опционально)
	Category   *Category     // Фильтр по категории (опционально)
	ClientName *string       // Фильтр по клиенту (опционально)
	CreatedBy  *int64        // Фильтр по менеджеру (опционально)
	SlotID     *int64        // Фильтр по слоту (опционально)
}

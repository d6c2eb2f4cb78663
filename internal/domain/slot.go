package domain

import (
	"time"

	"github.com/m04kA/SMC-AdsService/pkg/types"
)

// TimeSlot represents a fixed point in the daily schedule (e.g. "09:00").
// The slot set is static reference data seeded once at system initialization.
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	Label     string
	CreatedAt time.Time
}

// SlotAssignment records that one advert occupies one slot on one calendar date.
// The (SlotID, AssignDate, AdvertID) triple is unique at the storage level.
type SlotAssignment struct {
	ID         int64
	AdvertID   int64
	SlotID     int64
	AssignDate time.Time
	CreatedAt  time.Time
}

// SlotOccupant a row joined with its owning advert's category and client,
// used for category-collision checks.
type SlotOccupant struct {
	AdvertID   int64
	Category   Category
	ClientName string
}

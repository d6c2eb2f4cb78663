package domain

// SlotCapacity максимум одновременных объявлений в одном слоте на одну дату.
// Системная константа, не хранится в БД.
const SlotCapacity = 2

// CommissionRate доля комиссии при выставлении счета за одобренное объявление
const CommissionRate = 0.10

// Slot seeding bounds: hourly slots from 06:00 to 20:00 inclusive
const (
	SeedSlotFirstHour = 6
	SeedSlotLastHour  = 20
)

// Business validation constants
const (
	MinDaysPaid         = 1
	MaxDaysPaid         = 365
	MinDeclineReasonLen = 10
	MaxDeclineReasonLen = 500
	MaxDeclineNotesLen  = 1000
	MaxCaptionLength    = 500
	MaxClientNameLength = 255
)

// Retention bounds for the assignment cleanup sweep (days)
const (
	DefaultRetentionDays = 60
	MinRetentionDays     = 30
	MaxRetentionDays     = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

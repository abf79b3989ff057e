package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultMaxAdvanceDays      = 365
)

// Business validation constants
const (
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 480 // 8 hours
	MinAdvanceDays              = 1
	MaxAdvanceDays              = 365 // 1 year
	MaxNotesLength              = 500
	MaxCustomerNameLength       = 200
	MaxCancellationReasonLength = 500
	MaxResourceIDLength         = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

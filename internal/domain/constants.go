package domain

// Default slot policy values (overridable via config and per request)
const (
	DefaultIntervalMinutes = 15 // step between candidate start times
	DefaultBufferMinutes   = 10 // cleanup/prep time after every service
	DefaultMinLeadHours    = 2  // earliest allowed start, relative to "now"
	DefaultMaxLeadDays     = 30 // latest allowed start, relative to "now"
)

// Business validation constants
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 120
	MaxBufferMinutes   = 120
	MaxDurationMinutes = 480 // 8 hours
	MinPhoneLength     = 7
	MaxReasonLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ServiceCategories допустимые категории услуг каталога
var ServiceCategories = []string{"basic", "art", "care", "removal"}

// IsValidServiceCategory returns true if the category is known
func IsValidServiceCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

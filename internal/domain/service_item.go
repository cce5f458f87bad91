package domain

// ServiceItem represents an offered service from the catalog.
// Immutable reference data owned by the business administrator.
type ServiceItem struct {
	ID              string
	Name            string
	Category        string
	DurationMinutes int
	Price           int64 // KRW
}

// SumDurationMinutes returns the total duration of a service bundle
func SumDurationMinutes(items []*ServiceItem) int {
	total := 0
	for _, item := range items {
		total += item.DurationMinutes
	}
	return total
}

// SumPrice returns the total price of a service bundle
func SumPrice(items []*ServiceItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}
